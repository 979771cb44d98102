// AngelaMos | 2026
// handler.go

package addon

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/insureai/portal-api/internal/core"
	"github.com/insureai/portal-api/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/addons", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/recommend", h.Recommend)
	})
}

func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.service.Recommend(r.Context(), userID, req)
	if err != nil {
		core.BadGateway(w, "suggestion service unavailable")
		return
	}

	core.OK(w, resp)
}
