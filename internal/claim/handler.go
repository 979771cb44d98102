// AngelaMos | 2026
// handler.go

package claim

import (
	"encoding/json"
	"errors"
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
	r.Route("/claims", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListClaims)
		r.Post("/", h.SubmitClaim)
	})
}

func (h *Handler) ListClaims(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	core.OK(w, h.service.List(r.Context(), userID))
}

func (h *Handler) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req SubmitClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.Submit(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "policy")
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "incidentDate must be a valid YYYY-MM-DD date")
			return
		}
		if core.IsAppError(err) {
			core.JSONError(w, err)
			return
		}
		core.UnprocessableEntity(w, err.Error())
		return
	}

	core.Created(w, c)
}
