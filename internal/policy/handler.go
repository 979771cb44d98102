// AngelaMos | 2026
// handler.go

package policy

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
	r.Route("/policies", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListPolicies)
		r.Post("/", h.PurchasePolicy)
		r.Post("/quote", h.QuotePolicy)
		r.Get("/{policyID}", h.GetPolicy)
	})
}

func (h *Handler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	core.OK(w, h.service.List(r.Context(), userID))
}

func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	policyID := chi.URLParam(r, "policyID")

	p, err := h.service.Get(r.Context(), userID, policyID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "policy")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, p)
}

func (h *Handler) QuotePolicy(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	core.OK(w, h.service.Quote(req))
}

func (h *Handler) PurchasePolicy(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req PurchasePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.Purchase(r.Context(), userID, req)
	if err != nil {
		if core.IsAppError(err) {
			core.JSONError(w, err)
			return
		}
		core.UnprocessableEntity(w, err.Error())
		return
	}

	core.Created(w, p)
}
