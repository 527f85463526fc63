package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/GregMSThompson/factcheck/internal/dto"
	"github.com/GregMSThompson/factcheck/internal/errs"
	"github.com/GregMSThompson/factcheck/internal/models"
	"github.com/GregMSThompson/factcheck/internal/response"
)

type factCheckService interface {
	FactCheck(ctx context.Context, claim string) (models.FactCheckResult, error)
}

type factCheckHandlers struct {
	ResponseHandler response.ResponseHandler
	FactCheckSvc    factCheckService
	validate        *validator.Validate
}

func NewFactCheckHandlers(deps *Deps) *factCheckHandlers {
	return &factCheckHandlers{
		ResponseHandler: deps.ResponseHandler,
		FactCheckSvc:    deps.FactCheckSvc,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *factCheckHandlers) FactCheckRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.FactCheck)
	return r
}

func (h *factCheckHandlers) FactCheck(w http.ResponseWriter, r *http.Request) {
	var body dto.FactCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("request body must be a JSON object with a claim"))
		return
	}

	// whitespace-only claims count as empty
	body.Claim = strings.TrimSpace(body.Claim)
	if err := h.validate.Struct(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("claim is required"))
		return
	}

	result, err := h.FactCheckSvc.FactCheck(r.Context(), body.Claim)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
