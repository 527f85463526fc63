package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/factcheck/internal/errs"
	"github.com/GregMSThompson/factcheck/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

// HandleError maps the fact-check taxonomy onto HTTP. Messages are passed
// through verbatim; they are written for end users.
func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, errs.CodeInvalidInput, e.Message)

	case *errs.ConfigurationError:
		log.Error("configuration error", "error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, errs.CodeConfiguration, e.Message)

	case *errs.ParseError:
		log.Warn("provider output could not be parsed", "error", e.Err)
		h.WriteError(w, r, http.StatusBadGateway, errs.CodeParse, e.Message)

	case *errs.ProviderError:
		log.Error("provider call failed", "error", e.Err)
		h.WriteError(w, r, http.StatusBadGateway, errs.CodeProvider, e.Message)

	case *errs.UnknownError:
		log.Error("unknown fact-check failure")
		h.WriteError(w, r, http.StatusInternalServerError, errs.CodeUnknown, e.Message)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, errs.CodeInternal,
			"An unexpected error occurred")
	}
}
