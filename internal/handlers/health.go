package handlers

import (
	"net/http"

	"github.com/GregMSThompson/factcheck/pkg/logger"
)

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.FromContext(r.Context()).Warn("healthz write failed", "error", err)
	}
}
