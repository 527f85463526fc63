package handlers

import (
	"log/slog"
	"net/http"

	"github.com/GregMSThompson/factcheck/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	FactCheckSvc    factCheckService
	Metrics         http.Handler
}
