package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/factcheck/internal/handlers"
	"github.com/GregMSThompson/factcheck/internal/middleware"
)

// provider calls with search grounding routinely take tens of seconds
const requestTimeout = 90 * time.Second

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	fch := handlers.NewFactCheckHandlers(deps)

	r.Get("/healthz", handlers.Health)
	if deps.Metrics != nil {
		r.Method("GET", "/metrics", deps.Metrics)
	}
	r.Mount("/factcheck", fch.FactCheckRoutes())
	return r
}
