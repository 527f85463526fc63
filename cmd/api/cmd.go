package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/factcheck/internal/bootstrap"
	"github.com/GregMSThompson/factcheck/internal/config"
	"github.com/GregMSThompson/factcheck/internal/handlers"
	"github.com/GregMSThompson/factcheck/internal/response"
	"github.com/GregMSThompson/factcheck/internal/router"
	"github.com/GregMSThompson/factcheck/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg, err := config.New()
	exitOnError("config failed", err, slog.Default())
	bs, err := bootstrap.Run(cfg, os.Stdout)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// services
	fcserv := services.NewFactCheckService(bs.VertexAdapter, bs.APIKey, cfg.VertexModel, bs.Metrics)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.FactCheckSvc = fcserv
	deps.Metrics = bs.Metrics.Handler()

	// router
	r := router.NewRouter(deps)
	addr := fmt.Sprintf(":%d", cfg.Port)
	bs.Log.Info("listening", "addr", addr)
	err = http.ListenAndServe(addr, r)
	exitOnError("server start failed", err, bs.Log)
}
