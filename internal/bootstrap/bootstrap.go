package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"os"

	vertexclient "github.com/GregMSThompson/factcheck/internal/client/vertex"
	"github.com/GregMSThompson/factcheck/internal/config"
	"github.com/GregMSThompson/factcheck/internal/metrics"
	"github.com/GregMSThompson/factcheck/pkg/logger"
)

type Bootstrap struct {
	Log           *slog.Logger
	Metrics       *metrics.Metrics
	APIKey        string
	VertexAdapter *vertexclient.Adapter

	logFile *os.File
}

// Run wires the process-wide dependencies. Logs go to logOut unless the config
// names a log file. A missing credential is not an error here: it is reported
// on each fact-check instead.
func Run(cfg *config.Config, logOut io.Writer) (*Bootstrap, error) {
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			bs.Log = logger.New(cfg.LogLevel, logger.CloudRun(os.Stderr))
			return bs, err
		}
		bs.logFile = f
		logOut = f
	}
	bs.Log = logger.New(cfg.LogLevel, logger.CloudRun(logOut))
	bs.Metrics = metrics.New()

	bs.APIKey = resolveAPIKey(logger.ToContext(applicationCtx, bs.Log), cfg, newSecretManagerAccessor)
	if bs.APIKey == "" {
		bs.Log.Warn("provider credential not set; fact-checks will report a configuration error")
		return bs, nil
	}

	var err error
	bs.VertexAdapter, err = vertexclient.NewAdapter(applicationCtx, bs.Log, bs.APIKey, cfg.ProjectID, cfg.Region, cfg.VertexModel)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

// Close is safe on a nil or partially built Bootstrap.
func (bs *Bootstrap) Close() {
	if bs == nil {
		return
	}
	if bs.VertexAdapter != nil {
		_ = bs.VertexAdapter.Close()
	}
	if bs.logFile != nil {
		_ = bs.logFile.Close()
	}
}
