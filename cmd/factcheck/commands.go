package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GregMSThompson/factcheck/internal/bootstrap"
	"github.com/GregMSThompson/factcheck/internal/config"
	"github.com/GregMSThompson/factcheck/internal/presenter"
	"github.com/GregMSThompson/factcheck/internal/render"
	"github.com/GregMSThompson/factcheck/internal/services"
	"github.com/GregMSThompson/factcheck/internal/tui"
	"github.com/GregMSThompson/factcheck/pkg/logger"
)

const outputWidth = 80

var (
	errCheckFailed = errors.New("fact-check failed")
	errEmptyClaim  = errors.New("claim is required")

	rootCmd = &cobra.Command{
		Use:   "factcheck",
		Short: "Verify a claim, headline or URL with a search-grounded model",
		RunE:  runTUI,
	}

	tuiCmd = &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive fact-checker",
		RunE:  runTUI,
	}

	checkCmd = &cobra.Command{
		Use:          "check [claim...]",
		Short:        "Fact-check a single claim and print the result",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         runCheck,
	}
)

func init() {
	rootCmd.AddCommand(tuiCmd, checkCmd)
}

// newPresenter wires config, bootstrap and the query client. Logs go to
// logOut unless a log file is configured.
func newPresenter(logOut io.Writer) (*presenter.Presenter, *bootstrap.Bootstrap, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}
	bs, err := bootstrap.Run(cfg, logOut)
	if err != nil {
		return nil, bs, err
	}
	svc := services.NewFactCheckService(bs.VertexAdapter, bs.APIKey, cfg.VertexModel, bs.Metrics)
	return presenter.New(svc), bs, nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// stdout belongs to the terminal UI
	p, bs, err := newPresenter(io.Discard)
	defer bs.Close()
	if err != nil {
		return err
	}

	ctx := logger.ToContext(cmd.Context(), bs.Log)
	return tui.Run(ctx, p)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, bs, err := newPresenter(os.Stderr)
	defer bs.Close()
	if err != nil {
		return err
	}

	ctx := logger.ToContext(cmd.Context(), bs.Log)
	if !p.Submit(ctx, strings.Join(args, " ")) {
		return errEmptyClaim
	}

	snap := p.Snapshot()
	fmt.Fprintln(cmd.OutOrStdout(), render.Snapshot(snap, "", outputWidth))
	if snap.State == presenter.StateFailed {
		return errCheckFailed
	}
	return nil
}
