package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpin "freight/internal/adapters/in/http"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the scheduled jobs",
		Long: `Loads the last snapshot (an unreadable one is logged and skipped), seeds
demo data into an empty engine when SEED_DEMO_DATA is set, starts the
autosave and report jobs and serves the HTTP API until interrupted.
A final snapshot is written on shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *options) error {
	cfg, err := LoadConfig(opts.envFile)
	if err != nil {
		return err
	}
	logger, err := NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := OpenSnapshotStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeStore(); closeErr != nil {
			logger.Warn("Snapshot store not closed", "error", closeErr)
		}
	}()

	root := NewCompositionRoot(store, logger)
	root.Bootstrap(ctx, cfg.SeedDemoData)

	jobManager := root.NewJobManager(cfg)
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	e := httpin.NewEcho(httpin.NewServer(root.HTTPHandlers(), logger), logger)
	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		if err := e.Start(net.JoinHostPort("0.0.0.0", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	logger.InfoContext(ctx, "HTTP server started", "port", cfg.HTTPPort, "storage", cfg.Storage)

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-serveErr:
		logger.Error("HTTP server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("HTTP server shutdown failed", "error", shutdownErr)
	}
	jobManager.StopAll()

	if saveErr := root.Save(shutdownCtx); saveErr != nil {
		logger.Error("Final snapshot not saved", "error", saveErr)
		return errors.Join(err, saveErr)
	}
	logger.Info("Final snapshot saved")
	return err
}
