package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/httpserver"
	"github.com/chris-regnier/moodmemo/internal/httpserver/deps"
	"github.com/chris-regnier/moodmemo/internal/logger"
	"github.com/chris-regnier/moodmemo/internal/version"
)

const shutdownTimeout = 10 * time.Second

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the journal over HTTP",
	Long: `Start the JSON API.

  GET    /healthz
  GET    /api/entries?date=|year=&month=|start=&end=
  GET    /api/entries/{id}
  POST   /api/entries
  PUT    /api/entries/{id}
  DELETE /api/entries/{id}
  GET    /api/calendar?year=&month=
  GET    /api/chart?range=&date=|start=&end=
  GET    /api/moods
  GET    /api/events   (server-sent change events)

Months are 1-12.`,
	Example: `  moodmemo serve
  moodmemo serve --listen 127.0.0.1:9000
  moodmemo serve --storage redis`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveRun(cmd.Context())
	},
}

func serveRun(ctx context.Context) error {
	addr := appConfig.HTTP.Listen
	if serveListen != "" {
		addr = serveListen
	}

	sub, err := changeFeed()
	if err != nil {
		appLog.Warn("change feed unavailable, /api/events disabled", logger.Error(err))
		sub = nil
	}

	server := httpserver.New(addr, deps.Deps{
		Logger:         appLog,
		Store:          store,
		Feed:           sub,
		StartTime:      now(),
		Version:        version.Version,
		Commit:         version.Commit,
		TimeNow:        now,
		RequestTimeout: appConfig.HTTP.RequestTimeout,
	})

	appLog.Infof("moodmemo %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		appLog.Info("shutting down gracefully")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default from config http.listen)")
	rootCmd.AddCommand(serveCmd)
}
