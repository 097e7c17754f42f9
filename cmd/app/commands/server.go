package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/pinkoot/AI-Assistant/internal/app"
	"github.com/pinkoot/AI-Assistant/internal/config"
)

const shutdownTimeout = 15 * time.Second

type listener interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// listeners builds the mirror and, when metrics are enabled, the metrics server.
func listeners(container *app.Container) ([]listener, error) {
	server, err := container.HTTPServer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	if metricsServer == nil {
		return []listener{server}, nil
	}
	return []listener{server, metricsServer}, nil
}

// RunServer serves until SIGINT or SIGTERM, or until one listener fails. Either way every
// listener is shut down within shutdownTimeout.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	logger.Info("starting server",
		slog.String("version", version),
		slog.Bool("request_log_enabled", cfg.RequestLogEnabled),
		slog.Bool("metrics_enabled", cfg.MetricsEnabled),
	)

	running, err := listeners(container)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, l := range running {
		g.Go(func() error {
			return l.Start(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Any("cause", context.Cause(gctx)))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, l := range running {
			errs = append(errs, l.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
