package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pinkoot/AI-Assistant/internal/metrics"
)

// listener wraps one net/http server with the timeouts shared by both listeners.
type listener struct {
	name   string
	server *http.Server
	logger *slog.Logger
}

func newListener(name, host string, port int, logger *slog.Logger) *listener {
	return &listener{
		name:   name,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// serve blocks until the listener is shut down. A clean shutdown returns nil.
func (l *listener) serve(handler http.Handler) error {
	l.server.Handler = handler
	l.logger.Info("starting "+l.name+" server", slog.String("addr", l.server.Addr))

	if err := l.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s server: %w", l.name, err)
	}
	return nil
}

func (l *listener) shutdown(ctx context.Context) error {
	l.logger.Info("shutting down " + l.name + " server")
	return l.server.Shutdown(ctx)
}

// MetricsServer serves /metrics on a listener of its own so scrapes never share the
// rate limit or journal of the protocol endpoints.
type MetricsServer struct {
	listener *listener
	handler  http.Handler
}

func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery(), CustomLoggerMiddleware(logger))

	if metricsProvider != nil {
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}

	return &MetricsServer{
		listener: newListener("metrics", host, port, logger),
		handler:  router,
	}
}

// GetHandler returns the router for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.handler
}

func (s *MetricsServer) Start(ctx context.Context) error {
	return s.listener.serve(s.handler)
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.listener.shutdown(ctx)
}
