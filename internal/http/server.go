// Package http provides the loopback mirror server: routing, middleware, health checks.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pinkoot/AI-Assistant/internal/metrics"
	protocolHTTP "github.com/pinkoot/AI-Assistant/internal/protocol/http"
	requestLogHTTP "github.com/pinkoot/AI-Assistant/internal/requestlog/http"
	requestLogUseCase "github.com/pinkoot/AI-Assistant/internal/requestlog/usecase"
)

// RouterConfig holds the optional middleware settings of the mirror router.
type RouterConfig struct {
	CORSEnabled      bool
	CORSAllowOrigins string

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Server is the mirror HTTP server.
type Server struct {
	db       *sql.DB
	router   *gin.Engine
	listener *listener
	logger   *slog.Logger
}

// NewServer creates a new mirror server. db backs the readiness check and may be nil
// when the request journal is disabled.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:       db,
		logger:   logger,
		listener: newListener("http", host, port, logger),
	}
}

// SetupRouter builds the gin engine. requestLogs and metricsProvider are optional; a nil
// requestLogs disables both the journal middleware and the listing endpoint.
func (s *Server) SetupRouter(
	cfg RouterConfig,
	mirrorHandler *protocolHTTP.MirrorHandler,
	requestLogs requestLogUseCase.RequestLogUseCase,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metricsProvider.HTTPMiddleware())
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	if requestLogs != nil {
		router.GET("/v1/request-logs", requestLogHTTP.NewRequestLogHandler(requestLogs, s.logger).ListHandler)
	}

	// Unknown endpoints are limited and journaled like known ones.
	var protocolMiddleware []gin.HandlerFunc
	if cfg.RateLimitEnabled {
		protocolMiddleware = append(protocolMiddleware, RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, s.logger))
	}
	if requestLogs != nil {
		protocolMiddleware = append(protocolMiddleware, requestLogHTTP.JournalMiddleware(requestLogs, s.logger))
	}
	mirrorHandler.Register(router.Group("/", protocolMiddleware...))
	router.NoRoute(append(protocolMiddleware, mirrorHandler.NotFoundHandler)...)

	s.router = router
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the journal database answers.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil || s.db.PingContext(ctx) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}

// GetHandler returns the router for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	return s.listener.serve(s.router)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.listener.shutdown(ctx)
}
