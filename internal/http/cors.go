package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pinkoot/AI-Assistant/internal/protocol/transport"
)

// mirrorCORSConfig lets browser clients send signed GET requests. A "*" entry allows any
// origin and, as browsers require, disables credentials.
func mirrorCORSConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", transport.SignatureHeader},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}

// createCORSMiddleware returns nil when CORS is disabled or allowOrigins, a comma-separated
// list, names no origin.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOrigins)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no origins configured, skipping")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))
	return cors.New(mirrorCORSConfig(origins))
}

func parseOrigins(list string) []string {
	var origins []string
	for part := range strings.SplitSeq(list, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
