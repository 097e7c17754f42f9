// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// ProtocolKey is the shared secret in plaintext. It wins over the KMS settings.
	ProtocolKey string
	// ProtocolKeyURI is a gocloud secrets keeper URI (base64key://, awskms://, gcpkms://,
	// azurekeyvault://, hashivault://) used to unwrap ProtocolKeyCiphertext.
	ProtocolKeyURI string
	// ProtocolKeyCiphertext is the base64 wrapped protocol key.
	ProtocolKeyCiphertext string

	// BackendURL is the base URL of the paired backend.
	BackendURL string
	// HTTPTimeout bounds every outgoing request.
	HTTPTimeout time.Duration
	// IPLookupURL answers with the caller's public IP as {"ip": "..."}.
	IPLookupURL string
	// GeolocationURL answers with {"status": "success", "lat": ..., "lon": ...}.
	GeolocationURL string
	// MapProvider is sent as map_provider on place lookups ("google" or "yandex").
	MapProvider string

	// ServerHost is the host address the mirror server will bind to.
	ServerHost string
	// ServerPort is the port number the mirror server will listen on.
	ServerPort int

	// DBDriver is the request journal driver: "sqlite", "postgres", or "mysql".
	DBDriver string
	// DBConnectionString is the connection string for the database.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// RequestLogEnabled turns on journaling of mirror requests.
	RequestLogEnabled bool

	// CORSEnabled indicates whether CORS is enabled on the mirror.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins, or "*".
	CORSAllowOrigins string

	// RateLimitEnabled indicates whether per-IP rate limiting of the mirror is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size per client IP.
	RateLimitBurst int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Protocol key
		ProtocolKey:           env.GetString("PROTOCOL_KEY", ""),
		ProtocolKeyURI:        env.GetString("PROTOCOL_KEY_URI", ""),
		ProtocolKeyCiphertext: env.GetString("PROTOCOL_KEY_CIPHERTEXT", ""),

		// Collaborators
		BackendURL:     env.GetString("BACKEND_URL", "http://127.0.0.1:5000"),
		HTTPTimeout:    env.GetDuration("HTTP_TIMEOUT_SECONDS", 10, time.Second),
		IPLookupURL:    env.GetString("IP_LOOKUP_URL", "https://api.ipify.org?format=json"),
		GeolocationURL: env.GetString("GEOLOCATION_URL", "http://ip-api.com/json"),
		MapProvider:    env.GetString("MAP_PROVIDER", "google"),

		// Mirror server
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 5000),

		// Database configuration
		DBDriver:             env.GetString("DB_DRIVER", "sqlite"),
		DBConnectionString:   env.GetString("DB_CONNECTION_STRING", "file:requests.db"),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		RequestLogEnabled: env.GetBool("REQUEST_LOG_ENABLED", true),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", true),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", "*"),

		// Rate limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "protocol"),
		MetricsPort:      env.GetInt("METRICS_PORT", 5001),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv loads the nearest .env file found walking up from the working directory.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
