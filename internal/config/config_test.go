package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Empty(t, cfg.ProtocolKey)
				assert.Equal(t, "http://127.0.0.1:5000", cfg.BackendURL)
				assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
				assert.Equal(t, "https://api.ipify.org?format=json", cfg.IPLookupURL)
				assert.Equal(t, "http://ip-api.com/json", cfg.GeolocationURL)
				assert.Equal(t, "google", cfg.MapProvider)
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 5000, cfg.ServerPort)
				assert.Equal(t, "sqlite", cfg.DBDriver)
				assert.Equal(t, "file:requests.db", cfg.DBConnectionString)
				assert.Equal(t, 25, cfg.DBMaxOpenConnections)
				assert.Equal(t, 5, cfg.DBMaxIdleConnections)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.True(t, cfg.RequestLogEnabled)
				assert.True(t, cfg.CORSEnabled)
				assert.Equal(t, "*", cfg.CORSAllowOrigins)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 10.0, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 20, cfg.RateLimitBurst)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "protocol", cfg.MetricsNamespace)
				assert.Equal(t, 5001, cfg.MetricsPort)
			},
		},
		{
			name: "load protocol key from kms settings",
			envVars: map[string]string{
				"PROTOCOL_KEY_URI":        "base64key://c2VjcmV0",
				"PROTOCOL_KEY_CIPHERTEXT": "d3JhcHBlZA==",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.ProtocolKey)
				assert.Equal(t, "base64key://c2VjcmV0", cfg.ProtocolKeyURI)
				assert.Equal(t, "d3JhcHBlZA==", cfg.ProtocolKeyCiphertext)
			},
		},
		{
			name: "load custom collaborators",
			envVars: map[string]string{
				"PROTOCOL_KEY":         "ключ",
				"BACKEND_URL":          "http://backend:8000",
				"HTTP_TIMEOUT_SECONDS": "3",
				"MAP_PROVIDER":         "yandex",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "ключ", cfg.ProtocolKey)
				assert.Equal(t, "http://backend:8000", cfg.BackendURL)
				assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
				assert.Equal(t, "yandex", cfg.MapProvider)
			},
		},
		{
			name: "load custom database configuration",
			envVars: map[string]string{
				"DB_DRIVER":               "mysql",
				"DB_CONNECTION_STRING":    "user:password@tcp(localhost:3306)/testdb",
				"DB_MAX_OPEN_CONNECTIONS": "50",
				"DB_MAX_IDLE_CONNECTIONS": "10",
				"DB_CONN_MAX_LIFETIME":    "10",
				"REQUEST_LOG_ENABLED":     "false",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.DBDriver)
				assert.Equal(t, "user:password@tcp(localhost:3306)/testdb", cfg.DBConnectionString)
				assert.Equal(t, 50, cfg.DBMaxOpenConnections)
				assert.Equal(t, 10, cfg.DBMaxIdleConnections)
				assert.Equal(t, 10*time.Minute, cfg.DBConnMaxLifetime)
				assert.False(t, cfg.RequestLogEnabled)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST":                 "127.0.0.1",
				"SERVER_PORT":                 "9090",
				"CORS_ALLOW_ORIGINS":          "http://localhost:3000",
				"RATE_LIMIT_REQUESTS_PER_SEC": "2.5",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "127.0.0.1", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
				assert.Equal(t, "http://localhost:3000", cfg.CORSAllowOrigins)
				assert.Equal(t, 2.5, cfg.RateLimitRequestsPerSec)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			tt.validate(t, Load())
		})
	}
}

func TestGetGinMode(t *testing.T) {
	assert.Equal(t, "debug", (&Config{LogLevel: "debug"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "info"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "bogus"}).GetGinMode())
}
