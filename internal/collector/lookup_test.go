package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestIPLookup_PublicIP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := jsonServer(t, http.StatusOK, `{"ip":"203.0.113.7"}`)
		ip, err := NewIPLookup(server.URL, time.Second).PublicIP(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.7", ip)
	})

	t.Run("Error_MissingIP", func(t *testing.T) {
		server := jsonServer(t, http.StatusOK, `{"address":"203.0.113.7"}`)
		_, err := NewIPLookup(server.URL, time.Second).PublicIP(context.Background())
		assert.ErrorIs(t, err, ErrLookupFailed)
	})

	t.Run("Error_Status", func(t *testing.T) {
		server := jsonServer(t, http.StatusServiceUnavailable, `{}`)
		_, err := NewIPLookup(server.URL, time.Second).PublicIP(context.Background())
		assert.ErrorIs(t, err, ErrLookupFailed)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
	})

	t.Run("Error_NotJSON", func(t *testing.T) {
		server := jsonServer(t, http.StatusOK, `203.0.113.7`)
		_, err := NewIPLookup(server.URL, time.Second).PublicIP(context.Background())
		assert.ErrorIs(t, err, ErrLookupFailed)
	})
}

func TestGeoLocator_Locate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := jsonServer(t, http.StatusOK, `{"status":"success","lat":55.7558,"lon":37.6173,"city":"Moscow"}`)
		coords, err := NewGeoLocator(server.URL, time.Second).Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, protocolDomain.Coordinates{Latitude: 55.7558, Longitude: 37.6173}, coords)
	})

	t.Run("Error_FailStatus", func(t *testing.T) {
		server := jsonServer(t, http.StatusOK, `{"status":"fail","message":"private range"}`)
		_, err := NewGeoLocator(server.URL, time.Second).Locate(context.Background())
		assert.ErrorIs(t, err, protocolDomain.ErrLocationUnavailable)
		assert.Contains(t, err.Error(), "private range")
	})

	t.Run("Error_MissingCoordinates", func(t *testing.T) {
		server := jsonServer(t, http.StatusOK, `{"status":"success","lat":"north"}`)
		_, err := NewGeoLocator(server.URL, time.Second).Locate(context.Background())
		assert.ErrorIs(t, err, protocolDomain.ErrLocationUnavailable)
	})

	t.Run("Error_Unreachable", func(t *testing.T) {
		server := jsonServer(t, http.StatusOK, `{}`)
		url := server.URL
		server.Close()

		_, err := NewGeoLocator(url, time.Second).Locate(context.Background())
		assert.ErrorIs(t, err, protocolDomain.ErrLocationUnavailable)
		assert.ErrorIs(t, err, ErrLookupFailed)
	})
}
