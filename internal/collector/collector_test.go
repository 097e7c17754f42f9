package collector

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDevice() DeviceInfo {
	return DeviceInfo{
		UserAgent:           "ai-assistant/test (linux; amd64)",
		Language:            "ru-RU",
		Platform:            "linux/amd64",
		Timezone:            "Europe/Moscow",
		Hostname:            "workstation",
		HardwareConcurrency: 8,
	}
}

func TestCollector_Collect(t *testing.T) {
	t.Run("Success_MetadataInOrder", func(t *testing.T) {
		server := jsonServer(t, http.StatusOK, `{"ip":"203.0.113.7"}`)
		c := NewCollector(NewIPLookup(server.URL, time.Second), testDevice(), discardLogger())

		metadata, err := c.Collect(context.Background())
		require.NoError(t, err)

		raw, err := metadata.CanonicalJSON()
		require.NoError(t, err)
		assert.Equal(t,
			`{"ip":"203.0.113.7","userAgent":"ai-assistant/test (linux; amd64)","language":"ru-RU",`+
				`"platform":"linux/amd64","timezone":"Europe/Moscow","hostname":"workstation","online":true,`+
				`"deviceMemory":"unknown","hardwareConcurrency":8}`,
			string(raw),
		)
	})

	t.Run("Success_EmptyWhenLookupFails", func(t *testing.T) {
		server := jsonServer(t, http.StatusInternalServerError, `{}`)
		c := NewCollector(NewIPLookup(server.URL, time.Second), testDevice(), discardLogger())

		metadata, err := c.Collect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, metadata.Len())
	})
}

func TestLocalDeviceInfo(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "ru_RU.UTF-8")
	t.Setenv("TZ", "Europe/Moscow")

	info := LocalDeviceInfo("1.2.3")

	assert.Equal(t, "ru-RU", info.Language)
	assert.Equal(t, "Europe/Moscow", info.Timezone)
	assert.Contains(t, info.UserAgent, "ai-assistant/1.2.3")
	assert.Positive(t, info.HardwareConcurrency)
	assert.NotEmpty(t, info.Hostname)
	assert.NotEmpty(t, info.Platform)
}

func TestLanguage_Fallback(t *testing.T) {
	t.Setenv("LC_ALL", "C")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	assert.Equal(t, "unknown", language())
}

func TestUserAgent_DefaultVersion(t *testing.T) {
	assert.Contains(t, UserAgent(""), "ai-assistant/dev")
}
