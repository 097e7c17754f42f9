package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	requestLogDomain "github.com/pinkoot/AI-Assistant/internal/requestlog/domain"
	requestLogMocks "github.com/pinkoot/AI-Assistant/internal/requestlog/usecase/mocks"
)

func TestRunCleanRequestLogs(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	days := 30

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := requestLogMocks.NewMockRequestLogUseCase(t)
		mockUseCase.On("DeleteOlderThan", ctx, days, false).Return(int64(100), nil)

		var out bytes.Buffer
		err := RunCleanRequestLogs(ctx, mockUseCase, logger, &out, days, false, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully deleted 100 request log(s)")
	})

	t.Run("dry-run-text-output", func(t *testing.T) {
		mockUseCase := requestLogMocks.NewMockRequestLogUseCase(t)
		mockUseCase.On("DeleteOlderThan", ctx, days, true).Return(int64(7), nil)

		var out bytes.Buffer
		err := RunCleanRequestLogs(ctx, mockUseCase, logger, &out, days, true, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Dry-run mode: Would delete 7 request log(s)")
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := requestLogMocks.NewMockRequestLogUseCase(t)
		mockUseCase.On("DeleteOlderThan", ctx, days, true).Return(int64(50), nil)

		var out bytes.Buffer
		err := RunCleanRequestLogs(ctx, mockUseCase, logger, &out, days, true, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"count": 50`)
		require.Contains(t, out.String(), `"dry_run": true`)
	})

	t.Run("invalid-days", func(t *testing.T) {
		mockUseCase := requestLogMocks.NewMockRequestLogUseCase(t)
		err := RunCleanRequestLogs(ctx, mockUseCase, logger, &bytes.Buffer{}, -1, false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "days must be a positive number")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := requestLogMocks.NewMockRequestLogUseCase(t)
		mockUseCase.On("DeleteOlderThan", ctx, days, false).Return(int64(0), errors.New("db down"))

		err := RunCleanRequestLogs(ctx, mockUseCase, logger, &bytes.Buffer{}, days, false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to delete request logs: db down")
	})
}

func TestRunListRequestLogs(t *testing.T) {
	ctx := context.Background()
	entry := &requestLogDomain.RequestLog{
		ID:          uuid.Must(uuid.NewV7()),
		RequestID:   "req-1",
		Method:      "GET",
		Path:        "/get_weather",
		RequestData: `{"q":"москва"}`,
		StatusCode:  200,
		ClientIP:    "127.0.0.1",
		DurationMs:  3,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := requestLogMocks.NewMockRequestLogUseCase(t)
		mockUseCase.On("List", ctx, 0, 10).Return([]*requestLogDomain.RequestLog{entry}, nil)

		var out bytes.Buffer
		require.NoError(t, RunListRequestLogs(ctx, mockUseCase, &out, 0, 10, "text"))
		require.Equal(t, "2026-01-02T03:04:05Z  GET /get_weather  200  3ms  127.0.0.1\n", out.String())
	})

	t.Run("empty-text-output", func(t *testing.T) {
		mockUseCase := requestLogMocks.NewMockRequestLogUseCase(t)
		mockUseCase.On("List", ctx, 0, 10).Return([]*requestLogDomain.RequestLog{}, nil)

		var out bytes.Buffer
		require.NoError(t, RunListRequestLogs(ctx, mockUseCase, &out, 0, 10, "text"))
		require.Equal(t, "No request logs found\n", out.String())
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := requestLogMocks.NewMockRequestLogUseCase(t)
		mockUseCase.On("List", ctx, 0, 10).Return([]*requestLogDomain.RequestLog{entry}, nil)

		var out bytes.Buffer
		require.NoError(t, RunListRequestLogs(ctx, mockUseCase, &out, 0, 10, "json"))
		require.Contains(t, out.String(), `"path": "/get_weather"`)
		require.Contains(t, out.String(), `"q": "москва"`)
	})

	t.Run("invalid-limit", func(t *testing.T) {
		mockUseCase := requestLogMocks.NewMockRequestLogUseCase(t)
		err := RunListRequestLogs(ctx, mockUseCase, &bytes.Buffer{}, 0, 1000, "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid limit parameter")
	})
}
