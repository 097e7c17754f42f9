package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	requestLogDomain "github.com/pinkoot/AI-Assistant/internal/requestlog/domain"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectMetrics(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "requestlog", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "requestlog", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestRequestLogUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Record_Success", func(t *testing.T) {
		mockRepo := &mockRequestLogRepository{}
		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		mockMetrics := &mockBusinessMetrics{}
		expectMetrics(ctx, mockMetrics, "request_log_record", "success")

		uc := NewRequestLogUseCaseWithMetrics(NewRequestLogUseCase(&MockTxManager{}, mockRepo), mockMetrics)
		assert.NoError(t, uc.Record(ctx, &requestLogDomain.RequestLog{}))

		mockMetrics.AssertExpectations(t)
	})

	t.Run("List_Error", func(t *testing.T) {
		mockRepo := &mockRequestLogRepository{}
		mockRepo.On("List", ctx, 0, 5).Return(nil, errors.New("boom")).Once()
		mockMetrics := &mockBusinessMetrics{}
		expectMetrics(ctx, mockMetrics, "request_log_list", "error")

		uc := NewRequestLogUseCaseWithMetrics(NewRequestLogUseCase(&MockTxManager{}, mockRepo), mockMetrics)
		_, err := uc.List(ctx, 0, 5)
		assert.Error(t, err)

		mockMetrics.AssertExpectations(t)
	})

	t.Run("DeleteOlderThan_Error", func(t *testing.T) {
		mockMetrics := &mockBusinessMetrics{}
		expectMetrics(ctx, mockMetrics, "request_log_delete", "error")

		uc := NewRequestLogUseCaseWithMetrics(NewRequestLogUseCase(&MockTxManager{}, &mockRequestLogRepository{}), mockMetrics)
		_, err := uc.DeleteOlderThan(ctx, -3, false)
		assert.ErrorIs(t, err, requestLogDomain.ErrInvalidRetention)

		mockMetrics.AssertExpectations(t)
	})
}
