package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
	"github.com/pinkoot/AI-Assistant/internal/httputil"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query          string
		expectedOffset int
		expectedLimit  int
		errContains    string
	}{
		{query: "", expectedOffset: 0, expectedLimit: httputil.DefaultLimit},
		{query: "offset=10&limit=20", expectedOffset: 10, expectedLimit: 20},
		{query: "limit=100", expectedOffset: 0, expectedLimit: httputil.MaxLimit},
		{query: "offset=-1", errContains: "invalid offset parameter: must be no less than 0"},
		{query: "offset=abc", errContains: "invalid offset parameter: must be an integer"},
		{query: "limit=0", errContains: "invalid limit parameter: must be no less than 1"},
		{query: "limit=101", errContains: "invalid limit parameter: must be no greater than 100"},
		{query: "limit=xyz", errContains: "invalid limit parameter: must be an integer"},
	}

	for _, tt := range tests {
		t.Run("query="+tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/v1/request-logs?"+tt.query, nil)

			offset, limit, err := httputil.ParsePagination(c)

			if tt.errContains != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.errContains)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}

func TestValidatePagination(t *testing.T) {
	assert.NoError(t, httputil.ValidatePagination(0, 1))
	assert.NoError(t, httputil.ValidatePagination(500, httputil.MaxLimit))
	assert.ErrorIs(t, httputil.ValidatePagination(-5, 10), apperrors.ErrInvalidInput)
	assert.ErrorIs(t, httputil.ValidatePagination(0, httputil.MaxLimit+1), apperrors.ErrInvalidInput)
}
