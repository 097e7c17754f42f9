package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
)

func TestTransportError(t *testing.T) {
	t.Run("Success_StatusWithBody", func(t *testing.T) {
		err := &TransportError{StatusCode: 500, Body: "internal"}
		assert.Equal(t, "transport failure: status 500: internal", err.Error())
		assert.ErrorIs(t, err, ErrTransportFailure)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
	})

	t.Run("Success_StatusWithoutBody", func(t *testing.T) {
		err := &TransportError{StatusCode: 502}
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("Success_NetworkFailure", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &TransportError{Err: cause}
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrTransportFailure)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestServerError(t *testing.T) {
	err := &ServerError{Message: "Город не найден"}
	assert.Equal(t, "Город не найден", err.Error())
	assert.ErrorIs(t, err, ErrServerSignaled)

	var target *ServerError
	assert.True(t, errors.As(apperrors.Wrap(err, "weather"), &target))
}

func TestSignatureErrors(t *testing.T) {
	assert.True(t, apperrors.Is(ErrSignatureMissing, apperrors.ErrUnauthorized))
	assert.True(t, apperrors.Is(ErrSignatureInvalid, apperrors.ErrUnauthorized))
	assert.False(t, errors.Is(ErrSignatureMissing, ErrSignatureInvalid))
}
