package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
)

func localKeeperURI(t *testing.T) string {
	t.Helper()
	secret := make([]byte, 32)
	_, err := rand.Read(secret)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(secret)
}

func TestKMSService_OpenKeeper_DecryptsWrappedKey(t *testing.T) {
	ctx := context.Background()
	uri := localKeeperURI(t)

	keeper, err := NewKMSService().OpenKeeper(ctx, uri)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, keeper.Close())
	}()

	encrypter, ok := keeper.(interface {
		Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	})
	require.True(t, ok)

	wrapped, err := encrypter.Encrypt(ctx, []byte("ключ"))
	require.NoError(t, err)

	plain, err := keeper.Decrypt(ctx, wrapped)
	require.NoError(t, err)
	assert.Equal(t, "ключ", string(plain))
}

func TestKMSService_OpenKeeper_Errors(t *testing.T) {
	tests := []struct {
		name         string
		uri          string
		invalidInput bool
		errContains  string
	}{
		{name: "Empty", uri: "", invalidInput: true, errContains: "invalid KMS key URI"},
		{name: "NoScheme", uri: "just-a-key", invalidInput: true, errContains: "invalid KMS key URI"},
		{name: "UnknownScheme", uri: "invalid://uri", invalidInput: true, errContains: "unsupported KMS scheme invalid"},
		{name: "MalformedLocalKey", uri: "base64key://!!!", errContains: "failed to open KMS keeper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keeper, err := NewKMSService().OpenKeeper(context.Background(), tt.uri)

			require.Error(t, err)
			assert.Nil(t, keeper)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Equal(t, tt.invalidInput, apperrors.Is(err, apperrors.ErrInvalidInput))
		})
	}
}
