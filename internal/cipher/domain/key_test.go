package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
)

func TestNewKey(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		expectError    bool
		wantNormalized string
	}{
		{
			name:           "Success_LowercaseKey",
			raw:            "ключ",
			wantNormalized: "ключ",
		},
		{
			name:           "Success_UppercaseIsLowered",
			raw:            "КЛЮЧ",
			wantNormalized: "ключ",
		},
		{
			name:           "Success_InteriorSpacesRemoved",
			raw:            " сек рет ",
			wantNormalized: "секрет",
		},
		{
			name:           "Success_DigitsAndPunctuation",
			raw:            "ключ-42.",
			wantNormalized: "ключ-42.",
		},
		{
			name:        "Error_Empty",
			raw:         "",
			expectError: true,
		},
		{
			name:        "Error_OnlySpaces",
			raw:         "   ",
			expectError: true,
		},
		{
			name:        "Error_LatinCharacters",
			raw:         "secret",
			expectError: true,
		},
		{
			name:        "Error_YoIsOutsideAlphabet",
			raw:         "ёж",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewKey(tt.raw)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidKey)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.True(t, key.IsZero())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNormalized, key.Normalized())
			assert.Equal(t, len([]rune(tt.wantNormalized)), key.Len())
			assert.Equal(t, []byte(tt.raw), key.Secret())
		})
	}
}

func TestKey_At(t *testing.T) {
	key := MustKey("абв")

	assert.Equal(t, 'а', key.At(0))
	assert.Equal(t, 'б', key.At(1))
	assert.Equal(t, 'в', key.At(2))
	assert.Equal(t, 'а', key.At(3))
	assert.Equal(t, 'в', key.At(5))
}

func TestKey_StringIsMasked(t *testing.T) {
	key := MustKey("секрет")

	assert.NotContains(t, key.String(), "секрет")
}

func TestMustKey_PanicsOnInvalidKey(t *testing.T) {
	assert.Panics(t, func() {
		MustKey("")
	})
}

func TestLowerCase(t *testing.T) {
	assert.Equal(t, "москва", LowerCase("МОСКВА"))
	assert.Equal(t, "hello, мир", LowerCase("Hello, Мир"))
	assert.Equal(t, "ёлка", LowerCase("Ёлка"))
}
