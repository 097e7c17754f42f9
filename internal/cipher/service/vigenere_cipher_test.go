package service

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
)

// wireCompatKey is the shared secret the paired backend ships with.
const wireCompatKey = "негр"

func TestNewVigenereCipher(t *testing.T) {
	t.Run("Success_ValidKey", func(t *testing.T) {
		c, err := NewVigenereCipher(cipherDomain.MustKey("ключ"))
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("Error_ZeroKey", func(t *testing.T) {
		c, err := NewVigenereCipher(cipherDomain.Key{})
		assert.ErrorIs(t, err, cipherDomain.ErrInvalidKey)
		assert.Nil(t, c)
	})

	t.Run("Error_EmptyStringKey", func(t *testing.T) {
		c, err := NewVigenereCipherFromString("")
		assert.ErrorIs(t, err, cipherDomain.ErrInvalidKey)
		assert.Nil(t, c)
	})

	t.Run("Error_WhitespaceOnlyKey", func(t *testing.T) {
		c, err := NewVigenereCipherFromString("  ")
		assert.ErrorIs(t, err, cipherDomain.ErrInvalidKey)
		assert.Nil(t, c)
	})
}

func TestVigenereCipher_KnownVectors(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		plaintext  string
		ciphertext string
		decoded    string
	}{
		{
			name:       "WireCompatKey",
			key:        wireCompatKey,
			plaintext:  "москва",
			ciphertext: "щуфъпе",
			decoded:    "москва",
		},
		{
			name:       "CityName",
			key:        "ключ",
			plaintext:  "москва",
			ciphertext: "цщб1мл",
			decoded:    "москва",
		},
		{
			name:       "Coordinates",
			key:        "ключ",
			plaintext:  "55.75",
			ciphertext: "бвърб",
			decoded:    "55.75",
		},
		{
			name:       "SpaceIsPartOfAlphabet",
			key:        "секрет",
			plaintext:  "привет мир",
			ciphertext: "0хттк4рст0",
			decoded:    "привет мир",
		},
		{
			name:       "MixedCaseAndLatinPassThrough",
			key:        "ключ",
			plaintext:  "Hello, Мир 2024!",
			ciphertext: "helloзк.яъктй-б!",
			decoded:    "hello, мир 2024!",
		},
		{
			name:       "LatinOnlyIsUnchanged",
			key:        "ключ",
			plaintext:  "true",
			ciphertext: "true",
			decoded:    "true",
		},
		{
			name:       "YoPassesThroughWithoutAdvancingCursor",
			key:        "ключ",
			plaintext:  "ёлка",
			ciphertext: "ёххю",
			decoded:    "ёлка",
		},
		{
			name:       "ZeroShiftKey",
			key:        "а",
			plaintext:  "абв",
			ciphertext: "абв",
			decoded:    "абв",
		},
		{
			name:       "WrapsAroundAlphabetEnd",
			key:        "б",
			plaintext:  "яяя",
			ciphertext: "000",
			decoded:    "яяя",
		},
		{
			name:       "KeyCursorRepeats",
			key:        "абв",
			plaintext:  "москва",
			ciphertext: "мпукгв",
			decoded:    "москва",
		},
		{
			name:       "EmptyText",
			key:        "ключ",
			plaintext:  "",
			ciphertext: "",
			decoded:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewVigenereCipherFromString(tt.key)
			require.NoError(t, err)

			encoded, err := c.Encode(tt.plaintext)
			require.NoError(t, err)
			assert.Equal(t, tt.ciphertext, encoded)

			decoded, err := c.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.decoded, decoded)
		})
	}
}

func TestVigenereCipher_RoundTripOverAlphabet(t *testing.T) {
	alphabet := []rune(cipherDomain.Alphabet)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		keyLen := 1 + rng.Intn(8)
		var key strings.Builder
		for j := 0; j < keyLen; j++ {
			r := alphabet[rng.Intn(len(alphabet))]
			if r == ' ' {
				r = 'а'
			}
			key.WriteRune(r)
		}

		textLen := rng.Intn(40)
		var text strings.Builder
		for j := 0; j < textLen; j++ {
			text.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}

		c, err := NewVigenereCipherFromString(key.String())
		require.NoError(t, err)

		encoded, err := c.Encode(text.String())
		require.NoError(t, err)
		assert.Equal(t, len([]rune(text.String())), len([]rune(encoded)))

		decoded, err := c.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, text.String(), decoded, "key=%q", key.String())
	}
}

func TestVigenereCipher_DistinctKeysProduceDistinctCiphertext(t *testing.T) {
	text := "погода в москве на завтра"

	c1, err := NewVigenereCipherFromString("ключ")
	require.NoError(t, err)
	c2, err := NewVigenereCipherFromString("замок")
	require.NoError(t, err)

	e1, err := c1.Encode(text)
	require.NoError(t, err)
	e2, err := c2.Encode(text)
	require.NoError(t, err)

	assert.NotEqual(t, e1, e2)
}

func TestVigenereCipher_KeyNormalizationIsApplied(t *testing.T) {
	lower, err := NewVigenereCipherFromString("ключ")
	require.NoError(t, err)
	mixed, err := NewVigenereCipherFromString("КЛ ЮЧ")
	require.NoError(t, err)

	e1, err := lower.Encode("москва")
	require.NoError(t, err)
	e2, err := mixed.Encode("москва")
	require.NoError(t, err)

	assert.Equal(t, e1, e2)
}

func TestVigenereCipher_InvalidUTF8(t *testing.T) {
	c, err := NewVigenereCipherFromString("ключ")
	require.NoError(t, err)

	_, err = c.Encode("\xff\xfe")
	assert.ErrorIs(t, err, cipherDomain.ErrEncodingFailure)

	_, err = c.Decode("\xff\xfe")
	assert.ErrorIs(t, err, cipherDomain.ErrDecodingFailure)
}
