package service

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func mustParse(t *testing.T, raw string) protocolDomain.Node {
	t.Helper()
	node, err := protocolDomain.ParseNode([]byte(raw))
	require.NoError(t, err)
	return node
}

func mustJSON(t *testing.T, node protocolDomain.Node) string {
	t.Helper()
	raw, err := node.MarshalJSON()
	require.NoError(t, err)
	return string(raw)
}

func TestParameterCodec_EncryptRequest(t *testing.T) {
	codec := NewParameterCodec(cipherDomain.MustKey("ключ"), discardLogger())

	t.Run("Success_EncodesEveryValueInOrder", func(t *testing.T) {
		params := protocolDomain.NewParams().
			SetString("city", "Москва").
			Set("lat", protocolDomain.NumberValue(55.75)).
			Set("q", protocolDomain.NullValue()).
			Set("exact", protocolDomain.BoolValue(true))

		encrypted := codec.EncryptRequest(params)

		raw, err := encrypted.CanonicalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"city":"цщб1мл","lat":"бвърб","q":"null","exact":"true"}`, string(raw))
	})

	t.Run("Success_EncryptThenSign", func(t *testing.T) {
		params := protocolDomain.NewParams().SetString("city", "Москва").SetString("lat", "55.75")
		encrypted := codec.EncryptRequest(params)

		signature, err := NewHMACSigner().Sign(cipherDomain.MustKey("ключ"), encrypted)
		require.NoError(t, err)
		assert.Equal(t, "755c396b6ab65df98833cfb04b923dbd81b6fdb4dac172ef6873a2649971b078", signature)
	})

	t.Run("Success_EmptyMap", func(t *testing.T) {
		encrypted := codec.EncryptRequest(protocolDomain.NewParams())
		assert.Equal(t, 0, encrypted.Len())
	})

	t.Run("Success_InputNotMutated", func(t *testing.T) {
		params := protocolDomain.NewParams().SetString("city", "Москва")
		codec.EncryptRequest(params)
		v, _ := params.Get("city")
		assert.Equal(t, "Москва", v.String())
	})
}

func TestParameterCodec_EncryptRequest_FailOpen(t *testing.T) {
	t.Run("Error_ZeroKeyFailsOpen", func(t *testing.T) {
		var buf bytes.Buffer
		codec := NewParameterCodec(cipherDomain.Key{}, bufferLogger(&buf))
		params := protocolDomain.NewParams().SetString("city", "Москва")

		result := codec.EncryptRequest(params)

		assert.Same(t, params, result)
		assert.Contains(t, buf.String(), "request encryption failed")
		assert.Contains(t, buf.String(), "invalid key")
	})

	t.Run("Error_InvalidValueFailsOpen", func(t *testing.T) {
		codec := NewParameterCodec(cipherDomain.MustKey("ключ"), discardLogger())
		params := protocolDomain.NewParams().
			SetString("city", "Москва").
			Set("bad", protocolDomain.Value{})

		assert.Same(t, params, codec.EncryptRequest(params))
	})

	t.Run("Error_InvalidUTF8FailsOpen", func(t *testing.T) {
		codec := NewParameterCodec(cipherDomain.MustKey("ключ"), discardLogger())
		params := protocolDomain.NewParams().SetString("city", "\xff")

		assert.Same(t, params, codec.EncryptRequest(params))
	})
}

func TestParameterCodec_DecryptResponse(t *testing.T) {
	codec := NewParameterCodec(cipherDomain.MustKey("ключ"), discardLogger())

	tests := []struct {
		name     string
		response string
		expected string
	}{
		{
			name:     "flat object",
			response: `{"city":"цщб1мл","lat":"бвърб"}`,
			expected: `{"city":"москва","lat":"55.75"}`,
		},
		{
			name:     "nested shapes",
			response: `{"items":["цщб1мл",{"lat":"бвърб"}]}`,
			expected: `{"items":["москва",{"lat":"55.75"}]}`,
		},
		{
			name:     "foreign characters pass through",
			response: `{"text":"helloзк.яъктй-б!"}`,
			expected: `{"text":"hello, мир 2024!"}`,
		},
		{
			name:     "error response untouched",
			response: `{"error":"Город не найден","city":"цщб1мл"}`,
			expected: `{"error":"Город не найден","city":"цщб1мл"}`,
		},
		{
			name:     "list passes through",
			response: `["цщб1мл"]`,
			expected: `["цщб1мл"]`,
		},
		{
			name:     "scalar passes through",
			response: `"цщб1мл"`,
			expected: `"цщб1мл"`,
		},
		{
			name:     "empty object",
			response: `{}`,
			expected: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := codec.DecryptResponse(mustParse(t, tt.response))
			assert.Equal(t, tt.expected, mustJSON(t, decoded))
		})
	}
}

func TestParameterCodec_DecryptResponse_LogsForeignCharacters(t *testing.T) {
	var buf bytes.Buffer
	codec := NewParameterCodec(cipherDomain.MustKey("ключ"), bufferLogger(&buf))

	codec.DecryptResponse(mustParse(t, `{"text":"helloзк.яъктй-б!"}`))

	assert.Contains(t, buf.String(), "outside the alphabet")
	assert.Contains(t, buf.String(), `"count":6`)
}

func TestParameterCodec_DecryptResponse_FailOpen(t *testing.T) {
	var buf bytes.Buffer
	codec := NewParameterCodec(cipherDomain.Key{}, bufferLogger(&buf))
	response := mustParse(t, `{"city":"цщб1мл"}`)

	decoded := codec.DecryptResponse(response)

	assert.Equal(t, `{"city":"цщб1мл"}`, mustJSON(t, decoded))
	assert.Contains(t, buf.String(), "response decryption failed")
}

func TestParameterCodec_EncryptResponse(t *testing.T) {
	codec := NewParameterCodec(cipherDomain.MustKey("ключ"), discardLogger())

	encoded := codec.EncryptResponse(mustParse(t, `{"city":"москва","lat":"55.75"}`))
	assert.Equal(t, `{"city":"цщб1мл","lat":"бвърб"}`, mustJSON(t, encoded))

	errorResponse := mustParse(t, `{"error":"signature invalid"}`)
	assert.Equal(t, `{"error":"signature invalid"}`, mustJSON(t, codec.EncryptResponse(errorResponse)))
}

func TestParameterCodec_StrictParams(t *testing.T) {
	codec := NewParameterCodec(cipherDomain.MustKey("ключ"), discardLogger())

	t.Run("Success_RoundTrip", func(t *testing.T) {
		params := protocolDomain.NewParams().SetString("query", "пицца рядом").SetString("ip", "1.2.3.4")

		encoded, err := codec.EncodeParams(params)
		require.NoError(t, err)
		decoded, err := codec.DecodeParams(encoded)
		require.NoError(t, err)

		assert.True(t, params.Equal(decoded))
	})

	t.Run("Error_ZeroKey", func(t *testing.T) {
		strict := NewParameterCodec(cipherDomain.Key{}, discardLogger())
		_, err := strict.DecodeParams(protocolDomain.NewParams().SetString("q", "x"))
		assert.ErrorIs(t, err, cipherDomain.ErrInvalidKey)
	})

	t.Run("Error_InvalidUTF8", func(t *testing.T) {
		_, err := codec.DecodeParams(protocolDomain.NewParams().SetString("q", "\xff"))
		assert.ErrorIs(t, err, cipherDomain.ErrDecodingFailure)
	})
}
