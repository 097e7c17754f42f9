package render

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

func parse(t *testing.T, raw string) protocolDomain.Node {
	t.Helper()
	node, err := protocolDomain.ParseNode([]byte(raw))
	require.NoError(t, err)
	return node
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.ErrorContains(t, err, "invalid format: yaml")
}

func TestRenderer_Render_Text(t *testing.T) {
	tests := []struct {
		name     string
		result   *protocolDomain.Result
		expected string
	}{
		{
			name: "map keeps key order",
			result: protocolDomain.NewResult(
				protocolDomain.ActionWeather, "r1",
				parse(t, `{"city":"москва","temperature":"-3","wind":{"speed":"5"}}`),
			),
			expected: "Weather (weather)\n  city: москва\n  temperature: -3\n  wind:\n    speed: 5\n",
		},
		{
			name: "list is numbered",
			result: protocolDomain.NewResult(
				protocolDomain.ActionSearchWeb, "r2",
				parse(t, `["первый",{"title":"второй"}]`),
			),
			expected: "Search results (search_web)\n  1. первый\n  2.\n    title: второй\n",
		},
		{
			name:     "empty list",
			result:   protocolDomain.NewResult(protocolDomain.ActionFindHotels, "r3", parse(t, `[]`)),
			expected: "Result (find_hotels)\n  (no results)\n",
		},
		{
			name:     "scalar",
			result:   protocolDomain.NewResult(protocolDomain.ActionAddress, "r4", parse(t, `"ул. тверская, 1"`)),
			expected: "Result (get_address)\n  ул. тверская, 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			r := NewRenderer(FormatText, &out, &errOut)

			require.NoError(t, r.Render(context.Background(), tt.result))
			assert.Equal(t, tt.expected, out.String())
			assert.Empty(t, errOut.String())
		})
	}
}

func TestRenderer_Render_JSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(FormatJSON, &out, &bytes.Buffer{})

	result := protocolDomain.NewResult(
		protocolDomain.ActionWeather, "req-1",
		parse(t, `{"city":"москва","temperature":-3}`),
	)
	require.NoError(t, r.Render(context.Background(), result))

	doc := out.String()
	require.True(t, gjson.Valid(doc))
	assert.Equal(t, "weather", gjson.Get(doc, "action").String())
	assert.Equal(t, "req-1", gjson.Get(doc, "request_id").String())
	assert.Equal(t, "map", gjson.Get(doc, "kind").String())
	assert.Equal(t, "москва", gjson.Get(doc, "data.city").String())
	assert.Equal(t, int64(-3), gjson.Get(doc, "data.temperature").Int())

	var keys []string
	gjson.Get(doc, "data").ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	assert.Equal(t, []string{"city", "temperature"}, keys)
}

func TestRenderer_ReportError(t *testing.T) {
	t.Run("Success_Text", func(t *testing.T) {
		var out, errOut bytes.Buffer
		r := NewRenderer(FormatText, &out, &errOut)

		r.ReportError(context.Background(), protocolDomain.ActionWeather, errors.New("Город не найден"))

		assert.Equal(t, "Error (weather): Город не найден\n", errOut.String())
		assert.Empty(t, out.String())
	})

	t.Run("Success_JSON", func(t *testing.T) {
		var errOut bytes.Buffer
		r := NewRenderer(FormatJSON, &bytes.Buffer{}, &errOut)

		r.ReportError(context.Background(), protocolDomain.ActionSearchWeb, errors.New("transport failure: status 500"))

		doc := errOut.String()
		require.True(t, gjson.Valid(doc))
		assert.Equal(t, "search_web", gjson.Get(doc, "action").String())
		assert.Equal(t, "transport failure: status 500", gjson.Get(doc, "error").String())
	})
}
