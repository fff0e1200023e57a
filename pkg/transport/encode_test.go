package transport

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeParams(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]any
		expected url.Values
	}{
		{
			name:     "empty",
			params:   nil,
			expected: url.Values{},
		},
		{
			name:   "scalars",
			params: map[string]any{"token": "abc", "limit": 50, "price": 150.5, "additionalData": true, "archived": false},
			expected: url.Values{
				"token":          {"abc"},
				"limit":          {"50"},
				"price":          {"150.5"},
				"additionalData": {"1"},
				"archived":       {"0"},
			},
		},
		{
			name: "nested products",
			params: map[string]any{
				"products": []map[string]any{
					{"article": "A1", "quantity": 3},
					{"article": "B2", "quantity": 0},
				},
			},
			expected: url.Values{
				"products[0][article]":  {"A1"},
				"products[0][quantity]": {"3"},
				"products[1][article]":  {"B2"},
				"products[1][quantity]": {"0"},
			},
		},
		{
			name:     "nil values skipped",
			params:   map[string]any{"token": "abc", "from": nil},
			expected: url.Values{"token": {"abc"}},
		},
		{
			name:     "json numbers",
			params:   map[string]any{"id": json.Number("5086")},
			expected: url.Values{"id": {"5086"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeParams(tt.params)
			decoded, err := url.ParseQuery(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

func TestEncodeParams_Deterministic(t *testing.T) {
	params := map[string]any{"b": "2", "a": "1", "c": map[string]any{"z": 1, "y": 2}}

	first := EncodeParams(params)
	for range 10 {
		assert.Equal(t, first, EncodeParams(params))
	}
	assert.Equal(t, "a=1&b=2&c%5By%5D=2&c%5Bz%5D=1", first)
}

func TestIsJSONContentType(t *testing.T) {
	assert.True(t, isJSONContentType("application/json"))
	assert.True(t, isJSONContentType("Application/JSON; charset=utf-8"))
	assert.False(t, isJSONContentType(ContentTypeForm))
	assert.False(t, isJSONContentType(""))
}
