package transport

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_IsSuccessful(t *testing.T) {
	tests := []struct {
		status   int
		expected bool
	}{
		{http.StatusOK, true},
		{http.StatusCreated, true},
		{http.StatusNoContent, true},
		{http.StatusMovedPermanently, false},
		{http.StatusBadRequest, false},
		{http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, NewResponse(tt.status, nil, nil).IsSuccessful())
		})
	}
}

func TestResponse_Lookup(t *testing.T) {
	resp := NewResponse(http.StatusOK, nil, []byte(`{"status":"OK","response":{"token":"abc123","count":7,"active":true,"orders":[]}}`))

	assert.Equal(t, "abc123", resp.String("response", "token"))
	assert.Equal(t, "7", resp.String("response", "count"))
	assert.Equal(t, "true", resp.String("response", "active"))
	assert.Equal(t, "", resp.String("response", "orders"))
	assert.Equal(t, "", resp.String("response", "missing"))
	assert.Equal(t, "", resp.String("status", "nested"))

	value, ok := resp.Lookup("response", "count")
	require.True(t, ok)
	assert.Equal(t, json.Number("7"), value)
}

func TestResponse_NonJSONBody(t *testing.T) {
	resp := NewResponse(http.StatusBadGateway, http.Header{"Content-Type": {"text/html"}}, []byte("<html>bad gateway</html>"))

	assert.Nil(t, resp.Parsed())
	assert.Equal(t, "<html>bad gateway</html>", string(resp.Body()))
	assert.Equal(t, "text/html", resp.Header().Get("Content-Type"))

	_, ok := resp.Lookup("status")
	assert.False(t, ok)

	var out map[string]any
	assert.Error(t, resp.Decode(&out))
}

func TestResponse_Decode(t *testing.T) {
	resp := NewResponse(http.StatusOK, nil, []byte(`{"id":5086,"name":"Москва"}`))

	var city struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, resp.Decode(&city))
	assert.Equal(t, 5086, city.ID)
	assert.Equal(t, "Москва", city.Name)
}

func TestResponse_TrailingData(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{name: "single object", body: `{"a":1}`, valid: true},
		{name: "trailing whitespace", body: "{\"a\":1}\n\t ", valid: true},
		{name: "trailing garbage", body: `{"a":1}garbage`},
		{name: "second object", body: `{"a":1}{"b":2}`},
		{name: "trailing bracket", body: `{"a":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewResponse(http.StatusOK, nil, []byte(tt.body))

			var decoded map[string]any
			decodeErr := resp.Decode(&decoded)

			if tt.valid {
				assert.NotNil(t, resp.Parsed())
				assert.NoError(t, decodeErr)
				return
			}
			assert.Nil(t, resp.Parsed())
			assert.Error(t, decodeErr)
		})
	}
}
