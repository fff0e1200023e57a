package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Response is the normalized result of a single vendor call.
type Response struct {
	statusCode int
	header     http.Header
	body       []byte
	parsed     any
}

// NewResponse wraps a status code, headers and raw body. A body that is not valid JSON
// leaves Parsed() nil; the raw bytes stay available through Body().
func NewResponse(statusCode int, header http.Header, body []byte) *Response {
	if header == nil {
		header = http.Header{}
	}

	resp := &Response{
		statusCode: statusCode,
		header:     header,
		body:       body,
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var parsed any
		// Trailing data after the first value makes the body invalid, as json.Unmarshal sees it.
		if err := dec.Decode(&parsed); err == nil && !dec.More() {
			if _, err := dec.Token(); errors.Is(err, io.EOF) {
				resp.parsed = parsed
			}
		}
	}

	return resp
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int { return r.statusCode }

// IsSuccessful reports whether the status code is in the 2xx range.
func (r *Response) IsSuccessful() bool {
	return r.statusCode >= http.StatusOK && r.statusCode < http.StatusMultipleChoices
}

// Header returns the response headers.
func (r *Response) Header() http.Header { return r.header }

// Body returns the raw (UTF-8) response body.
func (r *Response) Body() []byte { return r.body }

// Parsed returns the decoded JSON body: map[string]any, []any or a scalar.
// Numbers are json.Number.
func (r *Response) Parsed() any { return r.parsed }

// Decode unmarshals the body into v, typically a DTO or a slice of DTOs.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// Lookup walks nested objects of the parsed body, e.g. Lookup("response", "token").
func (r *Response) Lookup(keys ...string) (any, bool) {
	current := r.parsed
	for _, key := range keys {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, current != nil
}

// String returns the value at keys as a string, or "" when it is absent or not a scalar.
func (r *Response) String(keys ...string) string {
	value, ok := r.Lookup(keys...)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
