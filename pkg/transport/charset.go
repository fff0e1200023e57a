package transport

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// toUTF8 transcodes body when the Content-Type declares a non-UTF-8 charset.
// Unknown or missing charsets leave the body untouched.
func toUTF8(contentType string, body []byte) ([]byte, error) {
	if contentType == "" || len(body) == 0 {
		return body, nil
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}

	charset := strings.ToLower(strings.TrimSpace(params["charset"]))
	if charset == "" || charset == "utf-8" || charset == "utf8" {
		return body, nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return body, nil
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(body), enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s response body: %w", charset, err)
	}
	return decoded, nil
}
