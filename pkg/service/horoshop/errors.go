package horoshop

import (
	"net/http"
	"strconv"
	"time"

	saaserrors "saasconnector/pkg/errors"
	"saasconnector/pkg/transport"
)

const statusLimitExceeded = "LIMIT_EXCEEDED"

// checkLimit reports HTTP 429 or a LIMIT_EXCEEDED envelope as a rate-limited vendor error.
func checkLimit(resp *transport.Response) error {
	if resp.StatusCode() != http.StatusTooManyRequests && resp.String("status") != statusLimitExceeded {
		return nil
	}

	message := resp.String("response", "message")
	if message == "" {
		message = "request limit exceeded"
	}

	vendorErr := saaserrors.NewVendorError(vendor, resp.StatusCode(), statusLimitExceeded, message, resp.Body())
	vendorErr.RateLimited = true
	if seconds, err := strconv.Atoi(resp.Header().Get("Retry-After")); err == nil && seconds > 0 {
		vendorErr.RetryAfter = time.Duration(seconds) * time.Second
	}
	return vendorErr
}
