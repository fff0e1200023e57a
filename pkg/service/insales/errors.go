package insales

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	saaserrors "saasconnector/pkg/errors"
	"saasconnector/pkg/transport"
)

const headerUsageLimit = "API-Usage-Limit"

// checkLimit reports HTTP 429 and 503 as a rate-limited vendor error.
// InSales allows 500 requests per 5 minutes and reports usage as "used/limit".
func checkLimit(resp *transport.Response) error {
	status := resp.StatusCode()
	if status != http.StatusTooManyRequests && status != http.StatusServiceUnavailable {
		return nil
	}

	message := "request limit exceeded"
	if usage := resp.Header().Get(headerUsageLimit); usage != "" {
		message = fmt.Sprintf("%s (usage %s)", message, usage)
	}

	vendorErr := saaserrors.NewVendorError(vendor, status, "", message, resp.Body())
	vendorErr.RateLimited = true
	if seconds, err := strconv.Atoi(resp.Header().Get("Retry-After")); err == nil && seconds > 0 {
		vendorErr.RetryAfter = time.Duration(seconds) * time.Second
	}
	return vendorErr
}
