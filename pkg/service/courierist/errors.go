package courierist

import (
	"net/http"

	saaserrors "saasconnector/pkg/errors"
	"saasconnector/pkg/transport"
)

// newVendorError builds an error from a {"code": ..., "message": ...} or {"error": ...} body.
func newVendorError(resp *transport.Response) error {
	message := resp.String("message")
	if message == "" {
		message = resp.String("error")
	}

	vendorErr := saaserrors.NewVendorError(vendor, resp.StatusCode(), resp.String("code"), message, resp.Body())
	vendorErr.RateLimited = resp.StatusCode() == http.StatusTooManyRequests
	return vendorErr
}
