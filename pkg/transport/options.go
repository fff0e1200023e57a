package transport

import (
	"log/slog"
	"net/http"
	"time"
)

type options struct {
	vendor             string
	timeout            time.Duration
	insecureSkipVerify bool
	httpClient         *http.Client
	logger             *slog.Logger
	observer           Observer
	requestsPerSecond  float64
	burst              int
	basicUser          string
	basicPassword      string
	authToken          string
	headers            map[string]string
}

// Option configures a Transport.
type Option func(*options)

// WithVendor labels the transport for logs and metrics.
func WithVendor(name string) Option {
	return func(o *options) {
		o.vendor = name
	}
}

// WithTimeout bounds every request. Zero keeps the HTTP client's default, which has no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(skip bool) Option {
	return func(o *options) {
		o.insecureSkipVerify = skip
	}
}

// WithHTTPClient makes the transport use a caller-owned HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger used for request/response debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver registers a hook called once per completed or failed request.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithRateLimit throttles outgoing requests on the client side.
// A non-positive requestsPerSecond disables throttling.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(o *options) {
		o.requestsPerSecond = requestsPerSecond
		o.burst = max(burst, 1)
	}
}

// WithBasicAuth sends HTTP basic credentials with every request.
func WithBasicAuth(user, password string) Option {
	return func(o *options) {
		o.basicUser = user
		o.basicPassword = password
	}
}

// WithAuthToken sends "Authorization: Bearer <token>" with every request.
func WithAuthToken(token string) Option {
	return func(o *options) {
		o.authToken = token
	}
}

// WithHeader adds a default header to every request.
func WithHeader(key, value string) Option {
	return func(o *options) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}
