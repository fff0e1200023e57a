// Package insales is a client for the InSales admin API (https://{domain}/admin/).
// Requests authenticate with HTTP basic auth and carry JSON bodies.
package insales

import (
	"context"
	"fmt"
	"log/slog"

	"saasconnector/pkg/transport"
	"saasconnector/pkg/validate"
)

const vendor = "insales"

// Client handles InSales API operations.
type Client struct {
	requester transport.Requester
	logger    *slog.Logger
}

type options struct {
	endpoint      string
	requester     transport.Requester
	transportOpts []transport.Option
	logger        *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithEndpoint overrides the https://{domain}/admin/ endpoint.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithRequester replaces the HTTP transport, mostly for tests.
func WithRequester(r transport.Requester) Option {
	return func(o *options) {
		o.requester = r
	}
}

// WithTransportOptions passes options to the underlying transport.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(o *options) {
		o.transportOpts = append(o.transportOpts, opts...)
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an InSales client for the shop at domain, authenticated by an API key and password.
func New(domain, apiKey, password string, opts ...Option) (*Client, error) {
	if err := validate.All(
		validate.Pair{Field: "domain", Value: domain},
		validate.Pair{Field: "apiKey", Value: apiKey},
		validate.Pair{Field: "password", Value: password},
	); err != nil {
		return nil, err
	}

	o := options{
		endpoint: fmt.Sprintf("https://%s/admin/", domain),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	requester := o.requester
	if requester == nil {
		t, err := transport.NewTransport(o.endpoint, append([]transport.Option{
			transport.WithVendor(vendor),
			transport.WithLogger(o.logger),
			transport.WithBasicAuth(apiKey, password),
		}, o.transportOpts...)...)
		if err != nil {
			return nil, err
		}
		requester = t
	}

	return &Client{requester: requester, logger: o.logger}, nil
}

func (c *Client) call(
	ctx context.Context,
	path string,
	method transport.Method,
	params map[string]any,
) (*transport.Response, error) {
	var headers map[string]string
	if method != transport.MethodGet {
		headers = transport.JSONHeaders()
	}

	c.logger.DebugContext(ctx, "Calling InSales API", "path", path, "method", method)

	resp, err := c.requester.MakeRequest(ctx, path, method, params, headers)
	if err != nil {
		return nil, err
	}
	if err := checkLimit(resp); err != nil {
		return nil, err
	}
	return resp, nil
}
