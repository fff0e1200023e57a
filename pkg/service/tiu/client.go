// Package tiu is a client for the Tiu.ru public API.
package tiu

import (
	"context"
	"log/slog"
	"sync"

	"saasconnector/pkg/transport"
	"saasconnector/pkg/validate"
)

const vendor = "tiu"

// Client handles Tiu API operations. The bearer token is sent with every call.
type Client struct {
	requester transport.Requester
	logger    *slog.Logger

	mu    sync.RWMutex
	token string
}

type options struct {
	requester     transport.Requester
	transportOpts []transport.Option
	logger        *slog.Logger
}

// Option configures a Client.
type Option func(*options)

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

// New creates a Tiu client for url, e.g. "https://my.tiu.ru/api/v1/".
func New(url, token string, opts ...Option) (*Client, error) {
	if err := validate.All(
		validate.Pair{Field: "url", Value: url},
		validate.Pair{Field: "token", Value: token},
	); err != nil {
		return nil, err
	}

	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	requester := o.requester
	if requester == nil {
		t, err := transport.NewTransport(url, append([]transport.Option{
			transport.WithVendor(vendor),
			transport.WithLogger(o.logger),
		}, o.transportOpts...)...)
		if err != nil {
			return nil, err
		}
		requester = t
	}

	return &Client{requester: requester, logger: o.logger, token: token}, nil
}

// Token returns the bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the bearer token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) call(
	ctx context.Context,
	path string,
	method transport.Method,
	params map[string]any,
) (*transport.Response, error) {
	headers := map[string]string{"Authorization": "Bearer " + c.Token()}
	if method != transport.MethodGet {
		headers["content-type"] = transport.ContentTypeJSON
	}

	c.logger.DebugContext(ctx, "Calling Tiu API", "path", path, "method", method)

	return c.requester.MakeRequest(ctx, path, method, params, headers)
}
