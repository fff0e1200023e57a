// Package courierist is a client for the Courierist delivery API. Requests and responses are
// typed DTOs from the request and response subpackages.
package courierist

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"saasconnector/pkg/transport"
	"saasconnector/pkg/validate"
)

// DefaultEndpoint is the production Courierist API.
const DefaultEndpoint = "https://my.courierist.com/api/v1/"

const vendor = "courierist"

// Client handles Courierist API operations.
type Client struct {
	requester transport.Requester
	logger    *slog.Logger

	mu    sync.RWMutex
	token string
}

type options struct {
	token         string
	hasToken      bool
	endpoint      string
	requester     transport.Requester
	transportOpts []transport.Option
	logger        *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithToken uses a pre-issued token and skips the login call.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
		o.hasToken = true
	}
}

// WithEndpoint overrides DefaultEndpoint, e.g. with the sandbox.
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

// New creates a Courierist client. Without WithToken it logs in once and keeps the token
// from the response body; a body without a token leaves Token() empty.
func New(ctx context.Context, login, password string, opts ...Option) (*Client, error) {
	if err := validate.All(
		validate.Pair{Field: "login", Value: login},
		validate.Pair{Field: "password", Value: password},
	); err != nil {
		return nil, err
	}

	o := options{
		endpoint: DefaultEndpoint,
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
		}, o.transportOpts...)...)
		if err != nil {
			return nil, err
		}
		requester = t
	}

	c := &Client{
		requester: requester,
		logger:    o.logger,
		token:     o.token,
	}
	if o.hasToken {
		return c, nil
	}

	resp, err := c.Auth(ctx, login, password)
	if err != nil {
		return nil, fmt.Errorf("courierist authentication failed: %w", err)
	}

	token := resp.String("token")
	if token == "" {
		c.logger.WarnContext(ctx, "Courierist auth response has no token", "status", resp.StatusCode())
	}
	c.SetToken(token)

	return c, nil
}

// Token returns the current bearer token.
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

// Auth logs in and returns the raw response; the token is in the "token" field.
func (c *Client) Auth(ctx context.Context, login, password string) (*transport.Response, error) {
	params := map[string]any{
		"login":    login,
		"password": password,
	}
	return c.requester.MakeRequest(ctx, "auth", transport.MethodPost, params, transport.JSONHeaders())
}

// call issues an authenticated request and maps non-2xx responses to a vendor error.
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

	c.logger.DebugContext(ctx, "Calling Courierist API", "path", path, "method", method)

	resp, err := c.requester.MakeRequest(ctx, path, method, params, headers)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccessful() {
		return nil, newVendorError(resp)
	}
	return resp, nil
}
