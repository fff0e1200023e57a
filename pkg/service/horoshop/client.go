// Package horoshop is a client for the Horoshop store API (https://{domain}/api/).
//
// Every call carries the session token as the "token" parameter. A client built without a
// token logs in once during construction.
package horoshop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"saasconnector/pkg/transport"
	"saasconnector/pkg/validate"
)

const vendor = "horoshop"

// Client handles Horoshop API operations.
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

// WithEndpoint overrides the https://{domain}/api/ endpoint.
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

// New creates a Horoshop client. Without WithToken it performs the auth call and keeps the
// token from the response; a response without a token leaves Token() empty.
func New(ctx context.Context, domain, login, password string, opts ...Option) (*Client, error) {
	if err := validate.All(
		validate.Pair{Field: "domain", Value: domain},
		validate.Pair{Field: "login", Value: login},
		validate.Pair{Field: "password", Value: password},
	); err != nil {
		return nil, err
	}

	o := options{
		endpoint: fmt.Sprintf("https://%s/api/", domain),
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
		return nil, fmt.Errorf("horoshop authentication failed: %w", err)
	}

	token := resp.String("response", "token")
	if token == "" {
		c.logger.WarnContext(ctx, "Horoshop auth response has no token",
			"domain", domain,
			"status", resp.StatusCode())
	}
	c.SetToken(token)

	return c, nil
}

// Token returns the current session token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the session token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// call issues one request and turns a limit rejection into a rate-limited vendor error.
func (c *Client) call(
	ctx context.Context,
	path string,
	method transport.Method,
	params map[string]any,
	headers map[string]string,
) (*transport.Response, error) {
	c.logger.DebugContext(ctx, "Calling Horoshop API", "path", path, "method", method)

	resp, err := c.requester.MakeRequest(ctx, path, method, params, headers)
	if err != nil {
		return nil, err
	}
	if err := checkLimit(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// withToken merges the token under the caller's params; caller keys win.
func (c *Client) withToken(defaults, params map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(params)+1)
	merged["token"] = c.Token()
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	return merged
}
