// Package inpost is a client for the InPost Russia parcel locker API.
package inpost

import (
	"context"
	"log/slog"

	"saasconnector/pkg/transport"
	"saasconnector/pkg/validate"
)

// DefaultEndpoint is the public InPost Russia API.
const DefaultEndpoint = "https://api.inpost.ru/"

const vendor = "inpost"

// Client handles InPost API operations. Calls needing an account carry the credentials in
// their parameters.
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

// WithEndpoint overrides DefaultEndpoint.
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

// New creates an InPost client.
func New(opts ...Option) (*Client, error) {
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

	return &Client{requester: requester, logger: o.logger}, nil
}

// CityList lists cities with parcel lockers.
func (c *Client) CityList(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "cities", transport.MethodGet, nil)
}

// ParcelStatus returns the status of the parcel with packcode.
func (c *Client) ParcelStatus(ctx context.Context, packcode string) (*transport.Response, error) {
	if err := validate.Required("packcode", packcode); err != nil {
		return nil, err
	}
	return c.call(ctx, "parcels/status", transport.MethodGet, map[string]any{"packcode": packcode})
}

// ParcelStatusesList lists every parcel status with its description.
func (c *Client) ParcelStatusesList(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "parcels/statuses", transport.MethodGet, nil)
}

// SearchTerminal finds parcel lockers, e.g. by postcode or town.
func (c *Client) SearchTerminal(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "machines/search", transport.MethodGet, params)
}

// Calculate estimates a delivery price. city, city_from and cost are required.
func (c *Client) Calculate(ctx context.Context, params map[string]any) (*transport.Response, error) {
	if err := validate.RequiredKeys(params, "city", "city_from", "cost"); err != nil {
		return nil, err
	}
	return c.call(ctx, "calculate", transport.MethodGet, params)
}

// ParcelCreate registers parcels for the account given by telephonenumber and password.
func (c *Client) ParcelCreate(ctx context.Context, params map[string]any) (*transport.Response, error) {
	if err := validate.RequiredKeys(params, "telephonenumber", "password"); err != nil {
		return nil, err
	}
	return c.call(ctx, "parcels/create", transport.MethodPost, params)
}

// ParcelPrintout returns sticker data for parcels of the account given by telephonenumber and
// password.
func (c *Client) ParcelPrintout(ctx context.Context, params map[string]any) (*transport.Response, error) {
	if err := validate.RequiredKeys(params, "telephonenumber", "password"); err != nil {
		return nil, err
	}
	return c.call(ctx, "parcels/sticker", transport.MethodPost, params)
}

func (c *Client) call(
	ctx context.Context,
	path string,
	method transport.Method,
	params map[string]any,
) (*transport.Response, error) {
	c.logger.DebugContext(ctx, "Calling InPost API", "path", path, "method", method)
	return c.requester.MakeRequest(ctx, path, method, params, nil)
}
