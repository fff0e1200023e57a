package horoshop

import (
	"context"

	"saasconnector/pkg/transport"
	"saasconnector/pkg/validate"
)

// Auth logs in with login and password. The token is in response.token.
func (c *Client) Auth(ctx context.Context, login, password string) (*transport.Response, error) {
	params := map[string]any{
		"login":    login,
		"password": password,
	}
	return c.call(ctx, "auth", transport.MethodPost, params, nil)
}

// OrdersGet exports orders. additionalData is requested unless params say otherwise.
func (c *Client) OrdersGet(ctx context.Context, params map[string]any) (*transport.Response, error) {
	defaults := map[string]any{"additionalData": true}
	return c.call(ctx, "orders/get", transport.MethodPut, c.withToken(defaults, params), nil)
}

// OrdersUpdate updates order statuses and fields.
func (c *Client) OrdersUpdate(ctx context.Context, orders []map[string]any) (*transport.Response, error) {
	params := c.withToken(map[string]any{"orders": orders}, nil)
	return c.call(ctx, "orders/update", transport.MethodPut, params, nil)
}

// ProductsGet exports the catalog.
func (c *Client) ProductsGet(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "catalog/export", transport.MethodGet, c.withToken(nil, params), nil)
}

// CategoriesGet exports catalog pages.
func (c *Client) CategoriesGet(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "pages/export", transport.MethodGet, c.withToken(nil, params), nil)
}

// CurrencyGet exports currencies.
func (c *Client) CurrencyGet(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "currency/export", transport.MethodGet, c.withToken(nil, params), nil)
}

// ImportResidues updates stock levels.
func (c *Client) ImportResidues(ctx context.Context, products []map[string]any) (*transport.Response, error) {
	if err := validate.Required("products", products); err != nil {
		return nil, err
	}
	params := c.withToken(map[string]any{"products": products}, nil)
	return c.call(ctx, "catalog/importResidues", transport.MethodPut, params, nil)
}

// ProductsImport creates or updates products.
func (c *Client) ProductsImport(ctx context.Context, products []map[string]any) (*transport.Response, error) {
	if err := validate.Required("products", products); err != nil {
		return nil, err
	}
	params := c.withToken(map[string]any{"products": products}, nil)
	return c.call(ctx, "catalog/import", transport.MethodPut, params, nil)
}

// SetWebhook subscribes url to event, e.g. order_created or user_signup.
func (c *Client) SetWebhook(ctx context.Context, event, url string) (*transport.Response, error) {
	if err := validate.All(
		validate.Pair{Field: "event", Value: event},
		validate.Pair{Field: "url", Value: url},
	); err != nil {
		return nil, err
	}
	params := c.withToken(map[string]any{
		"event":      event,
		"target_url": url,
	}, nil)
	return c.call(ctx, "hooks/subscribe", transport.MethodPut, params, nil)
}

// DeleteWebhook removes the subscription id returned by SetWebhook.
// Horoshop only reads the DELETE body as JSON.
func (c *Client) DeleteWebhook(ctx context.Context, id, url string) (*transport.Response, error) {
	if err := validate.All(
		validate.Pair{Field: "id", Value: id},
		validate.Pair{Field: "url", Value: url},
	); err != nil {
		return nil, err
	}
	params := c.withToken(map[string]any{
		"id":         id,
		"target_url": url,
	}, nil)
	return c.call(ctx, "hooks/unSubscribe", transport.MethodDelete, params, transport.JSONHeaders())
}

// DeliveryVariants exports configured delivery variants.
func (c *Client) DeliveryVariants(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "delivery/export", transport.MethodGet, c.withToken(nil, nil), nil)
}

// DeliveryTypes exports delivery types.
func (c *Client) DeliveryTypes(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "delivery/exportTypes", transport.MethodGet, c.withToken(nil, nil), nil)
}

// PaymentVariants exports configured payment variants.
func (c *Client) PaymentVariants(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "payment/export", transport.MethodGet, c.withToken(nil, nil), nil)
}

// PaymentMethods exports payment methods.
func (c *Client) PaymentMethods(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "payment/exportMethods", transport.MethodGet, c.withToken(nil, nil), nil)
}

// ProductSetImport creates or updates product sets.
func (c *Client) ProductSetImport(ctx context.Context, items []map[string]any) (*transport.Response, error) {
	if err := validate.Required("items", items); err != nil {
		return nil, err
	}
	params := c.withToken(map[string]any{"items": items}, nil)
	return c.call(ctx, "productSet/import", transport.MethodPut, params, nil)
}

// ProductSetRemove removes product sets by article.
func (c *Client) ProductSetRemove(ctx context.Context, articles []string) (*transport.Response, error) {
	if err := validate.Required("articles", articles); err != nil {
		return nil, err
	}
	params := c.withToken(map[string]any{"articles": articles}, nil)
	return c.call(ctx, "productSet/remove", transport.MethodPut, params, nil)
}

// UsersGet exports registered users.
func (c *Client) UsersGet(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "users/export", transport.MethodGet, c.withToken(nil, params), nil)
}
