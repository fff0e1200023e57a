package insales

import (
	"context"
	"fmt"

	"saasconnector/pkg/transport"
	"saasconnector/pkg/validate"
)

// OrdersList lists orders. params are InSales filters such as updated_since, page, per_page.
func (c *Client) OrdersList(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "orders.json", transport.MethodGet, params)
}

// OrderGet returns one order.
func (c *Client) OrderGet(ctx context.Context, id int) (*transport.Response, error) {
	if err := validate.Positive("id", id); err != nil {
		return nil, err
	}
	return c.call(ctx, fmt.Sprintf("orders/%d.json", id), transport.MethodGet, nil)
}

// OrderUpdate changes the given order fields.
func (c *Client) OrderUpdate(ctx context.Context, id int, order map[string]any) (*transport.Response, error) {
	if err := validate.Positive("id", id); err != nil {
		return nil, err
	}
	if err := validate.Required("order", order); err != nil {
		return nil, err
	}
	return c.call(ctx, fmt.Sprintf("orders/%d.json", id), transport.MethodPut, map[string]any{"order": order})
}

// ProductsList lists products.
func (c *Client) ProductsList(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "products.json", transport.MethodGet, params)
}

// ProductGet returns one product.
func (c *Client) ProductGet(ctx context.Context, id int) (*transport.Response, error) {
	if err := validate.Positive("id", id); err != nil {
		return nil, err
	}
	return c.call(ctx, fmt.Sprintf("products/%d.json", id), transport.MethodGet, nil)
}

// ProductsCount returns {"count": N} for the given filters.
func (c *Client) ProductsCount(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "products/count.json", transport.MethodGet, params)
}

// ClientsList lists customers.
func (c *Client) ClientsList(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "clients.json", transport.MethodGet, params)
}

// ClientGet returns one customer.
func (c *Client) ClientGet(ctx context.Context, id int) (*transport.Response, error) {
	if err := validate.Positive("id", id); err != nil {
		return nil, err
	}
	return c.call(ctx, fmt.Sprintf("clients/%d.json", id), transport.MethodGet, nil)
}

// CategoriesList lists catalog categories.
func (c *Client) CategoriesList(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "categories.json", transport.MethodGet, nil)
}

// CollectionsList lists storefront collections.
func (c *Client) CollectionsList(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "collections.json", transport.MethodGet, nil)
}

// DeliveryVariants lists delivery variants.
func (c *Client) DeliveryVariants(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "delivery_variants.json", transport.MethodGet, nil)
}

// PaymentGateways lists payment gateways.
func (c *Client) PaymentGateways(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "payment_gateways.json", transport.MethodGet, nil)
}

// WebhooksList lists webhook subscriptions.
func (c *Client) WebhooksList(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "webhooks.json", transport.MethodGet, nil)
}

// WebhookCreate subscribes address to topic, e.g. orders/create or orders/update.
func (c *Client) WebhookCreate(ctx context.Context, address, topic string) (*transport.Response, error) {
	if err := validate.All(
		validate.Pair{Field: "address", Value: address},
		validate.Pair{Field: "topic", Value: topic},
	); err != nil {
		return nil, err
	}
	params := map[string]any{
		"webhook": map[string]any{
			"address":     address,
			"topic":       topic,
			"format_type": "json",
		},
	}
	return c.call(ctx, "webhooks.json", transport.MethodPost, params)
}

// WebhookDelete removes a webhook subscription.
func (c *Client) WebhookDelete(ctx context.Context, id int) (*transport.Response, error) {
	if err := validate.Positive("id", id); err != nil {
		return nil, err
	}
	return c.call(ctx, fmt.Sprintf("webhooks/%d.json", id), transport.MethodDelete, nil)
}

// Account returns the shop account.
func (c *Client) Account(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "account.json", transport.MethodGet, nil)
}
