package tiu

import (
	"context"
	"fmt"

	"saasconnector/pkg/transport"
	"saasconnector/pkg/validate"
)

// OrdersList lists orders. params: status, date_from, date_to, limit, last_id.
func (c *Client) OrdersList(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "orders/list", transport.MethodGet, params)
}

// OrderGet returns one order.
func (c *Client) OrderGet(ctx context.Context, id int) (*transport.Response, error) {
	if err := validate.Positive("id", id); err != nil {
		return nil, err
	}
	return c.call(ctx, fmt.Sprintf("orders/%d", id), transport.MethodGet, nil)
}

// OrdersSetStatus moves orders to status. params may add cancellation_reason and
// cancellation_text.
func (c *Client) OrdersSetStatus(
	ctx context.Context,
	ids []int,
	status string,
	params map[string]any,
) (*transport.Response, error) {
	if err := validate.All(
		validate.Pair{Field: "ids", Value: ids},
		validate.Pair{Field: "status", Value: status},
	); err != nil {
		return nil, err
	}

	body := make(map[string]any, len(params)+2)
	for k, v := range params {
		body[k] = v
	}
	body["ids"] = ids
	body["status"] = status

	return c.call(ctx, "orders/set_status", transport.MethodPost, body)
}

// ProductsList lists products. params: last_modified_from, limit, last_id, group_id.
func (c *Client) ProductsList(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "products/list", transport.MethodGet, params)
}

// ProductGet returns one product.
func (c *Client) ProductGet(ctx context.Context, id int) (*transport.Response, error) {
	if err := validate.Positive("id", id); err != nil {
		return nil, err
	}
	return c.call(ctx, fmt.Sprintf("products/%d", id), transport.MethodGet, nil)
}

// ProductsEdit updates products; each entry must carry its id.
func (c *Client) ProductsEdit(ctx context.Context, products []map[string]any) (*transport.Response, error) {
	if err := validate.Required("products", products); err != nil {
		return nil, err
	}
	return c.call(ctx, "products/edit", transport.MethodPost, map[string]any{"products": products})
}

// GroupsList lists product groups.
func (c *Client) GroupsList(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "groups/list", transport.MethodGet, params)
}

// DeliveryOptions lists delivery options.
func (c *Client) DeliveryOptions(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "delivery_options/list", transport.MethodGet, nil)
}

// PaymentOptions lists payment options.
func (c *Client) PaymentOptions(ctx context.Context) (*transport.Response, error) {
	return c.call(ctx, "payment_options/list", transport.MethodGet, nil)
}

// ClientsList lists customers.
func (c *Client) ClientsList(ctx context.Context, params map[string]any) (*transport.Response, error) {
	return c.call(ctx, "clients/list", transport.MethodGet, params)
}

// ClientGet returns one customer.
func (c *Client) ClientGet(ctx context.Context, id int) (*transport.Response, error) {
	if err := validate.Positive("id", id); err != nil {
		return nil, err
	}
	return c.call(ctx, fmt.Sprintf("clients/%d", id), transport.MethodGet, nil)
}
