package courierist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	saaserrors "saasconnector/pkg/errors"
	"saasconnector/pkg/service/courierist/request"
	"saasconnector/pkg/service/courierist/response"
	"saasconnector/pkg/transport"
	"saasconnector/pkg/validate"
)

// OrderCost quotes the price of a route.
func (c *Client) OrderCost(ctx context.Context, req request.OrderCost) (*response.OrderCost, error) {
	if err := validate.Required("locations", req.Locations); err != nil {
		return nil, err
	}
	params, err := toParams(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.call(ctx, "order/cost", transport.MethodPost, params)
	if err != nil {
		return nil, err
	}

	var cost response.OrderCost
	if err := decode(resp, &cost); err != nil {
		return nil, err
	}
	return &cost, nil
}

// OrderCreate creates an order.
func (c *Client) OrderCreate(ctx context.Context, req request.Order) (*response.Order, error) {
	if err := validate.Required("locations", req.Locations); err != nil {
		return nil, err
	}
	params, err := toParams(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.call(ctx, "order", transport.MethodPost, params)
	if err != nil {
		return nil, err
	}

	var order response.Order
	if err := decode(resp, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderGet returns one order with its locations.
func (c *Client) OrderGet(ctx context.Context, id int) (*response.Order, error) {
	if err := validate.Positive("id", id); err != nil {
		return nil, err
	}

	resp, err := c.call(ctx, fmt.Sprintf("order/%d", id), transport.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	var order response.Order
	if err := decode(resp, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrdersList lists orders. params: date_from, date_to, status, page.
func (c *Client) OrdersList(ctx context.Context, params map[string]any) ([]response.OrderShort, error) {
	resp, err := c.call(ctx, "orders", transport.MethodGet, params)
	if err != nil {
		return nil, err
	}

	var orders []response.OrderShort
	if err := decode(resp, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderCancel cancels an order and returns the raw response.
func (c *Client) OrderCancel(ctx context.Context, id int) (*transport.Response, error) {
	if err := validate.Positive("id", id); err != nil {
		return nil, err
	}
	return c.call(ctx, fmt.Sprintf("order/%d", id), transport.MethodDelete, nil)
}

// toParams turns a request DTO into the parameter map the transport encodes as JSON.
func toParams(dto any) (map[string]any, error) {
	raw, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("failed to encode courierist request: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var params map[string]any
	if err := dec.Decode(&params); err != nil {
		return nil, fmt.Errorf("failed to encode courierist request: %w", err)
	}
	return params, nil
}

func decode(resp *transport.Response, v any) error {
	if err := resp.Decode(v); err != nil {
		return saaserrors.NewVendorError(vendor, resp.StatusCode(), "", fmt.Sprintf("unexpected response body: %v", err), resp.Body())
	}
	return nil
}
