package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"saasconnector/pkg/service/tiu"
)

func newTiuCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiu",
		Short: "Call the Tiu API",
	}

	connect := func(ctx context.Context) (*tiu.Client, error) {
		return s.app.Clients.Tiu(ctx)
	}

	byID := func(get func(context.Context, *tiu.Client, int) (any, error)) func(context.Context, *tiu.Client, input) (any, error) {
		return func(ctx context.Context, c *tiu.Client, in input) (any, error) {
			id, err := in.id(0)
			if err != nil {
				return nil, err
			}
			return get(ctx, c, id)
		}
	}

	addOperations(cmd, connect, []operation[*tiu.Client]{
		{
			use:   "orders",
			short: "List orders",
			run: func(ctx context.Context, c *tiu.Client, in input) (any, error) {
				return c.OrdersList(ctx, in.params)
			},
		},
		{
			use:   "order <id>",
			short: "Show one order",
			args:  cobra.ExactArgs(1),
			run: byID(func(ctx context.Context, c *tiu.Client, id int) (any, error) {
				return c.OrderGet(ctx, id)
			}),
		},
		{
			use:   "orders-set-status <status> <id>...",
			short: "Move orders to a status",
			args:  cobra.MinimumNArgs(2),
			run: func(ctx context.Context, c *tiu.Client, in input) (any, error) {
				ids, err := in.ids(1)
				if err != nil {
					return nil, err
				}
				return c.OrdersSetStatus(ctx, ids, in.args[0], in.params)
			},
		},
		{
			use:   "products",
			short: "List products",
			run: func(ctx context.Context, c *tiu.Client, in input) (any, error) {
				return c.ProductsList(ctx, in.params)
			},
		},
		{
			use:   "product <id>",
			short: "Show one product",
			args:  cobra.ExactArgs(1),
			run: byID(func(ctx context.Context, c *tiu.Client, id int) (any, error) {
				return c.ProductGet(ctx, id)
			}),
		},
		{
			use:   "products-edit",
			short: "Edit products from a JSON array",
			run: func(ctx context.Context, c *tiu.Client, in input) (any, error) {
				products, err := in.list()
				if err != nil {
					return nil, err
				}
				return c.ProductsEdit(ctx, products)
			},
		},
		{
			use:   "groups",
			short: "List product groups",
			run: func(ctx context.Context, c *tiu.Client, in input) (any, error) {
				return c.GroupsList(ctx, in.params)
			},
		},
		{
			use:   "delivery-options",
			short: "List delivery options",
			run: func(ctx context.Context, c *tiu.Client, _ input) (any, error) {
				return c.DeliveryOptions(ctx)
			},
		},
		{
			use:   "payment-options",
			short: "List payment options",
			run: func(ctx context.Context, c *tiu.Client, _ input) (any, error) {
				return c.PaymentOptions(ctx)
			},
		},
		{
			use:   "clients",
			short: "List clients",
			run: func(ctx context.Context, c *tiu.Client, in input) (any, error) {
				return c.ClientsList(ctx, in.params)
			},
		},
		{
			use:   "client <id>",
			short: "Show one client",
			args:  cobra.ExactArgs(1),
			run: byID(func(ctx context.Context, c *tiu.Client, id int) (any, error) {
				return c.ClientGet(ctx, id)
			}),
		},
	})

	return cmd
}
