package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"saasconnector/pkg/service/horoshop"
)

func newHoroshopCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "horoshop",
		Short: "Call the Horoshop API",
	}

	connect := func(ctx context.Context) (*horoshop.Client, error) {
		return s.app.Clients.Horoshop(ctx)
	}

	addOperations(cmd, connect, []operation[*horoshop.Client]{
		{
			use:   "orders",
			short: "Export orders",
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				return c.OrdersGet(ctx, in.params)
			},
		},
		{
			use:   "orders-update",
			short: "Update orders from a JSON array",
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				orders, err := in.list()
				if err != nil {
					return nil, err
				}
				return c.OrdersUpdate(ctx, orders)
			},
		},
		{
			use:   "products",
			short: "Export the catalog",
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				return c.ProductsGet(ctx, in.params)
			},
		},
		{
			use:   "products-import",
			short: "Import products from a JSON array",
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				products, err := in.list()
				if err != nil {
					return nil, err
				}
				return c.ProductsImport(ctx, products)
			},
		},
		{
			use:   "residues-import",
			short: "Import stock residues from a JSON array",
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				products, err := in.list()
				if err != nil {
					return nil, err
				}
				return c.ImportResidues(ctx, products)
			},
		},
		{
			use:   "categories",
			short: "Export catalog pages",
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				return c.CategoriesGet(ctx, in.params)
			},
		},
		{
			use:   "currency",
			short: "Export currencies",
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				return c.CurrencyGet(ctx, in.params)
			},
		},
		{
			use:   "webhook-set <event> <url>",
			short: "Subscribe url to event",
			args:  cobra.ExactArgs(2),
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				return c.SetWebhook(ctx, in.args[0], in.args[1])
			},
		},
		{
			use:   "webhook-delete <id> <url>",
			short: "Remove a webhook subscription",
			args:  cobra.ExactArgs(2),
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				return c.DeleteWebhook(ctx, in.args[0], in.args[1])
			},
		},
		{
			use:   "delivery-variants",
			short: "Export delivery variants",
			run: func(ctx context.Context, c *horoshop.Client, _ input) (any, error) {
				return c.DeliveryVariants(ctx)
			},
		},
		{
			use:   "delivery-types",
			short: "Export delivery types",
			run: func(ctx context.Context, c *horoshop.Client, _ input) (any, error) {
				return c.DeliveryTypes(ctx)
			},
		},
		{
			use:   "payment-variants",
			short: "Export payment variants",
			run: func(ctx context.Context, c *horoshop.Client, _ input) (any, error) {
				return c.PaymentVariants(ctx)
			},
		},
		{
			use:   "payment-methods",
			short: "Export payment methods",
			run: func(ctx context.Context, c *horoshop.Client, _ input) (any, error) {
				return c.PaymentMethods(ctx)
			},
		},
		{
			use:   "product-sets-import",
			short: "Import product sets from a JSON array",
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				items, err := in.list()
				if err != nil {
					return nil, err
				}
				return c.ProductSetImport(ctx, items)
			},
		},
		{
			use:   "product-sets-remove <article>...",
			short: "Remove product sets by article",
			args:  cobra.MinimumNArgs(1),
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				return c.ProductSetRemove(ctx, in.args)
			},
		},
		{
			use:   "users",
			short: "Export users",
			run: func(ctx context.Context, c *horoshop.Client, in input) (any, error) {
				return c.UsersGet(ctx, in.params)
			},
		},
	})

	return cmd
}
