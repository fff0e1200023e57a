package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"saasconnector/pkg/service/insales"
)

func newInSalesCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insales",
		Short: "Call the InSales API",
	}

	connect := func(ctx context.Context) (*insales.Client, error) {
		return s.app.Clients.InSales(ctx)
	}

	addOperations(cmd, connect, []operation[*insales.Client]{
		{
			use:   "orders",
			short: "List orders",
			run: func(ctx context.Context, c *insales.Client, in input) (any, error) {
				return c.OrdersList(ctx, in.params)
			},
		},
		{
			use:   "order <id>",
			short: "Show one order",
			args:  cobra.ExactArgs(1),
			run: func(ctx context.Context, c *insales.Client, in input) (any, error) {
				id, err := in.id(0)
				if err != nil {
					return nil, err
				}
				return c.OrderGet(ctx, id)
			},
		},
		{
			use:   "order-update <id>",
			short: "Update an order from a JSON object",
			args:  cobra.ExactArgs(1),
			run: func(ctx context.Context, c *insales.Client, in input) (any, error) {
				id, err := in.id(0)
				if err != nil {
					return nil, err
				}
				order, err := in.object()
				if err != nil {
					return nil, err
				}
				return c.OrderUpdate(ctx, id, order)
			},
		},
		{
			use:   "products",
			short: "List products",
			run: func(ctx context.Context, c *insales.Client, in input) (any, error) {
				return c.ProductsList(ctx, in.params)
			},
		},
		{
			use:   "product <id>",
			short: "Show one product",
			args:  cobra.ExactArgs(1),
			run: func(ctx context.Context, c *insales.Client, in input) (any, error) {
				id, err := in.id(0)
				if err != nil {
					return nil, err
				}
				return c.ProductGet(ctx, id)
			},
		},
		{
			use:   "products-count",
			short: "Count products",
			run: func(ctx context.Context, c *insales.Client, in input) (any, error) {
				return c.ProductsCount(ctx, in.params)
			},
		},
		{
			use:   "clients",
			short: "List clients",
			run: func(ctx context.Context, c *insales.Client, in input) (any, error) {
				return c.ClientsList(ctx, in.params)
			},
		},
		{
			use:   "client <id>",
			short: "Show one client",
			args:  cobra.ExactArgs(1),
			run: func(ctx context.Context, c *insales.Client, in input) (any, error) {
				id, err := in.id(0)
				if err != nil {
					return nil, err
				}
				return c.ClientGet(ctx, id)
			},
		},
		{
			use:   "categories",
			short: "List categories",
			run: func(ctx context.Context, c *insales.Client, _ input) (any, error) {
				return c.CategoriesList(ctx)
			},
		},
		{
			use:   "collections",
			short: "List collections",
			run: func(ctx context.Context, c *insales.Client, _ input) (any, error) {
				return c.CollectionsList(ctx)
			},
		},
		{
			use:   "delivery-variants",
			short: "List delivery variants",
			run: func(ctx context.Context, c *insales.Client, _ input) (any, error) {
				return c.DeliveryVariants(ctx)
			},
		},
		{
			use:   "payment-gateways",
			short: "List payment gateways",
			run: func(ctx context.Context, c *insales.Client, _ input) (any, error) {
				return c.PaymentGateways(ctx)
			},
		},
		{
			use:   "webhooks",
			short: "List webhooks",
			run: func(ctx context.Context, c *insales.Client, _ input) (any, error) {
				return c.WebhooksList(ctx)
			},
		},
		{
			use:   "webhook-create <address> <topic>",
			short: "Create a JSON webhook",
			args:  cobra.ExactArgs(2),
			run: func(ctx context.Context, c *insales.Client, in input) (any, error) {
				return c.WebhookCreate(ctx, in.args[0], in.args[1])
			},
		},
		{
			use:   "webhook-delete <id>",
			short: "Delete a webhook",
			args:  cobra.ExactArgs(1),
			run: func(ctx context.Context, c *insales.Client, in input) (any, error) {
				id, err := in.id(0)
				if err != nil {
					return nil, err
				}
				return c.WebhookDelete(ctx, id)
			},
		},
		{
			use:   "account",
			short: "Show the account",
			run: func(ctx context.Context, c *insales.Client, _ input) (any, error) {
				return c.Account(ctx)
			},
		},
	})

	return cmd
}
