package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"saasconnector/pkg/service/courierist"
	"saasconnector/pkg/service/courierist/request"
)

func newCourieristCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courierist",
		Short: "Call the Courierist delivery API",
	}

	connect := func(ctx context.Context) (*courierist.Client, error) {
		return s.app.Clients.Courierist(ctx)
	}

	addOperations(cmd, connect, []operation[*courierist.Client]{
		{
			use:   "order-cost",
			short: "Quote a route given as JSON",
			run: func(ctx context.Context, c *courierist.Client, in input) (any, error) {
				var req request.OrderCost
				if err := in.decode(&req); err != nil {
					return nil, err
				}
				return c.OrderCost(ctx, req)
			},
		},
		{
			use:   "order-create",
			short: "Create an order given as JSON",
			run: func(ctx context.Context, c *courierist.Client, in input) (any, error) {
				var req request.Order
				if err := in.decode(&req); err != nil {
					return nil, err
				}
				return c.OrderCreate(ctx, req)
			},
		},
		{
			use:   "order <id>",
			short: "Show one order",
			args:  cobra.ExactArgs(1),
			run: func(ctx context.Context, c *courierist.Client, in input) (any, error) {
				id, err := in.id(0)
				if err != nil {
					return nil, err
				}
				return c.OrderGet(ctx, id)
			},
		},
		{
			use:   "orders",
			short: "List orders",
			run: func(ctx context.Context, c *courierist.Client, in input) (any, error) {
				return c.OrdersList(ctx, in.params)
			},
		},
		{
			use:   "order-cancel <id>",
			short: "Cancel an order",
			args:  cobra.ExactArgs(1),
			run: func(ctx context.Context, c *courierist.Client, in input) (any, error) {
				id, err := in.id(0)
				if err != nil {
					return nil, err
				}
				return c.OrderCancel(ctx, id)
			},
		},
	})

	return cmd
}
