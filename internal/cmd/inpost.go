package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"saasconnector/pkg/service/inpost"
)

func newInPostCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inpost",
		Short: "Call the InPost parcel locker API",
	}

	connect := func(context.Context) (*inpost.Client, error) {
		return s.app.Clients.InPost()
	}

	addOperations(cmd, connect, []operation[*inpost.Client]{
		{
			use:   "cities",
			short: "List cities with parcel lockers",
			run: func(ctx context.Context, c *inpost.Client, _ input) (any, error) {
				return c.CityList(ctx)
			},
		},
		{
			use:   "parcel-status <packcode>",
			short: "Show the status of a parcel",
			args:  cobra.ExactArgs(1),
			run: func(ctx context.Context, c *inpost.Client, in input) (any, error) {
				return c.ParcelStatus(ctx, in.args[0])
			},
		},
		{
			use:   "parcel-statuses",
			short: "List parcel statuses",
			run: func(ctx context.Context, c *inpost.Client, _ input) (any, error) {
				return c.ParcelStatusesList(ctx)
			},
		},
		{
			use:   "terminals",
			short: "Search parcel lockers",
			run: func(ctx context.Context, c *inpost.Client, in input) (any, error) {
				return c.SearchTerminal(ctx, in.params)
			},
		},
		{
			use:   "calculate",
			short: "Calculate delivery cost (city, city_from, cost)",
			run: func(ctx context.Context, c *inpost.Client, in input) (any, error) {
				return c.Calculate(ctx, in.params)
			},
		},
		{
			use:   "parcel-create",
			short: "Create a parcel (telephonenumber, password)",
			run: func(ctx context.Context, c *inpost.Client, in input) (any, error) {
				return c.ParcelCreate(ctx, in.params)
			},
		},
		{
			use:   "parcel-printout",
			short: "Print a parcel sticker (telephonenumber, password)",
			run: func(ctx context.Context, c *inpost.Client, in input) (any, error) {
				return c.ParcelPrintout(ctx, in.params)
			},
		},
	})

	return cmd
}
