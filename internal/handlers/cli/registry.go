package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// trackCommand returns a CLI command that adds a scheduled request address to
// the set the node scans.
//
// Usage example:
//
//	timenode track --address 0xABC123...
func trackCommand(p Provider) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Start tracking a scheduled transaction request.",
		Usage:       "Adds a request address to the tracked set.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Request address to track",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := p.Registry(ctx)
			if err != nil {
				return err
			}

			return r.Track(ctx, c.String("address"))
		},
	}
}

// untrackCommand returns a CLI command that removes a request address from
// the tracked set.
//
// Usage example:
//
//	timenode untrack --address 0xABC123...
func untrackCommand(p Provider) *cli.Command {
	return &cli.Command{
		Name:        "untrack",
		Description: "Stop tracking a scheduled transaction request.",
		Usage:       "Removes a request address from the tracked set.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Request address to stop tracking",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := p.Registry(ctx)
			if err != nil {
				return err
			}

			return r.Untrack(ctx, c.String("address"))
		},
	}
}

// trackedCommand lists the tracked request addresses, one per line.
func trackedCommand(p Provider) *cli.Command {
	return &cli.Command{
		Name:        "tracked",
		Description: "List every tracked scheduled transaction request.",
		Usage:       "Prints the tracked request addresses.",
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := p.Registry(ctx)
			if err != nil {
				return err
			}

			addresses, err := r.Tracked(ctx)
			if err != nil {
				return err
			}

			for _, address := range addresses {
				fmt.Fprintln(c.Root().Writer, address.Hex())
			}
			return nil
		},
	}
}
