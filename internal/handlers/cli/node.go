package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"slices"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v3"
)

// startCommand returns a CLI command that builds the node and runs it.
//
// Usage example:
//
//	timenode start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or ctx ends.
func startCommand(p Provider) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the node: scans tracked requests, claims and executes them and fails over between providers.",
		Usage:       "Runs the node. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			node, err := p.Node(ctx)
			if err != nil {
				return err
			}

			if err := node.Start(ctx); err != nil {
				return err
			}
			defer node.Close()

			<-ctx.Done()
			return nil
		},
	}
}

// claimsCommand groups the per account claim reports.
//
// Usage example:
//
//	timenode claims pending
//	timenode claims failed
func claimsCommand(p Provider) *cli.Command {
	report := func(fetch func(Node, context.Context) (map[common.Address][]common.Address, error)) cli.ActionFunc {
		return func(ctx context.Context, c *cli.Command) error {
			node, err := p.Node(ctx)
			if err != nil {
				return err
			}

			claims, err := fetch(node, ctx)
			if err != nil {
				return err
			}

			printClaims(c.Root().Writer, claims)
			return nil
		}
	}

	return &cli.Command{
		Name:        "claims",
		Description: "Reports claims made by the node's accounts.",
		Usage:       "Prints claims grouped by account.",
		Commands: []*cli.Command{
			{
				Name:        "pending",
				Description: "Lists requests claimed by each account and not executed yet.",
				Usage:       "Prints claimed but not executed requests.",
				Action:      report(Node.ClaimedNotExecuted),
			},
			{
				Name:        "failed",
				Description: "Lists requests each account failed to claim.",
				Usage:       "Prints unsuccessful claims.",
				Action:      report(Node.UnsuccessfullyClaimed),
			},
		},
	}
}

// printClaims writes one "account: request" line per claim, accounts sorted.
func printClaims(w io.Writer, claims map[common.Address][]common.Address) {
	accounts := make([]common.Address, 0, len(claims))
	for account := range claims {
		accounts = append(accounts, account)
	}
	slices.SortFunc(accounts, func(a, b common.Address) int { return a.Cmp(b) })

	for _, account := range accounts {
		for _, request := range claims[account] {
			fmt.Fprintf(w, "%s: %s\n", account.Hex(), request.Hex())
		}
	}
}

// statsCommand groups stats maintenance.
//
// Usage example:
//
//	timenode stats clear
func statsCommand(p Provider) *cli.Command {
	return &cli.Command{
		Name:        "stats",
		Description: "Maintains the recorded claim and execution statistics.",
		Usage:       "Manages send statistics.",
		Commands: []*cli.Command{
			{
				Name:        "clear",
				Description: "Drops the statistics of every account.",
				Usage:       "Clears all statistics.",
				Action: func(ctx context.Context, c *cli.Command) error {
					stats, err := p.Stats(ctx)
					if err != nil {
						return err
					}

					return stats.ClearAll(ctx)
				},
			},
		},
	}
}
