package cli

import (
	"context"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v3"

	"github.com/gabapcia/timenode/internal/registry"
)

// Node is the running node behind the start and claims commands.
type Node interface {
	Start(ctx context.Context) error
	Close()
	ClaimedNotExecuted(ctx context.Context) (map[common.Address][]common.Address, error)
	UnsuccessfullyClaimed(ctx context.Context) (map[common.Address][]common.Address, error)
}

// Stats is the writable side of the stats store.
type Stats interface {
	ClearAll(ctx context.Context) error
}

// Accounts lists the configured sending addresses.
type Accounts interface {
	Addresses() []common.Address
}

// Keystores generates accounts and exports them as encrypted keystores.
type Keystores interface {
	Create(n int) error
	Encrypt(passphrase string) ([][]byte, error)
	Addresses() []common.Address
}

// Provider builds the components a command needs, on demand.
type Provider interface {
	Node(ctx context.Context) (Node, error)
	Registry(ctx context.Context) (registry.Service, error)
	Stats(ctx context.Context) (Stats, error)
	Accounts(ctx context.Context) (Accounts, error)
	Keystores() Keystores
}

// Run initializes and executes the timenode CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Starts scanning, claiming and executing tracked requests.
//   - `track` / `untrack` / `tracked`: Manage the tracked request addresses.
//   - `wallet create` / `wallet list`: Generate keystores and list accounts.
//   - `claims pending` / `claims failed`: Report claims per account.
//   - `stats clear`: Drop the recorded send statistics.
func Run(ctx context.Context, p Provider) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "timenode",
		Description:           "Command-line interface for running a TimeNode that claims and executes scheduled transactions.",
		Usage:                 "timenode [command] [flags]",
		Commands: []*cli.Command{
			startCommand(p),
			trackCommand(p),
			untrackCommand(p),
			trackedCommand(p),
			walletCommand(p),
			claimsCommand(p),
			statsCommand(p),
		},
	}

	return app.Run(ctx, os.Args)
}
