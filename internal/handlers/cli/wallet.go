package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
)

// ErrInvalidCount is returned when wallet create is asked for less than one account.
var ErrInvalidCount = errors.New("count must be at least 1")

// walletCommand groups account management.
//
// Usage example:
//
//	timenode wallet create --count 3 --password secret --out ./keystores
//	timenode wallet list
func walletCommand(p Provider) *cli.Command {
	return &cli.Command{
		Name:        "wallet",
		Description: "Manages the accounts the node sends from.",
		Usage:       "Creates and lists accounts.",
		Commands: []*cli.Command{
			walletCreateCommand(p),
			walletListCommand(p),
		},
	}
}

func walletCreateCommand(p Provider) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Generates accounts and writes one encrypted keystore file per account.",
		Usage:       "Creates encrypted keystores in the output directory.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of accounts to generate",
				Value: 1,
			},
			&cli.StringFlag{
				Name:     "password",
				Usage:    "Passphrase used to encrypt the keystores",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Directory the keystore files are written to",
				Value: ".",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			count := c.Int("count")
			if count < 1 {
				return ErrInvalidCount
			}

			ks := p.Keystores()
			if err := ks.Create(int(count)); err != nil {
				return err
			}

			docs, err := ks.Encrypt(c.String("password"))
			if err != nil {
				return err
			}

			out := c.String("out")
			if err := os.MkdirAll(out, 0o700); err != nil {
				return err
			}

			for i, address := range ks.Addresses() {
				path := filepath.Join(out, strings.ToLower(address.Hex()[2:])+".json")
				if err := os.WriteFile(path, docs[i], 0o600); err != nil {
					return fmt.Errorf("failed to write keystore %s: %w", path, err)
				}
				fmt.Fprintf(c.Root().Writer, "%s %s\n", address.Hex(), path)
			}
			return nil
		},
	}
}

func walletListCommand(p Provider) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "Prints the address of every configured account.",
		Usage:       "Lists configured accounts.",
		Action: func(ctx context.Context, c *cli.Command) error {
			accounts, err := p.Accounts(ctx)
			if err != nil {
				return err
			}

			for _, address := range accounts.Addresses() {
				fmt.Fprintln(c.Root().Writer, address.Hex())
			}
			return nil
		},
	}
}
