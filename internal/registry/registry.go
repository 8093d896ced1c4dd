// Package registry manages the set of scheduled transaction addresses the node
// watches. Registered addresses are stored in the scan cache and picked up by
// the next scan.
package registry

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/pkg/validator"
	"github.com/gabapcia/timenode/internal/scanner"
)

// ErrNotTracked is returned by Untrack for an address that was never tracked.
var ErrNotTracked = errors.New("address not tracked")

// Service registers and unregisters tracked addresses.
//
// Implementations validate input and delegate persistence to the scan cache.
type Service interface {
	// Track adds address to the scan cache. Tracking an address twice keeps
	// whatever the node already learned about it.
	Track(ctx context.Context, address string) error

	// Untrack removes address from the scan cache.
	//
	// Returns ErrNotTracked if the address is not in the cache.
	Untrack(ctx context.Context, address string) error

	// Tracked lists every tracked address.
	Tracked(ctx context.Context) ([]common.Address, error)
}

type service struct {
	cache scanner.Cache
}

var _ Service = (*service)(nil)

// New returns a registry backed by cache.
func New(cache scanner.Cache) *service {
	return &service{
		cache: cache,
	}
}

// parseAddress validates a hex encoded address.
func parseAddress(address string) (common.Address, error) {
	if err := validator.Var(address, "required,eth_addr"); err != nil {
		return common.Address{}, err
	}

	return common.HexToAddress(address), nil
}

func (s *service) Track(ctx context.Context, address string) error {
	addr, err := parseAddress(address)
	if err != nil {
		return err
	}

	_, ok, err := s.cache.Get(ctx, addr)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if err := s.cache.Set(ctx, addr, scanner.CacheEntry{}); err != nil {
		return err
	}

	logger.Info(ctx, "tracking transaction", "tx.address", addr.Hex())
	return nil
}

func (s *service) Untrack(ctx context.Context, address string) error {
	addr, err := parseAddress(address)
	if err != nil {
		return err
	}

	_, ok, err := s.cache.Get(ctx, addr)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotTracked
	}

	if err := s.cache.Delete(ctx, addr); err != nil {
		return err
	}

	logger.Info(ctx, "stopped tracking transaction", "tx.address", addr.Hex())
	return nil
}

func (s *service) Tracked(ctx context.Context) ([]common.Address, error) {
	return s.cache.Stored(ctx)
}
