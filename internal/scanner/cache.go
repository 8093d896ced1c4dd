package scanner

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/timenode/internal/tracked"
)

// CacheEntry is what the node remembers about a tracked address between
// scans. A tracked address with nothing learned yet has a zero entry.
type CacheEntry struct {
	ClaimedBy   common.Address `json:"claimedBy"`
	WasCalled   bool           `json:"wasCalled"`
	Bounty      *big.Int       `json:"bounty,omitempty"`
	WindowStart *big.Int       `json:"windowStart,omitempty"`
}

// EntryOf captures the cacheable fields of tx.
func EntryOf(tx tracked.Transaction) CacheEntry {
	return CacheEntry{
		ClaimedBy:   tx.ClaimedBy(),
		WasCalled:   tx.WasCalled(),
		Bounty:      tx.Bounty(),
		WindowStart: tx.WindowStart(),
	}
}

// Cache stores the set of tracked addresses.
type Cache interface {
	// Get returns the entry of address. The boolean is false if the
	// address is not tracked.
	Get(ctx context.Context, address common.Address) (CacheEntry, bool, error)
	Set(ctx context.Context, address common.Address, entry CacheEntry) error
	Delete(ctx context.Context, address common.Address) error
	// Stored lists every tracked address.
	Stored(ctx context.Context) ([]common.Address, error)
	IsEmpty(ctx context.Context) (bool, error)
}

// Loader builds the tracked transaction living at address. It must not
// hit the chain; the scanner refreshes every loaded transaction itself.
type Loader interface {
	Load(ctx context.Context, address common.Address) (tracked.Transaction, error)
}

// Router decides what to do with a freshly refreshed transaction.
type Router interface {
	Route(ctx context.Context, tx tracked.Transaction) error
}
