// Package txpool keeps a short lived view of claim and execute calls that are
// still in the mempool, so the router does not race transactions already in
// flight. Entries are dropped by a periodic sweep once they reach their TTL,
// whether or not they were ever acted upon.
package txpool

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/timenode/internal/accountstate"
)

const (
	defaultSweepInterval = 5 * time.Second
	defaultTTL           = 5 * time.Minute
)

// Entry is one pending claim or execute call.
type Entry struct {
	To        common.Address
	GasPrice  *big.Int
	Arrival   time.Time
	Operation accountstate.Operation
}

// Pool is the read and lifecycle surface shared by the pool implementations.
type Pool interface {
	// Start subscribes to the mempool. A running pool is stopped first.
	Start(ctx context.Context) error
	// Stop drops the subscriptions and the sweep.
	Stop(ctx context.Context) error
	// Running reports whether every subscription of the pool is active.
	Running() bool

	Has(to common.Address, op accountstate.Operation) bool
	Get(key string) (Entry, bool)
	Entries() map[string]Entry
	HighestGasPrice(to common.Address, op accountstate.Operation) (*big.Int, bool)
}

// ErrorHandler is told about subscription failures.
type ErrorHandler func(err error)

type config struct {
	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time
	onError       ErrorHandler
}

// Option configures a pool.
type Option func(*config)

// WithTTL sets how long an entry lives. Default 5 minutes.
func WithTTL(d time.Duration) Option {
	return func(c *config) {
		c.ttl = d
	}
}

// WithSweepInterval sets how often expired entries are removed. Default 5 seconds.
func WithSweepInterval(d time.Duration) Option {
	return func(c *config) {
		c.sweepInterval = d
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithErrorHandler registers fn to be called when a subscription fails.
func WithErrorHandler(fn ErrorHandler) Option {
	return func(c *config) {
		c.onError = fn
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		ttl:           defaultTTL,
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// store is the entry map and its sweep, shared by both pools.
type store struct {
	cfg config

	mu      sync.RWMutex
	entries map[string]Entry
}

func newStore(cfg config) store {
	return store{
		cfg:     cfg,
		entries: make(map[string]Entry),
	}
}

func (s *store) upsert(key string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = e
}

func (s *store) remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// sweep removes entries strictly older than the TTL at now and returns how many were removed.
func (s *store) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if now.Sub(e.Arrival) > s.cfg.ttl {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

func (s *store) runSweep(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		ticker := time.NewTicker(s.cfg.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(s.cfg.now())
			}
		}
	}()
}

func (s *store) Has(to common.Address, op accountstate.Operation) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.To == to && e.Operation == op {
			return true
		}
	}
	return false
}

func (s *store) Get(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	return e, ok
}

func (s *store) Entries() map[string]Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make(map[string]Entry, len(s.entries))
	for k, e := range s.entries {
		entries[k] = e
	}
	return entries
}

func (s *store) HighestGasPrice(to common.Address, op accountstate.Operation) (*big.Int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var highest *big.Int
	for _, e := range s.entries {
		if e.To != to || e.Operation != op || e.GasPrice == nil {
			continue
		}
		if highest == nil || e.GasPrice.Cmp(highest) > 0 {
			highest = e.GasPrice
		}
	}

	if highest == nil {
		return nil, false
	}
	return new(big.Int).Set(highest), true
}

func (s *store) reportError(err error) {
	if s.cfg.onError != nil {
		s.cfg.onError(err)
	}
}
