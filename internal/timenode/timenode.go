// Package timenode coordinates the node: it owns the scanning loops (cache
// scanner and transaction pool), the claiming switch and the reporting
// queries built on top of the cache and the stats store.
package timenode

import (
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/pkg/types"
	"github.com/gabapcia/timenode/internal/scanner"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
//
// The node must be started only once per lifecycle.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Scanner is the periodic cache scan. Stop leaves routes in flight running;
// Close cancels them.
type Scanner interface {
	Start(ctx context.Context) error
	Stop()
	Close()
	Scanning() bool
}

// Pool is the lifecycle half of the transaction pool.
type Pool interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Running() bool
}

// Claimer owns the claiming switch.
type Claimer interface {
	SetClaiming(enabled bool) bool
	Claiming() bool
}

// Accounts lists the node's sending addresses.
type Accounts interface {
	Addresses() []common.Address
}

// FailedClaims reads failed claims from the stats store.
type FailedClaims interface {
	FailedClaims(ctx context.Context, account common.Address) ([]common.Address, error)
}

type closeFunc func()

// Node is safe for concurrent use.
type Node struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool
	closeFunc closeFunc

	scanMu sync.Mutex // serializes scanning restarts

	scanner  Scanner
	pool     Pool
	claimer  Claimer
	accounts Accounts
	cache    scanner.Cache
	stats    FailedClaims

	autostart bool
	claiming  bool
}

type config struct {
	autostart bool
	claiming  bool
}

// Option configures a Node.
type Option func(*config)

// WithAutostart makes Start begin scanning. Default true.
func WithAutostart(enabled bool) Option {
	return func(c *config) {
		c.autostart = enabled
	}
}

// WithClaiming makes Start turn claiming on. Default false.
func WithClaiming(enabled bool) Option {
	return func(c *config) {
		c.claiming = enabled
	}
}

// New wires a Node.
func New(s Scanner, p Pool, claimer Claimer, accounts Accounts, cache scanner.Cache, stats FailedClaims, opts ...Option) *Node {
	cfg := config{autostart: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Node{
		scanner:   s,
		pool:      p,
		claimer:   claimer,
		accounts:  accounts,
		cache:     cache,
		stats:     stats,
		autostart: cfg.autostart,
		claiming:  cfg.claiming,
	}
}

// Start applies the configured claiming flag and, with autostart, begins
// scanning. Close undoes it.
func (n *Node) Start(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.isStarted {
		return ErrServiceAlreadyStarted
	}

	n.claimer.SetClaiming(n.claiming)

	if n.autostart {
		if err := n.StartScanning(ctx); err != nil {
			return err
		}
	}

	n.closeFunc = func() {
		if err := n.StopScanning(context.Background()); err != nil {
			logger.Error(ctx, "could not stop scanning", "error", err)
		}
		n.scanner.Close()
	}
	n.isStarted = true

	logger.Info(ctx, "timenode started",
		"node.accounts", len(n.accounts.Addresses()),
		"node.claiming", n.claimer.Claiming(),
		"node.scanning", n.scanner.Scanning(),
	)
	return nil
}

// Close stops scanning and cancels the routes still in flight. It is safe to
// call on a node that was never started.
func (n *Node) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closeFunc != nil {
		n.closeFunc()
	}

	n.closeFunc = nil
	n.isStarted = false
}

// StartScanning (re)starts the transaction pool and the cache scanner. A
// running scanner is stopped first, so calling it twice leaves one scanner
// running.
func (n *Node) StartScanning(ctx context.Context) error {
	n.scanMu.Lock()
	defer n.scanMu.Unlock()

	if n.scanner.Scanning() {
		n.scanner.Stop()
	}

	if err := n.pool.Start(ctx); err != nil {
		return err
	}

	if err := n.scanner.Start(ctx); err != nil {
		return errors.Join(err, n.pool.Stop(ctx))
	}

	logger.Info(ctx, "scanning started")
	return nil
}

// StopScanning stops the cache scanner and the transaction pool.
func (n *Node) StopScanning(ctx context.Context) error {
	n.scanMu.Lock()
	defer n.scanMu.Unlock()

	n.scanner.Stop()
	if err := n.pool.Stop(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "scanning stopped")
	return nil
}

// Scanning reports whether the cache scanner is running.
func (n *Node) Scanning() bool {
	return n.scanner.Scanning()
}

// StartClaiming turns claiming on and returns the new flag.
func (n *Node) StartClaiming() bool {
	return n.claimer.SetClaiming(true)
}

// StopClaiming turns claiming off and returns the new flag.
func (n *Node) StopClaiming() bool {
	return n.claimer.SetClaiming(false)
}

// Claiming reports whether the node claims transactions.
func (n *Node) Claiming() bool {
	return n.claimer.Claiming()
}

// ClaimedNotExecuted returns, per account, the tracked transactions the
// account claimed that were not called yet. Accounts with none are omitted.
func (n *Node) ClaimedNotExecuted(ctx context.Context) (map[common.Address][]common.Address, error) {
	addresses, err := n.cache.Stored(ctx)
	if err != nil {
		return nil, err
	}

	ours := make(map[common.Address]struct{})
	for _, account := range n.accounts.Addresses() {
		ours[account] = struct{}{}
	}

	result := types.NewDefaultMap[common.Address](func() []common.Address { return nil })
	for _, address := range addresses {
		entry, ok, err := n.cache.Get(ctx, address)
		if err != nil {
			return nil, err
		}
		if !ok || entry.WasCalled {
			continue
		}
		if _, mine := ours[entry.ClaimedBy]; !mine {
			continue
		}
		result.Set(entry.ClaimedBy, append(result.Get(entry.ClaimedBy), address))
	}
	return result.ToMap(), nil
}

// UnsuccessfullyClaimed returns, per account, the targets whose claim failed.
// Accounts with none are omitted.
func (n *Node) UnsuccessfullyClaimed(ctx context.Context) (map[common.Address][]common.Address, error) {
	result := make(map[common.Address][]common.Address)
	for _, account := range n.accounts.Addresses() {
		failed, err := n.stats.FailedClaims(ctx, account)
		if err != nil {
			return nil, err
		}
		if len(failed) > 0 {
			result[account] = failed
		}
	}
	return result, nil
}
