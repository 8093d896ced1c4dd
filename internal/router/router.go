// Package router decides, for every refreshed tracked transaction, whether the
// node claims it, executes it or leaves it alone, and carries out the send.
package router

import (
	"context"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/timenode/internal/accountstate"
	"github.com/gabapcia/timenode/internal/economic"
	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/scanner"
	"github.com/gabapcia/timenode/internal/tracked"
	"github.com/gabapcia/timenode/internal/wallet"
)

const (
	ReasonCancelled       = "cancelled"
	ReasonFinished        = "finished"
	ReasonNotInWindow     = "waiting for a window"
	ReasonClaimingOff     = "claiming disabled"
	ReasonAlreadyClaimed  = "already claimed"
	ReasonPendingInPool   = "competing transaction pending in mempool"
	ReasonPendingInWallet = "send already in flight"
	ReasonAccountBusy     = "next account busy"
	ReasonReserved        = "reserved for the claimer"
)

// Decider is the economic strategy.
type Decider interface {
	Decide(ctx context.Context, tx tracked.Transaction, status tracked.Status, account common.Address) (economic.Decision, error)
}

// Sender is the part of the wallet the router drives.
type Sender interface {
	NextAccount() (wallet.Account, error)
	IsNextAccountFree() bool
	IsKnownAddress(address common.Address) bool
	HasPendingTransaction(to common.Address, op accountstate.Operation) bool
	IsWaitingForConfirmation(to common.Address, op accountstate.Operation) bool
	SendFromNextIf(ctx context.Context, account common.Address, opts wallet.SendOptions) (wallet.Receipt, error)
	SendFromAccount(ctx context.Context, address common.Address, opts wallet.SendOptions) (wallet.Receipt, error)
}

// PendingPool is the read side of the transaction pool.
type PendingPool interface {
	Has(to common.Address, op accountstate.Operation) bool
	HighestGasPrice(to common.Address, op accountstate.Operation) (*big.Int, bool)
}

// StatsStore keeps per account results.
type StatsStore interface {
	RecordClaim(ctx context.Context, account, target common.Address, success bool, deposit *big.Int) error
	RecordExecution(ctx context.Context, account, target common.Address, success bool, bounty *big.Int) error
	FailedClaims(ctx context.Context, account common.Address) ([]common.Address, error)
	ClearAll(ctx context.Context) error
}

// Notifier publishes outcomes of sends.
type Notifier interface {
	Publish(ctx context.Context, outcome Outcome) error
}

// Outcome is what happened to one tracked transaction during a route.
type Outcome struct {
	Address      common.Address  `json:"address"`
	Status       string          `json:"status"`
	Action       economic.Action `json:"-"`
	ActionName   string          `json:"action"`
	Reason       string          `json:"reason,omitempty"`
	Account      common.Address  `json:"account,omitempty"`
	TxHash       common.Hash     `json:"txHash,omitempty"`
	WalletStatus wallet.Status   `json:"-"`
	Result       string          `json:"result,omitempty"`
	GasPrice     *big.Int        `json:"gasPrice,omitempty"`
	At           time.Time       `json:"at"`
}

// Sent reports whether a transaction went out during the route.
func (o Outcome) Sent() bool {
	return o.Action != economic.Skip && o.WalletStatus != 0
}

// Router is safe for concurrent use.
type Router struct {
	cache    scanner.Cache
	decider  Decider
	sender   Sender
	pool     PendingPool
	stats    StatsStore
	notifier Notifier
	now      func() time.Time

	claiming atomic.Bool
}

var _ scanner.Router = (*Router)(nil)

type config struct {
	claiming bool
	notifier Notifier
	now      func() time.Time
}

// Option configures a Router.
type Option func(*config)

// WithClaiming sets the initial claiming flag. Default false.
func WithClaiming(enabled bool) Option {
	return func(c *config) {
		c.claiming = enabled
	}
}

// WithNotifier publishes every send outcome through n.
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithClock replaces time.Now for outcome timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// New returns a Router.
func New(cache scanner.Cache, decider Decider, sender Sender, pool PendingPool, stats StatsStore, opts ...Option) *Router {
	cfg := config{
		notifier: nopNotifier{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Router{
		cache:    cache,
		decider:  decider,
		sender:   sender,
		pool:     pool,
		stats:    stats,
		notifier: cfg.notifier,
		now:      cfg.now,
	}
	r.claiming.Store(cfg.claiming)
	return r
}

// SetClaiming turns claiming on or off and returns the new value.
func (r *Router) SetClaiming(enabled bool) bool {
	r.claiming.Store(enabled)
	return enabled
}

// Claiming reports whether the router claims transactions.
func (r *Router) Claiming() bool {
	return r.claiming.Load()
}

// Route implements scanner.Router.
func (r *Router) Route(ctx context.Context, tx tracked.Transaction) error {
	_, err := r.Dispatch(ctx, tx)
	return err
}

// Dispatch routes tx and returns what happened. Send failures are reported in
// the outcome; the error is reserved for failures to evaluate tx.
func (r *Router) Dispatch(ctx context.Context, tx tracked.Transaction) (Outcome, error) {
	address := tx.Address()
	outcome := Outcome{Address: address, At: r.now()}

	if tx.IsCancelled() {
		outcome.Reason = ReasonCancelled
		return r.finish(ctx, outcome, r.cache.Delete(ctx, address))
	}

	status, now, err := tracked.DeriveStatus(ctx, tx)
	if err != nil {
		return outcome, fmt.Errorf("derive status of %s: %w", address.Hex(), err)
	}
	outcome.Status = status.String()

	if status.Done() {
		outcome.Reason = ReasonFinished
		return r.finish(ctx, outcome, r.cache.Delete(ctx, address))
	}

	if err := r.cache.Set(ctx, address, scanner.EntryOf(tx)); err != nil {
		return outcome, fmt.Errorf("update cache entry of %s: %w", address.Hex(), err)
	}

	switch status {
	case tracked.ClaimWindow:
		return r.claim(ctx, tx, status, outcome)
	case tracked.ExecutionWindow:
		return r.execute(ctx, tx, status, now, outcome)
	default:
		outcome.Reason = ReasonNotInWindow
		return r.finish(ctx, outcome, nil)
	}
}

func (r *Router) finish(ctx context.Context, outcome Outcome, err error) (Outcome, error) {
	outcome.ActionName = outcome.Action.String()
	if err != nil {
		return outcome, err
	}

	logger.Debug(ctx, "routed transaction",
		"tx.address", outcome.Address.Hex(),
		"tx.status", outcome.Status,
		"route.action", outcome.ActionName,
		"route.reason", outcome.Reason,
	)
	return outcome, nil
}

func (r *Router) claim(ctx context.Context, tx tracked.Transaction, status tracked.Status, outcome Outcome) (Outcome, error) {
	address := tx.Address()

	switch {
	case !r.Claiming():
		outcome.Reason = ReasonClaimingOff
		return r.finish(ctx, outcome, nil)
	case tx.IsClaimed():
		outcome.Reason = ReasonAlreadyClaimed
		return r.finish(ctx, outcome, nil)
	case r.pool.Has(address, accountstate.Claim):
		outcome.Reason = ReasonPendingInPool
		return r.finish(ctx, outcome, nil)
	case r.inFlight(address, accountstate.Claim):
		outcome.Reason = ReasonPendingInWallet
		return r.finish(ctx, outcome, nil)
	case !r.sender.IsNextAccountFree():
		outcome.Reason = ReasonAccountBusy
		return r.finish(ctx, outcome, nil)
	}

	account, err := r.sender.NextAccount()
	if err != nil {
		return outcome, err
	}

	decision, err := r.decider.Decide(ctx, tx, status, account.Address)
	if err != nil {
		return outcome, fmt.Errorf("decide claim of %s: %w", address.Hex(), err)
	}
	if decision.Action != economic.Claim {
		outcome.Reason = string(decision.Reason)
		return r.finish(ctx, outcome, nil)
	}

	receipt, err := r.sender.SendFromNextIf(ctx, account.Address, wallet.SendOptions{
		To:        address,
		Operation: accountstate.Claim,
		Value:     tx.RequiredDeposit(),
		GasLimit:  economic.ClaimingGasEstimate,
		GasPrice:  decision.GasPrice,
		Data:      tx.ClaimData(),
	})
	if err != nil {
		return outcome, fmt.Errorf("send claim to %s: %w", address.Hex(), err)
	}
	if receipt.Status == wallet.Busy {
		outcome.Reason = ReasonAccountBusy
		return r.finish(ctx, outcome, nil)
	}

	outcome = withReceipt(outcome, decision, receipt)
	if err := r.stats.RecordClaim(ctx, receipt.From, address, receipt.Status == wallet.OK, tx.RequiredDeposit()); err != nil {
		logger.Warn(ctx, "could not record claim", "tx.address", address.Hex(), "error", err)
	}
	return r.report(ctx, outcome)
}

func (r *Router) execute(ctx context.Context, tx tracked.Transaction, status tracked.Status, now *big.Int, outcome Outcome) (Outcome, error) {
	address := tx.Address()

	// In the reserved window only the claimer may execute.
	var claimer *common.Address
	if tx.IsClaimed() && tracked.InReservedWindow(tx, now) {
		by := tx.ClaimedBy()
		if !r.sender.IsKnownAddress(by) {
			outcome.Reason = ReasonReserved
			return r.finish(ctx, outcome, nil)
		}
		claimer = &by
	}

	if r.inFlight(address, accountstate.Execute) {
		outcome.Reason = ReasonPendingInWallet
		return r.finish(ctx, outcome, nil)
	}

	var account common.Address
	if claimer != nil {
		account = *claimer
	} else {
		if !r.sender.IsNextAccountFree() {
			outcome.Reason = ReasonAccountBusy
			return r.finish(ctx, outcome, nil)
		}
		next, err := r.sender.NextAccount()
		if err != nil {
			return outcome, err
		}
		account = next.Address
	}

	decision, err := r.decider.Decide(ctx, tx, status, account)
	if err != nil {
		return outcome, fmt.Errorf("decide execution of %s: %w", address.Hex(), err)
	}
	if decision.Action != economic.Execute {
		outcome.Reason = string(decision.Reason)
		return r.finish(ctx, outcome, nil)
	}

	if competing, ok := r.pool.HighestGasPrice(address, accountstate.Execute); ok && competing.Cmp(decision.GasPrice) >= 0 {
		outcome.Reason = ReasonPendingInPool
		return r.finish(ctx, outcome, nil)
	}

	opts := wallet.SendOptions{
		To:        address,
		Operation: accountstate.Execute,
		GasLimit:  economic.ExecutionGasAmount(tx).Uint64(),
		GasPrice:  decision.GasPrice,
		Data:      tx.ExecuteData(),
	}

	var receipt wallet.Receipt
	if claimer != nil {
		receipt, err = r.sender.SendFromAccount(ctx, *claimer, opts)
	} else {
		receipt, err = r.sender.SendFromNextIf(ctx, account, opts)
	}
	if err != nil {
		return outcome, fmt.Errorf("send execution to %s: %w", address.Hex(), err)
	}
	if receipt.Status == wallet.Busy {
		outcome.Reason = ReasonAccountBusy
		return r.finish(ctx, outcome, nil)
	}

	outcome = withReceipt(outcome, decision, receipt)
	if err := r.stats.RecordExecution(ctx, receipt.From, address, receipt.Status == wallet.OK, tx.Bounty()); err != nil {
		logger.Warn(ctx, "could not record execution", "tx.address", address.Hex(), "error", err)
	}
	return r.report(ctx, outcome)
}

func (r *Router) inFlight(address common.Address, op accountstate.Operation) bool {
	return r.sender.HasPendingTransaction(address, op) || r.sender.IsWaitingForConfirmation(address, op)
}

func withReceipt(outcome Outcome, decision economic.Decision, receipt wallet.Receipt) Outcome {
	outcome.Action = decision.Action
	outcome.GasPrice = decision.GasPrice
	outcome.Account = receipt.From
	outcome.TxHash = receipt.TxHash
	outcome.WalletStatus = receipt.Status
	outcome.Result = receipt.Status.String()
	return outcome
}

func (r *Router) report(ctx context.Context, outcome Outcome) (Outcome, error) {
	outcome.ActionName = outcome.Action.String()

	logger.Info(ctx, "transaction sent",
		"tx.address", outcome.Address.Hex(),
		"tx.hash", outcome.TxHash.Hex(),
		"route.action", outcome.ActionName,
		"wallet.account", outcome.Account.Hex(),
		"wallet.status", outcome.Result,
	)

	if err := r.notifier.Publish(ctx, outcome); err != nil {
		logger.Warn(ctx, "could not publish outcome", "tx.address", outcome.Address.Hex(), "error", err)
	}
	return outcome, nil
}

type nopNotifier struct{}

func (nopNotifier) Publish(context.Context, Outcome) error { return nil }
