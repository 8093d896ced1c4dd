package economic

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/tracked"
)

// Action is what the node should do with a scheduled transaction right now.
type Action uint8

const (
	Skip Action = iota
	Claim
	Execute
)

func (a Action) String() string {
	switch a {
	case Claim:
		return "claim"
	case Execute:
		return "execute"
	default:
		return "skip"
	}
}

// Reason explains a Skip.
type Reason string

const (
	ReasonOutsideWindow   Reason = "not in a claim or execution window"
	ReasonDepositTooHigh  Reason = "required deposit above max deposit"
	ReasonLowBalance      Reason = "balance after deposit below min balance"
	ReasonClaimWindowLate Reason = "claim window closing"
	ReasonWaitForGas      Reason = "no gas tier fits the time left, waiting"
	ReasonSubsidyTooHigh  Reason = "gas subsidy above max gas subsidy"
	ReasonNotProfitable   Reason = "expected reward below min profitability"
)

// Decision is the outcome of a Manager evaluation.
type Decision struct {
	Action   Action
	GasPrice *big.Int
	Reward   *big.Int
	Reason   Reason
}

func skip(reason Reason) Decision {
	return Decision{Action: Skip, Reason: reason}
}

// BalanceReader reads an account balance at the latest block when block is nil.
type BalanceReader interface {
	BalanceAt(ctx context.Context, account common.Address, block *big.Int) (*big.Int, error)
}

// Manager applies a Strategy to scheduled transactions. It keeps no state
// between calls; given the same oracle snapshot and balances it decides the same way.
type Manager struct {
	strategy   Strategy
	oracle     GasPriceOracle
	balances   BalanceReader
	calculator *ProfitabilityCalculator
}

// NewManager returns a Manager for strategy. strategy is copied.
func NewManager(strategy Strategy, oracle GasPriceOracle, balances BalanceReader) *Manager {
	return &Manager{
		strategy:   strategy.clone(),
		oracle:     oracle,
		balances:   balances,
		calculator: NewProfitabilityCalculator(oracle),
	}
}

// Strategy returns a copy of the thresholds in use.
func (m *Manager) Strategy() Strategy {
	return m.strategy.clone()
}

// Decide dispatches on status: ShouldClaim in the claim window, ShouldExecute
// in the execution window, Skip otherwise.
func (m *Manager) Decide(ctx context.Context, tx tracked.Transaction, status tracked.Status, account common.Address) (Decision, error) {
	switch status {
	case tracked.ClaimWindow:
		return m.ShouldClaim(ctx, tx, account)
	case tracked.ExecutionWindow:
		return m.ShouldExecute(ctx, tx, account)
	default:
		return skip(ReasonOutsideWindow), nil
	}
}

func (m *Manager) subsidyTooHigh(tx tracked.Transaction, gasPrice *big.Int) bool {
	scheduled := tx.GasPrice()
	extra := new(big.Int).Sub(gasPrice, scheduled)
	if extra.Sign() <= 0 {
		return false
	}

	// extra*100 > scheduled*maxGasSubsidy
	lhs := extra.Mul(extra, hundred)
	rhs := new(big.Int).Mul(scheduled, new(big.Int).SetUint64(m.strategy.MaxGasSubsidy))
	return lhs.Cmp(rhs) > 0
}

func timeLeft(deadline, now *big.Int) *big.Int {
	return new(big.Int).Sub(deadline, now)
}

func toFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

// ShouldClaim decides whether account should claim tx now and at which gas price.
func (m *Manager) ShouldClaim(ctx context.Context, tx tracked.Transaction, account common.Address) (Decision, error) {
	deposit := tx.RequiredDeposit()
	if deposit.Cmp(m.strategy.MaxDeposit) > 0 {
		return skip(ReasonDepositTooHigh), nil
	}

	balance, err := m.balances.BalanceAt(ctx, account, nil)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to read balance of %s: %w", account.Hex(), err)
	}

	if new(big.Int).Sub(balance, deposit).Cmp(m.strategy.MinBalance) < 0 {
		return skip(ReasonLowBalance), nil
	}

	now, err := tx.Now(ctx)
	if err != nil {
		return Decision{}, err
	}

	left := timeLeft(tx.ClaimWindowEnd(), now)
	if left.Cmp(m.strategy.minClaimWindow(tx.TemporalUnit())) <= 0 {
		return skip(ReasonClaimWindowLate), nil
	}

	gasPrice, ok, err := m.gasPriceFor(ctx, tx, left)
	if err != nil {
		return Decision{}, err
	}
	if !ok {
		return skip(ReasonWaitForGas), nil
	}

	reward, err := m.calculator.ClaimingProfitability(ctx, tx, gasPrice)
	if err != nil {
		return Decision{}, err
	}

	if reward.Cmp(m.strategy.MinProfitability) < 0 {
		logger.Debug(ctx, "claim not profitable", "tx.address", tx.Address().Hex(), "reward", reward.String())
		return Decision{Action: Skip, Reward: reward, Reason: ReasonNotProfitable}, nil
	}

	return Decision{Action: Claim, GasPrice: gasPrice, Reward: reward}, nil
}

// ShouldExecute decides whether account should execute tx now and at which
// gas price. Close to the end of the execution window the fastest tier is used.
func (m *Manager) ShouldExecute(ctx context.Context, tx tracked.Transaction, account common.Address) (Decision, error) {
	now, err := tx.Now(ctx)
	if err != nil {
		return Decision{}, err
	}

	left := timeLeft(tx.ExecutionWindowEnd(), now)

	var gasPrice *big.Int
	if left.Cmp(m.strategy.minExecutionWindow(tx.TemporalUnit())) <= 0 {
		stats, err := m.oracle.GasStats(ctx)
		if err != nil {
			return Decision{}, err
		}
		gasPrice = stats.Fastest.Price
	}

	if gasPrice == nil {
		price, ok, err := m.gasPriceFor(ctx, tx, left)
		if err != nil {
			return Decision{}, err
		}
		if !ok {
			return skip(ReasonWaitForGas), nil
		}
		gasPrice = price
	}

	if m.subsidyTooHigh(tx, gasPrice) {
		logger.Debug(ctx, "execution subsidy too high",
			"tx.address", tx.Address().Hex(),
			"gas.price", gasPrice.String(),
			"tx.gas_price", tx.GasPrice().String(),
		)
		return skip(ReasonSubsidyTooHigh), nil
	}

	reward, err := m.calculator.ExecutionProfitability(ctx, tx, gasPrice)
	if err != nil {
		return Decision{}, err
	}

	if reward.Cmp(m.strategy.MinProfitability) < 0 {
		return Decision{Action: Skip, Reward: reward, Reason: ReasonNotProfitable}, nil
	}

	return Decision{Action: Execute, GasPrice: gasPrice, Reward: reward}, nil
}

func (m *Manager) gasPriceFor(ctx context.Context, tx tracked.Transaction, left *big.Int) (*big.Int, bool, error) {
	if !m.strategy.UsingSmartGasEstimation {
		price, err := m.oracle.NetworkGasPrice(ctx)
		if err != nil {
			return nil, false, err
		}
		return price, true, nil
	}

	stats, err := m.oracle.GasStats(ctx)
	if err != nil {
		return nil, false, err
	}

	price, ok := NewNormalizedTimes(stats, tx.TemporalUnit()).PickGasPrice(toFloat(left))
	return price, ok, nil
}
