package economic

import (
	"context"
	"math/big"

	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/tracked"
)

const (
	// ClaimingGasEstimate is the gas budgeted for a claim() call.
	ClaimingGasEstimate = 100000

	// executionGasOverhead is added to the scheduled call gas to cover the
	// request contract's own bookkeeping around the call.
	executionGasOverhead = 180000
)

var hundred = big.NewInt(100)

// ExecutionGasAmount is the gas an execute() call is expected to use.
func ExecutionGasAmount(tx tracked.Transaction) *big.Int {
	return new(big.Int).Add(tx.CallGas(), big.NewInt(executionGasOverhead))
}

// ExecutionSubsidy is what the executor pays out of pocket when gasPrice is
// above the price the scheduler paid for: max(0, gasPrice - tx.gasPrice) * gas.
func ExecutionSubsidy(tx tracked.Transaction, gasPrice *big.Int) *big.Int {
	diff := new(big.Int).Sub(gasPrice, tx.GasPrice())
	if diff.Sign() <= 0 {
		return new(big.Int)
	}
	return diff.Mul(diff, ExecutionGasAmount(tx))
}

// ProfitabilityCalculator computes the expected reward of claiming or executing.
type ProfitabilityCalculator struct {
	oracle GasPriceOracle
}

// NewProfitabilityCalculator returns a calculator reading network prices from oracle.
func NewProfitabilityCalculator(oracle GasPriceOracle) *ProfitabilityCalculator {
	return &ProfitabilityCalculator{oracle: oracle}
}

func paymentShare(ctx context.Context, tx tracked.Transaction) (*big.Int, error) {
	modifier, err := tx.ClaimPaymentModifier(ctx)
	if err != nil {
		return nil, err
	}

	share := new(big.Int).Mul(tx.Bounty(), modifier)
	return share.Quo(share, hundred), nil
}

// ClaimingProfitability returns
// bounty*modifier/100 - claimingGasPrice*ClaimingGasEstimate - subsidy(tx, networkAverage).
func (p *ProfitabilityCalculator) ClaimingProfitability(ctx context.Context, tx tracked.Transaction, claimingGasPrice *big.Int) (*big.Int, error) {
	reward, err := paymentShare(ctx, tx)
	if err != nil {
		return nil, err
	}

	stats, err := p.oracle.GasStats(ctx)
	if err != nil {
		return nil, err
	}

	claimingGasCost := new(big.Int).Mul(claimingGasPrice, big.NewInt(ClaimingGasEstimate))
	subsidy := new(big.Int)
	if stats.Average.Price != nil {
		subsidy = ExecutionSubsidy(tx, stats.Average.Price)
	}

	reward.Sub(reward, claimingGasCost)
	reward.Sub(reward, subsidy)

	logger.Debug(ctx, "claiming profitability computed",
		"tx.address", tx.Address().Hex(),
		"gas.price", claimingGasPrice.String(),
		"tx.bounty", tx.Bounty().String(),
		"reward", reward.String(),
	)

	return reward, nil
}

// ExecutionProfitability returns
// bounty*modifier/100 - subsidy(tx, executionGasPrice) + deposit when claimed.
func (p *ProfitabilityCalculator) ExecutionProfitability(ctx context.Context, tx tracked.Transaction, executionGasPrice *big.Int) (*big.Int, error) {
	reward, err := paymentShare(ctx, tx)
	if err != nil {
		return nil, err
	}

	subsidy := ExecutionSubsidy(tx, executionGasPrice)
	reward.Sub(reward, subsidy)
	if tx.IsClaimed() {
		reward.Add(reward, tx.RequiredDeposit())
	}

	logger.Debug(ctx, "execution profitability computed",
		"tx.address", tx.Address().Hex(),
		"gas.price", executionGasPrice.String(),
		"gas.subsidy", subsidy.String(),
		"reward", reward.String(),
	)

	return reward, nil
}
