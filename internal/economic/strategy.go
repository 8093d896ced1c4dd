package economic

import (
	"math/big"

	"github.com/gabapcia/timenode/internal/tracked"
)

// Strategy holds the thresholds the node applies before claiming or
// executing. A Manager copies it on construction.
type Strategy struct {
	// MaxDeposit is the largest claim deposit the node will stake.
	MaxDeposit *big.Int
	// MinBalance is the balance an account must keep after staking a deposit.
	MinBalance *big.Int
	// MinProfitability is the lowest expected reward worth acting on.
	MinProfitability *big.Int
	// MaxGasSubsidy caps, as a percentage of the scheduled gas price, how much
	// above that price the node will pay at execution.
	MaxGasSubsidy uint64

	MinClaimWindow          uint64
	MinClaimWindowBlock     uint64
	MinExecutionWindow      uint64
	MinExecutionWindowBlock uint64

	UsingSmartGasEstimation bool
}

// DefaultStrategy returns the thresholds used when none are configured.
func DefaultStrategy() Strategy {
	return Strategy{
		MaxDeposit:              new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
		MinBalance:              new(big.Int),
		MinProfitability:        new(big.Int),
		MaxGasSubsidy:           100,
		MinClaimWindow:          30,
		MinClaimWindowBlock:     2,
		MinExecutionWindow:      150,
		MinExecutionWindowBlock: 10,
		UsingSmartGasEstimation: false,
	}
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

func (s Strategy) clone() Strategy {
	s.MaxDeposit = copyInt(s.MaxDeposit)
	s.MinBalance = copyInt(s.MinBalance)
	s.MinProfitability = copyInt(s.MinProfitability)
	return s
}

func (s Strategy) minClaimWindow(unit tracked.TemporalUnit) *big.Int {
	if unit == tracked.Blocks {
		return new(big.Int).SetUint64(s.MinClaimWindowBlock)
	}
	return new(big.Int).SetUint64(s.MinClaimWindow)
}

func (s Strategy) minExecutionWindow(unit tracked.TemporalUnit) *big.Int {
	if unit == tracked.Blocks {
		return new(big.Int).SetUint64(s.MinExecutionWindowBlock)
	}
	return new(big.Int).SetUint64(s.MinExecutionWindow)
}
