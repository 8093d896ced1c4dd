package economic

import (
	"context"
	"math/big"
)

// GasTier is one speed tier reported by a gas price oracle.
type GasTier struct {
	Price *big.Int
	// Wait is the expected confirmation wait the oracle reports for Price.
	Wait float64
}

// GasStats is a snapshot of the four tiers plus the average block time in seconds.
type GasStats struct {
	SafeLow   GasTier
	Average   GasTier
	Fast      GasTier
	Fastest   GasTier
	BlockTime float64
}

// GasPriceOracle provides network gas prices.
type GasPriceOracle interface {
	// NetworkGasPrice returns the node's suggested gas price.
	NetworkGasPrice(ctx context.Context) (*big.Int, error)
	// GasStats returns the tiered snapshot used by smart gas estimation.
	GasStats(ctx context.Context) (GasStats, error)
}
