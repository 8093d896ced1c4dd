package economic

import (
	"math/big"

	"github.com/gabapcia/timenode/internal/tracked"
)

// timestampScale converts an oracle wait into the timestamp unit of a deadline.
const timestampScale = 10

type normalizedTier struct {
	price     *big.Int
	threshold float64
}

// NormalizedTimes maps the oracle's wait times onto a transaction's temporal
// unit so they can be compared with the time left before a deadline.
type NormalizedTimes struct {
	tiers [4]normalizedTier
}

// NewNormalizedTimes normalizes stats for unit: wait/blockTime for block
// deadlines, wait*10 for timestamp deadlines.
func NewNormalizedTimes(stats GasStats, unit tracked.TemporalUnit) NormalizedTimes {
	normalize := func(wait float64) float64 {
		if unit == tracked.Blocks {
			if stats.BlockTime <= 0 {
				return wait
			}
			return wait / stats.BlockTime
		}
		return wait * timestampScale
	}

	var n NormalizedTimes
	for i, tier := range []GasTier{stats.SafeLow, stats.Average, stats.Fast, stats.Fastest} {
		n.tiers[i] = normalizedTier{price: tier.Price, threshold: normalize(tier.Wait)}
	}
	return n
}

// PickGasPrice returns the price of the most patient tier whose normalized
// threshold is strictly below timeLeft. Tiers are scanned from safeLow to
// fastest and the first one carrying the largest such threshold wins. It
// returns false when no tier fits.
func (n NormalizedTimes) PickGasPrice(timeLeft float64) (*big.Int, bool) {
	var (
		picked *big.Int
		best   float64
		found  bool
	)

	for _, tier := range n.tiers {
		if tier.price == nil || timeLeft <= tier.threshold {
			continue
		}
		if !found || tier.threshold > best {
			picked, best, found = tier.price, tier.threshold, true
		}
	}

	if !found {
		return nil, false
	}
	return new(big.Int).Set(picked), true
}
