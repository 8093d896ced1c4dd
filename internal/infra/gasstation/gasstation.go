// Package gasstation reads tiered gas prices from an ethgasstation compatible
// endpoint. Without an endpoint, or when it fails, every tier carries the
// provider's suggested price.
package gasstation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/timenode/internal/economic"
	"github.com/gabapcia/timenode/internal/pkg/logger"
	httptransport "github.com/gabapcia/timenode/internal/pkg/transport/http"
)

// ErrUnexpectedStatus is returned when the endpoint answers with a non 200 status.
var ErrUnexpectedStatus = errors.New("unexpected gas station status")

// weiPerUnit converts the endpoint's tenths of gwei into wei.
const weiPerUnit = 1e8

// NetworkPricer returns the provider's suggested gas price.
type NetworkPricer interface {
	NetworkGasPrice(ctx context.Context) (*big.Int, error)
}

type response struct {
	SafeLow     float64 `json:"safeLow"`
	Average     float64 `json:"average"`
	Fast        float64 `json:"fast"`
	Fastest     float64 `json:"fastest"`
	SafeLowWait float64 `json:"safeLowWait"`
	AvgWait     float64 `json:"avgWait"`
	FastWait    float64 `json:"fastWait"`
	FastestWait float64 `json:"fastestWait"`
	BlockTime   float64 `json:"block_time"`
}

type config struct {
	url    string
	client *retryablehttp.Client
}

// Option configures an Oracle.
type Option func(*config)

// WithURL sets the gas station endpoint.
func WithURL(url string) Option {
	return func(c *config) {
		c.url = url
	}
}

// WithHTTPClient replaces the default retrying client.
func WithHTTPClient(client *retryablehttp.Client) Option {
	return func(c *config) {
		c.client = client
	}
}

// Oracle implements economic.GasPriceOracle.
type Oracle struct {
	cfg     config
	network NetworkPricer
}

var _ economic.GasPriceOracle = (*Oracle)(nil)

// New returns an Oracle backed by network and, when configured, a gas station endpoint.
func New(network NetworkPricer, opts ...Option) *Oracle {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.client == nil {
		cfg.client = httptransport.NewClient()
	}

	return &Oracle{
		cfg:     cfg,
		network: network,
	}
}

func (o *Oracle) NetworkGasPrice(ctx context.Context) (*big.Int, error) {
	return o.network.NetworkGasPrice(ctx)
}

// GasStats returns the endpoint's tiers, or flat tiers at the network price.
func (o *Oracle) GasStats(ctx context.Context) (economic.GasStats, error) {
	if o.cfg.url == "" {
		return o.flat(ctx)
	}

	stats, err := o.fetch(ctx)
	if err != nil {
		logger.Warn(ctx, "gas station unavailable, using network gas price", "gasstation.url", o.cfg.url, "error", err)
		return o.flat(ctx)
	}

	return stats, nil
}

func (o *Oracle) fetch(ctx context.Context) (economic.GasStats, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, o.cfg.url, nil)
	if err != nil {
		return economic.GasStats{}, err
	}

	resp, err := o.cfg.client.Do(req)
	if err != nil {
		return economic.GasStats{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return economic.GasStats{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return economic.GasStats{}, err
	}

	return economic.GasStats{
		SafeLow:   economic.GasTier{Price: toWei(body.SafeLow), Wait: body.SafeLowWait},
		Average:   economic.GasTier{Price: toWei(body.Average), Wait: body.AvgWait},
		Fast:      economic.GasTier{Price: toWei(body.Fast), Wait: body.FastWait},
		Fastest:   economic.GasTier{Price: toWei(body.Fastest), Wait: body.FastestWait},
		BlockTime: body.BlockTime,
	}, nil
}

func (o *Oracle) flat(ctx context.Context) (economic.GasStats, error) {
	price, err := o.network.NetworkGasPrice(ctx)
	if err != nil {
		return economic.GasStats{}, err
	}

	tier := func() economic.GasTier { return economic.GasTier{Price: new(big.Int).Set(price)} }
	return economic.GasStats{
		SafeLow: tier(),
		Average: tier(),
		Fast:    tier(),
		Fastest: tier(),
	}, nil
}

func toWei(tenthsOfGwei float64) *big.Int {
	wei, _ := new(big.Float).Mul(big.NewFloat(tenthsOfGwei), big.NewFloat(weiPerUnit)).Int(nil)
	return wei
}
