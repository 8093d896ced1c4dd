// Package config loads the node configuration from TIMENODE_* environment
// variables and validates it before anything touches the network.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/timenode/internal/economic"
	"github.com/gabapcia/timenode/internal/pkg/validator"
	"github.com/gabapcia/timenode/internal/wallet"
)

// Prefix of every environment variable read by Load.
const Prefix = "TIMENODE"

// ErrNoProviderURLs is returned when no provider url is configured.
var ErrNoProviderURLs = errors.New("at least one provider url is required")

// BigInt is a decimal integer read from the environment.
type BigInt struct {
	big.Int
}

// Decode implements envconfig.Decoder.
func (b *BigInt) Decode(value string) error {
	if _, ok := b.SetString(strings.TrimSpace(value), 10); !ok {
		return fmt.Errorf("invalid decimal integer %q", value)
	}
	return nil
}

// Config is the full node configuration.
type Config struct {
	ProviderURLs []string `envconfig:"PROVIDER_URLS" validate:"dive,url"`
	Autostart    bool     `envconfig:"AUTOSTART" default:"true"`
	Claiming     bool     `envconfig:"CLAIMING" default:"false"`
	MaxRetries   int      `envconfig:"MAX_RETRIES" default:"30" validate:"gte=0"`

	ScanInterval time.Duration `envconfig:"SCAN_INTERVAL" default:"4s"`
	ScanSpread   int           `envconfig:"SCAN_SPREAD" default:"50" validate:"gte=1"`
	DirectTxPool bool          `envconfig:"DIRECT_TX_POOL" default:"false"`

	WalletStoresAsPrivateKeys bool     `envconfig:"WALLET_STORES_AS_PRIVATE_KEYS" default:"false"`
	WalletStores              []string `envconfig:"WALLET_STORES"`
	Password                  string   `envconfig:"PASSWORD"`
	ConfirmationDepth         uint64   `envconfig:"CONFIRMATION_DEPTH" default:"6" validate:"gte=1"`

	MaxDeposit              BigInt `envconfig:"MAX_DEPOSIT" default:"1000000000000000000"`
	MinBalance              BigInt `envconfig:"MIN_BALANCE" default:"0"`
	MinProfitability        BigInt `envconfig:"MIN_PROFITABILITY" default:"0"`
	MaxGasSubsidy           uint64 `envconfig:"MAX_GAS_SUBSIDY" default:"100"`
	MinClaimWindow          uint64 `envconfig:"MIN_CLAIM_WINDOW" default:"30"`
	MinClaimWindowBlock     uint64 `envconfig:"MIN_CLAIM_WINDOW_BLOCK" default:"2"`
	MinExecutionWindow      uint64 `envconfig:"MIN_EXECUTION_WINDOW" default:"150"`
	MinExecutionWindowBlock uint64 `envconfig:"MIN_EXECUTION_WINDOW_BLOCK" default:"10"`
	SmartGasEstimation      bool   `envconfig:"SMART_GAS_ESTIMATION" default:"false"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	RedisURL    string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0" validate:"required"`
	RedisPrefix string `envconfig:"REDIS_PREFIX" default:"timenode" validate:"required"`

	NATSURL     string `envconfig:"NATS_URL"`
	NATSSubject string `envconfig:"NATS_SUBJECT" default:"timenode.outcomes"`

	GasStationURL     string        `envconfig:"GAS_STATION_URL" validate:"omitempty,url"`
	GasStationTimeout time.Duration `envconfig:"GAS_STATION_TIMEOUT" default:"5s"`

	OTLPEndpoint string `envconfig:"OTLP_ENDPOINT"`
	OTLPInsecure bool   `envconfig:"OTLP_INSECURE" default:"false"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks cross field rules first, then struct tags.
func (c Config) Validate() error {
	urls := 0
	for _, url := range c.ProviderURLs {
		if strings.TrimSpace(url) != "" {
			urls++
		}
	}
	if urls == 0 {
		return ErrNoProviderURLs
	}

	if len(c.WalletStores) > 0 && !c.WalletStoresAsPrivateKeys && c.Password == "" {
		return wallet.ErrMissingPassphrase
	}

	if c.ScanInterval <= 0 {
		return fmt.Errorf("%w: scan interval must be positive", validator.ErrValidationFailed)
	}

	return validator.Validate(c)
}

// Strategy returns the economic thresholds.
func (c Config) Strategy() economic.Strategy {
	return economic.Strategy{
		MaxDeposit:              new(big.Int).Set(&c.MaxDeposit.Int),
		MinBalance:              new(big.Int).Set(&c.MinBalance.Int),
		MinProfitability:        new(big.Int).Set(&c.MinProfitability.Int),
		MaxGasSubsidy:           c.MaxGasSubsidy,
		MinClaimWindow:          c.MinClaimWindow,
		MinClaimWindowBlock:     c.MinClaimWindowBlock,
		MinExecutionWindow:      c.MinExecutionWindow,
		MinExecutionWindowBlock: c.MinExecutionWindowBlock,
		UsingSmartGasEstimation: c.SmartGasEstimation,
	}
}
