// Package ethereum connects the node to an Ethereum provider. A single Client
// serves wallet sends, pool subscriptions, scheduled request reads and the
// connection events consumed by the reconnect service.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/gabapcia/timenode/internal/economic"
	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/timenode/internal/reconnect"
	"github.com/gabapcia/timenode/internal/scanner"
	"github.com/gabapcia/timenode/internal/tracked"
	"github.com/gabapcia/timenode/internal/txpool"
	"github.com/gabapcia/timenode/internal/wallet"
)

// ErrDialFailed is returned when a provider cannot be reached.
var ErrDialFailed = errors.New("failed to dial provider")

const (
	defaultPollInterval        = 2 * time.Second
	defaultConfirmationTimeout = 10 * time.Minute
	defaultStallTimeout        = 3 * time.Minute
)

// Dialer opens an RPC connection to url.
type Dialer func(ctx context.Context, url string) (*rpc.Client, error)

type config struct {
	dial                Dialer
	pollInterval        time.Duration
	confirmationTimeout time.Duration
	stallTimeout        time.Duration
}

// Option configures a Client.
type Option func(*config)

// WithDialer replaces rpc.DialContext.
func WithDialer(d Dialer) Option {
	return func(c *config) {
		c.dial = d
	}
}

// WithPollInterval sets how often receipts are polled while waiting for confirmations.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithConfirmationTimeout bounds a single WaitForConfirmations call.
func WithConfirmationTimeout(d time.Duration) Option {
	return func(c *config) {
		c.confirmationTimeout = d
	}
}

// WithStallTimeout reports the provider as failed when no new head arrives
// for d. Zero disables the check.
func WithStallTimeout(d time.Duration) Option {
	return func(c *config) {
		c.stallTimeout = d
	}
}

// Client is a provider connection that can be swapped in place with Switch.
type Client struct {
	cfg config

	mu   sync.RWMutex
	url  string
	conn *rpc.Client
	eth  *ethclient.Client
	geth *gethclient.Client
	raw  jsonrpc.Client

	events    chan reconnect.Event
	stopWatch context.CancelFunc
	watchWG   sync.WaitGroup
}

var (
	_ wallet.ChainClient       = (*Client)(nil)
	_ txpool.LogSubscriber     = (*Client)(nil)
	_ txpool.PendingSubscriber = (*Client)(nil)
	_ reconnect.Connection     = (*Client)(nil)
	_ tracked.Source           = (*Client)(nil)
	_ scanner.Loader           = (*Client)(nil)
	_ economic.BalanceReader   = (*Client)(nil)
)

func newClient(opts ...Option) *Client {
	cfg := config{
		dial:                rpc.DialContext,
		pollInterval:        defaultPollInterval,
		confirmationTimeout: defaultConfirmationTimeout,
		stallTimeout:        defaultStallTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		cfg:    cfg,
		events: make(chan reconnect.Event, 1),
	}
}

// Dial connects to url and starts watching its head subscription.
func Dial(ctx context.Context, url string, opts ...Option) (*Client, error) {
	c := newClient(opts...)
	if err := c.Switch(ctx, url); err != nil {
		return nil, err
	}

	return c, nil
}

// Switch connects to url and replaces the active provider with it. The
// previous connection is closed only after the new one is usable.
func (c *Client) Switch(ctx context.Context, url string) error {
	conn, err := c.cfg.dial(ctx, url)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDialFailed, url, err)
	}

	eth := ethclient.NewClient(conn)
	heads := make(chan *types.Header, 16)
	sub, err := eth.SubscribeNewHead(ctx, heads)
	switch {
	case errors.Is(err, rpc.ErrNotificationsUnsupported):
		logger.Warn(ctx, "provider does not support subscriptions, connection events disabled", "provider.url", url)
		sub = nil
	case err != nil:
		conn.Close()
		return fmt.Errorf("%w: %s: %w", ErrDialFailed, url, err)
	}

	c.stopWatching()

	c.mu.Lock()
	previous := c.conn
	c.url = url
	c.conn = conn
	c.eth = eth
	c.geth = gethclient.New(conn)
	c.raw = jsonrpc.NewRPCClient(conn)
	c.mu.Unlock()

	if previous != nil {
		previous.Close()
	}

	if sub != nil {
		c.startWatching(sub, heads)
	}

	logger.Info(ctx, "provider connected", "provider.url", url)
	return nil
}

// URL returns the active provider url.
func (c *Client) URL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.url
}

// Close stops the head watch and closes the active connection.
func (c *Client) Close() {
	c.stopWatching()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
	}
}

func (c *Client) backend() *ethclient.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.eth
}

func (c *Client) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	return c.backend().BalanceAt(ctx, account, blockNumber)
}

func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return c.backend().PendingNonceAt(ctx, account)
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	return c.backend().ChainID(ctx)
}

func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return c.backend().SendTransaction(ctx, tx)
}

func (c *Client) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	return c.backend().TransactionByHash(ctx, hash)
}

func (c *Client) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.backend().SubscribeFilterLogs(ctx, q, ch)
}

// SubscribePendingTransactions streams full pending transactions from the
// provider's mempool. Requires a geth compatible eth_subscribe.
func (c *Client) SubscribePendingTransactions(ctx context.Context, ch chan<- *types.Transaction) (ethereum.Subscription, error) {
	c.mu.RLock()
	geth := c.geth
	c.mu.RUnlock()

	sub, err := geth.SubscribeFullPendingTransactions(ctx, ch)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// NetworkGasPrice returns the provider's suggested gas price.
func (c *Client) NetworkGasPrice(ctx context.Context) (*big.Int, error) {
	return c.backend().SuggestGasPrice(ctx)
}

// Now returns the latest block number or the latest block timestamp.
func (c *Client) Now(ctx context.Context, unit tracked.TemporalUnit) (*big.Int, error) {
	switch unit {
	case tracked.Blocks:
		number, err := c.backend().BlockNumber(ctx)
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetUint64(number), nil
	case tracked.Timestamps:
		header, err := c.backend().HeaderByNumber(ctx, nil)
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetUint64(header.Time), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTemporalUnit, unit)
	}
}
