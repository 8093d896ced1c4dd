// Package app assembles the node from its configuration. Components are built
// on first use so commands that only touch storage or keystores never dial a
// provider.
package app

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gabapcia/timenode/internal/accountstate"
	"github.com/gabapcia/timenode/internal/config"
	"github.com/gabapcia/timenode/internal/economic"
	"github.com/gabapcia/timenode/internal/handlers/cli"
	"github.com/gabapcia/timenode/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/timenode/internal/infra/gasstation"
	"github.com/gabapcia/timenode/internal/infra/messaging"
	"github.com/gabapcia/timenode/internal/infra/storage/redis"
	"github.com/gabapcia/timenode/internal/pkg/logger"
	httptransport "github.com/gabapcia/timenode/internal/pkg/transport/http"
	"github.com/gabapcia/timenode/internal/reconnect"
	"github.com/gabapcia/timenode/internal/registry"
	"github.com/gabapcia/timenode/internal/router"
	"github.com/gabapcia/timenode/internal/scanner"
	"github.com/gabapcia/timenode/internal/timenode"
	"github.com/gabapcia/timenode/internal/txpool"
	"github.com/gabapcia/timenode/internal/wallet"
)

// store is what the Redis client provides to the node.
type store interface {
	scanner.Cache
	router.StatsStore
	Close() error
}

// App implements cli.Provider.
type App struct {
	cfg config.Config

	mu      sync.Mutex
	storage store
	closers []func()
}

var _ cli.Provider = (*App)(nil)

// New returns an App for cfg. Nothing is opened until a component is requested.
func New(cfg config.Config) *App {
	return &App{cfg: cfg}
}

// Close releases everything opened so far, last opened first.
func (a *App) Close() {
	a.mu.Lock()
	closers := a.closers
	a.closers = nil
	a.storage = nil
	a.mu.Unlock()

	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

func (a *App) onClose(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closers = append(a.closers, fn)
}

func (a *App) store(ctx context.Context) (store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.storage != nil {
		return a.storage, nil
	}

	s, err := redis.NewClient(ctx, a.cfg.RedisURL, a.cfg.RedisPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	a.storage = s
	a.closers = append(a.closers, func() {
		if err := s.Close(); err != nil {
			logger.Warn(context.Background(), "failed to close redis client", "error", err)
		}
	})
	return s, nil
}

func (a *App) Registry(ctx context.Context) (registry.Service, error) {
	s, err := a.store(ctx)
	if err != nil {
		return nil, err
	}

	return registry.New(s), nil
}

func (a *App) Stats(ctx context.Context) (cli.Stats, error) {
	return a.store(ctx)
}

// Keystores returns an empty wallet used to generate new accounts.
func (a *App) Keystores() cli.Keystores {
	return wallet.New(nil, accountstate.New())
}

// Accounts loads the configured wallet without connecting to a provider.
func (a *App) Accounts(_ context.Context) (cli.Accounts, error) {
	return loadWallet(a.cfg, nil)
}

// loadWallet builds the wallet from private keys or keystore files.
func loadWallet(cfg config.Config, client wallet.ChainClient) (*wallet.Wallet, error) {
	w := wallet.New(client, accountstate.New(), wallet.WithConfirmationDepth(cfg.ConfirmationDepth))

	if cfg.WalletStoresAsPrivateKeys {
		return w, w.LoadPrivateKeys(cfg.WalletStores)
	}

	keystores := make([][]byte, 0, len(cfg.WalletStores))
	for _, path := range cfg.WalletStores {
		doc, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read keystore %s: %w", path, err)
		}
		keystores = append(keystores, doc)
	}
	if len(keystores) == 0 {
		return w, nil
	}

	return w, w.Decrypt(keystores, cfg.Password)
}

// Node builds the full node: provider client, wallet, economic manager,
// pending pool, router, scanner and the reconnect service around them.
func (a *App) Node(ctx context.Context) (cli.Node, error) {
	s, err := a.store(ctx)
	if err != nil {
		return nil, err
	}

	chain, err := ethereum.Dial(ctx, a.cfg.ProviderURLs[0])
	if err != nil {
		return nil, err
	}
	a.onClose(chain.Close)

	w, err := loadWallet(a.cfg, chain)
	if err != nil {
		return nil, err
	}
	if w.Len() == 0 {
		logger.Warn(ctx, "no wallet configured, the node will only observe")
	}

	oracle := gasstation.New(chain,
		gasstation.WithURL(a.cfg.GasStationURL),
		gasstation.WithHTTPClient(httptransport.NewClient(
			httptransport.WithTimeout(a.cfg.GasStationTimeout),
			httptransport.WithRetryLogging(),
		)),
	)
	manager := economic.NewManager(a.cfg.Strategy(), oracle, chain)

	var recon *reconnect.Service
	onPoolError := func(err error) {
		if recon != nil {
			recon.Notify(reconnect.Event{Kind: reconnect.Error, Err: err, Reason: err.Error()})
		}
	}

	var pool txpool.Pool
	if a.cfg.DirectTxPool {
		pool = txpool.NewDirect(chain, txpool.WithErrorHandler(onPoolError))
	} else {
		pool = txpool.New(chain, txpool.WithErrorHandler(onPoolError))
	}

	routerOpts := []router.Option{router.WithClaiming(a.cfg.Claiming)}
	if a.cfg.NATSURL != "" {
		notifier, err := messaging.Connect(ctx, a.cfg.NATSURL, a.cfg.NATSSubject)
		if err != nil {
			return nil, err
		}
		a.onClose(func() {
			if err := notifier.Close(); err != nil {
				logger.Warn(context.Background(), "failed to close nats connection", "error", err)
			}
		})
		routerOpts = append(routerOpts, router.WithNotifier(notifier))
	}

	rt := router.New(s, manager, w, pool, s, routerOpts...)
	scan := scanner.New(s, chain, rt,
		scanner.WithScanInterval(a.cfg.ScanInterval),
		scanner.WithConcurrency(a.cfg.ScanSpread),
	)

	node := timenode.New(scan, pool, rt, w, s, s,
		timenode.WithAutostart(a.cfg.Autostart),
		timenode.WithClaiming(a.cfg.Claiming),
	)

	recon, err = reconnect.New(chain, node, a.cfg.ProviderURLs, reconnect.WithMaxRetries(a.cfg.MaxRetries))
	if err != nil {
		return nil, err
	}

	return &runner{Node: node, reconnect: recon}, nil
}

// runner starts the node together with its reconnect service.
type runner struct {
	*timenode.Node
	reconnect *reconnect.Service
}

func (r *runner) Start(ctx context.Context) error {
	if err := r.Node.Start(ctx); err != nil {
		return err
	}

	if err := r.reconnect.Start(ctx); err != nil {
		r.Node.Close()
		return err
	}

	return nil
}

func (r *runner) Close() {
	r.reconnect.Close()
	r.Node.Close()
}
