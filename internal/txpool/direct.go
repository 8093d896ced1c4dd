package txpool

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/timenode/internal/accountstate"
	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/tracked"
)

// PendingSubscriber streams full pending transactions from the node mempool.
type PendingSubscriber interface {
	SubscribePendingTransactions(ctx context.Context, ch chan<- *types.Transaction) (ethereum.Subscription, error)
}

// DirectPool fills the pool by matching claim and execute calldata in the
// mempool instead of waiting for logs.
type DirectPool struct {
	store

	client PendingSubscriber

	lifecycle sync.Mutex
	sub       ethereum.Subscription
	closeFunc func()
	wg        sync.WaitGroup
}

var _ Pool = (*DirectPool)(nil)

// NewDirect creates a mempool based pool. It does nothing until Start is called.
func NewDirect(client PendingSubscriber, opts ...Option) *DirectPool {
	return &DirectPool{
		store:  newStore(newConfig(opts)),
		client: client,
	}
}

func (p *DirectPool) Start(ctx context.Context) error {
	if p.started() {
		if err := p.Stop(ctx); err != nil {
			return err
		}
	}

	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	ctx, cancel := context.WithCancel(ctx)

	ch := make(chan *types.Transaction, 256)
	sub, err := p.client.SubscribePendingTransactions(ctx, ch)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribe pending transactions: %w", err)
	}

	p.sub = sub
	p.consume(ctx, sub, ch)
	p.runSweep(ctx, &p.wg)

	p.closeFunc = func() {
		cancel()
		p.wg.Wait()
	}

	logger.Info(ctx, "transaction pool started", "txpool.kind", "direct")
	return nil
}

func (p *DirectPool) started() bool {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	return p.closeFunc != nil
}

func (p *DirectPool) consume(ctx context.Context, sub ethereum.Subscription, ch <-chan *types.Transaction) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		for {
			select {
			case <-ctx.Done():
				return
			case err := <-sub.Err():
				if err == nil {
					return
				}
				logger.Error(ctx, "transaction pool subscription failed",
					"txpool.operation", "pending",
					"error", err,
				)
				p.lifecycle.Lock()
				if p.sub == sub {
					p.sub = nil
				}
				p.lifecycle.Unlock()
				p.reportError(fmt.Errorf("pending transaction subscription: %w", err))
				return
			case tx := <-ch:
				p.handleTransaction(tx)
			}
		}
	}()
}

// operationOf classifies calldata by its selector.
func operationOf(data []byte) (accountstate.Operation, bool) {
	if len(data) < 4 {
		return 0, false
	}

	switch selector := data[:4]; {
	case bytes.Equal(selector, tracked.ClaimSelector()):
		return accountstate.Claim, true
	case bytes.Equal(selector, tracked.ExecuteSelector()):
		return accountstate.Execute, true
	default:
		return 0, false
	}
}

func (p *DirectPool) handleTransaction(tx *types.Transaction) {
	if tx == nil || tx.To() == nil {
		return
	}

	op, ok := operationOf(tx.Data())
	if !ok {
		return
	}

	p.upsert(tx.Hash().Hex(), Entry{
		To:        *tx.To(),
		GasPrice:  tx.GasPrice(),
		Arrival:   p.cfg.now(),
		Operation: op,
	})
}

func (p *DirectPool) Stop(ctx context.Context) error {
	p.lifecycle.Lock()
	sub := p.sub
	p.sub = nil
	closeFn := p.closeFunc
	p.closeFunc = nil
	p.lifecycle.Unlock()

	if sub != nil {
		unsubscribe(ctx, "pending", sub)
	}

	if closeFn != nil {
		closeFn()
	}

	logger.Info(ctx, "transaction pool stopped", "txpool.kind", "direct")
	return nil
}

func (p *DirectPool) Running() bool {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	return p.sub != nil
}
