package txpool

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/gabapcia/timenode/internal/accountstate"
	"github.com/gabapcia/timenode/internal/pkg/logger"
)

var (
	// ClaimedTopic is emitted by a scheduled request when it gets claimed.
	ClaimedTopic = crypto.Keccak256Hash([]byte("Claimed()"))

	// ExecutedTopic is emitted by a scheduled request when it gets executed.
	ExecutedTopic = crypto.Keccak256Hash([]byte("Executed(uint256,uint256,uint256)"))
)

// LogSubscriber is the part of the chain client the log pool needs.
type LogSubscriber interface {
	SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
}

type stream struct {
	op  accountstate.Operation
	sub ethereum.Subscription
}

// LogPool fills the pool from the claim and execute logs of pending transactions.
type LogPool struct {
	store

	client LogSubscriber

	lifecycle sync.Mutex
	streams   map[accountstate.Operation]*stream
	closeFunc func()
	wg        sync.WaitGroup
}

var _ Pool = (*LogPool)(nil)

// New creates a log based pool. It does nothing until Start is called.
func New(client LogSubscriber, opts ...Option) *LogPool {
	return &LogPool{
		store:   newStore(newConfig(opts)),
		client:  client,
		streams: make(map[accountstate.Operation]*stream),
	}
}

func topicFor(op accountstate.Operation) common.Hash {
	if op == accountstate.Execute {
		return ExecutedTopic
	}
	return ClaimedTopic
}

// Start subscribes to both topics and starts the sweep. A running pool is
// stopped first. If any subscription fails, nothing is left running.
func (p *LogPool) Start(ctx context.Context) error {
	if p.started() {
		if err := p.Stop(ctx); err != nil {
			return err
		}
	}

	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	ctx, cancel := context.WithCancel(ctx)

	streams := make(map[accountstate.Operation]*stream, 2)
	for _, op := range []accountstate.Operation{accountstate.Claim, accountstate.Execute} {
		ch := make(chan types.Log, 64)
		sub, err := p.client.SubscribeFilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: big.NewInt(int64(rpc.PendingBlockNumber)),
			ToBlock:   big.NewInt(int64(rpc.PendingBlockNumber)),
			Topics:    [][]common.Hash{{topicFor(op)}},
		}, ch)
		if err != nil {
			cancel()
			for _, s := range streams {
				unsubscribe(ctx, s.op.String(), s.sub)
			}
			return fmt.Errorf("subscribe %s logs: %w", op, err)
		}

		s := &stream{op: op, sub: sub}
		streams[op] = s
		p.consume(ctx, s, ch)
	}

	p.runSweep(ctx, &p.wg)

	p.streams = streams
	p.closeFunc = func() {
		cancel()
		p.wg.Wait()
	}

	logger.Info(ctx, "transaction pool started", "txpool.kind", "logs")
	return nil
}

// started reports whether a previous Start left anything behind, including
// a degraded pool whose streams were dropped.
func (p *LogPool) started() bool {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	return p.closeFunc != nil
}

func (p *LogPool) consume(ctx context.Context, s *stream, ch <-chan types.Log) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		for {
			select {
			case <-ctx.Done():
				return
			case err := <-s.sub.Err():
				if err == nil {
					// unsubscribed
					return
				}
				logger.Error(ctx, "transaction pool subscription failed",
					"txpool.operation", s.op.String(),
					"error", err,
				)
				p.drop(s)
				p.reportError(fmt.Errorf("%s log subscription: %w", s.op, err))
				return
			case l := <-ch:
				p.handleLog(ctx, s.op, l)
			}
		}
	}()
}

func (p *LogPool) drop(s *stream) {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	if p.streams[s.op] == s {
		delete(p.streams, s.op)
	}
}

func logKey(l types.Log) string {
	return fmt.Sprintf("%s:%d", l.TxHash.Hex(), l.Index)
}

func (p *LogPool) handleLog(ctx context.Context, op accountstate.Operation, l types.Log) {
	key := logKey(l)
	if l.Removed {
		p.remove(key)
		return
	}

	tx, _, err := p.client.TransactionByHash(ctx, l.TxHash)
	if err != nil {
		logger.Warn(ctx, "pending transaction lookup failed",
			"txpool.tx_hash", l.TxHash.Hex(),
			"error", err,
		)
		return
	}

	p.upsert(key, Entry{
		To:        l.Address,
		GasPrice:  tx.GasPrice(),
		Arrival:   p.cfg.now(),
		Operation: op,
	})
}

// Stop unsubscribes both streams independently and cancels the sweep.
func (p *LogPool) Stop(ctx context.Context) error {
	p.lifecycle.Lock()
	streams := p.streams
	p.streams = make(map[accountstate.Operation]*stream)
	closeFn := p.closeFunc
	p.closeFunc = nil
	p.lifecycle.Unlock()

	for _, s := range streams {
		unsubscribe(ctx, s.op.String(), s.sub)
	}

	if closeFn != nil {
		closeFn()
	}

	logger.Info(ctx, "transaction pool stopped", "txpool.kind", "logs")
	return nil
}

// Running reports whether both the claim and the execute subscriptions are active.
func (p *LogPool) Running() bool {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	_, claim := p.streams[accountstate.Claim]
	_, execute := p.streams[accountstate.Execute]
	return claim && execute
}

// unsubscribe drops sub, logging a panic from a broken transport instead of
// propagating it so the remaining streams can still be released.
func unsubscribe(ctx context.Context, name string, sub ethereum.Subscription) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "transaction pool unsubscribe failed",
				"txpool.stream", name,
				"error", r,
			)
		}
	}()

	sub.Unsubscribe()
}
