package ethereum

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/pkg/x/chflow"
	"github.com/gabapcia/timenode/internal/reconnect"
)

// ErrStalled is reported when the provider stops sending new heads.
var ErrStalled = errors.New("provider stopped sending new heads")

// Events streams failures of the active provider. The same channel is kept
// across switches and is never closed.
func (c *Client) Events() <-chan reconnect.Event {
	return c.events
}

func (c *Client) startWatching(sub ethereum.Subscription, heads <-chan *types.Header) {
	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.stopWatch = cancel
	c.mu.Unlock()

	c.watchWG.Add(1)
	go func() {
		defer c.watchWG.Done()
		c.monitor(ctx, sub, heads)
	}()
}

func (c *Client) stopWatching() {
	c.mu.Lock()
	stop := c.stopWatch
	c.stopWatch = nil
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
	c.watchWG.Wait()
}

// monitor turns the head subscription of one connection into connection
// events. It emits at most one event and returns.
func (c *Client) monitor(ctx context.Context, sub ethereum.Subscription, heads <-chan *types.Header) {
	defer sub.Unsubscribe()

	var (
		timer   *time.Timer
		stalled <-chan time.Time
	)
	if c.cfg.stallTimeout > 0 {
		timer = time.NewTimer(c.cfg.stallTimeout)
		defer timer.Stop()
		stalled = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-heads:
			if timer != nil {
				timer.Reset(c.cfg.stallTimeout)
			}
		case <-stalled:
			c.emit(ctx, reconnect.Event{Kind: reconnect.Error, Err: ErrStalled, Reason: ErrStalled.Error()})
			return
		case err, ok := <-sub.Err():
			c.emitSubscriptionEnd(ctx, err, ok)
			return
		}
	}
}

func (c *Client) emitSubscriptionEnd(ctx context.Context, err error, ok bool) {
	if !ok || err == nil {
		c.emit(ctx, reconnect.Event{Kind: reconnect.End, Reason: "head subscription closed"})
		return
	}

	c.emit(ctx, reconnect.Event{Kind: reconnect.Error, Err: err, Reason: err.Error()})
}

func (c *Client) emit(ctx context.Context, ev reconnect.Event) {
	if ctx.Err() != nil {
		return
	}

	logger.Warn(ctx, "provider connection event",
		"provider.url", c.URL(),
		"event.kind", ev.Kind.String(),
		"event.reason", ev.Reason,
	)

	if !chflow.TrySend(c.events, ev) {
		logger.Debug(ctx, "connection event dropped, previous one still pending", "event.kind", ev.Kind.String())
	}
}
