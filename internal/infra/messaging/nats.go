// Package messaging publishes route outcomes to NATS so other services can
// follow what the node claimed and executed.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/router"
)

// Publisher is the subset of *nats.Conn used by Notifier.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Notifier implements router.Notifier. Outcomes go to "<subject>.<action>".
type Notifier struct {
	conn    Publisher
	subject string
	close   func() error
}

var _ router.Notifier = (*Notifier)(nil)

// Connect dials the NATS server at url. The connection reconnects on its own
// and reports state changes through the logger.
func Connect(ctx context.Context, url, subject string) (*Notifier, error) {
	conn, err := nats.Connect(url,
		nats.Name("timenode"),
		nats.Timeout(5*time.Second),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn(ctx, "nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info(ctx, "nats reconnected", "nats.url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Info(ctx, "nats connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	n := NewNotifier(conn, subject)
	n.close = conn.Drain
	return n, nil
}

// NewNotifier publishes through conn under subject.
func NewNotifier(conn Publisher, subject string) *Notifier {
	return &Notifier{
		conn:    conn,
		subject: subject,
	}
}

func (n *Notifier) Publish(ctx context.Context, outcome router.Outcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return err
	}

	subject := n.subject
	if outcome.ActionName != "" {
		subject = subject + "." + outcome.ActionName
	}

	if err := n.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	logger.Debug(ctx, "outcome published", "nats.subject", subject, "tx.address", outcome.Address.Hex())
	return nil
}

// Close flushes pending messages and closes a connection opened by Connect.
func (n *Notifier) Close() error {
	if n.close == nil {
		return nil
	}
	return n.close()
}
