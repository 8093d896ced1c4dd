// Package retry wraps avast/retry-go behind a small interface so chain reads,
// receipt polling and provider probes share one retry policy shape.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithFixedDelay(time.Second))
//	err := r.Execute(ctx, func() error { return probe(ctx) })
package retry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts run out or ctx is done.
type Retry interface {
	// Execute runs operation with the configured policy. The operation must be
	// safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	fixed       bool
	lastErrOnly bool
	retryIf     func(error) bool
}

// Option configures a Retry built by New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with exponential backoff. Defaults: 3 attempts, 1s base
// delay, 5s max delay, only the last error returned.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.BackOffDelay
	if r.cfg.fixed {
		delayType = retry.FixedDelay
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}
	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	return retry.Do(operation, options...)
}

// Permanent marks err so Execute stops retrying and returns it.
func Permanent(err error) error {
	return retry.Unrecoverable(err)
}

// IsPermanent reports whether err was produced by Permanent.
func IsPermanent(err error) bool {
	return !retry.IsRecoverable(err)
}

// WithAttempts sets the total number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff growth.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithFixedDelay waits exactly d between attempts instead of backing off.
// Used for polling loops such as receipt confirmation.
func WithFixedDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
		c.fixed = true
	}
}

// WithLastErrorOnly controls whether all attempt errors are joined or only the last one is returned.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf retries only the errors for which fn returns true.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// Unwrap returns the individual attempt errors of an Execute failure when
// WithLastErrorOnly(false) is in effect.
func Unwrap(err error) []error {
	var errs retry.Error
	if errors.As(err, &errs) {
		return errs.WrappedErrors()
	}
	return []error{err}
}
