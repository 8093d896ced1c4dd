// Package reconnect keeps the node attached to a working provider. It listens
// to connection events and fails over through the configured provider URLs,
// restarting the scanning loops after every successful switch.
package reconnect

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/pkg/x/chflow"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrNoProviderURLs is returned by New when there is nothing to fail over to.
	ErrNoProviderURLs = errors.New("no provider urls")

	// ErrLogFiltersUnsupported is returned when a provider does not serve log filters.
	ErrLogFiltersUnsupported = errors.New("provider does not support log filters")
)

const (
	defaultMaxRetries = 30
	defaultRetryUnit  = time.Second
	defaultCooldown   = 10 * time.Second
)

// EventKind tells why a connection event fired.
type EventKind uint8

const (
	Error EventKind = iota + 1
	End
)

func (k EventKind) String() string {
	switch k {
	case Error:
		return "error"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Event is a connection failure reported by the active provider.
type Event struct {
	Kind   EventKind
	Err    error
	Reason string
}

// Connection is the swappable provider connection.
type Connection interface {
	// Switch replaces the active provider with the one at url.
	Switch(ctx context.Context, url string) error
	// SupportsLogFilters reports whether the active provider serves log filters.
	SupportsLogFilters(ctx context.Context) (bool, error)
	// Events streams failures of the active provider. The channel may change
	// after a Switch.
	Events() <-chan Event
}

// Scanning is the set of loops restarted after a switch.
type Scanning interface {
	StartScanning(ctx context.Context) error
	StopScanning(ctx context.Context) error
}

// State is where the service stands.
type State uint8

const (
	Stable State = iota + 1
	Reconnecting
	Reconnected
	Failed
)

func (s State) String() string {
	switch s {
	case Stable:
		return "stable"
	case Reconnecting:
		return "reconnecting"
	case Reconnected:
		return "reconnected"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Message is the outcome of one reconnect attempt.
type Message uint8

const (
	MsgReconnected Message = iota + 1
	MsgAlreadyReconnected
	MsgMaxAttempts
	MsgReconnecting
	MsgFail
)

func (m Message) String() string {
	switch m {
	case MsgReconnected:
		return "reconnected"
	case MsgAlreadyReconnected:
		return "already reconnected"
	case MsgMaxAttempts:
		return "max attempts reached"
	case MsgReconnecting:
		return "reconnecting"
	case MsgFail:
		return "reconnect failed"
	default:
		return "unknown"
	}
}

type config struct {
	maxRetries int
	retryUnit  time.Duration
	cooldown   time.Duration
}

// Option configures the service.
type Option func(*config)

// WithMaxRetries sets how many consecutive failed attempts are tolerated
// before giving up. Default 30.
func WithMaxRetries(n int) Option {
	return func(c *config) {
		c.maxRetries = n
	}
}

// WithRetryUnit sets the backoff step: attempt n waits n times this. Default 1s.
func WithRetryUnit(d time.Duration) Option {
	return func(c *config) {
		c.retryUnit = d
	}
}

// WithCooldown sets how long a fresh reconnect swallows further events. Default 10s.
func WithCooldown(d time.Duration) Option {
	return func(c *config) {
		c.cooldown = d
	}
}

// Service drives the failover. All state lives behind mu.
type Service struct {
	conn     Connection
	scanning Scanning
	urls     []string
	cfg      config

	mu           sync.Mutex
	isStarted    bool
	ctx          context.Context
	cancel       context.CancelFunc
	tries        int
	reconnecting bool
	reconnected  bool
	failed       bool
	timers       map[*time.Timer]struct{}
	disarm       context.CancelFunc
	wg           sync.WaitGroup
}

// New creates a reconnect service over urls, tried in order.
func New(conn Connection, scanning Scanning, urls []string, opts ...Option) (*Service, error) {
	if len(urls) == 0 {
		return nil, ErrNoProviderURLs
	}

	cfg := config{
		maxRetries: defaultMaxRetries,
		retryUnit:  defaultRetryUnit,
		cooldown:   defaultCooldown,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Service{
		conn:     conn,
		scanning: scanning,
		urls:     append([]string(nil), urls...),
		cfg:      cfg,
		timers:   make(map[*time.Timer]struct{}),
	}, nil
}

// Start arms the event listener on the active connection. A restart begins
// from a clean state, even after Failed.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	s.tries = 0
	s.failed = false
	s.reconnecting = false
	s.reconnected = false

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.armLocked()
	s.isStarted = true
	return nil
}

// Close stops the listener and every scheduled attempt.
func (s *Service) Close() {
	s.mu.Lock()
	if !s.isStarted {
		s.mu.Unlock()
		return
	}

	s.cancel()
	for t := range s.timers {
		if t.Stop() {
			s.wg.Done()
		}
		delete(s.timers, t)
	}
	s.disarm = nil
	s.isStarted = false
	s.mu.Unlock()

	s.wg.Wait()
}

// State returns the current state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.failed:
		return Failed
	case s.reconnecting:
		return Reconnecting
	case s.reconnected:
		return Reconnected
	default:
		return Stable
	}
}

// Tries returns the number of consecutive failed attempts.
func (s *Service) Tries() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tries
}

// Notify feeds an event that was not seen on the connection channel, such as
// a dropped mempool subscription.
func (s *Service) Notify(ev Event) {
	s.onEvent(ev)
}

// armLocked listens on the current event channel, replacing any previous
// listener. Callers hold mu.
func (s *Service) armLocked() {
	if s.disarm != nil {
		s.disarm()
	}

	ctx, cancel := context.WithCancel(s.ctx)
	s.disarm = cancel
	events := s.conn.Events()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			ev, ok := chflow.Receive(ctx, events)
			if !ok {
				return
			}
			s.onEvent(ev)
		}
	}()
}

// onEvent schedules an attempt unless one is running or the service gave up.
// It reports whether an attempt was scheduled.
func (s *Service) onEvent(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isStarted {
		return false
	}

	logger.Debug(s.ctx, "connection event",
		"connection.event", ev.Kind.String(),
		"connection.reason", ev.Reason,
		"error", ev.Err,
	)

	if s.reconnecting || s.failed {
		return false
	}

	s.scheduleLocked(time.Duration(s.tries) * s.cfg.retryUnit)
	return true
}

func (s *Service) scheduleLocked(delay time.Duration) {
	var t *time.Timer

	s.wg.Add(1)
	t = time.AfterFunc(delay, func() {
		defer s.wg.Done()

		s.mu.Lock()
		delete(s.timers, t)
		ctx := s.ctx
		s.mu.Unlock()

		if ctx.Err() != nil {
			return
		}

		msg := s.Handle(ctx)
		logger.Debug(ctx, "reconnect attempt", "reconnect.result", msg.String())
	})
	s.timers[t] = struct{}{}
}

// cooldownLocked clears the reconnected flag once the cooldown elapses.
func (s *Service) cooldownLocked() {
	var t *time.Timer

	s.wg.Add(1)
	t = time.AfterFunc(s.cfg.cooldown, func() {
		defer s.wg.Done()

		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.timers, t)
		s.reconnected = false
	})
	s.timers[t] = struct{}{}
}

// Handle runs one reconnect attempt.
func (s *Service) Handle(ctx context.Context) Message {
	s.mu.Lock()
	switch {
	case s.reconnected:
		s.mu.Unlock()
		return MsgAlreadyReconnected
	case s.failed:
		s.mu.Unlock()
		return MsgMaxAttempts
	case s.tries >= s.cfg.maxRetries:
		s.failed = true
		s.mu.Unlock()

		if err := s.scanning.StopScanning(ctx); err != nil {
			logger.Error(ctx, "could not stop scanning", "error", err)
		}
		logger.Error(ctx, "giving up on reconnecting", "reconnect.tries", s.cfg.maxRetries)
		return MsgMaxAttempts
	case s.reconnecting:
		s.mu.Unlock()
		return MsgReconnecting
	}

	s.reconnecting = true
	url := s.urls[s.tries%len(s.urls)]
	s.mu.Unlock()

	if err := s.reconnect(ctx, url); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.reconnecting = false
		s.tries++
		logger.Error(ctx, "reconnect failed",
			"reconnect.tries", s.tries,
			"error", err,
		)
		if s.isStarted {
			s.scheduleLocked(time.Duration(s.tries) * s.cfg.retryUnit)
		}
		return MsgFail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tries = 0
	s.reconnecting = false
	if s.isStarted {
		s.armLocked()
	}
	// a cancelled attempt leaves no cooldown behind for Close to wait on
	if ctx.Err() == nil {
		s.reconnected = true
		s.cooldownLocked()
	}

	logger.Info(ctx, "reconnected", "provider.url", url)
	return MsgReconnected
}

func (s *Service) reconnect(ctx context.Context, url string) error {
	logger.Debug(ctx, "switching provider", "provider.url", url)

	if err := s.conn.Switch(ctx, url); err != nil {
		return fmt.Errorf("switch to %s: %w", url, err)
	}

	ok, err := s.conn.SupportsLogFilters(ctx)
	if err != nil {
		return fmt.Errorf("probe %s: %w", url, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", url, ErrLogFiltersUnsupported)
	}

	if err := s.scanning.StartScanning(ctx); err != nil {
		return fmt.Errorf("restart scanning: %w", err)
	}
	return nil
}
