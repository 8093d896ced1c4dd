// Package scanner periodically walks the tracked-address cache, refreshes
// every tracked transaction from chain and hands it to the router. At most one
// route runs per address at any time. Routes outlive Stop: a restart never
// interrupts a send that is already on its way, only Close does.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/pkg/telemetry"
	"github.com/gabapcia/timenode/internal/pkg/x/chflow"
	"github.com/gabapcia/timenode/internal/tracked"
)

// ErrServiceAlreadyStarted is returned if Start is called on a scanning service.
var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	defaultScanInterval = 4 * time.Second
	defaultConcurrency  = 50
)

// CacheState is the outcome of one cache scan.
type CacheState uint8

const (
	Empty CacheState = iota + 1
	Refreshed
)

func (s CacheState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Refreshed:
		return "refreshed"
	default:
		return "unknown"
	}
}

type closeFunc func()

// Service scans the cache on a fixed interval.
type Service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	cache  Cache
	loader Loader
	router Router

	scanInterval time.Duration
	slots        chan struct{}
	tracer       trace.Tracer

	routesMu sync.Mutex
	routes   map[common.Address]struct{}
	routing  sync.WaitGroup

	// life bounds every route; cancelled by Close only.
	life     context.Context
	shutdown context.CancelFunc
}

type config struct {
	scanInterval time.Duration
	concurrency  int
}

// Option configures the scanner.
type Option func(*config)

// WithScanInterval sets the delay between two scans. Default 4s.
func WithScanInterval(d time.Duration) Option {
	return func(c *config) {
		c.scanInterval = d
	}
}

// WithConcurrency caps how many routes may run at once. Default 50.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.concurrency = n
	}
}

// New creates a scanner. It does nothing until Start is called.
func New(cache Cache, loader Loader, router Router, opts ...Option) *Service {
	cfg := config{
		scanInterval: defaultScanInterval,
		concurrency:  defaultConcurrency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.concurrency <= 0 {
		cfg.concurrency = 1
	}

	life, shutdown := context.WithCancel(context.Background())

	return &Service{
		life:         life,
		shutdown:     shutdown,
		cache:        cache,
		loader:       loader,
		router:       router,
		scanInterval: cfg.scanInterval,
		slots:        make(chan struct{}, cfg.concurrency),
		tracer:       telemetry.Tracer(),
		routes:       make(map[common.Address]struct{}),
	}
}

// Start runs a cache scan every scan interval until Stop is called or ctx
// ends. Routes started by the loop run under ctx and survive Stop.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	routeCtx, stopRoutes := context.WithCancel(ctx)
	unlink := context.AfterFunc(s.life, stopRoutes)
	var gen sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(s.scanInterval)
		defer ticker.Stop()

		for {
			if _, err := s.scan(ctx, routeCtx, &gen); err != nil && ctx.Err() == nil {
				logger.Error(ctx, "cache scan failed", "error", err)
			}

			if _, ok := chflow.Receive(ctx, ticker.C); !ok {
				break
			}
		}

		// routes of this run keep routeCtx until they finish
		go func() {
			gen.Wait()
			unlink()
			stopRoutes()
		}()
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true

	logger.Info(ctx, "scanning started", "scanner.interval", s.scanInterval.String())
	return nil
}

// Stop halts the scan loop. Routes already in flight keep running. It is safe
// to call on a stopped service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// Close stops the loop, cancels every route in flight and waits for them.
// The service can be started again afterwards.
func (s *Service) Close() {
	s.Stop()

	s.mu.Lock()
	s.shutdown()
	s.life, s.shutdown = context.WithCancel(context.Background())
	s.mu.Unlock()

	s.routing.Wait()
}

// Scanning reports whether the scan loop is running.
func (s *Service) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isStarted
}

// ScanCache loads every tracked address that still has a cache entry and
// routes it in the background. It does not wait for the routes.
func (s *Service) ScanCache(ctx context.Context) (CacheState, error) {
	s.mu.Lock()
	life := s.life
	s.mu.Unlock()

	routeCtx, stopRoutes := context.WithCancel(ctx)
	unlink := context.AfterFunc(life, stopRoutes)
	var gen sync.WaitGroup

	state, err := s.scan(ctx, routeCtx, &gen)
	go func() {
		gen.Wait()
		unlink()
		stopRoutes()
	}()
	return state, err
}

// scan reads the cache under ctx and routes under routeCtx. Every route it
// launches is counted in gen.
func (s *Service) scan(ctx, routeCtx context.Context, gen *sync.WaitGroup) (CacheState, error) {
	empty, err := s.cache.IsEmpty(ctx)
	if err != nil {
		return 0, fmt.Errorf("check cache: %w", err)
	}
	if empty {
		return Empty, nil
	}

	addresses, err := s.cache.Stored(ctx)
	if err != nil {
		return 0, fmt.Errorf("list cache: %w", err)
	}

	for _, address := range addresses {
		_, ok, err := s.cache.Get(ctx, address)
		if err != nil {
			logger.Warn(ctx, "cache lookup failed",
				"tx.address", address.Hex(),
				"error", err,
			)
			continue
		}
		if !ok {
			continue
		}

		tx, err := s.loader.Load(ctx, address)
		if err != nil {
			logger.Warn(ctx, "could not load tracked transaction",
				"tx.address", address.Hex(),
				"error", err,
			)
			continue
		}

		s.routing.Add(1)
		gen.Add(1)
		go func() {
			defer s.routing.Done()
			defer gen.Done()
			s.route(routeCtx, tx)
		}()
	}

	return Refreshed, nil
}

// acquire marks address as in flight. It returns false if it already was.
func (s *Service) acquire(address common.Address) bool {
	s.routesMu.Lock()
	defer s.routesMu.Unlock()

	if _, ok := s.routes[address]; ok {
		return false
	}
	s.routes[address] = struct{}{}
	return true
}

func (s *Service) release(address common.Address) {
	s.routesMu.Lock()
	defer s.routesMu.Unlock()

	delete(s.routes, address)
}

// InFlight reports whether address is currently being routed.
func (s *Service) InFlight(address common.Address) bool {
	s.routesMu.Lock()
	defer s.routesMu.Unlock()

	_, ok := s.routes[address]
	return ok
}

func (s *Service) route(ctx context.Context, tx tracked.Transaction) {
	address := tx.Address()
	if !s.acquire(address) {
		logger.Debug(ctx, "routing in progress, skipping", "tx.address", address.Hex())
		return
	}
	defer s.release(address)

	if !chflow.Send(ctx, s.slots, struct{}{}) {
		return
	}
	defer func() { <-s.slots }()

	ctx, span := s.tracer.Start(ctx, "scanner.route",
		trace.WithAttributes(attribute.String("tx.address", address.Hex())),
	)
	defer span.End()

	if err := tx.Refresh(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "refresh failed")
		logger.Warn(ctx, "could not refresh tracked transaction",
			"tx.address", address.Hex(),
			"error", err,
		)
		return
	}

	if err := s.router.Route(ctx, tx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "route failed")
		logger.Error(ctx, "routing failed",
			"tx.address", address.Hex(),
			"error", err,
		)
	}
}
