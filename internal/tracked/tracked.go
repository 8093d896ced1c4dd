// Package tracked models a scheduled transaction watched by the node: its
// economic terms, its claim and execution windows, and the window state
// derived from the current block number or timestamp.
package tracked

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNotLoaded is returned by Snapshot accessors that need chain data before
// the first successful Refresh.
var ErrNotLoaded = errors.New("tracked transaction not loaded")

// TemporalUnit tells whether a transaction's windows are block numbers or unix timestamps.
type TemporalUnit uint8

const (
	Blocks     TemporalUnit = 1
	Timestamps TemporalUnit = 2
)

func (u TemporalUnit) String() string {
	switch u {
	case Blocks:
		return "blocks"
	case Timestamps:
		return "timestamps"
	default:
		return "unknown"
	}
}

// Transaction is the read surface of a scheduled transaction used by the
// economic engine and the router. Implemented by *Snapshot and by test doubles.
type Transaction interface {
	Address() common.Address

	Bounty() *big.Int
	GasPrice() *big.Int
	CallGas() *big.Int
	RequiredDeposit() *big.Int

	ClaimedBy() common.Address
	IsClaimed() bool
	IsClaimedBy(account common.Address) bool
	WasCalled() bool
	WasSuccessful() bool
	IsCancelled() bool

	TemporalUnit() TemporalUnit
	ClaimWindowStart() *big.Int
	ClaimWindowEnd() *big.Int
	FreezePeriodEnd() *big.Int
	WindowStart() *big.Int
	ReservedWindowEnd() *big.Int
	ExecutionWindowEnd() *big.Int

	ClaimData() []byte
	ExecuteData() []byte

	// Now returns the current block number or timestamp in the transaction's temporal unit.
	Now(ctx context.Context) (*big.Int, error)
	// ClaimPaymentModifier returns the percentage of the bounty a claim made now would earn.
	ClaimPaymentModifier(ctx context.Context) (*big.Int, error)
	// Refresh reloads the transaction's fields from chain.
	Refresh(ctx context.Context) error
}

// Fields is the raw state of a scheduled transaction as stored on chain.
type Fields struct {
	ClaimedBy       common.Address
	Owner           common.Address
	ToAddress       common.Address
	IsCancelled     bool
	WasCalled       bool
	WasSuccessful   bool
	Bounty          *big.Int
	ClaimDeposit    *big.Int
	RequiredDeposit *big.Int
	CallGas         *big.Int
	CallValue       *big.Int
	GasPrice        *big.Int
	ClaimWindowSize *big.Int
	FreezePeriod    *big.Int
	ReservedWindow  *big.Int
	WindowSize      *big.Int
	WindowStart     *big.Int
	TemporalUnit    TemporalUnit
	PaymentModifier uint8
}

// Source reads scheduled transaction state from chain.
type Source interface {
	RequestData(ctx context.Context, address common.Address) (Fields, error)
	Now(ctx context.Context, unit TemporalUnit) (*big.Int, error)
}

var (
	// claim() and execute() selectors of the scheduled request contract.
	claimSelector   = []byte{0x4e, 0x71, 0xd9, 0x2d}
	executeSelector = []byte{0x61, 0x46, 0x19, 0x54}
)

// ClaimSelector returns the 4 byte selector of claim().
func ClaimSelector() []byte { return append([]byte(nil), claimSelector...) }

// ExecuteSelector returns the 4 byte selector of execute().
func ExecuteSelector() []byte { return append([]byte(nil), executeSelector...) }

// Snapshot is a Transaction backed by a Source. Accessors return the values
// of the last Refresh; before the first one they return zero values.
type Snapshot struct {
	address common.Address
	source  Source

	mu     sync.RWMutex
	fields Fields
	loaded bool
}

var _ Transaction = (*Snapshot)(nil)

// NewSnapshot returns an unloaded Snapshot for address.
func NewSnapshot(address common.Address, source Source) *Snapshot {
	return &Snapshot{
		address: address,
		source:  source,
	}
}

// NewSnapshotFromFields returns a loaded Snapshot holding fields.
func NewSnapshotFromFields(address common.Address, source Source, fields Fields) *Snapshot {
	return &Snapshot{
		address: address,
		source:  source,
		fields:  fields,
		loaded:  true,
	}
}

func (s *Snapshot) Refresh(ctx context.Context) error {
	fields, err := s.source.RequestData(ctx, s.address)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fields = fields
	s.loaded = true
	return nil
}

// Loaded reports whether at least one Refresh succeeded.
func (s *Snapshot) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

func (s *Snapshot) read() Fields {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fields
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

func (s *Snapshot) Address() common.Address    { return s.address }
func (s *Snapshot) Bounty() *big.Int           { return orZero(s.read().Bounty) }
func (s *Snapshot) GasPrice() *big.Int         { return orZero(s.read().GasPrice) }
func (s *Snapshot) CallGas() *big.Int          { return orZero(s.read().CallGas) }
func (s *Snapshot) RequiredDeposit() *big.Int  { return orZero(s.read().RequiredDeposit) }
func (s *Snapshot) ClaimedBy() common.Address  { return s.read().ClaimedBy }
func (s *Snapshot) WasCalled() bool            { return s.read().WasCalled }
func (s *Snapshot) WasSuccessful() bool        { return s.read().WasSuccessful }
func (s *Snapshot) IsCancelled() bool          { return s.read().IsCancelled }
func (s *Snapshot) TemporalUnit() TemporalUnit { return s.read().TemporalUnit }
func (s *Snapshot) ClaimData() []byte          { return ClaimSelector() }
func (s *Snapshot) ExecuteData() []byte        { return ExecuteSelector() }

func (s *Snapshot) IsClaimed() bool {
	return s.read().ClaimedBy != (common.Address{})
}

func (s *Snapshot) IsClaimedBy(account common.Address) bool {
	claimedBy := s.read().ClaimedBy
	return claimedBy != (common.Address{}) && claimedBy == account
}

func (s *Snapshot) WindowStart() *big.Int { return orZero(s.read().WindowStart) }

// ClaimWindowEnd is windowStart - freezePeriod.
func (s *Snapshot) ClaimWindowEnd() *big.Int {
	f := s.read()
	return new(big.Int).Sub(orZero(f.WindowStart), orZero(f.FreezePeriod))
}

// ClaimWindowStart is claimWindowEnd - claimWindowSize.
func (s *Snapshot) ClaimWindowStart() *big.Int {
	f := s.read()
	end := new(big.Int).Sub(orZero(f.WindowStart), orZero(f.FreezePeriod))
	return end.Sub(end, orZero(f.ClaimWindowSize))
}

func (s *Snapshot) FreezePeriodEnd() *big.Int { return s.WindowStart() }

func (s *Snapshot) ReservedWindowEnd() *big.Int {
	f := s.read()
	return new(big.Int).Add(orZero(f.WindowStart), orZero(f.ReservedWindow))
}

func (s *Snapshot) ExecutionWindowEnd() *big.Int {
	f := s.read()
	return new(big.Int).Add(orZero(f.WindowStart), orZero(f.WindowSize))
}

func (s *Snapshot) Now(ctx context.Context) (*big.Int, error) {
	return s.source.Now(ctx, s.TemporalUnit())
}

// ClaimPaymentModifier returns the stored modifier once claimed. Before that
// it grows linearly from 0 at the claim window start to 100 at its end.
func (s *Snapshot) ClaimPaymentModifier(ctx context.Context) (*big.Int, error) {
	if !s.Loaded() {
		return nil, ErrNotLoaded
	}

	f := s.read()
	if f.ClaimedBy != (common.Address{}) {
		return big.NewInt(int64(f.PaymentModifier)), nil
	}

	now, err := s.Now(ctx)
	if err != nil {
		return nil, err
	}

	return PaymentModifierAt(now, s.ClaimWindowStart(), orZero(f.ClaimWindowSize)), nil
}

// PaymentModifierAt computes elapsed*100/claimWindowSize, clamped to [0, 100].
func PaymentModifierAt(now, claimWindowStart, claimWindowSize *big.Int) *big.Int {
	hundred := big.NewInt(100)
	if claimWindowSize.Sign() <= 0 {
		return hundred
	}

	elapsed := new(big.Int).Sub(now, claimWindowStart)
	if elapsed.Sign() <= 0 {
		return new(big.Int)
	}

	modifier := elapsed.Mul(elapsed, hundred)
	modifier.Div(modifier, claimWindowSize)
	if modifier.Cmp(hundred) > 0 {
		return hundred
	}
	return modifier
}
