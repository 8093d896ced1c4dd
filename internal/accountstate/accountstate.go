// Package accountstate tracks, per (account, target, operation), where the
// latest send attempt stands. The wallet uses it to serialize sends: no entry
// means the account is free to send that operation to that target.
package accountstate

import (
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInProgress is returned by TryAcquire when some account already has a
	// pending send for the same target and operation.
	ErrInProgress = errors.New("operation already in progress for target")

	// ErrAccountBusy is returned by TryAcquire when the account already has a
	// pending send of any kind.
	ErrAccountBusy = errors.New("account has a pending transaction")
)

// Operation is the kind of call sent to a scheduled transaction.
type Operation uint8

const (
	Claim Operation = iota + 1
	Execute
)

func (o Operation) String() string {
	switch o {
	case Claim:
		return "claim"
	case Execute:
		return "execute"
	default:
		return "unknown"
	}
}

// State is the progress of one send attempt.
type State uint8

const (
	Pending State = iota + 1
	Sent
	Confirmed
	Error
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Sent:
		return "sent"
	case Confirmed:
		return "confirmed"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

type key struct {
	target common.Address
	op     Operation
}

// Tracker is safe for concurrent use.
type Tracker struct {
	mu     sync.RWMutex
	states map[common.Address]map[key]State
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{
		states: make(map[common.Address]map[key]State),
	}
}

// Set records state for the (account, target, op) triple.
func (t *Tracker) Set(account, target common.Address, op Operation, state State) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.set(account, target, op, state)
}

func (t *Tracker) set(account, target common.Address, op Operation, state State) {
	byTarget, ok := t.states[account]
	if !ok {
		byTarget = make(map[key]State)
		t.states[account] = byTarget
	}

	byTarget[key{target: target, op: op}] = state
}

// Get returns the state recorded for the triple, if any.
func (t *Tracker) Get(account, target common.Address, op Operation) (State, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	state, ok := t.states[account][key{target: target, op: op}]
	return state, ok
}

func (t *Tracker) anyAccountIn(target common.Address, op Operation, state State) bool {
	k := key{target: target, op: op}
	for _, byTarget := range t.states {
		if byTarget[k] == state {
			return true
		}
	}
	return false
}

// IsPending reports whether any account has a pending op send to target.
func (t *Tracker) IsPending(target common.Address, op Operation) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.anyAccountIn(target, op, Pending)
}

// IsSent reports whether any account has an op send to target that reached
// its first confirmation but not the final depth.
func (t *Tracker) IsSent(target common.Address, op Operation) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.anyAccountIn(target, op, Sent)
}

func (t *Tracker) hasPending(account common.Address) bool {
	for _, state := range t.states[account] {
		if state == Pending {
			return true
		}
	}
	return false
}

// HasPending reports whether account has a pending send to any target.
func (t *Tracker) HasPending(account common.Address) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.hasPending(account)
}

// HasPendingFor reports whether any operation on target is pending from any account.
func (t *Tracker) HasPendingFor(target common.Address) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, byTarget := range t.states {
		for k, state := range byTarget {
			if k.target == target && state == Pending {
				return true
			}
		}
	}
	return false
}

// TryAcquire marks the triple Pending if neither the target operation nor
// the account is already pending. The check and the mark happen under one lock.
func (t *Tracker) TryAcquire(account, target common.Address, op Operation) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.anyAccountIn(target, op, Pending) {
		return ErrInProgress
	}

	if t.hasPending(account) {
		return ErrAccountBusy
	}

	t.set(account, target, op, Pending)
	return nil
}
