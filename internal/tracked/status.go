package tracked

import (
	"context"
	"math/big"
)

// Status is the window a scheduled transaction is in. Windows only move forward.
type Status uint8

const (
	BeforeClaimWindow Status = iota + 1
	ClaimWindow
	FreezePeriod
	ExecutionWindow
	Executed
	Missed
)

func (s Status) String() string {
	switch s {
	case BeforeClaimWindow:
		return "before_claim_window"
	case ClaimWindow:
		return "claim_window"
	case FreezePeriod:
		return "freeze_period"
	case ExecutionWindow:
		return "execution_window"
	case Executed:
		return "executed"
	case Missed:
		return "missed"
	default:
		return "unknown"
	}
}

// Done reports whether nothing can happen to the transaction anymore.
func (s Status) Done() bool {
	return s == Executed || s == Missed
}

// StatusAt derives the window state of tx at now.
func StatusAt(tx Transaction, now *big.Int) Status {
	if tx.WasCalled() {
		return Executed
	}

	switch {
	case now.Cmp(tx.ClaimWindowStart()) < 0:
		return BeforeClaimWindow
	case now.Cmp(tx.ClaimWindowEnd()) < 0:
		return ClaimWindow
	case now.Cmp(tx.FreezePeriodEnd()) < 0:
		return FreezePeriod
	case now.Cmp(tx.ExecutionWindowEnd()) <= 0:
		return ExecutionWindow
	default:
		return Missed
	}
}

// DeriveStatus reads the current block or timestamp from tx and derives its status.
func DeriveStatus(ctx context.Context, tx Transaction) (Status, *big.Int, error) {
	now, err := tx.Now(ctx)
	if err != nil {
		return 0, nil, err
	}

	return StatusAt(tx, now), now, nil
}

// InReservedWindow reports whether now falls in the part of the execution
// window reserved to the claimer.
func InReservedWindow(tx Transaction, now *big.Int) bool {
	return now.Cmp(tx.WindowStart()) >= 0 && now.Cmp(tx.ReservedWindowEnd()) < 0
}
