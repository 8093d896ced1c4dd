package wallet

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Status is the outcome of a send attempt.
type Status uint8

const (
	// OK means the transaction was mined, confirmed and succeeded.
	OK Status = iota + 1
	// Fail means the transaction was mined and confirmed but reverted.
	Fail
	// Progress means a send for the same target and operation is already outstanding.
	Progress
	// NotEnoughFunds means the sending account has no balance.
	NotEnoughFunds
	// Busy means the account picked up another send while this one was being signed.
	Busy
	// UnknownError covers broadcast and first confirmation failures.
	UnknownError
	// MinedInUncle means the transaction was seen once but did not reach the confirmation depth.
	MinedInUncle
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Fail:
		return "fail"
	case Progress:
		return "progress"
	case NotEnoughFunds:
		return "not_enough_funds"
	case Busy:
		return "busy"
	case UnknownError:
		return "unknown_error"
	case MinedInUncle:
		return "mined_in_uncle"
	default:
		return "unknown"
	}
}

// Receipt describes how a send ended.
type Receipt struct {
	Status  Status
	From    common.Address
	TxHash  common.Hash
	Receipt *types.Receipt
	// Err holds the underlying error for UnknownError and MinedInUncle.
	Err error
}
