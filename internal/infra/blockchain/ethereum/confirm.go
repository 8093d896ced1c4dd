package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/timenode/internal/pkg/resilience/retry"
)

var (
	// ErrReorged is returned when a mined transaction leaves the block it was first seen in.
	ErrReorged = errors.New("transaction reorged out of its block")

	// ErrConfirmationTimeout is returned when the confirmation depth is not reached in time.
	ErrConfirmationTimeout = errors.New("timed out waiting for confirmations")

	errNotMined     = errors.New("transaction not mined yet")
	errNotConfirmed = errors.New("transaction not confirmed yet")
)

// WaitForConfirmations polls the receipt of hash until its block is depth
// blocks deep, counting the block itself. A receipt that disappears or moves
// to another block fails with ErrReorged.
func (c *Client) WaitForConfirmations(ctx context.Context, hash common.Hash, depth uint64) (*types.Receipt, error) {
	if depth == 0 {
		depth = 1
	}

	pollCtx, cancel := context.WithTimeout(ctx, c.cfg.confirmationTimeout)
	defer cancel()

	var (
		receipt *types.Receipt
		minedIn common.Hash
	)

	poll := retry.New(
		retry.WithAttempts(0),
		retry.WithFixedDelay(c.cfg.pollInterval),
	)

	err := poll.Execute(pollCtx, func() error {
		r, err := c.backend().TransactionReceipt(pollCtx, hash)
		if errors.Is(err, ethereum.NotFound) {
			if minedIn != (common.Hash{}) {
				return retry.Permanent(fmt.Errorf("%w: %s dropped from %s", ErrReorged, hash.Hex(), minedIn.Hex()))
			}
			return errNotMined
		}
		if err != nil {
			return err
		}
		if r.BlockNumber == nil {
			return errNotMined
		}

		if minedIn != (common.Hash{}) && r.BlockHash != minedIn {
			return retry.Permanent(fmt.Errorf("%w: %s moved from %s to %s", ErrReorged, hash.Hex(), minedIn.Hex(), r.BlockHash.Hex()))
		}
		minedIn = r.BlockHash

		if depth > 1 {
			head, err := c.backend().BlockNumber(pollCtx)
			if err != nil {
				return err
			}
			if head+1 < r.BlockNumber.Uint64()+depth {
				return errNotConfirmed
			}
		}

		receipt = r
		return nil
	})
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s after %s", ErrConfirmationTimeout, hash.Hex(), c.cfg.confirmationTimeout)
		}
		return nil, err
	}

	return receipt, nil
}
