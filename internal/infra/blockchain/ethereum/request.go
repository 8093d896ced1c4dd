package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/timenode/internal/tracked"
)

var (
	// ErrNotScheduledRequest is returned when the address answers requestData() with no data.
	ErrNotScheduledRequest = errors.New("address is not a scheduled request")

	// ErrMalformedRequestData is returned when requestData() does not decode to the expected layout.
	ErrMalformedRequestData = errors.New("malformed request data")

	// ErrUnknownTemporalUnit is returned for temporal units other than blocks and timestamps.
	ErrUnknownTemporalUnit = errors.New("unknown temporal unit")
)

// requestDataABI is the getter exposed by every scheduled request contract.
// Output layout:
//   - addresses: claimedBy, createdBy, owner, feeRecipient, bountyBenefactor, toAddress
//   - bools: isCancelled, wasCalled, wasSuccessful
//   - uints: claimDeposit, fee, feeOwed, bounty, bountyOwed, claimWindowSize,
//     freezePeriod, reservedWindowSize, temporalUnit, windowSize, windowStart,
//     callGas, callValue, gasPrice, requiredDeposit
//   - uint8s: paymentModifier
const requestDataABI = `[{
	"type": "function",
	"name": "requestData",
	"stateMutability": "view",
	"inputs": [],
	"outputs": [
		{"name": "addressArgs", "type": "address[6]"},
		{"name": "boolArgs", "type": "bool[3]"},
		{"name": "uintArgs", "type": "uint256[15]"},
		{"name": "uint8Args", "type": "uint8[1]"}
	]
}]`

var requestABI = sync.OnceValues(func() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(requestDataABI))
})

// RequestData calls requestData() on the scheduled request at address.
func (c *Client) RequestData(ctx context.Context, address common.Address) (tracked.Fields, error) {
	parsed, err := requestABI()
	if err != nil {
		return tracked.Fields{}, err
	}

	input, err := parsed.Pack("requestData")
	if err != nil {
		return tracked.Fields{}, err
	}

	output, err := c.backend().CallContract(ctx, ethereum.CallMsg{To: &address, Data: input}, nil)
	if err != nil {
		return tracked.Fields{}, fmt.Errorf("requestData of %s: %w", address.Hex(), err)
	}
	if len(output) == 0 {
		return tracked.Fields{}, fmt.Errorf("%w: %s", ErrNotScheduledRequest, address.Hex())
	}

	values, err := parsed.Unpack("requestData", output)
	if err != nil {
		return tracked.Fields{}, fmt.Errorf("%w: %w", ErrMalformedRequestData, err)
	}

	return decodeRequestData(values)
}

func decodeRequestData(values []any) (tracked.Fields, error) {
	if len(values) != 4 {
		return tracked.Fields{}, fmt.Errorf("%w: %d values", ErrMalformedRequestData, len(values))
	}

	addresses, okAddresses := values[0].([6]common.Address)
	bools, okBools := values[1].([3]bool)
	uints, okUints := values[2].([15]*big.Int)
	uint8s, okUint8s := values[3].([1]uint8)
	if !okAddresses || !okBools || !okUints || !okUint8s {
		return tracked.Fields{}, ErrMalformedRequestData
	}

	unit := tracked.TemporalUnit(uints[8].Uint64())
	if unit != tracked.Blocks && unit != tracked.Timestamps {
		return tracked.Fields{}, fmt.Errorf("%w: %s", ErrUnknownTemporalUnit, uints[8])
	}

	return tracked.Fields{
		ClaimedBy:       addresses[0],
		Owner:           addresses[2],
		ToAddress:       addresses[5],
		IsCancelled:     bools[0],
		WasCalled:       bools[1],
		WasSuccessful:   bools[2],
		ClaimDeposit:    uints[0],
		Bounty:          uints[3],
		ClaimWindowSize: uints[5],
		FreezePeriod:    uints[6],
		ReservedWindow:  uints[7],
		TemporalUnit:    unit,
		WindowSize:      uints[9],
		WindowStart:     uints[10],
		CallGas:         uints[11],
		CallValue:       uints[12],
		GasPrice:        uints[13],
		RequiredDeposit: uints[14],
		PaymentModifier: uint8s[0],
	}, nil
}

// Load returns an unloaded snapshot of the request at address backed by c.
func (c *Client) Load(_ context.Context, address common.Address) (tracked.Transaction, error) {
	return tracked.NewSnapshot(address, c), nil
}
