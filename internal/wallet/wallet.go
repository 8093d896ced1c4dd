// Package wallet owns the node's sending accounts. It picks accounts round
// robin, signs legacy EIP-155 transactions offline, broadcasts them and follows
// each one through a first confirmation and a reorg-safe confirmation depth,
// recording progress in an accountstate.Tracker.
package wallet

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/gabapcia/timenode/internal/accountstate"
	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/pkg/telemetry"
)

const defaultConfirmationDepth = 6

var (
	// ErrNoAccounts is returned when sending from an empty wallet.
	ErrNoAccounts = errors.New("wallet has no accounts")

	// ErrUnknownAccount is returned when sending from an address the wallet does not own.
	ErrUnknownAccount = errors.New("account not in wallet")
)

// ChainClient is the chain surface the wallet needs.
type ChainClient interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	// WaitForConfirmations blocks until the transaction has depth confirmations
	// and returns its receipt.
	WaitForConfirmations(ctx context.Context, hash common.Hash, depth uint64) (*types.Receipt, error)
}

// SendOptions describes the call to send.
type SendOptions struct {
	To        common.Address
	Operation accountstate.Operation
	Value     *big.Int
	GasLimit  uint64
	GasPrice  *big.Int
	Data      []byte
}

type config struct {
	confirmationDepth uint64
	scryptN           int
	scryptP           int
}

// Option configures a Wallet.
type Option func(*config)

// WithConfirmationDepth sets how many confirmations make a send final. Default 6.
func WithConfirmationDepth(depth uint64) Option {
	return func(c *config) {
		c.confirmationDepth = depth
	}
}

// WithScrypt sets the scrypt parameters used by Encrypt.
func WithScrypt(n, p int) Option {
	return func(c *config) {
		c.scryptN = n
		c.scryptP = p
	}
}

// Wallet is safe for concurrent use.
type Wallet struct {
	client ChainClient
	state  *accountstate.Tracker

	confirmationDepth uint64
	scryptN           int
	scryptP           int

	mu       sync.Mutex
	accounts []Account
	index    map[common.Address]int
	counter  uint64

	sends metric.Int64Counter
}

// New returns an empty Wallet sending through client and recording progress in state.
func New(client ChainClient, state *accountstate.Tracker, opts ...Option) *Wallet {
	cfg := config{
		confirmationDepth: defaultConfirmationDepth,
		scryptN:           keystore.StandardScryptN,
		scryptP:           keystore.StandardScryptP,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	sends, err := telemetry.Meter().Int64Counter(
		"timenode.wallet.sends",
		metric.WithDescription("Send attempts by outcome"),
	)
	if err != nil {
		logger.Warn(context.Background(), "failed to create wallet sends counter", "error", err)
	}

	return &Wallet{
		client:            client,
		state:             state,
		confirmationDepth: cfg.confirmationDepth,
		scryptN:           cfg.scryptN,
		scryptP:           cfg.scryptP,
		index:             make(map[common.Address]int),
		sends:             sends,
	}
}

// Len returns the number of accounts.
func (w *Wallet) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.accounts)
}

// Accounts returns a copy of the account list.
func (w *Wallet) Accounts() []Account {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]Account(nil), w.accounts...)
}

// Addresses returns the account addresses in selection order.
func (w *Wallet) Addresses() []common.Address {
	w.mu.Lock()
	defer w.mu.Unlock()

	addresses := make([]common.Address, len(w.accounts))
	for i, acc := range w.accounts {
		addresses[i] = acc.Address
	}
	return addresses
}

// IsKnownAddress reports whether the wallet owns address.
func (w *Wallet) IsKnownAddress(address common.Address) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, ok := w.index[address]
	return ok
}

// NextAccount returns the account SendFromNext would use, without advancing.
func (w *Wallet) NextAccount() (Account, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.accounts) == 0 {
		return Account{}, ErrNoAccounts
	}
	return w.accounts[w.counter%uint64(len(w.accounts))], nil
}

// IsNextAccountFree reports whether the next account has no pending send.
func (w *Wallet) IsNextAccountFree() bool {
	next, err := w.NextAccount()
	if err != nil {
		return false
	}
	return !w.state.HasPending(next.Address)
}

// IsAccountAbleToSend reports whether address has funds and no pending send.
func (w *Wallet) IsAccountAbleToSend(ctx context.Context, address common.Address) (bool, error) {
	if w.state.HasPending(address) {
		return false, nil
	}

	balance, err := w.client.BalanceAt(ctx, address, nil)
	if err != nil {
		return false, err
	}
	return balance.Sign() > 0, nil
}

// HasPendingTransaction reports whether any account has a pending op send to to.
func (w *Wallet) HasPendingTransaction(to common.Address, op accountstate.Operation) bool {
	return w.state.IsPending(to, op)
}

// IsWaitingForConfirmation reports whether an op send to to is mined but not yet final.
func (w *Wallet) IsWaitingForConfirmation(to common.Address, op accountstate.Operation) bool {
	return w.state.IsSent(to, op)
}

// SendFromNext sends from the next account in round robin order. The cursor
// advances on every call whatever the outcome.
func (w *Wallet) SendFromNext(ctx context.Context, opts SendOptions) (Receipt, error) {
	w.mu.Lock()
	if len(w.accounts) == 0 {
		w.mu.Unlock()
		return Receipt{}, ErrNoAccounts
	}
	from := w.accounts[w.counter%uint64(len(w.accounts))]
	w.counter++
	w.mu.Unlock()

	return w.send(ctx, from, opts), nil
}

// SendFromNextIf is SendFromNext for callers that already picked the account
// with NextAccount. If another send took the turn in between, it returns Busy
// without sending or advancing the cursor.
func (w *Wallet) SendFromNextIf(ctx context.Context, account common.Address, opts SendOptions) (Receipt, error) {
	w.mu.Lock()
	if len(w.accounts) == 0 {
		w.mu.Unlock()
		return Receipt{}, ErrNoAccounts
	}
	from := w.accounts[w.counter%uint64(len(w.accounts))]
	if from.Address != account {
		w.mu.Unlock()
		return Receipt{From: account, Status: Busy}, nil
	}
	w.counter++
	w.mu.Unlock()

	return w.send(ctx, from, opts), nil
}

// SendFromIndex sends from the i-th account.
func (w *Wallet) SendFromIndex(ctx context.Context, i int, opts SendOptions) (Receipt, error) {
	w.mu.Lock()
	if i < 0 || i >= len(w.accounts) {
		w.mu.Unlock()
		return Receipt{}, ErrUnknownAccount
	}
	from := w.accounts[i]
	w.mu.Unlock()

	return w.send(ctx, from, opts), nil
}

// SendFromAccount sends from the account owning address.
func (w *Wallet) SendFromAccount(ctx context.Context, address common.Address, opts SendOptions) (Receipt, error) {
	w.mu.Lock()
	i, ok := w.index[address]
	var from Account
	if ok {
		from = w.accounts[i]
	}
	w.mu.Unlock()

	if !ok {
		return Receipt{}, ErrUnknownAccount
	}
	return w.send(ctx, from, opts), nil
}

func isRevert(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "execution reverted") || strings.Contains(msg, "reverted by the EVM")
}

func (w *Wallet) send(ctx context.Context, from Account, opts SendOptions) (receipt Receipt) {
	receipt.From = from.Address
	defer func() {
		if w.sends != nil {
			w.sends.Add(ctx, 1, metric.WithAttributes(
				attribute.String("status", receipt.Status.String()),
				attribute.String("operation", opts.Operation.String()),
			))
		}
	}()

	if w.state.IsPending(opts.To, opts.Operation) {
		receipt.Status = Progress
		return receipt
	}

	balance, err := w.client.BalanceAt(ctx, from.Address, nil)
	if err != nil {
		receipt.Status, receipt.Err = UnknownError, err
		return receipt
	}
	if balance.Sign() == 0 {
		receipt.Status = NotEnoughFunds
		return receipt
	}

	signed, err := w.sign(ctx, from, opts)
	if err != nil {
		receipt.Status, receipt.Err = UnknownError, err
		return receipt
	}
	receipt.TxHash = signed.Hash()

	if err := w.state.TryAcquire(from.Address, opts.To, opts.Operation); err != nil {
		if errors.Is(err, accountstate.ErrInProgress) {
			receipt.Status = Progress
		} else {
			receipt.Status = Busy
		}
		return receipt
	}

	logger.Info(ctx, "broadcasting transaction",
		"wallet.account", from.Address.Hex(),
		"tx.to", opts.To.Hex(),
		"tx.operation", opts.Operation.String(),
		"tx.hash", signed.Hash().Hex(),
		"tx.nonce", signed.Nonce(),
	)

	if err := w.client.SendTransaction(ctx, signed); err != nil {
		if !isRevert(err) {
			w.state.Set(from.Address, opts.To, opts.Operation, accountstate.Error)
			receipt.Status, receipt.Err = UnknownError, err
			return receipt
		}
		logger.Warn(ctx, "transaction reverted on broadcast", "tx.hash", signed.Hash().Hex(), "error", err)
	}

	if _, err := w.client.WaitForConfirmations(ctx, signed.Hash(), 1); err != nil {
		w.state.Set(from.Address, opts.To, opts.Operation, accountstate.Error)
		receipt.Status, receipt.Err = UnknownError, err
		return receipt
	}
	w.state.Set(from.Address, opts.To, opts.Operation, accountstate.Sent)

	final, err := w.client.WaitForConfirmations(ctx, signed.Hash(), w.confirmationDepth)
	if err != nil {
		w.state.Set(from.Address, opts.To, opts.Operation, accountstate.Error)
		receipt.Status, receipt.Err = MinedInUncle, err
		return receipt
	}
	w.state.Set(from.Address, opts.To, opts.Operation, accountstate.Confirmed)

	receipt.Receipt = final
	receipt.Status = Fail
	if final.Status == types.ReceiptStatusSuccessful {
		receipt.Status = OK
	}
	return receipt
}

func (w *Wallet) sign(ctx context.Context, from Account, opts SendOptions) (*types.Transaction, error) {
	nonce, err := w.client.PendingNonceAt(ctx, from.Address)
	if err != nil {
		return nil, err
	}

	chainID, err := w.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	value := opts.Value
	if value == nil {
		value = new(big.Int)
	}

	tx := types.NewTransaction(nonce, opts.To, value, opts.GasLimit, opts.GasPrice, opts.Data)
	return types.SignTx(tx, types.NewEIP155Signer(chainID), from.key)
}
