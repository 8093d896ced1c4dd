package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

var (
	// ErrInvalidPrivateKey is returned when a raw key cannot be parsed.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrMissingPassphrase is returned when keystores are given without a passphrase.
	ErrMissingPassphrase = errors.New("keystore passphrase is required")

	// ErrDecryptKeystore is returned when a keystore document cannot be decrypted.
	ErrDecryptKeystore = errors.New("failed to decrypt keystore")
)

// Account is a sending address and the key that signs for it.
type Account struct {
	Address common.Address
	key     *ecdsa.PrivateKey
}

func newAccount(key *ecdsa.PrivateKey) Account {
	return Account{
		Address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}
}

// Create generates n new accounts and adds them to the wallet.
func (w *Wallet) Create(n int) error {
	for range n {
		key, err := crypto.GenerateKey()
		if err != nil {
			return err
		}
		w.add(newAccount(key))
	}

	return nil
}

// LoadPrivateKeys adds one account per hex encoded key. The 0x prefix is optional.
func (w *Wallet) LoadPrivateKeys(keys []string) error {
	accounts := make([]Account, 0, len(keys))
	for i, raw := range keys {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(raw), "0x"))
		if err != nil {
			return fmt.Errorf("%w: key #%d: %w", ErrInvalidPrivateKey, i, err)
		}
		accounts = append(accounts, newAccount(key))
	}

	w.add(accounts...)
	return nil
}

// Decrypt adds one account per Web3 v3 keystore document.
func (w *Wallet) Decrypt(keystores [][]byte, passphrase string) error {
	if passphrase == "" {
		return ErrMissingPassphrase
	}

	accounts := make([]Account, 0, len(keystores))
	for i, doc := range keystores {
		key, err := keystore.DecryptKey(doc, passphrase)
		if err != nil {
			return fmt.Errorf("%w: keystore #%d: %w", ErrDecryptKeystore, i, err)
		}
		accounts = append(accounts, newAccount(key.PrivateKey))
	}

	w.add(accounts...)
	return nil
}

// Encrypt exports every account as a Web3 v3 keystore document.
func (w *Wallet) Encrypt(passphrase string) ([][]byte, error) {
	if passphrase == "" {
		return nil, ErrMissingPassphrase
	}

	accounts := w.Accounts()
	docs := make([][]byte, 0, len(accounts))
	for _, acc := range accounts {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, err
		}

		doc, err := keystore.EncryptKey(&keystore.Key{
			Id:         id,
			Address:    acc.Address,
			PrivateKey: acc.key,
		}, passphrase, w.scryptN, w.scryptP)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// add appends accounts whose address is not known yet.
func (w *Wallet) add(accounts ...Account) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, acc := range accounts {
		if _, ok := w.index[acc.Address]; ok {
			continue
		}
		w.index[acc.Address] = len(w.accounts)
		w.accounts = append(w.accounts, acc)
	}
}
