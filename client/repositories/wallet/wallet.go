package wallet

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mpcwallet/tkeyring/client/modules/state"
	"github.com/mpcwallet/tkeyring/client/types"
)

const (
	AppStateKeyPrefix = "keyring"
)

// WalletRepo maintains the persisted application state: named key
// shares, message signing proofs and transaction receipts, keyed by
// originating address. Every mutation rewrites the whole document
// under a single-writer lock; a failed mutation leaves the persisted
// state exactly as it was.
type WalletRepo interface {
	AddKeyShare(label string, share types.KeyShare) (*types.NamedKeyShare, error)
	DeleteKeyShare(accountID, keyShareID string) error
	RecordMessageProof(address string, proof types.SignProof) error
	RecordTransactionReceipt(address string, receipt types.SignTxReceipt) error
	FindWalletByAddress(address string) (*types.Wallet, error)
	GetWalletByAddress(address string) (*types.Wallet, error)
	GetAccounts() ([]types.KeyringAccount, error)
	GetAccount(accountID string) (*types.KeyringAccount, error)
	DeleteAccount(accountID string) error
	GetAppState() (*types.AppState, error)
}

type BaseWalletRepo struct {
	sync.Mutex
	state state.State
}

func NewWalletRepo(state state.State) *BaseWalletRepo {
	return &BaseWalletRepo{state: state}
}

func (r *BaseWalletRepo) loadState() (*types.AppState, error) {
	bz, err := r.state.Get(state.MakeCompositeKey(AppStateKeyPrefix, state.AppStateKey))
	if err != nil {
		return nil, fmt.Errorf("failed to read app state: %w", err)
	}
	if bz == nil {
		return types.NewAppState(), nil
	}

	var appState types.AppState
	if err := json.Unmarshal(bz, &appState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal app state: %w", err)
	}
	if appState.MessageProofs == nil {
		appState.MessageProofs = map[string][]types.SignProof{}
	}
	if appState.TransactionReceipts == nil {
		appState.TransactionReceipts = map[string][]types.SignTxReceipt{}
	}
	return &appState, nil
}

func (r *BaseWalletRepo) saveState(appState *types.AppState) error {
	bz, err := json.Marshal(appState)
	if err != nil {
		return fmt.Errorf("failed to marshal app state: %w", err)
	}
	if err := r.state.Set(state.MakeCompositeKey(AppStateKeyPrefix, state.AppStateKey), bz); err != nil {
		return fmt.Errorf("failed to save app state: %w", err)
	}
	return nil
}

// AddKeyShare appends a named key share. The account for the share's
// address is created on first insert; shares keep insertion order.
func (r *BaseWalletRepo) AddKeyShare(label string, share types.KeyShare) (*types.NamedKeyShare, error) {
	r.Lock()
	defer r.Unlock()

	appState, err := r.loadState()
	if err != nil {
		return nil, err
	}

	if findAccountByAddress(appState, share.Address) == nil {
		appState.Accounts = append(appState.Accounts, types.KeyringAccount{
			ID:      uuid.New().String(),
			Address: share.Address,
			Name:    label,
		})
	}

	named := types.NamedKeyShare{
		ID:    uuid.New().String(),
		Label: label,
		Share: share,
	}
	appState.KeyShares = append(appState.KeyShares, named)

	if err := r.saveState(appState); err != nil {
		return nil, err
	}
	return &named, nil
}

// DeleteKeyShare removes exactly one key share. Historical proofs and
// receipts for the share's address are retained as an audit trail.
func (r *BaseWalletRepo) DeleteKeyShare(accountID, keyShareID string) error {
	r.Lock()
	defer r.Unlock()

	appState, err := r.loadState()
	if err != nil {
		return err
	}

	account := findAccountByID(appState, accountID)
	if account == nil {
		return fmt.Errorf("account %s: %w", accountID, types.ErrNotFound)
	}

	for i, named := range appState.KeyShares {
		if named.ID != keyShareID || named.Share.Address != account.Address {
			continue
		}
		appState.KeyShares = append(appState.KeyShares[:i], appState.KeyShares[i+1:]...)
		return r.saveState(appState)
	}
	return fmt.Errorf("key share %s for account %s: %w", keyShareID, accountID, types.ErrNotFound)
}

// RecordMessageProof appends a proof to the per-address sequence.
// Sequences are never reordered or deduplicated; retried signings of
// identical content become separate entries.
func (r *BaseWalletRepo) RecordMessageProof(address string, proof types.SignProof) error {
	r.Lock()
	defer r.Unlock()

	appState, err := r.loadState()
	if err != nil {
		return err
	}

	if !addressHasShare(appState, address) {
		return fmt.Errorf("no key share for address %s: %w", address, types.ErrNotFound)
	}

	appState.MessageProofs[address] = append(appState.MessageProofs[address], proof)
	return r.saveState(appState)
}

func (r *BaseWalletRepo) RecordTransactionReceipt(address string, receipt types.SignTxReceipt) error {
	r.Lock()
	defer r.Unlock()

	appState, err := r.loadState()
	if err != nil {
		return err
	}

	if !addressHasShare(appState, address) {
		return fmt.Errorf("no key share for address %s: %w", address, types.ErrNotFound)
	}

	appState.TransactionReceipts[address] = append(appState.TransactionReceipts[address], receipt)
	return r.saveState(appState)
}

// FindWalletByAddress returns nil without an error when no account
// matches the address.
func (r *BaseWalletRepo) FindWalletByAddress(address string) (*types.Wallet, error) {
	r.Lock()
	defer r.Unlock()

	appState, err := r.loadState()
	if err != nil {
		return nil, err
	}
	return walletByAddress(appState, address), nil
}

func (r *BaseWalletRepo) GetWalletByAddress(address string) (*types.Wallet, error) {
	r.Lock()
	defer r.Unlock()

	appState, err := r.loadState()
	if err != nil {
		return nil, err
	}

	wallet := walletByAddress(appState, address)
	if wallet == nil {
		return nil, fmt.Errorf("wallet for address %s: %w", address, types.ErrNotFound)
	}
	return wallet, nil
}

// GetAccounts returns accounts in insertion order; that order is the
// only one meaningful to the UI.
func (r *BaseWalletRepo) GetAccounts() ([]types.KeyringAccount, error) {
	r.Lock()
	defer r.Unlock()

	appState, err := r.loadState()
	if err != nil {
		return nil, err
	}
	return append([]types.KeyringAccount{}, appState.Accounts...), nil
}

func (r *BaseWalletRepo) GetAccount(accountID string) (*types.KeyringAccount, error) {
	r.Lock()
	defer r.Unlock()

	appState, err := r.loadState()
	if err != nil {
		return nil, err
	}

	account := findAccountByID(appState, accountID)
	if account == nil {
		return nil, fmt.Errorf("account %s: %w", accountID, types.ErrNotFound)
	}
	return account, nil
}

// DeleteAccount removes an account and all its key shares. Proofs and
// receipts are retained.
func (r *BaseWalletRepo) DeleteAccount(accountID string) error {
	r.Lock()
	defer r.Unlock()

	appState, err := r.loadState()
	if err != nil {
		return err
	}

	account := findAccountByID(appState, accountID)
	if account == nil {
		return fmt.Errorf("account %s: %w", accountID, types.ErrNotFound)
	}

	accounts := appState.Accounts[:0]
	for _, a := range appState.Accounts {
		if a.ID != accountID {
			accounts = append(accounts, a)
		}
	}
	appState.Accounts = accounts

	shares := appState.KeyShares[:0]
	for _, named := range appState.KeyShares {
		if named.Share.Address != account.Address {
			shares = append(shares, named)
		}
	}
	appState.KeyShares = shares

	return r.saveState(appState)
}

// GetAppState returns a snapshot of the whole persisted document.
func (r *BaseWalletRepo) GetAppState() (*types.AppState, error) {
	r.Lock()
	defer r.Unlock()

	return r.loadState()
}

func findAccountByAddress(appState *types.AppState, address string) *types.KeyringAccount {
	for i := range appState.Accounts {
		if appState.Accounts[i].Address == address {
			return &appState.Accounts[i]
		}
	}
	return nil
}

func findAccountByID(appState *types.AppState, accountID string) *types.KeyringAccount {
	for i := range appState.Accounts {
		if appState.Accounts[i].ID == accountID {
			return &appState.Accounts[i]
		}
	}
	return nil
}

func addressHasShare(appState *types.AppState, address string) bool {
	for _, named := range appState.KeyShares {
		if named.Share.Address == address {
			return true
		}
	}
	return false
}

func walletByAddress(appState *types.AppState, address string) *types.Wallet {
	account := findAccountByAddress(appState, address)
	if account == nil {
		return nil
	}

	wallet := &types.Wallet{Account: *account}
	for _, named := range appState.KeyShares {
		if named.Share.Address == address {
			wallet.Shares = append(wallet.Shares, named)
		}
	}
	return wallet
}
