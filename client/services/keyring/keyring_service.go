package keyring

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mpcwallet/tkeyring/auditlog"
	"github.com/mpcwallet/tkeyring/client/modules/logger"
	"github.com/mpcwallet/tkeyring/client/repositories/wallet"
	"github.com/mpcwallet/tkeyring/client/types"
)

// KeyringService is the account-facing surface over the wallet
// repository. It writes the audit trail; the repository owns the
// persisted state.
type KeyringService interface {
	SaveKeyShare(label string, share types.KeyShare) (*types.NamedKeyShare, error)
	DeleteKeyShare(accountID, keyShareID string) error
	RecordMessageProof(address string, signature types.SignResult, value types.SignValue) (*types.SignProof, error)
	RecordTransactionReceipt(address string, signature types.SignResult, amount string, receipt types.TxReceiptParams) (*types.SignTxReceipt, error)
	GetAccountByAddress(address string) (*types.KeyringAccount, error)
	GetWalletByAddress(address string) (*types.Wallet, error)
	ListAccounts() ([]types.KeyringAccount, error)
	GetAccount(accountID string) (*types.KeyringAccount, error)
	DeleteAccount(accountID string) error
}

type BaseKeyringService struct {
	wallets wallet.WalletRepo
	audit   auditlog.AuditLog
	Logger  logger.Logger
}

func NewKeyringService(wallets wallet.WalletRepo, audit auditlog.AuditLog, log logger.Logger) *BaseKeyringService {
	return &BaseKeyringService{
		wallets: wallets,
		audit:   audit,
		Logger:  log,
	}
}

func (s *BaseKeyringService) SaveKeyShare(label string, share types.KeyShare) (*types.NamedKeyShare, error) {
	named, err := s.wallets.AddKeyShare(label, share)
	if err != nil {
		return nil, fmt.Errorf("failed to AddKeyShare: %w", err)
	}

	// The audit entry carries only the public shape, never LocalKey.
	data, _ := json.Marshal(map[string]interface{}{
		"keyShareId": named.ID,
		"label":      named.Label,
	})
	if err := s.audit.Append(auditlog.Event{
		Kind:    auditlog.EventKeyShareCreated,
		Address: share.Address,
		Data:    data,
	}); err != nil {
		s.Logger.Log("failed to append audit event for key share %s: %v", named.ID, err)
	}
	return named, nil
}

func (s *BaseKeyringService) DeleteKeyShare(accountID, keyShareID string) error {
	if err := s.wallets.DeleteKeyShare(accountID, keyShareID); err != nil {
		return err
	}

	data, _ := json.Marshal(map[string]interface{}{
		"accountId":  accountID,
		"keyShareId": keyShareID,
	})
	if err := s.audit.Append(auditlog.Event{
		Kind: auditlog.EventKeyShareDeleted,
		Data: data,
	}); err != nil {
		s.Logger.Log("failed to append audit event for deleted key share %s: %v", keyShareID, err)
	}
	return nil
}

func (s *BaseKeyringService) RecordMessageProof(address string, signature types.SignResult, value types.SignValue) (*types.SignProof, error) {
	proof := types.SignProof{
		Signature: signature,
		Address:   address,
		Value:     value,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.wallets.RecordMessageProof(address, proof); err != nil {
		return nil, fmt.Errorf("failed to RecordMessageProof: %w", err)
	}

	if err := s.audit.Append(auditlog.Event{
		Kind:    auditlog.EventMessageProof,
		Address: address,
	}); err != nil {
		s.Logger.Log("failed to append audit event for message proof: %v", err)
	}
	return &proof, nil
}

func (s *BaseKeyringService) RecordTransactionReceipt(address string, signature types.SignResult, amount string, receipt types.TxReceiptParams) (*types.SignTxReceipt, error) {
	txReceipt := types.SignTxReceipt{
		Signature: signature,
		Address:   address,
		Amount:    amount,
		Receipt:   receipt,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.wallets.RecordTransactionReceipt(address, txReceipt); err != nil {
		return nil, fmt.Errorf("failed to RecordTransactionReceipt: %w", err)
	}

	if err := s.audit.Append(auditlog.Event{
		Kind:    auditlog.EventTransactionNoted,
		Address: address,
	}); err != nil {
		s.Logger.Log("failed to append audit event for transaction receipt: %v", err)
	}
	return &txReceipt, nil
}

// GetAccountByAddress returns nil without an error when no account
// matches, mirroring the host wallet's find semantics.
func (s *BaseKeyringService) GetAccountByAddress(address string) (*types.KeyringAccount, error) {
	w, err := s.wallets.FindWalletByAddress(address)
	if err != nil {
		return nil, fmt.Errorf("failed to FindWalletByAddress: %w", err)
	}
	if w == nil {
		return nil, nil
	}
	return &w.Account, nil
}

func (s *BaseKeyringService) GetWalletByAddress(address string) (*types.Wallet, error) {
	return s.wallets.GetWalletByAddress(address)
}

func (s *BaseKeyringService) ListAccounts() ([]types.KeyringAccount, error) {
	return s.wallets.GetAccounts()
}

func (s *BaseKeyringService) GetAccount(accountID string) (*types.KeyringAccount, error) {
	return s.wallets.GetAccount(accountID)
}

func (s *BaseKeyringService) DeleteAccount(accountID string) error {
	if err := s.wallets.DeleteAccount(accountID); err != nil {
		return err
	}

	data, _ := json.Marshal(map[string]interface{}{"accountId": accountID})
	if err := s.audit.Append(auditlog.Event{
		Kind: auditlog.EventAccountDeleted,
		Data: data,
	}); err != nil {
		s.Logger.Log("failed to append audit event for deleted account %s: %v", accountID, err)
	}
	return nil
}
