package types

import (
	"encoding/json"
	"fmt"
)

type ProtocolID string

const (
	// ProtocolGG20 is the only key generation and signing protocol
	// currently supported by the engine.
	ProtocolGG20 ProtocolID = "gg20"
)

// ServerOptions is the rendezvous server identity: its URL and the
// public key used to encrypt session traffic to it. Immutable once
// fetched; the credential cache replaces it only when the URL changes.
type ServerOptions struct {
	ServerURL       string `json:"serverUrl"`
	ServerPublicKey string `json:"serverPublicKey"`
}

// Keypair is the local party's noise handshake keypair. It is generated
// once per process lifetime and reused for every session.
type Keypair struct {
	PEM       string `json:"pem"`
	PublicKey string `json:"publicKey"`
}

// Parameters defines a t-of-n threshold scheme.
type Parameters struct {
	Parties   int `json:"parties"`
	Threshold int `json:"threshold"`
}

func (p Parameters) Validate() error {
	if p.Parties < 2 {
		return fmt.Errorf("parties must be at least 2, got %d: %w", p.Parties, ErrInvalidParameters)
	}
	if p.Threshold < 1 {
		return fmt.Errorf("threshold must be at least 1, got %d: %w", p.Threshold, ErrInvalidParameters)
	}
	if p.Threshold > p.Parties {
		return fmt.Errorf("threshold %d exceeds parties %d: %w", p.Threshold, p.Parties, ErrInvalidParameters)
	}
	return nil
}

// MeetingOptions is built fresh for every meeting call; the server-side
// encryption context is scoped to a single meeting, so it is never cached.
type MeetingOptions struct {
	Server  ServerOptions `json:"server"`
	Keypair string        `json:"keypair"`
}

type KeygenOptions struct {
	Server     ServerOptions `json:"server"`
	Keypair    string        `json:"keypair"`
	Protocol   ProtocolID    `json:"protocol"`
	Parameters Parameters    `json:"parameters"`
}

type SigningOptions struct {
	Server     ServerOptions `json:"server"`
	Keypair    string        `json:"keypair"`
	Protocol   ProtocolID    `json:"protocol"`
	Parameters Parameters    `json:"parameters"`
}

// LocalKey is the shape of the secret share material. It must never be
// logged or transmitted after creation.
type LocalKey struct {
	I int `json:"i"`
	T int `json:"t"`
	N int `json:"n"`
}

// KeyShare is one party's fragment of the jointly held key.
type KeyShare struct {
	LocalKey  LocalKey `json:"localKey"`
	PublicKey []byte   `json:"publicKey"`
	Address   string   `json:"address"`
}

// NamedKeyShare tags a key share with a human label for local
// bookkeeping. Labels are not unique; ID is the true identity.
type NamedKeyShare struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Share KeyShare `json:"share"`
}

type SignPrimitive struct {
	Curve  string `json:"curve"`
	Scalar []byte `json:"scalar"`
}

type SignResult struct {
	R     SignPrimitive `json:"r"`
	S     SignPrimitive `json:"s"`
	Recid int           `json:"recid"`
}

type SigningKind string

const (
	SigningKindMessage     SigningKind = "message"
	SigningKindTransaction SigningKind = "transaction"
)

type SignMessage struct {
	Message string `json:"message"`
	Digest  []byte `json:"digest"`
}

// TxParams carries only the serializable transaction parameters. An
// engine-native transaction handle is never persisted.
type TxParams struct {
	Nonce    uint64 `json:"nonce"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Gas      uint64 `json:"gas"`
	GasPrice string `json:"gasPrice"`
	Data     []byte `json:"data"`
	ChainID  int64  `json:"chainId"`
}

type SignTransaction struct {
	Transaction TxParams `json:"transaction"`
	Digest      []byte   `json:"digest"`
}

// SignValue is a tagged variant: exactly one of Message or Transaction
// is set, according to Kind.
type SignValue struct {
	Kind        SigningKind      `json:"kind"`
	Message     *SignMessage     `json:"message,omitempty"`
	Transaction *SignTransaction `json:"transaction,omitempty"`
}

func (v SignValue) Validate() error {
	switch v.Kind {
	case SigningKindMessage:
		if v.Message == nil || v.Transaction != nil {
			return fmt.Errorf("sign value of kind %q is malformed", v.Kind)
		}
	case SigningKindTransaction:
		if v.Transaction == nil || v.Message != nil {
			return fmt.Errorf("sign value of kind %q is malformed", v.Kind)
		}
	default:
		return fmt.Errorf("unknown sign value kind %q", v.Kind)
	}
	return nil
}

// SignProof is append-only evidence that an address produced a signature
// over a value at a given time. Timestamp disambiguates duplicates.
type SignProof struct {
	Signature SignResult `json:"signature"`
	Address   string     `json:"address"`
	Value     SignValue  `json:"value"`
	Timestamp int64      `json:"timestamp"`
}

// TxReceiptParams is the confirmed transaction metadata kept with a
// transaction signing receipt.
type TxReceiptParams struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
	Status      uint64 `json:"status"`
}

type SignTxReceipt struct {
	Signature SignResult      `json:"signature"`
	Address   string          `json:"address"`
	Amount    string          `json:"amount"`
	Receipt   TxReceiptParams `json:"receipt"`
	Timestamp int64           `json:"timestamp"`
}

// KeyringAccount is the account record exposed to the host wallet.
type KeyringAccount struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	Name    string `json:"name"`
}

// Wallet is an account together with the key shares held for its address.
type Wallet struct {
	Account KeyringAccount  `json:"account"`
	Shares  []NamedKeyShare `json:"shares"`
}

// AppState is the whole persisted document. It is written atomically as
// a whole on every mutation; proof and receipt sequences are append-only.
type AppState struct {
	Accounts            []KeyringAccount           `json:"accounts"`
	KeyShares           []NamedKeyShare            `json:"keyShares"`
	MessageProofs       map[string][]SignProof     `json:"messageProofs"`
	TransactionReceipts map[string][]SignTxReceipt `json:"transactionReceipts"`
}

func NewAppState() *AppState {
	return &AppState{
		MessageProofs:       map[string][]SignProof{},
		TransactionReceipts: map[string][]SignTxReceipt{},
	}
}

func (s *AppState) Bytes() []byte {
	bz, _ := json.Marshal(s)
	return bz
}
