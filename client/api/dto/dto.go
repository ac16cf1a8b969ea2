package dto

import (
	"encoding/json"

	"github.com/mpcwallet/tkeyring/client/types"
)

// This package contains DTO (Data Transfer Object) structures
// for providing validated and sanitized values to the service layer.

type AddressDTO struct {
	Address string
}

type DeleteKeyShareDTO struct {
	ID         string
	KeyShareID string
}

type AccountIdDTO struct {
	ID string
}

type CreateMeetingDTO struct {
	ServerURL   string
	Identifiers []string
	Initiator   string
	Payload     json.RawMessage
}

type JoinMeetingDTO struct {
	ServerURL string
	MeetingID string
	UserID    string
}

type KeygenDTO struct {
	ServerURL    string
	Role         string
	Parties      int
	Threshold    int
	Label        string
	Participants []string
}

type SignDTO struct {
	ServerURL    string
	Role         string
	Parties      int
	Threshold    int
	Address      string
	KeyShareID   string
	Value        types.SignValue
	Participants []string
}

type TxReceiptDTO struct {
	Address   string
	Signature types.SignResult
	Amount    string
	Receipt   types.TxReceiptParams
}
