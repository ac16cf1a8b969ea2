package requests

import (
	"encoding/json"

	"github.com/mpcwallet/tkeyring/client/types"
)

type AddressForm struct {
	Address string `query:"address" json:"address" validate:"attr=address,min=3"`
}

type DeleteKeyShareForm struct {
	ID         string `json:"id" validate:"attr=id,min=1"`
	KeyShareID string `json:"keyShareId" validate:"attr=key_share_id,min=1"`
}

type AccountIdForm struct {
	ID string `query:"id" json:"id" validate:"attr=id,min=1"`
}

type CreateMeetingForm struct {
	ServerURL   string          `json:"serverUrl" validate:"attr=server_url,min=3"`
	Identifiers []string        `json:"identifiers"`
	Initiator   string          `json:"initiator" validate:"attr=initiator,min=1"`
	Payload     json.RawMessage `json:"payload"`
}

type JoinMeetingForm struct {
	ServerURL string `json:"serverUrl" validate:"attr=server_url,min=3"`
	MeetingID string `json:"meetingId" validate:"attr=meeting_id,min=1"`
	UserID    string `json:"userId" validate:"attr=user_id,min=1"`
}

type KeygenForm struct {
	ServerURL    string   `json:"serverUrl" validate:"attr=server_url,min=3"`
	Role         string   `json:"role" validate:"attr=role,min=1"`
	Parties      int      `json:"parties"`
	Threshold    int      `json:"threshold"`
	Label        string   `json:"label"`
	Participants []string `json:"participants,omitempty"`
}

type SignForm struct {
	ServerURL    string          `json:"serverUrl" validate:"attr=server_url,min=3"`
	Role         string          `json:"role" validate:"attr=role,min=1"`
	Parties      int             `json:"parties"`
	Threshold    int             `json:"threshold"`
	Address      string          `json:"address" validate:"attr=address,min=3"`
	KeyShareID   string          `json:"keyShareId,omitempty"`
	Value        types.SignValue `json:"value"`
	Participants []string        `json:"participants,omitempty"`
}

type TxReceiptForm struct {
	Address   string                `json:"address" validate:"attr=address,min=3"`
	Signature types.SignResult      `json:"signature"`
	Amount    string                `json:"amount"`
	Receipt   types.TxReceiptParams `json:"receipt"`
}
