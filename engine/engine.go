// Package engine defines the call contract of the multi-party
// computation engine. The engine performs the distributed key
// generation and signing arithmetic; this layer only shapes its
// options and surfaces its failures.
package engine

import (
	"context"
	"encoding/json"

	"github.com/mpcwallet/tkeyring/client/types"
)

// Participant is one party's identifier and handshake public key as
// resolved by a meeting exchange. The engine returns participants in
// join order; callers needing a canonical order must sort themselves.
type Participant struct {
	ID        string `json:"id"`
	PublicKey string `json:"publicKey"`
}

type Engine interface {
	// GenerateKeypair generates a noise handshake keypair using the
	// default pattern.
	GenerateKeypair(ctx context.Context) (*types.Keypair, error)

	// CreateMeeting registers a meeting with the rendezvous server and
	// returns its identifier. The payload is opaque application data
	// carried alongside the meeting.
	CreateMeeting(ctx context.Context, opts types.MeetingOptions, identifiers []string, initiator string, payload json.RawMessage) (string, error)

	// JoinMeeting blocks until every expected participant has joined,
	// then returns the full participant set and the initiator's payload.
	JoinMeeting(ctx context.Context, opts types.MeetingOptions, meetingID, userID string) ([]Participant, json.RawMessage, error)

	// Keygen runs distributed key generation. The initiator passes the
	// resolved participant public keys; a joiner passes nil, the engine
	// derives the participant list from the meeting exchange.
	Keygen(ctx context.Context, opts types.KeygenOptions, participants []string) (*types.KeyShare, error)

	// Sign runs distributed signing over the given value using the
	// local key share.
	Sign(ctx context.Context, opts types.SigningOptions, share types.KeyShare, value types.SignValue) (*types.SignResult, error)
}
