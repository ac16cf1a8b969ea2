package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/mpcwallet/tkeyring/client/modules/logger"
	"github.com/mpcwallet/tkeyring/client/types"
	"github.com/mpcwallet/tkeyring/engine"
)

// Role distinguishes the party that registers a meeting and supplies
// the participant set from the parties that join with a meeting id.
type Role string

const (
	RoleInitiator Role = "initiator"
	RoleJoiner    Role = "joiner"
)

// SessionService turns application intent into engine invocations with
// correctly shaped options. It keeps no state of its own beyond the
// credential cache fills and never retries.
type SessionService interface {
	CreateMeeting(ctx context.Context, serverURL string, identifiers []string, initiator string, payload json.RawMessage) (string, error)
	JoinMeeting(ctx context.Context, serverURL, meetingID, userID string) ([]string, json.RawMessage, error)
	Keygen(ctx context.Context, role Role, serverURL string, params types.Parameters, participants []string) (*types.KeyShare, error)
	Sign(ctx context.Context, role Role, serverURL string, params types.Parameters, share types.KeyShare, value types.SignValue, participants []string) (*types.SignResult, error)
}

type BaseSessionService struct {
	engine engine.Engine
	creds  *CredentialCache
	Logger logger.Logger
}

func NewSessionService(eng engine.Engine, log logger.Logger) *BaseSessionService {
	return &BaseSessionService{
		engine: eng,
		creds:  NewCredentialCache(eng.GenerateKeypair),
		Logger: log,
	}
}

// Credentials exposes the cache for callers that only need server
// options or the handshake keypair.
func (s *BaseSessionService) Credentials() *CredentialCache {
	return s.creds
}

func (s *BaseSessionService) meetingOptions(ctx context.Context, serverURL string) (*types.MeetingOptions, error) {
	server, err := s.creds.GetServerOptions(ctx, serverURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get server options: %w", err)
	}
	keypair, err := s.creds.GetKeypair(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get keypair: %w", err)
	}
	return &types.MeetingOptions{
		Server:  *server,
		Keypair: keypair.PEM,
	}, nil
}

// CreateMeeting registers a meeting with the closed set of expected
// participant identifiers. The returned identifier is distributed to
// participants out-of-band.
func (s *BaseSessionService) CreateMeeting(ctx context.Context, serverURL string, identifiers []string, initiator string, payload json.RawMessage) (string, error) {
	opts, err := s.meetingOptions(ctx, serverURL)
	if err != nil {
		return "", err
	}

	meetingID, err := s.engine.CreateMeeting(ctx, *opts, identifiers, initiator, payload)
	if err != nil {
		return "", wrapEngineErr("CreateMeeting", err)
	}

	s.Logger.Log("created meeting %s for %d participants", meetingID, len(identifiers))
	return meetingID, nil
}

// JoinMeeting blocks until all expected participants have joined, then
// returns every participant's public key in canonical order (sorted by
// participant identifier, ascending) along with the initiator's
// payload. The canonical order makes all parties derive the same
// participant index mapping independent of join order.
func (s *BaseSessionService) JoinMeeting(ctx context.Context, serverURL, meetingID, userID string) ([]string, json.RawMessage, error) {
	opts, err := s.meetingOptions(ctx, serverURL)
	if err != nil {
		return nil, nil, err
	}

	participants, payload, err := s.engine.JoinMeeting(ctx, *opts, meetingID, userID)
	if err != nil {
		return nil, nil, wrapEngineErr("JoinMeeting", err)
	}

	sort.Slice(participants, func(i, j int) bool {
		return participants[i].ID < participants[j].ID
	})

	publicKeys := make([]string, 0, len(participants))
	for _, p := range participants {
		publicKeys = append(publicKeys, p.PublicKey)
	}
	return publicKeys, payload, nil
}

// Keygen validates the threshold parameters and the role asymmetry,
// then performs a single engine invocation. The initiator must supply
// the participant public keys resolved from its meeting; a joiner must
// not, the engine derives the participant list from the meeting
// exchange on the joiner's side.
func (s *BaseSessionService) Keygen(ctx context.Context, role Role, serverURL string, params types.Parameters, participants []string) (*types.KeyShare, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := checkRole(role, params, participants); err != nil {
		return nil, err
	}

	server, err := s.creds.GetServerOptions(ctx, serverURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get server options: %w", err)
	}
	keypair, err := s.creds.GetKeypair(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get keypair: %w", err)
	}

	opts := types.KeygenOptions{
		Server:     *server,
		Keypair:    keypair.PEM,
		Protocol:   types.ProtocolGG20,
		Parameters: params,
	}

	share, err := s.engine.Keygen(ctx, opts, participants)
	if err != nil {
		return nil, wrapEngineErr("Keygen", err)
	}
	if share.Address == "" {
		share.Address = types.DeriveAddress(share.PublicKey)
	}

	s.Logger.Log("keygen complete for address %s (t=%d, n=%d)", share.Address, params.Threshold, params.Parties)
	return share, nil
}

// Sign is the signing counterpart of Keygen: same resolution flow,
// same role asymmetry, different engine entry point.
func (s *BaseSessionService) Sign(ctx context.Context, role Role, serverURL string, params types.Parameters, share types.KeyShare, value types.SignValue, participants []string) (*types.SignResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := value.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, types.ErrInvalidParameters)
	}
	if err := checkRole(role, params, participants); err != nil {
		return nil, err
	}

	server, err := s.creds.GetServerOptions(ctx, serverURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get server options: %w", err)
	}
	keypair, err := s.creds.GetKeypair(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get keypair: %w", err)
	}

	opts := types.SigningOptions{
		Server:     *server,
		Keypair:    keypair.PEM,
		Protocol:   types.ProtocolGG20,
		Parameters: params,
	}

	result, err := s.engine.Sign(ctx, opts, share, value)
	if err != nil {
		return nil, wrapEngineErr("Sign", err)
	}

	s.Logger.Log("signing complete for address %s", share.Address)
	return result, nil
}

// checkRole enforces the role invariant before any network or engine
// call is made. A violation is a caller programming error.
func checkRole(role Role, params types.Parameters, participants []string) error {
	switch role {
	case RoleInitiator:
		if len(participants) == 0 {
			return fmt.Errorf("initiator must supply participant public keys: %w", types.ErrRoleMismatch)
		}
		if len(participants) != params.Parties {
			return fmt.Errorf("got %d participants for %d parties: %w", len(participants), params.Parties, types.ErrInvalidParameters)
		}
	case RoleJoiner:
		if participants != nil {
			return fmt.Errorf("joiner must not supply participant public keys: %w", types.ErrRoleMismatch)
		}
	default:
		return fmt.Errorf("unknown role %q: %w", role, types.ErrRoleMismatch)
	}
	return nil
}

// wrapEngineErr surfaces engine-internal failures as ErrEngineFailure
// while letting already classified failures (meeting not found,
// participant mismatch, timeout, cancellation) pass through unchanged.
func wrapEngineErr(call string, err error) error {
	switch {
	case errors.Is(err, types.ErrMeetingNotFound),
		errors.Is(err, types.ErrParticipantMismatch),
		errors.Is(err, types.ErrTimeout),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("engine %s: %v: %w", call, err, types.ErrEngineFailure)
	}
}
