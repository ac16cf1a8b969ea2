// Package rpcengine talks to an engine sidecar process over HTTP.
// The sidecar hosts the actual multi-party computation runtime; this
// client only moves options and results across the process boundary.
package rpcengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/mpcwallet/tkeyring/client/types"
	"github.com/mpcwallet/tkeyring/engine"
	"github.com/mpcwallet/tkeyring/pkg/noise"
)

const defaultCallTimeout = 10 * time.Minute

var _ engine.Engine = (*RPCEngine)(nil)

type RPCEngine struct {
	baseURL string
	client  *http.Client
}

func NewRPCEngine(baseURL string) *RPCEngine {
	return &RPCEngine{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultCallTimeout},
	}
}

type envelope struct {
	Result       json.RawMessage `json:"result"`
	ErrorMessage string          `json:"error_message,omitempty"`
	ErrorCode    string          `json:"error_code,omitempty"`
}

// Engine failure codes understood by this client. Anything else is
// surfaced as a plain error for the orchestrator to classify.
const (
	codeMeetingNotFound     = "meeting_not_found"
	codeParticipantMismatch = "participant_mismatch"
	codeTimeout             = "timeout"
)

func (e *RPCEngine) call(ctx context.Context, path string, request, response interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal engine request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build engine request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("engine call %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	responseBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read engine response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(responseBody, &env); err != nil {
		return fmt.Errorf("failed to unmarshal engine response: %w", err)
	}

	if env.ErrorMessage != "" {
		switch env.ErrorCode {
		case codeMeetingNotFound:
			return fmt.Errorf("%s: %w", env.ErrorMessage, types.ErrMeetingNotFound)
		case codeParticipantMismatch:
			return fmt.Errorf("%s: %w", env.ErrorMessage, types.ErrParticipantMismatch)
		case codeTimeout:
			return fmt.Errorf("%s: %w", env.ErrorMessage, types.ErrTimeout)
		default:
			return fmt.Errorf("engine call %s: %s", path, env.ErrorMessage)
		}
	}

	if response != nil {
		if err := json.Unmarshal(env.Result, response); err != nil {
			return fmt.Errorf("failed to unmarshal engine result: %w", err)
		}
	}
	return nil
}

// GenerateKeypair is served locally; handshake keys never leave the
// process that will use them.
func (e *RPCEngine) GenerateKeypair(ctx context.Context) (*types.Keypair, error) {
	return noise.GenerateKeypair()
}

type createMeetingRequest struct {
	Options     types.MeetingOptions `json:"options"`
	Identifiers []string             `json:"identifiers"`
	Initiator   string               `json:"initiator"`
	Payload     json.RawMessage      `json:"payload"`
}

func (e *RPCEngine) CreateMeeting(ctx context.Context, opts types.MeetingOptions, identifiers []string, initiator string, payload json.RawMessage) (string, error) {
	var meetingID string
	err := e.call(ctx, "/createMeeting", &createMeetingRequest{
		Options:     opts,
		Identifiers: identifiers,
		Initiator:   initiator,
		Payload:     payload,
	}, &meetingID)
	if err != nil {
		return "", err
	}
	return meetingID, nil
}

type joinMeetingRequest struct {
	Options   types.MeetingOptions `json:"options"`
	MeetingID string               `json:"meetingId"`
	UserID    string               `json:"userId"`
}

type joinMeetingResult struct {
	Participants []engine.Participant `json:"participants"`
	Payload      json.RawMessage      `json:"payload"`
}

func (e *RPCEngine) JoinMeeting(ctx context.Context, opts types.MeetingOptions, meetingID, userID string) ([]engine.Participant, json.RawMessage, error) {
	var result joinMeetingResult
	err := e.call(ctx, "/joinMeeting", &joinMeetingRequest{
		Options:   opts,
		MeetingID: meetingID,
		UserID:    userID,
	}, &result)
	if err != nil {
		return nil, nil, err
	}
	return result.Participants, result.Payload, nil
}

type keygenRequest struct {
	Options      types.KeygenOptions `json:"options"`
	Participants []string            `json:"participants,omitempty"`
}

func (e *RPCEngine) Keygen(ctx context.Context, opts types.KeygenOptions, participants []string) (*types.KeyShare, error) {
	var share types.KeyShare
	err := e.call(ctx, "/keygen", &keygenRequest{
		Options:      opts,
		Participants: participants,
	}, &share)
	if err != nil {
		return nil, err
	}
	return &share, nil
}

type signRequest struct {
	Options types.SigningOptions `json:"options"`
	Share   types.KeyShare       `json:"share"`
	Value   types.SignValue      `json:"value"`
}

func (e *RPCEngine) Sign(ctx context.Context, opts types.SigningOptions, share types.KeyShare, value types.SignValue) (*types.SignResult, error) {
	var result types.SignResult
	err := e.call(ctx, "/sign", &signRequest{
		Options: opts,
		Share:   share,
		Value:   value,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
