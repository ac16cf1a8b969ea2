package keyring

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/mpcwallet/tkeyring/client/modules/logger"
	"github.com/mpcwallet/tkeyring/client/services/session"
	"github.com/mpcwallet/tkeyring/client/types"
	"github.com/mpcwallet/tkeyring/engine"
	"github.com/mpcwallet/tkeyring/pkg/noise"
)

// fakeEngine is an in-process engine good enough for the full
// meeting/keygen/sign flow: meetings block until every expected
// participant has joined, shares get sequential indices.
type fakeEngine struct {
	mu        sync.Mutex
	meetings  map[string]*fakeMeeting
	nextIndex int32
	publicKey []byte
}

type fakeMeeting struct {
	expected     int
	payload      json.RawMessage
	participants []engine.Participant
	done         chan struct{}
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		meetings:  map[string]*fakeMeeting{},
		publicKey: append([]byte{0x04}, frand.Bytes(64)...),
	}
}

func (e *fakeEngine) GenerateKeypair(ctx context.Context) (*types.Keypair, error) {
	return noise.GenerateKeypair()
}

func (e *fakeEngine) CreateMeeting(ctx context.Context, opts types.MeetingOptions, identifiers []string, initiator string, payload json.RawMessage) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	meetingID := uuid.New().String()
	e.meetings[meetingID] = &fakeMeeting{
		expected: len(identifiers),
		payload:  payload,
		done:     make(chan struct{}),
	}
	return meetingID, nil
}

func (e *fakeEngine) JoinMeeting(ctx context.Context, opts types.MeetingOptions, meetingID, userID string) ([]engine.Participant, json.RawMessage, error) {
	e.mu.Lock()
	m, ok := e.meetings[meetingID]
	if !ok {
		e.mu.Unlock()
		return nil, nil, types.ErrMeetingNotFound
	}
	m.participants = append(m.participants, engine.Participant{
		ID:        userID,
		PublicKey: "pk_" + userID,
	})
	if len(m.participants) == m.expected {
		close(m.done)
	}
	e.mu.Unlock()

	select {
	case <-m.done:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]engine.Participant{}, m.participants...), m.payload, nil
}

func (e *fakeEngine) Keygen(ctx context.Context, opts types.KeygenOptions, participants []string) (*types.KeyShare, error) {
	i := int(atomic.AddInt32(&e.nextIndex, 1)) - 1
	return &types.KeyShare{
		LocalKey: types.LocalKey{
			I: i,
			T: opts.Parameters.Threshold,
			N: opts.Parameters.Parties,
		},
		PublicKey: e.publicKey,
	}, nil
}

func (e *fakeEngine) Sign(ctx context.Context, opts types.SigningOptions, share types.KeyShare, value types.SignValue) (*types.SignResult, error) {
	return &types.SignResult{
		R:     types.SignPrimitive{Curve: "secp256k1", Scalar: frand.Bytes(32)},
		S:     types.SignPrimitive{Curve: "secp256k1", Scalar: frand.Bytes(32)},
		Recid: 1,
	}, nil
}

func TestThreePartyKeygenFlow(t *testing.T) {
	var (
		ctx    = context.Background()
		req    = require.New(t)
		params = types.Parameters{Parties: 3, Threshold: 2}
		users  = []string{"alice", "bob", "carol"}
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "server_public_key")
	}))
	defer server.Close()

	eng := newFakeEngine()

	services := make(map[string]session.SessionService, len(users))
	for _, user := range users {
		services[user] = session.NewSessionService(eng, logger.NewLogger(user))
	}

	meetingID, err := services["alice"].CreateMeeting(ctx, server.URL, users, "alice",
		json.RawMessage(`{"purpose":"keygen"}`))
	req.NoError(err)

	// Every party joins and must see the same canonically ordered
	// participant set.
	type joinResult struct {
		user       string
		publicKeys []string
	}
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		joins   []joinResult
		joinErr error
	)
	for _, user := range users {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			publicKeys, payload, err := services[user].JoinMeeting(ctx, server.URL, meetingID, user)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				joinErr = err
				return
			}
			if string(payload) != `{"purpose":"keygen"}` {
				joinErr = fmt.Errorf("unexpected payload %q", payload)
				return
			}
			joins = append(joins, joinResult{user: user, publicKeys: publicKeys})
		}(user)
	}
	wg.Wait()
	req.NoError(joinErr)
	req.Len(joins, 3)
	for _, join := range joins {
		req.Equal([]string{"pk_alice", "pk_bob", "pk_carol"}, join.publicKeys)
	}

	// Each party runs keygen; alice initiated, the others joined.
	shares := make(map[string]*types.KeyShare, len(users))
	for _, join := range joins {
		role, participants := session.RoleJoiner, []string(nil)
		if join.user == "alice" {
			role, participants = session.RoleInitiator, join.publicKeys
		}
		share, err := services[join.user].Keygen(ctx, role, server.URL, params, participants)
		req.NoError(err)
		shares[join.user] = share
	}

	// Share indices form a permutation of 0..n-1; every party derives
	// the same address.
	indices := make([]int, 0, len(shares))
	for _, share := range shares {
		req.Equal(2, share.LocalKey.T)
		req.Equal(3, share.LocalKey.N)
		req.Equal(shares["alice"].Address, share.Address)
		indices = append(indices, share.LocalKey.I)
	}
	sort.Ints(indices)
	req.Equal([]int{0, 1, 2}, indices)
	req.Equal(types.DeriveAddress(eng.publicKey), shares["alice"].Address)

	// One party signs and records the proof through the keyring service.
	service, _ := newTestService(t, "ThreePartyFlow")
	named, err := service.SaveKeyShare("alice_share", *shares["alice"])
	req.NoError(err)
	req.NotEmpty(named.ID)

	value := types.SignValue{
		Kind:    types.SigningKindMessage,
		Message: &types.SignMessage{Message: "hello", Digest: frand.Bytes(32)},
	}
	result, err := services["alice"].Sign(ctx, session.RoleInitiator, server.URL, params,
		*shares["alice"], value, joins[0].publicKeys)
	req.NoError(err)

	proof, err := service.RecordMessageProof(shares["alice"].Address, *result, value)
	req.NoError(err)
	req.Equal(shares["alice"].Address, proof.Address)

	wallet, err := service.GetWalletByAddress(shares["alice"].Address)
	req.NoError(err)
	req.Len(wallet.Shares, 1)
}
