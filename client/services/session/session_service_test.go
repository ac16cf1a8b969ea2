package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/mpcwallet/tkeyring/client/modules/logger"
	"github.com/mpcwallet/tkeyring/client/types"
	"github.com/mpcwallet/tkeyring/engine"
	"github.com/mpcwallet/tkeyring/mocks/enginemocks"
)

func testRendezvousServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "server_public_key")
	}))
	t.Cleanup(server.Close)
	return server
}

func testKeypair() *types.Keypair {
	return &types.Keypair{PEM: "test_pem", PublicKey: "test_public_key"}
}

func TestJoinMeetingCanonicalOrder(t *testing.T) {
	var (
		ctx  = context.Background()
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	server := testRendezvousServer(t)
	eng := enginemocks.NewMockEngine(ctrl)
	eng.EXPECT().GenerateKeypair(gomock.Any()).Times(1).Return(testKeypair(), nil)

	payload := json.RawMessage(`{"purpose":"keygen"}`)
	eng.EXPECT().JoinMeeting(gomock.Any(), gomock.Any(), "meeting_id", "user_b").Times(1).
		Return([]engine.Participant{
			{ID: "b", PublicKey: "pk_b"},
			{ID: "c", PublicKey: "pk_c"},
			{ID: "a", PublicKey: "pk_a"},
		}, payload, nil)

	service := NewSessionService(eng, logger.NewLogger("user_b"))

	publicKeys, gotPayload, err := service.JoinMeeting(ctx, server.URL, "meeting_id", "user_b")
	req.NoError(err)
	req.Equal([]string{"pk_a", "pk_b", "pk_c"}, publicKeys)
	req.Equal(payload, gotPayload)
}

func TestCreateMeeting(t *testing.T) {
	var (
		ctx  = context.Background()
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	server := testRendezvousServer(t)
	eng := enginemocks.NewMockEngine(ctrl)
	eng.EXPECT().GenerateKeypair(gomock.Any()).Times(1).Return(testKeypair(), nil)
	eng.EXPECT().CreateMeeting(gomock.Any(), gomock.Any(), []string{"a", "b", "c"}, "a", gomock.Nil()).
		Times(1).Return("meeting_id", nil)

	service := NewSessionService(eng, logger.NewLogger("user_a"))

	meetingID, err := service.CreateMeeting(ctx, server.URL, []string{"a", "b", "c"}, "a", nil)
	req.NoError(err)
	req.Equal("meeting_id", meetingID)
}

func TestKeygenInvalidParameters(t *testing.T) {
	var (
		ctx  = context.Background()
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	// No expectations: a parameter violation must be rejected before
	// any engine or network call.
	eng := enginemocks.NewMockEngine(ctrl)
	service := NewSessionService(eng, logger.NewLogger("user_a"))

	badParams := []types.Parameters{
		{Parties: 1, Threshold: 1},
		{Parties: 3, Threshold: 0},
		{Parties: 3, Threshold: 4},
	}
	for _, params := range badParams {
		_, err := service.Keygen(ctx, RoleInitiator, "http://unused", params, []string{"pk_a", "pk_b", "pk_c"})
		req.ErrorIs(err, types.ErrInvalidParameters)
	}
}

func TestKeygenRoleMismatch(t *testing.T) {
	var (
		ctx    = context.Background()
		req    = require.New(t)
		ctrl   = gomock.NewController(t)
		params = types.Parameters{Parties: 3, Threshold: 2}
	)
	defer ctrl.Finish()

	eng := enginemocks.NewMockEngine(ctrl)
	service := NewSessionService(eng, logger.NewLogger("user_a"))

	// An initiator must supply the participant set.
	_, err := service.Keygen(ctx, RoleInitiator, "http://unused", params, nil)
	req.ErrorIs(err, types.ErrRoleMismatch)

	// A joiner must not.
	_, err = service.Keygen(ctx, RoleJoiner, "http://unused", params, []string{"pk_a"})
	req.ErrorIs(err, types.ErrRoleMismatch)

	// An initiator with a short participant list is a parameter error.
	_, err = service.Keygen(ctx, RoleInitiator, "http://unused", params, []string{"pk_a", "pk_b"})
	req.ErrorIs(err, types.ErrInvalidParameters)
}

func TestKeygen(t *testing.T) {
	var (
		ctx    = context.Background()
		req    = require.New(t)
		ctrl   = gomock.NewController(t)
		params = types.Parameters{Parties: 3, Threshold: 2}
	)
	defer ctrl.Finish()

	server := testRendezvousServer(t)
	eng := enginemocks.NewMockEngine(ctrl)
	eng.EXPECT().GenerateKeypair(gomock.Any()).Times(1).Return(testKeypair(), nil)

	eng.EXPECT().Keygen(gomock.Any(), gomock.Any(), []string{"pk_a", "pk_b", "pk_c"}).Times(1).
		DoAndReturn(func(_ context.Context, opts types.KeygenOptions, _ []string) (*types.KeyShare, error) {
			req.Equal(types.ProtocolGG20, opts.Protocol)
			req.Equal(params, opts.Parameters)
			req.Equal("test_pem", opts.Keypair)
			req.Equal("server_public_key", opts.Server.ServerPublicKey)
			return &types.KeyShare{
				LocalKey: types.LocalKey{I: 0, T: 2, N: 3},
				Address:  "0xAbC",
			}, nil
		})

	service := NewSessionService(eng, logger.NewLogger("user_a"))

	share, err := service.Keygen(ctx, RoleInitiator, server.URL, params, []string{"pk_a", "pk_b", "pk_c"})
	req.NoError(err)
	req.Equal(2, share.LocalKey.T)
	req.Equal(3, share.LocalKey.N)
	req.Equal("0xAbC", share.Address)
}

func TestSignValueValidation(t *testing.T) {
	var (
		ctx    = context.Background()
		req    = require.New(t)
		ctrl   = gomock.NewController(t)
		params = types.Parameters{Parties: 3, Threshold: 2}
	)
	defer ctrl.Finish()

	eng := enginemocks.NewMockEngine(ctrl)
	service := NewSessionService(eng, logger.NewLogger("user_a"))

	badValues := []types.SignValue{
		{Kind: types.SigningKindMessage},
		{Kind: types.SigningKindTransaction, Message: &types.SignMessage{Message: "hello"}},
		{Kind: "unknown"},
		{
			Kind:        types.SigningKindMessage,
			Message:     &types.SignMessage{Message: "hello"},
			Transaction: &types.SignTransaction{},
		},
	}
	for _, value := range badValues {
		_, err := service.Sign(ctx, RoleJoiner, "http://unused", params, types.KeyShare{}, value, nil)
		req.ErrorIs(err, types.ErrInvalidParameters)
	}
}

func TestSign(t *testing.T) {
	var (
		ctx    = context.Background()
		req    = require.New(t)
		ctrl   = gomock.NewController(t)
		params = types.Parameters{Parties: 3, Threshold: 2}
	)
	defer ctrl.Finish()

	server := testRendezvousServer(t)
	eng := enginemocks.NewMockEngine(ctrl)
	eng.EXPECT().GenerateKeypair(gomock.Any()).Times(1).Return(testKeypair(), nil)

	share := types.KeyShare{
		LocalKey: types.LocalKey{I: 1, T: 2, N: 3},
		Address:  "0xAbC",
	}
	value := types.SignValue{
		Kind:    types.SigningKindMessage,
		Message: &types.SignMessage{Message: "hello", Digest: []byte("digest")},
	}
	expected := &types.SignResult{
		R:     types.SignPrimitive{Curve: "secp256k1", Scalar: []byte{1}},
		S:     types.SignPrimitive{Curve: "secp256k1", Scalar: []byte{2}},
		Recid: 1,
	}
	eng.EXPECT().Sign(gomock.Any(), gomock.Any(), share, value).Times(1).Return(expected, nil)

	service := NewSessionService(eng, logger.NewLogger("user_b"))

	result, err := service.Sign(ctx, RoleJoiner, server.URL, params, share, value, nil)
	req.NoError(err)
	req.Equal(expected, result)
}

func TestWrapEngineErr(t *testing.T) {
	req := require.New(t)

	// Classified failures pass through unchanged.
	for _, classified := range []error{
		types.ErrMeetingNotFound,
		types.ErrParticipantMismatch,
		types.ErrTimeout,
		context.Canceled,
		context.DeadlineExceeded,
	} {
		err := wrapEngineErr("Keygen", fmt.Errorf("session: %w", classified))
		req.ErrorIs(err, classified)
		req.False(errors.Is(err, types.ErrEngineFailure))
	}

	// Anything else becomes an engine failure.
	err := wrapEngineErr("Sign", errors.New("round 3 aborted"))
	req.ErrorIs(err, types.ErrEngineFailure)
}
