package wallet

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/mpcwallet/tkeyring/client/modules/state"
	"github.com/mpcwallet/tkeyring/mocks/clientmocks"
)

func TestAddKeyShareStateWriteFails(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	key := state.MakeCompositeKey(AppStateKeyPrefix, state.AppStateKey)

	stg := clientmocks.NewMockState(ctrl)
	stg.EXPECT().Get(key).Times(1).Return(nil, nil)
	stg.EXPECT().Set(key, gomock.Any()).Times(1).Return(errors.New("disk full"))

	repo := NewWalletRepo(stg)

	_, err := repo.AddKeyShare("wallet_1", testKeyShare("0xAAA"))
	req.Error(err)
}

func TestLoadStateCorrupted(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	key := state.MakeCompositeKey(AppStateKeyPrefix, state.AppStateKey)

	stg := clientmocks.NewMockState(ctrl)
	stg.EXPECT().Get(key).Times(1).Return([]byte("not json"), nil)

	repo := NewWalletRepo(stg)

	_, err := repo.GetAppState()
	req.Error(err)
}

func TestLoadStateEmptyDocument(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	key := state.MakeCompositeKey(AppStateKeyPrefix, state.AppStateKey)

	// A document persisted before any proofs has null maps; loading
	// must restore them so appends do not panic.
	stg := clientmocks.NewMockState(ctrl)
	stg.EXPECT().Get(key).Times(1).Return([]byte(`{"accounts":null,"keyShares":null}`), nil)

	repo := NewWalletRepo(stg)

	appState, err := repo.GetAppState()
	req.NoError(err)
	req.NotNil(appState.MessageProofs)
	req.NotNil(appState.TransactionReceipts)
	req.Empty(appState.Accounts)
}
