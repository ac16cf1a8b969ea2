package dispatcher

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/mpcwallet/tkeyring/client/modules/logger"
	"github.com/mpcwallet/tkeyring/client/types"
	"github.com/mpcwallet/tkeyring/mocks/servicemocks"
)

func TestDispatchPermissionDenied(t *testing.T) {
	var (
		ctx  = context.Background()
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	// No expectations: an unauthorized request must never reach the
	// keyring service.
	keyringService := servicemocks.NewMockKeyringService(ctrl)

	d := NewDispatcher(Permissions{
		"https://app.example.com": {MethodListAccounts},
	}, keyringService, logger.NewLogger("test"))

	// Unknown origin.
	_, err := d.Dispatch(ctx, Request{
		Origin: "https://evil.example.com",
		Method: MethodListAccounts,
	})
	req.ErrorIs(err, types.ErrPermissionDenied)

	// Known origin, method outside its allow-list.
	_, err = d.Dispatch(ctx, Request{
		Origin: "https://app.example.com",
		Method: MethodDeleteKeyShare,
	})
	req.ErrorIs(err, types.ErrPermissionDenied)

	// An unauthorized probe of a nonexistent method is denied, not
	// reported as unsupported.
	_, err = d.Dispatch(ctx, Request{
		Origin: "https://evil.example.com",
		Method: Method("keyring_exportPrivateKey"),
	})
	req.ErrorIs(err, types.ErrPermissionDenied)
	req.NotErrorIs(err, types.ErrMethodNotSupported)
}

func TestDispatchMethodNotSupported(t *testing.T) {
	var (
		ctx  = context.Background()
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	keyringService := servicemocks.NewMockKeyringService(ctrl)

	bogus := Method("keyring_bogus")
	d := NewDispatcher(Permissions{
		"https://app.example.com": {bogus},
	}, keyringService, logger.NewLogger("test"))

	_, err := d.Dispatch(ctx, Request{
		Origin: "https://app.example.com",
		Method: bogus,
	})
	req.ErrorIs(err, types.ErrMethodNotSupported)
}

func TestDispatchGetAccountByAddress(t *testing.T) {
	var (
		ctx  = context.Background()
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	account := &types.KeyringAccount{ID: "account_id", Address: "0xAAA", Name: "wallet_1"}

	keyringService := servicemocks.NewMockKeyringService(ctrl)
	keyringService.EXPECT().GetAccountByAddress("0xAAA").Times(1).Return(account, nil)

	d := NewDispatcher(Permissions{
		"https://app.example.com": {MethodGetAccountByAddress},
	}, keyringService, logger.NewLogger("test"))

	result, err := d.Dispatch(ctx, Request{
		Origin: "https://app.example.com",
		Method: MethodGetAccountByAddress,
		Params: json.RawMessage(`{"address":"0xAAA"}`),
	})
	req.NoError(err)
	req.Equal(account, result)
}

func TestDispatchDeleteKeyShare(t *testing.T) {
	var (
		ctx  = context.Background()
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	keyringService := servicemocks.NewMockKeyringService(ctrl)
	keyringService.EXPECT().DeleteKeyShare("account_id", "share_id").Times(1).Return(nil)

	d := NewDispatcher(Permissions{
		"https://app.example.com": {MethodDeleteKeyShare},
	}, keyringService, logger.NewLogger("test"))

	result, err := d.Dispatch(ctx, Request{
		Origin: "https://app.example.com",
		Method: MethodDeleteKeyShare,
		Params: json.RawMessage(`{"id":"account_id","keyShareId":"share_id"}`),
	})
	req.NoError(err)
	req.Nil(result)
}

func TestDispatchListAccounts(t *testing.T) {
	var (
		ctx  = context.Background()
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	accounts := []types.KeyringAccount{{ID: "account_id", Address: "0xAAA", Name: "wallet_1"}}

	keyringService := servicemocks.NewMockKeyringService(ctrl)
	keyringService.EXPECT().ListAccounts().Times(1).Return(accounts, nil)

	d := NewDispatcher(Permissions{
		"https://app.example.com": {MethodListAccounts},
	}, keyringService, logger.NewLogger("test"))

	result, err := d.Dispatch(ctx, Request{
		Origin: "https://app.example.com",
		Method: MethodListAccounts,
	})
	req.NoError(err)
	req.Equal(accounts, result)
}
