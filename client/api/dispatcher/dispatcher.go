// Package dispatcher gates the host request surface. A caller's origin
// is validated against an allow-list before any method that touches
// the store or the orchestrator is admitted.
package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mpcwallet/tkeyring/client/modules/logger"
	"github.com/mpcwallet/tkeyring/client/services/keyring"
	"github.com/mpcwallet/tkeyring/client/types"
)

type Method string

const (
	MethodGetAccountByAddress Method = "keyring_getAccountByAddress"
	MethodGetWalletByAddress  Method = "keyring_getWalletByAddress"
	MethodDeleteKeyShare      Method = "keyring_deleteKeyShare"

	// Standard keyring passthrough methods.
	MethodListAccounts  Method = "keyring_listAccounts"
	MethodGetAccount    Method = "keyring_getAccount"
	MethodDeleteAccount Method = "keyring_deleteAccount"

	// Session methods are not dispatched here but share the permission
	// table so the HTTP layer applies the same gate.
	MethodCreateMeeting Method = "session_createMeeting"
	MethodJoinMeeting   Method = "session_joinMeeting"
	MethodKeygen        Method = "session_keygen"
	MethodSign          Method = "session_sign"
)

// Permissions maps a caller origin to the methods it may call.
type Permissions map[string][]Method

type Request struct {
	Origin string          `json:"origin"`
	Method Method          `json:"method"`
	Params json.RawMessage `json:"params"`
}

type Dispatcher struct {
	perms   Permissions
	keyring keyring.KeyringService
	Logger  logger.Logger
}

func NewDispatcher(perms Permissions, ks keyring.KeyringService, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		perms:   perms,
		keyring: ks,
		Logger:  log,
	}
}

// HasPermission reports whether the origin's allow-list contains the
// method.
func (d *Dispatcher) HasPermission(origin string, method Method) bool {
	for _, m := range d.perms[origin] {
		if m == method {
			return true
		}
	}
	return false
}

type addressParams struct {
	Address string `json:"address"`
}

type deleteKeyShareParams struct {
	ID         string `json:"id"`
	KeyShareID string `json:"keyShareId"`
}

type accountIDParams struct {
	ID string `json:"id"`
}

// Dispatch validates the origin first; an unauthorized caller gets
// ErrPermissionDenied with no further processing. A method missing from
// the table entirely still fails the permission check first, so an
// unauthorized probe cannot distinguish unknown methods from known
// ones.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (interface{}, error) {
	if !d.HasPermission(req.Origin, req.Method) {
		return nil, fmt.Errorf("origin %q may not call %q: %w", req.Origin, req.Method, types.ErrPermissionDenied)
	}

	switch req.Method {
	case MethodGetAccountByAddress:
		var params addressParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal params: %w", err)
		}
		return d.keyring.GetAccountByAddress(params.Address)

	case MethodGetWalletByAddress:
		var params addressParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal params: %w", err)
		}
		return d.keyring.GetWalletByAddress(params.Address)

	case MethodDeleteKeyShare:
		var params deleteKeyShareParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal params: %w", err)
		}
		return nil, d.keyring.DeleteKeyShare(params.ID, params.KeyShareID)

	case MethodListAccounts:
		return d.keyring.ListAccounts()

	case MethodGetAccount:
		var params accountIDParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal params: %w", err)
		}
		return d.keyring.GetAccount(params.ID)

	case MethodDeleteAccount:
		var params accountIDParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal params: %w", err)
		}
		return nil, d.keyring.DeleteAccount(params.ID)

	default:
		return nil, fmt.Errorf("%q: %w", req.Method, types.ErrMethodNotSupported)
	}
}
