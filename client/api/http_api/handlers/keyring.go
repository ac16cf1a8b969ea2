package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mpcwallet/tkeyring/client/api/dispatcher"
	cs "github.com/mpcwallet/tkeyring/client/api/http_api/context_service"
	req "github.com/mpcwallet/tkeyring/client/api/http_api/requests"
)

// Keyring handlers forward to the permission-gated dispatcher; the
// caller's origin comes from the Origin header and is never trusted
// beyond the allow-list lookup.

func (a *HTTPApp) dispatch(c echo.Context, method dispatcher.Method, params interface{}) error {
	stx := c.(*cs.ContextService)

	paramsBz, err := json.Marshal(params)
	if err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.dispatcher.Dispatch(c.Request().Context(), dispatcher.Request{
		Origin: c.Request().Header.Get(echo.HeaderOrigin),
		Method: method,
		Params: paramsBz,
	})
	if err != nil {
		return stx.JsonError(statusForError(err), err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) GetAccountByAddress(c echo.Context) error {
	stx := c.(*cs.ContextService)

	request := &req.AddressForm{}
	if ok, resp := bindRequest(stx, request); !ok {
		return resp
	}
	return a.dispatch(c, dispatcher.MethodGetAccountByAddress, request)
}

func (a *HTTPApp) GetWalletByAddress(c echo.Context) error {
	stx := c.(*cs.ContextService)

	request := &req.AddressForm{}
	if ok, resp := bindRequest(stx, request); !ok {
		return resp
	}
	return a.dispatch(c, dispatcher.MethodGetWalletByAddress, request)
}

func (a *HTTPApp) DeleteKeyShare(c echo.Context) error {
	stx := c.(*cs.ContextService)

	request := &req.DeleteKeyShareForm{}
	if ok, resp := bindRequest(stx, request); !ok {
		return resp
	}
	return a.dispatch(c, dispatcher.MethodDeleteKeyShare, request)
}

func (a *HTTPApp) GetAccounts(c echo.Context) error {
	return a.dispatch(c, dispatcher.MethodListAccounts, struct{}{})
}

func (a *HTTPApp) GetAccount(c echo.Context) error {
	stx := c.(*cs.ContextService)

	request := &req.AccountIdForm{}
	if ok, resp := bindRequest(stx, request); !ok {
		return resp
	}
	return a.dispatch(c, dispatcher.MethodGetAccount, request)
}

func (a *HTTPApp) DeleteAccount(c echo.Context) error {
	stx := c.(*cs.ContextService)

	request := &req.AccountIdForm{}
	if ok, resp := bindRequest(stx, request); !ok {
		return resp
	}
	return a.dispatch(c, dispatcher.MethodDeleteAccount, request)
}
