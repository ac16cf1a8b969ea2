package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mpcwallet/tkeyring/client/api/dispatcher"
	"github.com/mpcwallet/tkeyring/client/api/http_api/handlers"
	"github.com/mpcwallet/tkeyring/client/services/keyring"
	"github.com/mpcwallet/tkeyring/client/services/session"
)

func SetRouter(e *echo.Echo, d *dispatcher.Dispatcher, ss session.SessionService, ks keyring.KeyringService) {
	h := handlers.NewHTTPApp(d, ss, ks)

	e.GET("/getAccounts", h.GetAccounts)
	e.GET("/getAccount", h.GetAccount)
	e.GET("/getAccountByAddress", h.GetAccountByAddress)
	e.GET("/getWalletByAddress", h.GetWalletByAddress)
	e.POST("/deleteKeyShare", h.DeleteKeyShare)
	e.POST("/deleteAccount", h.DeleteAccount)

	e.POST("/createMeeting", h.CreateMeeting)
	e.POST("/joinMeeting", h.JoinMeeting)
	e.POST("/startKeygen", h.StartKeygen)
	e.POST("/proposeSign", h.ProposeSign)
	e.POST("/recordTxReceipt", h.RecordTxReceipt)
}
