package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mpcwallet/tkeyring/client/api/dispatcher"
	. "github.com/mpcwallet/tkeyring/client/api/dto"
	cs "github.com/mpcwallet/tkeyring/client/api/http_api/context_service"
	req "github.com/mpcwallet/tkeyring/client/api/http_api/requests"
	"github.com/mpcwallet/tkeyring/client/services/session"
	"github.com/mpcwallet/tkeyring/client/types"
)

// Session handlers share the dispatcher's permission table: the origin
// must be allowed to call the session method before any work is done.

func (a *HTTPApp) sessionPermitted(c echo.Context, method dispatcher.Method) (bool, error) {
	stx := c.(*cs.ContextService)

	origin := c.Request().Header.Get(echo.HeaderOrigin)
	if !a.dispatcher.HasPermission(origin, method) {
		err := fmt.Errorf("origin %q may not call %q: %w", origin, method, types.ErrPermissionDenied)
		return false, stx.JsonError(statusForError(err), err)
	}
	return true, nil
}

func (a *HTTPApp) CreateMeeting(c echo.Context) error {
	stx := c.(*cs.ContextService)

	if ok, resp := a.sessionPermitted(c, dispatcher.MethodCreateMeeting); !ok {
		return resp
	}

	request := &req.CreateMeetingForm{}
	formDTO := &CreateMeetingDTO{}
	if ok, resp := bindRequestToDTO(stx, request, formDTO); !ok {
		return resp
	}

	meetingID, err := a.session.CreateMeeting(
		c.Request().Context(),
		formDTO.ServerURL,
		formDTO.Identifiers,
		formDTO.Initiator,
		formDTO.Payload,
	)
	if err != nil {
		return stx.JsonError(statusForError(err), err)
	}
	return stx.Json(http.StatusOK, map[string]string{"meetingId": meetingID})
}

type joinMeetingResponse struct {
	PublicKeys []string    `json:"publicKeys"`
	Payload    interface{} `json:"payload"`
}

func (a *HTTPApp) JoinMeeting(c echo.Context) error {
	stx := c.(*cs.ContextService)

	if ok, resp := a.sessionPermitted(c, dispatcher.MethodJoinMeeting); !ok {
		return resp
	}

	request := &req.JoinMeetingForm{}
	formDTO := &JoinMeetingDTO{}
	if ok, resp := bindRequestToDTO(stx, request, formDTO); !ok {
		return resp
	}

	publicKeys, payload, err := a.session.JoinMeeting(
		c.Request().Context(),
		formDTO.ServerURL,
		formDTO.MeetingID,
		formDTO.UserID,
	)
	if err != nil {
		return stx.JsonError(statusForError(err), err)
	}
	return stx.Json(http.StatusOK, &joinMeetingResponse{
		PublicKeys: publicKeys,
		Payload:    payload,
	})
}

// keygenResponse deliberately excludes the local key material; the
// secret share shape is persisted, never transmitted.
type keygenResponse struct {
	KeyShareID string `json:"keyShareId"`
	Label      string `json:"label"`
	Address    string `json:"address"`
	PublicKey  []byte `json:"publicKey"`
}

func (a *HTTPApp) StartKeygen(c echo.Context) error {
	stx := c.(*cs.ContextService)

	if ok, resp := a.sessionPermitted(c, dispatcher.MethodKeygen); !ok {
		return resp
	}

	request := &req.KeygenForm{}
	formDTO := &KeygenDTO{}
	if ok, resp := bindRequestToDTO(stx, request, formDTO); !ok {
		return resp
	}

	share, err := a.session.Keygen(
		c.Request().Context(),
		session.Role(formDTO.Role),
		formDTO.ServerURL,
		types.Parameters{Parties: formDTO.Parties, Threshold: formDTO.Threshold},
		formDTO.Participants,
	)
	if err != nil {
		return stx.JsonError(statusForError(err), err)
	}

	named, err := a.keyring.SaveKeyShare(formDTO.Label, *share)
	if err != nil {
		return stx.JsonError(statusForError(err), err)
	}
	return stx.Json(http.StatusOK, &keygenResponse{
		KeyShareID: named.ID,
		Label:      named.Label,
		Address:    named.Share.Address,
		PublicKey:  named.Share.PublicKey,
	})
}

type signResponse struct {
	Signature *types.SignResult `json:"signature"`
	Proof     *types.SignProof  `json:"proof,omitempty"`
}

func (a *HTTPApp) ProposeSign(c echo.Context) error {
	stx := c.(*cs.ContextService)

	if ok, resp := a.sessionPermitted(c, dispatcher.MethodSign); !ok {
		return resp
	}

	request := &req.SignForm{}
	formDTO := &SignDTO{}
	if ok, resp := bindRequestToDTO(stx, request, formDTO); !ok {
		return resp
	}

	wallet, err := a.keyring.GetWalletByAddress(formDTO.Address)
	if err != nil {
		return stx.JsonError(statusForError(err), err)
	}

	named, err := pickShare(wallet, formDTO.KeyShareID)
	if err != nil {
		return stx.JsonError(statusForError(err), err)
	}

	result, err := a.session.Sign(
		c.Request().Context(),
		session.Role(formDTO.Role),
		formDTO.ServerURL,
		types.Parameters{Parties: formDTO.Parties, Threshold: formDTO.Threshold},
		named.Share,
		formDTO.Value,
		formDTO.Participants,
	)
	if err != nil {
		return stx.JsonError(statusForError(err), err)
	}

	response := &signResponse{Signature: result}

	// Message signatures get a proof immediately; transaction receipts
	// arrive only after the transaction is submitted and confirmed,
	// through RecordTxReceipt.
	if formDTO.Value.Kind == types.SigningKindMessage {
		proof, err := a.keyring.RecordMessageProof(formDTO.Address, *result, formDTO.Value)
		if err != nil {
			return stx.JsonError(statusForError(err), err)
		}
		response.Proof = proof
	}
	return stx.Json(http.StatusOK, response)
}

func (a *HTTPApp) RecordTxReceipt(c echo.Context) error {
	stx := c.(*cs.ContextService)

	if ok, resp := a.sessionPermitted(c, dispatcher.MethodSign); !ok {
		return resp
	}

	request := &req.TxReceiptForm{}
	formDTO := &TxReceiptDTO{}
	if ok, resp := bindRequestToDTO(stx, request, formDTO); !ok {
		return resp
	}

	receipt, err := a.keyring.RecordTransactionReceipt(
		formDTO.Address,
		formDTO.Signature,
		formDTO.Amount,
		formDTO.Receipt,
	)
	if err != nil {
		return stx.JsonError(statusForError(err), err)
	}
	return stx.Json(http.StatusOK, receipt)
}

func pickShare(wallet *types.Wallet, keyShareID string) (*types.NamedKeyShare, error) {
	if len(wallet.Shares) == 0 {
		return nil, fmt.Errorf("wallet %s has no key shares: %w", wallet.Account.Address, types.ErrNotFound)
	}
	if keyShareID == "" {
		return &wallet.Shares[0], nil
	}
	for i := range wallet.Shares {
		if wallet.Shares[i].ID == keyShareID {
			return &wallet.Shares[i], nil
		}
	}
	return nil, fmt.Errorf("key share %s: %w", keyShareID, types.ErrNotFound)
}
