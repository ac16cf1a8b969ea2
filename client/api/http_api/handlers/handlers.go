package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/censync/go-dto"
	"github.com/censync/go-validator"

	"github.com/mpcwallet/tkeyring/client/api/dispatcher"
	cs "github.com/mpcwallet/tkeyring/client/api/http_api/context_service"
	"github.com/mpcwallet/tkeyring/client/services/keyring"
	"github.com/mpcwallet/tkeyring/client/services/session"
	"github.com/mpcwallet/tkeyring/client/types"
)

type HTTPApp struct {
	dispatcher *dispatcher.Dispatcher
	session    session.SessionService
	keyring    keyring.KeyringService
}

func NewHTTPApp(d *dispatcher.Dispatcher, ss session.SessionService, ks keyring.KeyringService) *HTTPApp {
	return &HTTPApp{
		dispatcher: d,
		session:    ss,
		keyring:    ks,
	}
}

// bindRequest binds and validates the form. On failure the error
// response is already written and ok is false.
func bindRequest(stx *cs.ContextService, request interface{}) (ok bool, resp error) {
	if err := stx.Bind(request); err != nil {
		return false, stx.JsonError(http.StatusBadRequest, fmt.Errorf("failed to read request body: %v", err))
	}
	if err := validator.Validate(request); !err.IsEmpty() {
		return false, stx.JsonError(http.StatusBadRequest, err.Error())
	}
	return true, nil
}

// bindRequestToDTO additionally converts the validated form to its DTO.
func bindRequestToDTO(stx *cs.ContextService, request, formDTO interface{}) (ok bool, resp error) {
	if ok, resp := bindRequest(stx, request); !ok {
		return false, resp
	}
	if err := dto.RequestToDTO(formDTO, request); err != nil {
		return false, stx.JsonError(http.StatusBadRequest, err)
	}
	return true, nil
}

// statusForError maps the failure taxonomy to HTTP status codes. A
// permission denial and an unsupported method are kept distinct.
func statusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, types.ErrMethodNotSupported):
		return http.StatusNotImplemented
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrMeetingNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrInvalidParameters),
		errors.Is(err, types.ErrRoleMismatch),
		errors.Is(err, types.ErrParticipantMismatch):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, types.ErrServerUnreachable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
