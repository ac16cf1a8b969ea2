package types

import "errors"

// Failure taxonomy for the session and key-share lifecycle layer. Every
// error a caller may need to branch on wraps exactly one of these
// sentinels; use errors.Is to classify.
var (
	ErrServerUnreachable   = errors.New("rendezvous server unreachable")
	ErrMeetingNotFound     = errors.New("meeting not found or expired")
	ErrParticipantMismatch = errors.New("participant is not in the expected set")
	ErrTimeout             = errors.New("timed out waiting for participants")
	ErrInvalidParameters   = errors.New("invalid threshold parameters")
	ErrRoleMismatch        = errors.New("participant list does not match session role")
	ErrEngineFailure       = errors.New("engine failure")
	ErrNotFound            = errors.New("not found")

	// ErrPermissionDenied is a security decision; ErrMethodNotSupported
	// is a capability gap. The two must never be conflated.
	ErrPermissionDenied   = errors.New("origin is not allowed to call this method")
	ErrMethodNotSupported = errors.New("method not supported")
)
