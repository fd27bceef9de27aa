package adapter

import (
	"errors"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("agent rejected request signature")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("agent internal error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("agent unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")

	// ErrNetwork wraps transport failures: the agent could not be reached.
	ErrNetwork = errors.New("agent unreachable")

	ErrEmptyAddress      = errors.New("empty address")
	ErrInvalidAddress    = errors.New("address must include host and scheme")
	ErrNotConnected      = errors.New("not connected to agent")
	ErrNoSaltyState      = errors.New("identifier keys are not managed by this wallet")
	ErrMemberNotInGroup  = errors.New("local member is not part of the signing members")
	ErrNoBootURL         = errors.New("agent not found and no boot url configured")
	ErrUnexpectedPayload = errors.New("unexpected agent response")
)

const alreadyInceptedMarker = "already incepted"

// IsNetworkError reports whether err means the agent could not be reached.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrGatewayTimeout)
}

// IsAlreadyIncepted reports whether the agent refused an inception because an
// identifier with the same prefix exists.
func IsAlreadyIncepted(err error) bool {
	return errors.Is(err, ErrBadRequest) && strings.Contains(err.Error(), alreadyInceptedMarker)
}
