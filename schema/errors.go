package schema

import "errors"

var (
	// ErrInvalidRequest indicates a malformed request payload.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidDimensions indicates a width or height below one.
	ErrInvalidDimensions = errors.New("invalid terminal dimensions")
	// ErrInputDisabled indicates the input line is not accepting keys.
	ErrInputDisabled = errors.New("input disabled")
	// ErrSessionNotFound indicates the session token is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrUnknownKey indicates a key kind the terminal does not handle.
	ErrUnknownKey = errors.New("unknown key")
	// ErrSessionClosed indicates the session was closed by the user.
	ErrSessionClosed = errors.New("session closed")
)
