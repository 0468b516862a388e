package shared

import "errors"

var (
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionMissing occurs when a handler runs outside the session middleware.
	ErrSessionMissing = errors.New("session missing")
)
