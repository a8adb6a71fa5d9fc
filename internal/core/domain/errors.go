package domain

import "errors"

// Caller-facing failure categories. Services wrap these with fmt.Errorf
// ("...: %w") so handlers can classify with errors.Is while still
// returning a human-readable message.
var (
	ErrDuplicateAccount     = errors.New("account already exists")
	ErrRegistrationFailed   = errors.New("registration failed")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrProviderMismatch     = errors.New("login provider mismatch")
	ErrInvalidProviderToken = errors.New("provider token is not valid")
	ErrUnsupportedProvider  = errors.New("provider is not supported")
)

// ErrAccountNotFound is returned by credential store lookups when no
// account matches. It is internal to the engine and never surfaces as a
// response on its own.
var ErrAccountNotFound = errors.New("account not found")
