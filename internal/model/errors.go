package model

import "errors"

// ErrNotFound is returned by stores when no row matches the query.
var ErrNotFound = errors.New("not found")

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyExists signals a registration conflict.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound signals a lookup miss on an id expected to exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountLocked is reserved for a future lockout policy. It is
	// mapped at the API layer but no login path produces it yet.
	ErrAccountLocked = errors.New("account locked")
)

var (
	// ErrTokenExpired is returned for a structurally valid access token
	// past its expiry. Clients are expected to run the refresh flow.
	ErrTokenExpired = errors.New("access token expired")

	// ErrTokenInvalid is returned for any other token failure: bad
	// signature, wrong algorithm, malformed payload or claim values.
	ErrTokenInvalid = errors.New("access token invalid")

	// ErrInvalidRefreshToken is returned when a presented refresh secret
	// does not resolve to a currently valid session.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
