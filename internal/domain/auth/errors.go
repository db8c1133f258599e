package auth

import "errors"

// Externally visible failure taxonomy of the session lifecycle. Several
// internal causes deliberately collapse onto one error so callers cannot
// probe for account existence or token history.
var (
	// ErrDuplicateAccount is returned by signup when the login is taken.
	ErrDuplicateAccount = errors.New("user with this login already exists")
	// ErrInvalidCredentials covers both an unknown login and a wrong
	// password on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingToken is returned by refresh when no token was supplied.
	ErrMissingToken = errors.New("refresh token is required")
	// ErrInvalidRefreshToken covers never-issued, already-rotated and
	// revoked refresh tokens.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrInvalidOrExpiredRefreshToken is returned when a live token fails
	// signature or expiry verification. The token is revoked first.
	ErrInvalidOrExpiredRefreshToken = errors.New("invalid or expired refresh token")
	// ErrInvalidOrExpiredAccessToken covers every access-token
	// verification failure.
	ErrInvalidOrExpiredAccessToken = errors.New("invalid or expired access token")
	// ErrUserNotFound is returned by refresh when the account behind a
	// valid token has been deleted.
	ErrUserNotFound = errors.New("user not found")
)
