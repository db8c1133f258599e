package user

import "errors"

var (
	// ErrNotFound is returned when no user record matches the given id.
	ErrNotFound = errors.New("user not found")
	// ErrWrongOldPassword is returned when a password change presents an
	// old password that does not verify against the stored hash.
	ErrWrongOldPassword = errors.New("old password is incorrect")
)
