package domain

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Login failures must be indistinguishable to the caller so
	// usernames cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers malformed, mis-signed and expired tokens, and
	// tokens whose subject no longer maps to a live account.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidInput marks malformed request data caught before any
	// credential check, such as an empty username at registration.
	ErrInvalidInput = errors.New("invalid input")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
	ErrForbidden    = errors.New("access forbidden")
)
