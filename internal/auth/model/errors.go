package model

import "errors"

var (
	// ErrEmailTaken indicates that an account with the email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordTooShort indicates a password under the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrInvalidCredentials indicates a wrong email/password combination.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates a malformed, expired or revoked token.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrCodeInvalid indicates an unknown, expired or already-used login code.
	ErrCodeInvalid = errors.New("invalid or expired login code")
)
