package model

import "errors"

var (
	// ErrInviteNotFound indicates that no invite matches the id or code.
	ErrInviteNotFound = errors.New("invite not found")
	// ErrInviteDisabled indicates redemption of a disabled invite.
	ErrInviteDisabled = errors.New("invite is disabled")
	// ErrInviteExpired indicates redemption past the expiry time.
	ErrInviteExpired = errors.New("invite has expired")
	// ErrInviteExhausted indicates the use cap has been reached.
	ErrInviteExhausted = errors.New("invite has no uses left")
	// ErrInvalidInviteRole indicates a role outside player|coach.
	ErrInvalidInviteRole = errors.New("invite role must be player or coach")
)
