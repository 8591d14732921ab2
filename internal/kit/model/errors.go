package model

import "errors"

var (
	// ErrKitNotFound indicates that the requested kit does not exist.
	ErrKitNotFound = errors.New("kit not found")
	// ErrNoDefaultKit indicates that the team has no default kit.
	ErrNoDefaultKit = errors.New("team has no default kit")
	// ErrInvalidKitName indicates an empty kit name.
	ErrInvalidKitName = errors.New("invalid kit name")
)
