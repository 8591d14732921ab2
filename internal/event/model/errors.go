package model

import "errors"

var (
	// ErrEventNotFound indicates that the requested event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrInvalidEventType indicates a type outside training|match|other.
	ErrInvalidEventType = errors.New("event type must be training, match or other")
)
