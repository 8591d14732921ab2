package model

import "errors"

var (
	// ErrInvalidStatus indicates a status outside yes|no|maybe.
	ErrInvalidStatus = errors.New("rsvp status must be yes, no or maybe")
)
