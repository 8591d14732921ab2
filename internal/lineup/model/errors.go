package model

import "errors"

var (
	// ErrLineupNotFound indicates that the requested lineup does not exist.
	ErrLineupNotFound = errors.New("lineup not found")
	// ErrTemplateNotFound indicates that the referenced template does not exist.
	ErrTemplateNotFound = errors.New("lineup template not found")
	// ErrSlotNotFound indicates that the lineup has no slot with the given key.
	ErrSlotNotFound = errors.New("lineup slot not found")
	// ErrLineupLocked indicates a slot mutation against a locked lineup.
	ErrLineupLocked = errors.New("lineup is locked")
	// ErrInvalidSlotGroup indicates a group outside starter|bench.
	ErrInvalidSlotGroup = errors.New("slot group must be starter or bench")
)
