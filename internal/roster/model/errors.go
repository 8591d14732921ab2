package model

import "errors"

var (
	// ErrPriorityMismatch indicates a priorities list whose length does
	// not match the position ids.
	ErrPriorityMismatch = errors.New("priorities must match position ids")
)
