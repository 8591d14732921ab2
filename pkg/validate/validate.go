// Package validate centralizes input validation shared across modules.
// Validators return structured results instead of raising UI side effects,
// so the same rules apply to every jersey-number and display-name input.
package validate

import (
	"errors"
	"strings"
)

const (
	// JerseyNumberMin is the lowest accepted jersey number.
	JerseyNumberMin = 0
	// JerseyNumberMax is the highest accepted jersey number.
	JerseyNumberMax = 999
	// DisplayNameMinLen is the minimum display name length after trimming.
	DisplayNameMinLen = 2
	// DisplayNameMaxLen is the maximum display name length after trimming.
	DisplayNameMaxLen = 80
)

var (
	// ErrJerseyNumberOutOfRange indicates a jersey number outside 0-999.
	ErrJerseyNumberOutOfRange = errors.New("jersey number must be between 0 and 999")
	// ErrDisplayNameTooShort indicates a display name under 2 characters.
	ErrDisplayNameTooShort = errors.New("display name must be at least 2 characters")
	// ErrDisplayNameTooLong indicates a display name over the maximum length.
	ErrDisplayNameTooLong = errors.New("display name is too long")
	// ErrEmptyCode indicates an empty invite code.
	ErrEmptyCode = errors.New("code must not be empty")
)

// JerseyNumber checks that n is within the accepted 0-999 range.
func JerseyNumber(n int) error {
	if n < JerseyNumberMin || n > JerseyNumberMax {
		return ErrJerseyNumberOutOfRange
	}
	return nil
}

// OptionalJerseyNumber checks a nullable jersey number. Nil is valid and
// means "no number assigned".
func OptionalJerseyNumber(n *int) error {
	if n == nil {
		return nil
	}
	return JerseyNumber(*n)
}

// DisplayName trims the name and checks its length. Returns the cleaned
// value to store.
func DisplayName(name string) (string, error) {
	clean := strings.TrimSpace(name)
	if len(clean) < DisplayNameMinLen {
		return "", ErrDisplayNameTooShort
	}
	if len(clean) > DisplayNameMaxLen {
		return "", ErrDisplayNameTooLong
	}
	return clean, nil
}

// InviteCode normalizes an invite code for lookup: surrounding whitespace
// is dropped and the code is upper-cased.
func InviteCode(code string) (string, error) {
	clean := strings.ToUpper(strings.TrimSpace(code))
	if clean == "" {
		return "", ErrEmptyCode
	}
	return clean, nil
}
