package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrOrgNotFound indicates that the referenced organization does not exist.
	ErrOrgNotFound = errors.New("organization not found")
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrInvalidCreatorRole indicates a creator role other than admin or coach.
	ErrInvalidCreatorRole = errors.New("creator role must be admin or coach")
	// ErrNotMember indicates that the caller has no membership in the team.
	ErrNotMember = errors.New("caller is not a member of the team")
	// ErrRoleForbidden indicates that the caller's role does not permit the operation.
	ErrRoleForbidden = errors.New("role does not permit this operation")
)
