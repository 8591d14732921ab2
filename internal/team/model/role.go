package model

import "fmt"

// Role is a team membership role. The zero value RoleNone means the user
// has no membership in the team; permission checks switch on the variant
// instead of comparing nullable strings.
type Role string

const (
	// RoleAdmin can do everything a coach can plus manage invites and members.
	RoleAdmin Role = "admin"
	// RoleCoach can manage events, lineups, rosters and kits.
	RoleCoach Role = "coach"
	// RolePlayer can view team data and submit RSVPs.
	RolePlayer Role = "player"
	// RoleNone means no membership. Coach/admin-only views must treat it
	// as no access.
	RoleNone Role = ""
)

// ParseRole converts a stored role string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCoach, RolePlayer:
		return Role(s), nil
	case RoleNone:
		return RoleNone, nil
	default:
		return RoleNone, fmt.Errorf("unknown role: %q", s)
	}
}

// IsMember reports whether the role represents an actual membership.
func (r Role) IsMember() bool {
	return r == RoleAdmin || r == RoleCoach || r == RolePlayer
}

// CanManage reports whether the role may perform coach/admin operations:
// event editing, lineup mutation, roster and kit administration.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleCoach
}

// String renders the role for API responses; RoleNone renders as "none".
func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}
