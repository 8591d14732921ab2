// Package model provides domain models and DTOs for the team module.
package model

import "time"

// CreateTeamRequest represents the request to create a team with the
// creator's initial membership.
type CreateTeamRequest struct {
	OrgID       string  `json:"org_id"       binding:"required"`
	Name        string  `json:"name"         binding:"required"`
	AgeGroup    *string `json:"age_group"`
	Season      *string `json:"season"`
	Sport       string  `json:"sport"`
	CreatorRole string  `json:"creator_role"`
}

// MemberResponse represents a team member with profile data in API responses.
type MemberResponse struct {
	TeamID      string    `json:"team_id"`
	UserID      string    `json:"user_id"`
	Role        Role      `json:"role"`
	Status      string    `json:"status"`
	JoinedAt    time.Time `json:"joined_at"`
	DisplayName *string   `json:"display_name"`
}

// MembersResponse represents the member listing for a team.
type MembersResponse struct {
	TeamID  string           `json:"team_id"`
	Members []MemberResponse `json:"members"`
}

// RoleResponse represents the caller's resolved role for a team.
type RoleResponse struct {
	TeamID string `json:"team_id"`
	Role   string `json:"role"`
}
