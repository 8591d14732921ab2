package model

import "time"

// CreateInviteRequest represents the request to create an invite. Role
// defaults to player; max_uses zero means unlimited.
type CreateInviteRequest struct {
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expires_at"`
	MaxUses   int        `json:"max_uses"`
}

// SetDisabledRequest flips the disabled flag.
type SetDisabledRequest struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

// RedeemRequest redeems an invite by code.
type RedeemRequest struct {
	Code string `json:"code" binding:"required"`
}

// RedeemResponse is the membership granted by a successful redemption.
type RedeemResponse struct {
	TeamID string `json:"team_id"`
	Role   string `json:"role"`
}

// InvitesResponse represents a team's invites.
type InvitesResponse struct {
	Invites []Invite `json:"invites"`
}
