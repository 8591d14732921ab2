package model

// UpsertPlayerProfileRequest sets a member's per-team sports profile.
// Nil fields are left unchanged for an existing profile.
type UpsertPlayerProfileRequest struct {
	JerseyNumber *int    `json:"jersey_number"`
	IsActive     *bool   `json:"is_active"`
	Note         *string `json:"note"`
}

// ReplacePositionsRequest replaces a player's position set. Priorities
// are optional; when absent, list order decides.
type ReplacePositionsRequest struct {
	PositionIDs []int `json:"position_ids" binding:"required"`
	Priorities  []int `json:"priorities"`
}

// RosterResponse represents the team roster.
type RosterResponse struct {
	Roster []RosterRow `json:"roster"`
}

// PositionsResponse represents the positions of a sport.
type PositionsResponse struct {
	Positions []Position `json:"positions"`
}
