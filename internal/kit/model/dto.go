package model

// CreateKitRequest creates a kit for a team.
type CreateKitRequest struct {
	Name      string `json:"name" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// SetKitNumberRequest assigns a jersey number for a kit.
type SetKitNumberRequest struct {
	JerseyNumber *int `json:"jersey_number" binding:"required"`
}

// KitsResponse represents a team's kits, default first.
type KitsResponse struct {
	Kits []Kit `json:"kits"`
}
