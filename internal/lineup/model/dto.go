package model

// CreateFromTemplateRequest creates a lineup seeded from a template.
// EventID nil creates a team-level default lineup.
type CreateFromTemplateRequest struct {
	TemplateID string  `json:"template_id" binding:"required"`
	EventID    *string `json:"event_id"`
	Formation  *string `json:"formation"`
}

// DuplicateRequest copies an existing lineup into a new scope.
type DuplicateRequest struct {
	TargetEventID   *string `json:"target_event_id"`
	TargetFormation *string `json:"target_formation"`
}

// SetSlotRequest binds a user to a slot, optionally overriding position.
type SetSlotRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	PositionID *int   `json:"position_id"`
}

// SetGroupRequest moves a slot between starter and bench.
type SetGroupRequest struct {
	Group string `json:"group" binding:"required"`
}

// SetLockRequest flips the lock state.
type SetLockRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}

// LineupsResponse represents a list of lineups.
type LineupsResponse struct {
	Lineups []Lineup `json:"lineups"`
}

// SlotsResponse represents a lineup's labeled slots in display order.
type SlotsResponse struct {
	Slots []LabeledSlot `json:"slots"`
}

// TemplatesResponse represents templates available for a sport.
type TemplatesResponse struct {
	Templates []Template `json:"templates"`
}

// TemplateSlotsResponse represents a template's slots in display order.
type TemplateSlotsResponse struct {
	Slots []TemplateSlot `json:"slots"`
}
