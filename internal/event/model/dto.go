package model

import "time"

// CreateEventRequest represents the request to create an event.
type CreateEventRequest struct {
	Type     string     `json:"type"      binding:"required"`
	StartsAt time.Time  `json:"starts_at" binding:"required"`
	EndsAt   *time.Time `json:"ends_at"`
	Title    *string    `json:"title"`
	Location *string    `json:"location"`
	Notes    *string    `json:"notes"`
}

// UpdateEventRequest represents a partial update of an event. Nil fields
// are left unchanged.
type UpdateEventRequest struct {
	Type     *string    `json:"type"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Title    *string    `json:"title"`
	Location *string    `json:"location"`
	Notes    *string    `json:"notes"`
}

// SetEventKitRequest represents the request to bind a kit to an event.
type SetEventKitRequest struct {
	KitID string `json:"kit_id" binding:"required"`
}

// EventsResponse represents a list of events.
type EventsResponse struct {
	Events []Event `json:"events"`
}

// RosterResponse represents the event roster after eligibility filtering.
type RosterResponse struct {
	Roster []RosterRow `json:"roster"`
}
