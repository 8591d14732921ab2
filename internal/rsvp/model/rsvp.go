// Package model defines data structures for the rsvp module.
package model

import "time"

// Status is an RSVP answer.
type Status string

const (
	StatusYes   Status = "yes"
	StatusNo    Status = "no"
	StatusMaybe Status = "maybe"
)

// Valid reports whether the value is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusYes || s == StatusNo || s == StatusMaybe
}

// RSVP represents one member's answer for one event. The composite
// primary key gives the upsert its at-most-one-row-per-member semantics.
type RSVP struct {
	EventID   string    `gorm:"primaryKey;column:event_id;type:varchar(36)"               json:"event_id"`
	UserID    string    `gorm:"primaryKey;column:user_id;type:varchar(36)"                json:"user_id"`
	Status    Status    `gorm:"column:status;type:varchar(8);not null"                    json:"status"`
	Note      *string   `gorm:"column:note;type:varchar(280)"                             json:"note"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"updated_at"`
}

// TableName returns the table name for the RSVP model.
func (RSVP) TableName() string {
	return "event_rsvps"
}

// Summary is the per-event tally of answers. It is always recomputed
// from the rows by aggregation, never incremented.
type Summary struct {
	EventID    string `gorm:"column:event_id"    json:"event_id"`
	YesCount   int    `gorm:"column:yes_count"   json:"yes_count"`
	NoCount    int    `gorm:"column:no_count"    json:"no_count"`
	MaybeCount int    `gorm:"column:maybe_count" json:"maybe_count"`
}

// CoachRow is one answer joined with the member's display name, for the
// coach-facing listing.
type CoachRow struct {
	EventID     string    `gorm:"column:event_id"     json:"event_id"`
	UserID      string    `gorm:"column:user_id"      json:"user_id"`
	Status      Status    `gorm:"column:status"       json:"status"`
	Note        *string   `gorm:"column:note"         json:"note"`
	UpdatedAt   time.Time `gorm:"column:updated_at"   json:"updated_at"`
	DisplayName *string   `gorm:"column:display_name" json:"display_name"`
}
