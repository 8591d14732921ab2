// Package model defines data structures for the event module.
package model

import "time"

// EventType classifies an event on the team calendar.
type EventType string

const (
	EventTypeTraining EventType = "training"
	EventTypeMatch    EventType = "match"
	EventTypeOther    EventType = "other"
)

// Valid reports whether the value is one of the known event types.
func (t EventType) Valid() bool {
	return t == EventTypeTraining || t == EventTypeMatch || t == EventTypeOther
}

// Event represents a scheduled team event.
type Event struct {
	ID        string     `gorm:"primaryKey;column:id;type:varchar(36)"                        json:"id"`
	TeamID    string     `gorm:"column:team_id;type:varchar(36);not null;index:idx_events_team_id" json:"team_id"`
	Type      EventType  `gorm:"column:type;type:varchar(16);not null"                        json:"type"`
	Title     *string    `gorm:"column:title;type:varchar(120)"                               json:"title"`
	StartsAt  time.Time  `gorm:"column:starts_at;type:timestamptz;not null"                   json:"starts_at"`
	EndsAt    *time.Time `gorm:"column:ends_at;type:timestamptz"                              json:"ends_at"`
	Location  *string    `gorm:"column:location;type:varchar(200)"                            json:"location"`
	Notes     *string    `gorm:"column:notes;type:text"                                      json:"notes"`
	KitID     *string    `gorm:"column:kit_id;type:varchar(36)"                               json:"kit_id"`
	CreatedBy string     `gorm:"column:created_by;type:varchar(36);not null"                  json:"created_by"`
	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"    json:"created_at"`
}

// TableName returns the table name for the Event model.
func (Event) TableName() string {
	return "events"
}
