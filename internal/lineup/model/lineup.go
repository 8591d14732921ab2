// Package model defines data structures for the lineup module.
package model

import "time"

// SlotGroup partitions the slots of a lineup.
type SlotGroup string

const (
	GroupStarter SlotGroup = "starter"
	GroupBench   SlotGroup = "bench"
)

// Valid reports whether the value is one of the known slot groups.
func (g SlotGroup) Valid() bool {
	return g == GroupStarter || g == GroupBench
}

// Lineup represents one lineup, either scoped to an event or a team-level
// default when EventID is nil.
type Lineup struct {
	ID         string     `gorm:"primaryKey;column:id;type:varchar(36)"                        json:"id"`
	TeamID     string     `gorm:"column:team_id;type:varchar(36);not null;index:idx_lineups_team_id" json:"team_id"`
	EventID    *string    `gorm:"column:event_id;type:varchar(36);index:idx_lineups_event_id"  json:"event_id"`
	TemplateID *string    `gorm:"column:template_id;type:varchar(36)"                          json:"template_id"`
	Formation  *string    `gorm:"column:formation;type:varchar(32)"                            json:"formation"`
	CreatedBy  string     `gorm:"column:created_by;type:varchar(36);not null"                  json:"created_by"`
	CreatedAt  time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"    json:"created_at"`
	LockedAt   *time.Time `gorm:"column:locked_at;type:timestamptz"                            json:"locked_at"`
}

// TableName returns the table name for the Lineup model.
func (Lineup) TableName() string {
	return "lineups"
}

// Locked reports whether the lineup is locked. The lock timestamp is the
// single source of truth for the lock state.
func (l *Lineup) Locked() bool {
	return l.LockedAt != nil
}

// Slot represents one slot of a lineup. The label is copied from the
// template at creation so later template edits never rewrite history.
type Slot struct {
	LineupID   string    `gorm:"primaryKey;column:lineup_id;type:varchar(36)"  json:"lineup_id"`
	SlotKey    string    `gorm:"primaryKey;column:slot_key;type:varchar(32)"   json:"slot_key"`
	Label      string    `gorm:"column:label;type:varchar(64);not null"        json:"label"`
	UserID     *string   `gorm:"column:user_id;type:varchar(36)"               json:"user_id"`
	PositionID *int      `gorm:"column:position_id"                            json:"position_id"`
	SlotOrder  int       `gorm:"column:slot_order;not null"                    json:"slot_order"`
	GroupKey   SlotGroup `gorm:"column:group_key;type:varchar(8);not null;default:starter" json:"group_key"`
}

// TableName returns the table name for the Slot model.
func (Slot) TableName() string {
	return "lineup_slots"
}

// Template represents a reusable slot layout for a sport.
type Template struct {
	ID    string `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	Sport string `gorm:"column:sport;type:varchar(32);not null;index:idx_lineup_templates_sport" json:"sport"`
	Name  string `gorm:"column:name;type:varchar(64);not null" json:"name"`
}

// TableName returns the table name for the Template model.
func (Template) TableName() string {
	return "lineup_templates"
}

// TemplateSlot represents one slot of a template.
type TemplateSlot struct {
	TemplateID string `gorm:"primaryKey;column:template_id;type:varchar(36)" json:"template_id"`
	SlotKey    string `gorm:"primaryKey;column:slot_key;type:varchar(32)"    json:"slot_key"`
	Label      string `gorm:"column:label;type:varchar(64);not null"         json:"label"`
	SlotOrder  int    `gorm:"column:slot_order;not null"                     json:"slot_order"`
	PositionID *int   `gorm:"column:position_id"                            json:"position_id"`
}

// TableName returns the table name for the TemplateSlot model.
func (TemplateSlot) TableName() string {
	return "lineup_template_slots"
}

// LabeledSlot is a slot enriched with the assignee's display name, jersey
// number and resolved position. Clients re-read this view after every
// slot write instead of merging display fields locally.
type LabeledSlot struct {
	LineupID     string    `gorm:"column:lineup_id"     json:"lineup_id"`
	SlotKey      string    `gorm:"column:slot_key"      json:"slot_key"`
	Label        string    `gorm:"column:label"         json:"label"`
	UserID       *string   `gorm:"column:user_id"       json:"user_id"`
	PositionID   *int      `gorm:"column:position_id"   json:"position_id"`
	SlotOrder    int       `gorm:"column:slot_order"    json:"slot_order"`
	GroupKey     SlotGroup `gorm:"column:group_key"     json:"group_key"`
	DisplayName  *string   `gorm:"column:display_name"  json:"display_name"`
	JerseyNumber *int      `gorm:"column:jersey_number" json:"jersey_number"`
	PositionCode *string   `gorm:"column:position_code" json:"position_code"`
	PositionName *string   `gorm:"column:position_name" json:"position_name"`
}
