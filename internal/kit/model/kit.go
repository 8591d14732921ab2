// Package model defines data structures for the kit module.
package model

import "time"

// Kit represents one of a team's jersey sets. At most one kit per team
// is the default.
type Kit struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"                     json:"id"`
	TeamID    string    `gorm:"column:team_id;type:varchar(36);not null;index:idx_team_kits_team_id" json:"team_id"`
	Name      string    `gorm:"column:name;type:varchar(64);not null"                     json:"name"`
	IsDefault bool      `gorm:"column:is_default;not null;default:false"                  json:"is_default"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"created_at"`
}

// TableName returns the table name for the Kit model.
func (Kit) TableName() string {
	return "team_kits"
}

// KitNumber assigns a jersey number to a member for one specific kit.
type KitNumber struct {
	TeamID       string `gorm:"primaryKey;column:team_id;type:varchar(36)" json:"team_id"`
	KitID        string `gorm:"primaryKey;column:kit_id;type:varchar(36)"  json:"kit_id"`
	UserID       string `gorm:"primaryKey;column:user_id;type:varchar(36)" json:"user_id"`
	JerseyNumber int    `gorm:"column:jersey_number;not null"              json:"jersey_number"`
}

// TableName returns the table name for the KitNumber model.
func (KitNumber) TableName() string {
	return "team_kit_numbers"
}
