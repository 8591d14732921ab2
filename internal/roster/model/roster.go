// Package model defines data structures for the roster module.
package model

import (
	"time"

	teamModel "squadhub/internal/team/model"
)

// PlayerProfile is the per-team sports profile of a member: jersey
// number, active flag and a coach note. Distinct from the account-level
// profile, a player can carry different numbers on different teams.
type PlayerProfile struct {
	TeamID       string    `gorm:"primaryKey;column:team_id;type:varchar(36)"                json:"team_id"`
	UserID       string    `gorm:"primaryKey;column:user_id;type:varchar(36)"                json:"user_id"`
	JerseyNumber *int      `gorm:"column:preferred_jersey_number"                            json:"jersey_number"`
	IsActive     *bool     `gorm:"column:is_active"                                          json:"is_active"`
	Note         *string   `gorm:"column:note;type:varchar(280)"                             json:"note"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"updated_at"`
}

// TableName returns the table name for the PlayerProfile model.
func (PlayerProfile) TableName() string {
	return "team_player_profiles"
}

// Position is one selectable position of a sport.
type Position struct {
	ID    int    `gorm:"primaryKey;column:id"                   json:"id"`
	Sport string `gorm:"column:sport;type:varchar(32);not null;index:idx_positions_sport" json:"sport"`
	Code  string `gorm:"column:code;type:varchar(8);not null"   json:"code"`
	Name  string `gorm:"column:name;type:varchar(64);not null"  json:"name"`
}

// TableName returns the table name for the Position model.
func (Position) TableName() string {
	return "positions"
}

// PlayerPosition links a player to a position on one team, ranked by
// priority.
type PlayerPosition struct {
	TeamID     string `gorm:"primaryKey;column:team_id;type:varchar(36)" json:"team_id"`
	UserID     string `gorm:"primaryKey;column:user_id;type:varchar(36)" json:"user_id"`
	PositionID int    `gorm:"primaryKey;column:position_id"              json:"position_id"`
	Priority   int    `gorm:"column:priority;not null;default:1"         json:"priority"`
}

// TableName returns the table name for the PlayerPosition model.
func (PlayerPosition) TableName() string {
	return "team_player_positions"
}

// RosterPosition is a position entry inside a roster row.
type RosterPosition struct {
	ID       int    `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

// RosterRow is one member of the team roster: membership joined with
// profile, player profile and positions.
type RosterRow struct {
	TeamID       string           `json:"team_id"`
	UserID       string           `json:"user_id"`
	DisplayName  *string          `json:"display_name"`
	Role         teamModel.Role   `json:"role"`
	JerseyNumber *int             `json:"jersey_number"`
	TeamSport    string           `json:"team_sport"`
	IsActive     *bool            `json:"is_active"`
	Note         *string          `json:"note"`
	Positions    []RosterPosition `json:"positions"`
}
