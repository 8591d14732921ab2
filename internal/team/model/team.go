package model

import "time"

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"                      json:"id"`
	OrgID     string    `gorm:"column:org_id;type:varchar(36);not null;index:idx_teams_org_id" json:"org_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                     json:"name"`
	AgeGroup  *string   `gorm:"column:age_group;type:varchar(64)"                          json:"age_group"`
	Season    *string   `gorm:"column:season;type:varchar(64)"                             json:"season"`
	Sport     string    `gorm:"column:sport;type:varchar(32);not null;default:generic"     json:"sport"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// TeamMember represents one membership row. At most one row exists per
// (team, user) pair: the composite primary key enforces the invariant.
type TeamMember struct {
	TeamID   string    `gorm:"primaryKey;column:team_id;type:varchar(36)"                json:"team_id"`
	UserID   string    `gorm:"primaryKey;column:user_id;type:varchar(36)"                json:"user_id"`
	Role     Role      `gorm:"column:role;type:varchar(16);not null"                     json:"role"`
	Status   string    `gorm:"column:status;type:varchar(16);not null;default:active"    json:"status"`
	JoinedAt time.Time `gorm:"column:joined_at;type:timestamptz;not null;default:now()"  json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}
