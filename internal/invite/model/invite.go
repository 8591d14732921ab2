// Package model defines data structures for the invite module.
package model

import (
	"time"

	teamModel "squadhub/internal/team/model"
)

// Invite represents a shareable join code for a team. MaxUses zero means
// unlimited.
type Invite struct {
	ID        string         `gorm:"primaryKey;column:id;type:varchar(36)"                     json:"id"`
	TeamID    string         `gorm:"column:team_id;type:varchar(36);not null;index:idx_invites_team_id" json:"team_id"`
	Code      string         `gorm:"column:code;type:varchar(16);not null;uniqueIndex"         json:"code"`
	Role      teamModel.Role `gorm:"column:role;type:varchar(16);not null;default:player"      json:"role"`
	CreatedBy string         `gorm:"column:created_by;type:varchar(36);not null"               json:"created_by"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"created_at"`
	ExpiresAt *time.Time     `gorm:"column:expires_at;type:timestamptz"                        json:"expires_at"`
	MaxUses   int            `gorm:"column:max_uses;not null;default:0"                        json:"max_uses"`
	Uses      int            `gorm:"column:uses;not null;default:0"                            json:"uses"`
	Disabled  bool           `gorm:"column:disabled;not null;default:false"                    json:"disabled"`
}

// TableName returns the table name for the Invite model.
func (Invite) TableName() string {
	return "invites"
}

// Redeemable reports whether the invite can still admit a member at the
// given moment: not disabled, not expired, and under its use cap.
func (i *Invite) Redeemable(now time.Time) bool {
	if i.Disabled {
		return false
	}
	if i.ExpiresAt != nil && now.After(*i.ExpiresAt) {
		return false
	}
	return i.MaxUses == 0 || i.Uses < i.MaxUses
}
