// Package model provides domain models and DTOs for the profile module.
package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Profile represents a user profile. The id matches the account id.
// Matches the profiles table schema.
type Profile struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(36)"                     json:"id"`
	DisplayName *string   `gorm:"column:display_name;type:varchar(80)"                      json:"display_name"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Profile) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateProfileRequest represents the request to update the caller's profile.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

var (
	// ErrProfileNotFound indicates that no profile row exists for the user.
	ErrProfileNotFound = errors.New("profile not found")
)
