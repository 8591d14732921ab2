// Package model provides domain models and DTOs for the org module.
package model

import (
	"errors"
	"time"
)

// Org represents an organization owning one or more teams.
// Matches the orgs table schema.
type Org struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"                     json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                    json:"name"`
	CreatedBy string    `gorm:"column:created_by;type:varchar(36);not null"               json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Org) TableName() string {
	return "orgs"
}

// CreateOrgRequest represents the request to create an organization.
type CreateOrgRequest struct {
	Name string `json:"name" binding:"required"`
}

var (
	// ErrInvalidOrgName indicates an empty or blank organization name.
	ErrInvalidOrgName = errors.New("invalid organization name")
)
