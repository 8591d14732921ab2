// Package repository provides data access layer for the org module.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	orgModel "squadhub/internal/org/model"
)

// Repository defines the interface for org data access operations.
type Repository interface {
	// Create creates a new organization.
	Create(ctx context.Context, org *orgModel.Org) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new org repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, org *orgModel.Org) error {
	if org.ID == "" {
		org.ID = uuid.NewString()
	}
	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(org).Error
}
