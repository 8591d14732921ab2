// Package repository provides data access layer for the profile module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	profileModel "squadhub/internal/profile/model"
)

// Repository defines the interface for profile data access operations.
type Repository interface {
	// GetByID finds a profile by user id.
	GetByID(ctx context.Context, userID string) (*profileModel.Profile, error)

	// Upsert inserts or updates the profile row for the user.
	Upsert(ctx context.Context, profile *profileModel.Profile) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new profile repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByID finds a profile by user id.
func (r *repository) GetByID(ctx context.Context, userID string) (*profileModel.Profile, error) {
	var profile profileModel.Profile
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profileModel.ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// Upsert inserts or updates the profile row for the user.
func (r *repository) Upsert(ctx context.Context, profile *profileModel.Profile) error {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "updated_at"}),
		}).
		Create(profile).Error
}
