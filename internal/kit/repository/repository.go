// Package repository provides data access layer for the kit module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	kitModel "squadhub/internal/kit/model"
)

// Repository defines the interface for kit data access operations.
type Repository interface {
	// Create creates a kit. A new default kit demotes the previous one
	// in the same transaction.
	Create(ctx context.Context, kit *kitModel.Kit) error

	// GetByID finds a kit by id.
	GetByID(ctx context.Context, kitID string) (*kitModel.Kit, error)

	// ListByTeam returns the team's kits, default first then by age.
	ListByTeam(ctx context.Context, teamID string) ([]kitModel.Kit, error)

	// GetDefault returns the team's default kit.
	GetDefault(ctx context.Context, teamID string) (*kitModel.Kit, error)

	// SetNumber inserts or replaces a member's number for a kit.
	SetNumber(ctx context.Context, number *kitModel.KitNumber) error

	// ClearNumber removes a member's number for a kit.
	ClearNumber(ctx context.Context, teamID, kitID, userID string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new kit repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a kit.
func (r *repository) Create(ctx context.Context, kit *kitModel.Kit) error {
	if kit.ID == "" {
		kit.ID = uuid.NewString()
	}
	if kit.CreatedAt.IsZero() {
		kit.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if kit.IsDefault {
			err := tx.Model(&kitModel.Kit{}).
				Where("team_id = ? AND is_default = ?", kit.TeamID, true).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(kit).Error
	})
}

// GetByID finds a kit by id.
func (r *repository) GetByID(ctx context.Context, kitID string) (*kitModel.Kit, error) {
	var kit kitModel.Kit
	err := r.db.WithContext(ctx).
		Where("id = ?", kitID).
		First(&kit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kitModel.ErrKitNotFound
		}
		return nil, err
	}
	return &kit, nil
}

// ListByTeam returns the team's kits, default first then by age.
func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]kitModel.Kit, error) {
	var kits []kitModel.Kit
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("is_default DESC").
		Order("created_at ASC").
		Find(&kits).Error
	if err != nil {
		return nil, err
	}
	return kits, nil
}

// GetDefault returns the team's default kit.
func (r *repository) GetDefault(ctx context.Context, teamID string) (*kitModel.Kit, error) {
	var kit kitModel.Kit
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND is_default = ?", teamID, true).
		First(&kit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kitModel.ErrNoDefaultKit
		}
		return nil, err
	}
	return &kit, nil
}

// SetNumber inserts or replaces a member's number for a kit.
func (r *repository) SetNumber(ctx context.Context, number *kitModel.KitNumber) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}, {Name: "kit_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"jersey_number"}),
		}).
		Create(number).Error
}

// ClearNumber removes a member's number for a kit.
func (r *repository) ClearNumber(ctx context.Context, teamID, kitID, userID string) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND kit_id = ? AND user_id = ?", teamID, kitID, userID).
		Delete(&kitModel.KitNumber{}).Error
}
