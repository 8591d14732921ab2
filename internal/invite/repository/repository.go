// Package repository provides data access layer for the invite module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	inviteModel "squadhub/internal/invite/model"
)

// Repository defines the interface for invite data access operations.
type Repository interface {
	// Create creates a new invite.
	Create(ctx context.Context, invite *inviteModel.Invite) error

	// GetByID finds an invite by id.
	GetByID(ctx context.Context, inviteID string) (*inviteModel.Invite, error)

	// GetByCode finds an invite by its code.
	GetByCode(ctx context.Context, code string) (*inviteModel.Invite, error)

	// ListByTeam returns the team's invites, newest first.
	ListByTeam(ctx context.Context, teamID string) ([]inviteModel.Invite, error)

	// SetDisabled flips the disabled flag.
	SetDisabled(ctx context.Context, inviteID string, disabled bool) error

	// IncrementUses bumps the use counter by one.
	IncrementUses(ctx context.Context, inviteID string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new invite repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new invite.
func (r *repository) Create(ctx context.Context, invite *inviteModel.Invite) error {
	if invite.ID == "" {
		invite.ID = uuid.NewString()
	}
	if invite.CreatedAt.IsZero() {
		invite.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(invite).Error
}

// GetByID finds an invite by id.
func (r *repository) GetByID(ctx context.Context, inviteID string) (*inviteModel.Invite, error) {
	var invite inviteModel.Invite
	err := r.db.WithContext(ctx).
		Where("id = ?", inviteID).
		First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inviteModel.ErrInviteNotFound
		}
		return nil, err
	}
	return &invite, nil
}

// GetByCode finds an invite by its code.
func (r *repository) GetByCode(ctx context.Context, code string) (*inviteModel.Invite, error) {
	var invite inviteModel.Invite
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inviteModel.ErrInviteNotFound
		}
		return nil, err
	}
	return &invite, nil
}

// ListByTeam returns the team's invites, newest first.
func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]inviteModel.Invite, error) {
	var invites []inviteModel.Invite
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// SetDisabled flips the disabled flag.
func (r *repository) SetDisabled(ctx context.Context, inviteID string, disabled bool) error {
	result := r.db.WithContext(ctx).
		Model(&inviteModel.Invite{}).
		Where("id = ?", inviteID).
		Update("disabled", disabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return inviteModel.ErrInviteNotFound
	}
	return nil
}

// IncrementUses bumps the use counter by one.
func (r *repository) IncrementUses(ctx context.Context, inviteID string) error {
	return r.db.WithContext(ctx).
		Model(&inviteModel.Invite{}).
		Where("id = ?", inviteID).
		Update("uses", gorm.Expr("uses + 1")).Error
}
