// Package repository provides data access layer for the event module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "squadhub/internal/event/model"
)

// Repository defines the interface for event data access operations.
type Repository interface {
	// Create creates a new event.
	Create(ctx context.Context, event *eventModel.Event) error

	// GetByID finds an event by id.
	GetByID(ctx context.Context, eventID string) (*eventModel.Event, error)

	// Update saves the full event row.
	Update(ctx context.Context, event *eventModel.Event) error

	// Delete removes the event and its dependent RSVP rows.
	Delete(ctx context.Context, eventID string) error

	// ListByTeam returns the team's events ordered by start time ascending.
	ListByTeam(ctx context.Context, teamID string) ([]eventModel.Event, error)

	// SetKit binds a kit to the event.
	SetKit(ctx context.Context, eventID, kitID string) error

	// ListRoster returns the event roster rows ordered by display name,
	// before eligibility filtering.
	ListRoster(ctx context.Context, eventID string) ([]eventModel.RosterRow, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new event repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new event.
func (r *repository) Create(ctx context.Context, event *eventModel.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID finds an event by id.
func (r *repository) GetByID(ctx context.Context, eventID string) (*eventModel.Event, error) {
	var event eventModel.Event
	err := r.db.WithContext(ctx).
		Where("id = ?", eventID).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventModel.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Update saves the full event row.
func (r *repository) Update(ctx context.Context, event *eventModel.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete removes the event and its dependent RSVP rows.
func (r *repository) Delete(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM event_rsvps WHERE event_id = ?", eventID).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM events WHERE id = ?", eventID).Error
	})
}

// ListByTeam returns the team's events ordered by start time ascending.
func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]eventModel.Event, error) {
	var events []eventModel.Event
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("starts_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// SetKit binds a kit to the event.
func (r *repository) SetKit(ctx context.Context, eventID, kitID string) error {
	return r.db.WithContext(ctx).
		Model(&eventModel.Event{}).
		Where("id = ?", eventID).
		Update("kit_id", kitID).Error
}

// ListRoster returns the event roster rows ordered by display name.
func (r *repository) ListRoster(ctx context.Context, eventID string) ([]eventModel.RosterRow, error) {
	var rows []eventModel.RosterRow
	err := r.db.WithContext(ctx).
		Table("team_members AS tm").
		Select(`e.id AS event_id,
			tm.team_id AS team_id,
			tm.user_id AS user_id,
			p.display_name AS display_name,
			COALESCE(tpp.is_active, TRUE) AS is_active,
			tpp.preferred_jersey_number AS preferred_jersey_number,
			er.status AS rsvp_status`).
		Joins("JOIN events e ON e.team_id = tm.team_id AND e.id = ?", eventID).
		Joins("LEFT JOIN profiles p ON p.id = tm.user_id").
		Joins("LEFT JOIN team_player_profiles tpp ON tpp.team_id = tm.team_id AND tpp.user_id = tm.user_id").
		Joins("LEFT JOIN event_rsvps er ON er.event_id = e.id AND er.user_id = tm.user_id").
		Where("tm.status = ?", "active").
		Order("p.display_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
