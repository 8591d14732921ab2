// Package repository provides data access layer for the rsvp module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	rsvpModel "squadhub/internal/rsvp/model"
)

// Repository defines the interface for rsvp data access operations.
type Repository interface {
	// Upsert inserts or replaces the member's answer for the event.
	Upsert(ctx context.Context, rsvp *rsvpModel.RSVP) error

	// GetMine returns the member's answer for the event, nil when the
	// member has not answered yet.
	GetMine(ctx context.Context, eventID, userID string) (*rsvpModel.RSVP, error)

	// Summary aggregates the per-event tally from the stored rows.
	Summary(ctx context.Context, eventID string) (*rsvpModel.Summary, error)

	// ListWithNames returns all answers for the event joined with display
	// names, most recently updated first.
	ListWithNames(ctx context.Context, eventID string) ([]rsvpModel.CoachRow, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new rsvp repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert inserts or replaces the member's answer for the event.
func (r *repository) Upsert(ctx context.Context, rsvp *rsvpModel.RSVP) error {
	rsvp.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "note", "updated_at"}),
		}).
		Create(rsvp).Error
}

// GetMine returns the member's answer for the event, nil when absent.
func (r *repository) GetMine(ctx context.Context, eventID, userID string) (*rsvpModel.RSVP, error) {
	var rsvp rsvpModel.RSVP
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rsvp, nil
}

// Summary aggregates the per-event tally from the stored rows.
func (r *repository) Summary(ctx context.Context, eventID string) (*rsvpModel.Summary, error) {
	var summaries []rsvpModel.Summary
	err := r.db.WithContext(ctx).
		Table("event_rsvps").
		Select(`event_id,
			SUM(CASE WHEN status = 'yes' THEN 1 ELSE 0 END) AS yes_count,
			SUM(CASE WHEN status = 'no' THEN 1 ELSE 0 END) AS no_count,
			SUM(CASE WHEN status = 'maybe' THEN 1 ELSE 0 END) AS maybe_count`).
		Where("event_id = ?", eventID).
		Group("event_id").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return &rsvpModel.Summary{EventID: eventID}, nil
	}
	return &summaries[0], nil
}

// ListWithNames returns all answers joined with display names.
func (r *repository) ListWithNames(ctx context.Context, eventID string) ([]rsvpModel.CoachRow, error) {
	var rows []rsvpModel.CoachRow
	err := r.db.WithContext(ctx).
		Table("event_rsvps AS er").
		Select(`er.event_id, er.user_id, er.status, er.note, er.updated_at,
			p.display_name AS display_name`).
		Joins("LEFT JOIN profiles p ON p.id = er.user_id").
		Where("er.event_id = ?", eventID).
		Order("er.updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
