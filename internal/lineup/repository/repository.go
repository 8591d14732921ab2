// Package repository provides data access layer for the lineup module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lineupModel "squadhub/internal/lineup/model"
)

// Repository defines the interface for lineup data access operations.
type Repository interface {
	// ListTemplates returns the templates for a sport ordered by name.
	ListTemplates(ctx context.Context, sport string) ([]lineupModel.Template, error)

	// GetTemplate finds a template by id.
	GetTemplate(ctx context.Context, templateID string) (*lineupModel.Template, error)

	// ListTemplateSlots returns a template's slots in display order.
	ListTemplateSlots(ctx context.Context, templateID string) ([]lineupModel.TemplateSlot, error)

	// CreateFromTemplate creates the lineup and seeds one unassigned slot
	// per template slot in a single transaction.
	CreateFromTemplate(ctx context.Context, lineup *lineupModel.Lineup, templateID string) error

	// Duplicate creates the target lineup and copies the source lineup's
	// slots, assignments included, in a single transaction.
	Duplicate(ctx context.Context, sourceID string, target *lineupModel.Lineup) error

	// GetByID finds a lineup by id.
	GetByID(ctx context.Context, lineupID string) (*lineupModel.Lineup, error)

	// ListByTeam returns all of the team's lineups, newest first.
	ListByTeam(ctx context.Context, teamID string) ([]lineupModel.Lineup, error)

	// ListByEvent returns the event's lineups, newest first.
	ListByEvent(ctx context.Context, eventID string) ([]lineupModel.Lineup, error)

	// ListTeamDefaults returns the team's event-less lineups, newest first.
	ListTeamDefaults(ctx context.Context, teamID string) ([]lineupModel.Lineup, error)

	// ListSlotsLabeled returns the lineup's slots enriched with profile,
	// jersey and position data, in display order.
	ListSlotsLabeled(ctx context.Context, lineupID string) ([]lineupModel.LabeledSlot, error)

	// SetSlot binds a user to a slot, overriding position when given.
	SetSlot(ctx context.Context, lineupID, slotKey, userID string, positionID *int) error

	// ClearSlot unbinds whoever holds the slot.
	ClearSlot(ctx context.Context, lineupID, slotKey string) error

	// SetGroup moves a slot between starter and bench.
	SetGroup(ctx context.Context, lineupID, slotKey string, group lineupModel.SlotGroup) error

	// SetLocked flips the lock timestamp.
	SetLocked(ctx context.Context, lineupID string, locked bool) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new lineup repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListTemplates returns the templates for a sport ordered by name.
func (r *repository) ListTemplates(ctx context.Context, sport string) ([]lineupModel.Template, error) {
	var templates []lineupModel.Template
	err := r.db.WithContext(ctx).
		Where("sport = ?", sport).
		Order("name ASC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplate finds a template by id.
func (r *repository) GetTemplate(ctx context.Context, templateID string) (*lineupModel.Template, error) {
	var template lineupModel.Template
	err := r.db.WithContext(ctx).
		Where("id = ?", templateID).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lineupModel.ErrTemplateNotFound
		}
		return nil, err
	}
	return &template, nil
}

// ListTemplateSlots returns a template's slots in display order.
func (r *repository) ListTemplateSlots(ctx context.Context, templateID string) ([]lineupModel.TemplateSlot, error) {
	var slots []lineupModel.TemplateSlot
	err := r.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("slot_order ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateFromTemplate creates the lineup and seeds its slots.
func (r *repository) CreateFromTemplate(ctx context.Context, lineup *lineupModel.Lineup, templateID string) error {
	templateSlots, err := r.ListTemplateSlots(ctx, templateID)
	if err != nil {
		return err
	}

	if lineup.ID == "" {
		lineup.ID = uuid.NewString()
	}
	if lineup.CreatedAt.IsZero() {
		lineup.CreatedAt = time.Now()
	}
	lineup.TemplateID = &templateID

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(lineup).Error; err != nil {
			return err
		}

		// Labels are copied so the lineup stays stable if the template
		// is edited later. Every slot starts unassigned.
		for _, ts := range templateSlots {
			slot := lineupModel.Slot{
				LineupID:   lineup.ID,
				SlotKey:    ts.SlotKey,
				Label:      ts.Label,
				PositionID: ts.PositionID,
				SlotOrder:  ts.SlotOrder,
				GroupKey:   lineupModel.GroupStarter,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Duplicate creates the target lineup and copies the source's slots.
func (r *repository) Duplicate(ctx context.Context, sourceID string, target *lineupModel.Lineup) error {
	var sourceSlots []lineupModel.Slot
	err := r.db.WithContext(ctx).
		Where("lineup_id = ?", sourceID).
		Order("slot_order ASC").
		Find(&sourceSlots).Error
	if err != nil {
		return err
	}

	if target.ID == "" {
		target.ID = uuid.NewString()
	}
	if target.CreatedAt.IsZero() {
		target.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(target).Error; err != nil {
			return err
		}

		for _, src := range sourceSlots {
			slot := src
			slot.LineupID = target.ID
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID finds a lineup by id.
func (r *repository) GetByID(ctx context.Context, lineupID string) (*lineupModel.Lineup, error) {
	var lineup lineupModel.Lineup
	err := r.db.WithContext(ctx).
		Where("id = ?", lineupID).
		First(&lineup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lineupModel.ErrLineupNotFound
		}
		return nil, err
	}
	return &lineup, nil
}

// ListByTeam returns all of the team's lineups, newest first.
func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]lineupModel.Lineup, error) {
	var lineups []lineupModel.Lineup
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&lineups).Error
	if err != nil {
		return nil, err
	}
	return lineups, nil
}

// ListByEvent returns the event's lineups, newest first.
func (r *repository) ListByEvent(ctx context.Context, eventID string) ([]lineupModel.Lineup, error) {
	var lineups []lineupModel.Lineup
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&lineups).Error
	if err != nil {
		return nil, err
	}
	return lineups, nil
}

// ListTeamDefaults returns the team's event-less lineups, newest first.
func (r *repository) ListTeamDefaults(ctx context.Context, teamID string) ([]lineupModel.Lineup, error) {
	var lineups []lineupModel.Lineup
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND event_id IS NULL", teamID).
		Order("created_at DESC").
		Find(&lineups).Error
	if err != nil {
		return nil, err
	}
	return lineups, nil
}

// ListSlotsLabeled returns the lineup's enriched slots in display order.
func (r *repository) ListSlotsLabeled(ctx context.Context, lineupID string) ([]lineupModel.LabeledSlot, error) {
	var slots []lineupModel.LabeledSlot
	err := r.db.WithContext(ctx).
		Table("lineup_slots AS ls").
		Select(`ls.lineup_id, ls.slot_key, ls.label, ls.user_id, ls.position_id,
			ls.slot_order, ls.group_key,
			p.display_name AS display_name,
			tpp.preferred_jersey_number AS jersey_number,
			pos.code AS position_code,
			pos.name AS position_name`).
		Joins("JOIN lineups l ON l.id = ls.lineup_id").
		Joins("LEFT JOIN profiles p ON p.id = ls.user_id").
		Joins("LEFT JOIN team_player_profiles tpp ON tpp.team_id = l.team_id AND tpp.user_id = ls.user_id").
		Joins("LEFT JOIN positions pos ON pos.id = ls.position_id").
		Where("ls.lineup_id = ?", lineupID).
		Order("ls.slot_order ASC").
		Scan(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// SetSlot binds a user to a slot, overriding position when given.
func (r *repository) SetSlot(ctx context.Context, lineupID, slotKey, userID string, positionID *int) error {
	updates := map[string]interface{}{"user_id": userID}
	if positionID != nil {
		updates["position_id"] = *positionID
	}
	return r.updateSlot(ctx, lineupID, slotKey, updates)
}

// ClearSlot unbinds whoever holds the slot.
func (r *repository) ClearSlot(ctx context.Context, lineupID, slotKey string) error {
	return r.updateSlot(ctx, lineupID, slotKey, map[string]interface{}{"user_id": nil})
}

// SetGroup moves a slot between starter and bench.
func (r *repository) SetGroup(ctx context.Context, lineupID, slotKey string, group lineupModel.SlotGroup) error {
	return r.updateSlot(ctx, lineupID, slotKey, map[string]interface{}{"group_key": group})
}

func (r *repository) updateSlot(ctx context.Context, lineupID, slotKey string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&lineupModel.Slot{}).
		Where("lineup_id = ? AND slot_key = ?", lineupID, slotKey).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return lineupModel.ErrSlotNotFound
	}
	return nil
}

// SetLocked flips the lock timestamp.
func (r *repository) SetLocked(ctx context.Context, lineupID string, locked bool) error {
	var lockedAt interface{}
	if locked {
		lockedAt = time.Now()
	}
	return r.db.WithContext(ctx).
		Model(&lineupModel.Lineup{}).
		Where("id = ?", lineupID).
		Update("locked_at", lockedAt).Error
}
