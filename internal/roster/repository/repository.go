// Package repository provides data access layer for the roster module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	rosterModel "squadhub/internal/roster/model"
	teamModel "squadhub/internal/team/model"
)

// Repository defines the interface for roster data access operations.
type Repository interface {
	// ListRoster returns the team roster ordered by display name, each
	// row carrying the member's positions by priority.
	ListRoster(ctx context.Context, teamID string) ([]rosterModel.RosterRow, error)

	// GetPlayerProfile returns a member's per-team profile, nil when the
	// member has none yet.
	GetPlayerProfile(ctx context.Context, teamID, userID string) (*rosterModel.PlayerProfile, error)

	// UpsertPlayerProfile inserts or replaces the per-team profile.
	UpsertPlayerProfile(ctx context.Context, profile *rosterModel.PlayerProfile) error

	// ReplacePositions deletes the member's position rows and inserts
	// the given set, in one transaction.
	ReplacePositions(ctx context.Context, teamID, userID string, rows []rosterModel.PlayerPosition) error

	// ListPositions returns the positions of a sport ordered by id.
	ListPositions(ctx context.Context, sport string) ([]rosterModel.Position, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new roster repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

type rosterScanRow struct {
	TeamID       string  `gorm:"column:team_id"`
	UserID       string  `gorm:"column:user_id"`
	DisplayName  *string `gorm:"column:display_name"`
	Role         string  `gorm:"column:role"`
	JerseyNumber *int    `gorm:"column:jersey_number"`
	TeamSport    string  `gorm:"column:team_sport"`
	IsActive     *bool   `gorm:"column:is_active"`
	Note         *string `gorm:"column:note"`
}

type positionScanRow struct {
	UserID   string `gorm:"column:user_id"`
	ID       int    `gorm:"column:id"`
	Code     string `gorm:"column:code"`
	Name     string `gorm:"column:name"`
	Priority int    `gorm:"column:priority"`
}

// ListRoster returns the team roster ordered by display name.
func (r *repository) ListRoster(ctx context.Context, teamID string) ([]rosterModel.RosterRow, error) {
	var members []rosterScanRow
	err := r.db.WithContext(ctx).
		Table("team_members AS tm").
		Select(`tm.team_id, tm.user_id, p.display_name, tm.role,
			tpp.preferred_jersey_number AS jersey_number,
			t.sport AS team_sport, tpp.is_active, tpp.note`).
		Joins("JOIN teams t ON t.id = tm.team_id").
		Joins("LEFT JOIN profiles p ON p.id = tm.user_id").
		Joins("LEFT JOIN team_player_profiles tpp ON tpp.team_id = tm.team_id AND tpp.user_id = tm.user_id").
		Where("tm.team_id = ? AND tm.status = ?", teamID, "active").
		Order("p.display_name ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}

	var positions []positionScanRow
	err = r.db.WithContext(ctx).
		Table("team_player_positions AS tpos").
		Select("tpos.user_id, pos.id, pos.code, pos.name, tpos.priority").
		Joins("JOIN positions pos ON pos.id = tpos.position_id").
		Where("tpos.team_id = ?", teamID).
		Order("tpos.user_id, tpos.priority ASC").
		Scan(&positions).Error
	if err != nil {
		return nil, err
	}

	byUser := make(map[string][]rosterModel.RosterPosition)
	for _, pos := range positions {
		byUser[pos.UserID] = append(byUser[pos.UserID], rosterModel.RosterPosition{
			ID:       pos.ID,
			Code:     pos.Code,
			Name:     pos.Name,
			Priority: pos.Priority,
		})
	}

	rows := make([]rosterModel.RosterRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, rosterModel.RosterRow{
			TeamID:       m.TeamID,
			UserID:       m.UserID,
			DisplayName:  m.DisplayName,
			Role:         teamModel.Role(m.Role),
			JerseyNumber: m.JerseyNumber,
			TeamSport:    m.TeamSport,
			IsActive:     m.IsActive,
			Note:         m.Note,
			Positions:    byUser[m.UserID],
		})
	}
	return rows, nil
}

// GetPlayerProfile returns a member's per-team profile, nil when absent.
func (r *repository) GetPlayerProfile(ctx context.Context, teamID, userID string) (*rosterModel.PlayerProfile, error) {
	var profile rosterModel.PlayerProfile
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertPlayerProfile inserts or replaces the per-team profile.
func (r *repository) UpsertPlayerProfile(ctx context.Context, profile *rosterModel.PlayerProfile) error {
	profile.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"preferred_jersey_number", "is_active", "note", "updated_at"}),
		}).
		Create(profile).Error
}

// ReplacePositions deletes and re-inserts the member's position rows.
func (r *repository) ReplacePositions(ctx context.Context, teamID, userID string, rows []rosterModel.PlayerPosition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("team_id = ? AND user_id = ?", teamID, userID).
			Delete(&rosterModel.PlayerPosition{}).Error
		if err != nil {
			return err
		}

		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListPositions returns the positions of a sport ordered by id.
func (r *repository) ListPositions(ctx context.Context, sport string) ([]rosterModel.Position, error) {
	var positions []rosterModel.Position
	err := r.db.WithContext(ctx).
		Where("sport = ?", sport).
		Order("id ASC").
		Find(&positions).Error
	if err != nil {
		return nil, err
	}
	return positions, nil
}
