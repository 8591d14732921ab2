// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	teamModel "squadhub/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create creates a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, teamID string) (*teamModel.Team, error)

	// OrgExists reports whether an organization row exists.
	OrgExists(ctx context.Context, orgID string) (bool, error)

	// ListByUser returns teams the user is a member of, newest first.
	ListByUser(ctx context.Context, userID string) ([]teamModel.Team, error)

	// AddMember inserts a membership row. Inserting a second row for the
	// same (team, user) pair returns the existing row untouched.
	AddMember(ctx context.Context, member *teamModel.TeamMember) error

	// RoleOf returns the user's role in the team; RoleNone when no
	// membership row exists.
	RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error)

	// ListMembers returns all members of a team with profile display names,
	// ordered by join time.
	ListMembers(ctx context.Context, teamID string) ([]teamModel.MemberResponse, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now()
	}
	if team.Sport == "" {
		team.Sport = "generic"
	}
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, teamID string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// OrgExists reports whether an organization row exists.
func (r *repository) OrgExists(ctx context.Context, orgID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("orgs").
		Where("id = ?", orgID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser returns teams the user is a member of, newest first.
func (r *repository) ListByUser(ctx context.Context, userID string) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Order("teams.created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

// AddMember inserts a membership row if none exists for the (team, user) pair.
func (r *repository) AddMember(ctx context.Context, member *teamModel.TeamMember) error {
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	if member.Status == "" {
		member.Status = "active"
	}
	return r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", member.TeamID, member.UserID).
		FirstOrCreate(member).Error
}

// RoleOf returns the user's role in the team; RoleNone when no row exists.
func (r *repository) RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error) {
	var member teamModel.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return teamModel.RoleNone, nil
		}
		return teamModel.RoleNone, err
	}

	return member.Role, nil
}

// ListMembers returns all members of a team with profile display names.
func (r *repository) ListMembers(ctx context.Context, teamID string) ([]teamModel.MemberResponse, error) {
	var members []teamModel.MemberResponse

	err := r.db.WithContext(ctx).
		Table("team_members").
		Select("team_members.team_id, team_members.user_id, team_members.role, team_members.status, team_members.joined_at, profiles.display_name").
		Joins("LEFT JOIN profiles ON profiles.id = team_members.user_id").
		Where("team_members.team_id = ?", teamID).
		Order("team_members.joined_at ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}

	if members == nil {
		members = []teamModel.MemberResponse{}
	}
	return members, nil
}
