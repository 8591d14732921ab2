// Package service provides business logic layer for the roster module.
package service

import (
	"context"

	"go.uber.org/zap"

	rosterModel "squadhub/internal/roster/model"
	"squadhub/internal/roster/repository"
	teamModel "squadhub/internal/team/model"
	"squadhub/pkg/validate"
)

// RoleResolver resolves the caller's current role in a team. Satisfied by
// the team repository.
type RoleResolver interface {
	RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error)
}

// Service defines the interface for roster business logic operations.
type Service interface {
	// ListRoster returns the team roster. Members only.
	ListRoster(ctx context.Context, callerID, teamID string) ([]rosterModel.RosterRow, error)

	// UpsertPlayerProfile sets a member's per-team profile, merging nil
	// request fields with the existing row. Coach/admin only.
	UpsertPlayerProfile(ctx context.Context, callerID, teamID, userID string, req *rosterModel.UpsertPlayerProfileRequest) (*rosterModel.PlayerProfile, error)

	// ReplacePositions replaces a member's position set. Coach/admin only.
	ReplacePositions(ctx context.Context, callerID, teamID, userID string, req *rosterModel.ReplacePositionsRequest) error

	// ListPositions returns the positions of a sport.
	ListPositions(ctx context.Context, sport string) ([]rosterModel.Position, error)
}

type service struct {
	repo   repository.Repository
	roles  RoleResolver
	logger *zap.SugaredLogger
}

// New creates a new roster service instance.
func New(repo repository.Repository, roles RoleResolver, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		roles:  roles,
		logger: logger,
	}
}

// ListRoster returns the team roster. Members only.
func (s *service) ListRoster(ctx context.Context, callerID, teamID string) ([]rosterModel.RosterRow, error) {
	role, err := s.roles.RoleOf(ctx, teamID, callerID)
	if err != nil {
		return nil, err
	}
	if !role.IsMember() {
		return nil, teamModel.ErrNotMember
	}
	return s.repo.ListRoster(ctx, teamID)
}

// UpsertPlayerProfile sets a member's per-team profile.
func (s *service) UpsertPlayerProfile(ctx context.Context, callerID, teamID, userID string, req *rosterModel.UpsertPlayerProfileRequest) (*rosterModel.PlayerProfile, error) {
	if err := validate.OptionalJerseyNumber(req.JerseyNumber); err != nil {
		return nil, err
	}

	if err := s.requireManager(ctx, teamID, callerID); err != nil {
		return nil, err
	}

	profile, err := s.repo.GetPlayerProfile(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &rosterModel.PlayerProfile{TeamID: teamID, UserID: userID}
	}

	if req.JerseyNumber != nil {
		profile.JerseyNumber = req.JerseyNumber
	}
	if req.IsActive != nil {
		profile.IsActive = req.IsActive
	}
	if req.Note != nil {
		profile.Note = req.Note
	}

	if err := s.repo.UpsertPlayerProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ReplacePositions replaces a member's position set. Coach/admin only.
func (s *service) ReplacePositions(ctx context.Context, callerID, teamID, userID string, req *rosterModel.ReplacePositionsRequest) error {
	if len(req.Priorities) > 0 && len(req.Priorities) != len(req.PositionIDs) {
		return rosterModel.ErrPriorityMismatch
	}

	if err := s.requireManager(ctx, teamID, callerID); err != nil {
		return err
	}

	rows := make([]rosterModel.PlayerPosition, 0, len(req.PositionIDs))
	for i, positionID := range req.PositionIDs {
		priority := i + 1
		if len(req.Priorities) > 0 {
			priority = req.Priorities[i]
		}
		rows = append(rows, rosterModel.PlayerPosition{
			TeamID:     teamID,
			UserID:     userID,
			PositionID: positionID,
			Priority:   priority,
		})
	}
	return s.repo.ReplacePositions(ctx, teamID, userID, rows)
}

// ListPositions returns the positions of a sport.
func (s *service) ListPositions(ctx context.Context, sport string) ([]rosterModel.Position, error) {
	if sport == "" {
		sport = "generic"
	}
	return s.repo.ListPositions(ctx, sport)
}

func (s *service) requireManager(ctx context.Context, teamID, userID string) error {
	role, err := s.roles.RoleOf(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !role.CanManage() {
		return teamModel.ErrRoleForbidden
	}
	return nil
}
