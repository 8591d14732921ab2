// Package service provides business logic layer for the team module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "squadhub/internal/team/model"
	"squadhub/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a team and the creator's initial membership.
	CreateTeam(ctx context.Context, callerID string, req *teamModel.CreateTeamRequest) (*teamModel.Team, error)

	// ListMyTeams returns the caller's teams, newest first.
	ListMyTeams(ctx context.Context, callerID string) ([]teamModel.Team, error)

	// ResolveRole returns the caller's role in the team. The lookup is
	// performed fresh on every call; screens must not cache it across
	// navigations.
	ResolveRole(ctx context.Context, teamID, callerID string) (teamModel.Role, error)

	// ListMembers returns the team's members with display names. Only
	// members of the team may list them.
	ListMembers(ctx context.Context, teamID, callerID string) (*teamModel.MembersResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// CreateTeam creates a team and the creator's membership in a transaction.
func (s *service) CreateTeam(ctx context.Context, callerID string, req *teamModel.CreateTeamRequest) (*teamModel.Team, error) {
	if req.Name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	creatorRole := teamModel.RoleAdmin
	if req.CreatorRole != "" {
		parsed, err := teamModel.ParseRole(req.CreatorRole)
		if err != nil || !parsed.CanManage() {
			return nil, teamModel.ErrInvalidCreatorRole
		}
		creatorRole = parsed
	}

	exists, err := s.repo.OrgExists(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, teamModel.ErrOrgNotFound
	}

	team := &teamModel.Team{
		OrgID:    req.OrgID,
		Name:     req.Name,
		AgeGroup: req.AgeGroup,
		Season:   req.Season,
		Sport:    req.Sport,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if txErr := txRepo.Create(ctx, team); txErr != nil {
			return txErr
		}

		member := &teamModel.TeamMember{
			TeamID: team.ID,
			UserID: callerID,
			Role:   creatorRole,
		}
		return txRepo.AddMember(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "org_id", team.OrgID, "creator_role", creatorRole)
	return team, nil
}

// ListMyTeams returns the caller's teams, newest first.
func (s *service) ListMyTeams(ctx context.Context, callerID string) ([]teamModel.Team, error) {
	return s.repo.ListByUser(ctx, callerID)
}

// ResolveRole returns the caller's role in the team.
func (s *service) ResolveRole(ctx context.Context, teamID, callerID string) (teamModel.Role, error) {
	if _, err := s.repo.GetByID(ctx, teamID); err != nil {
		return teamModel.RoleNone, err
	}
	return s.repo.RoleOf(ctx, teamID, callerID)
}

// ListMembers returns the team's members with display names.
func (s *service) ListMembers(ctx context.Context, teamID, callerID string) (*teamModel.MembersResponse, error) {
	if _, err := s.repo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	role, err := s.repo.RoleOf(ctx, teamID, callerID)
	if err != nil {
		return nil, err
	}
	if !role.IsMember() {
		return nil, teamModel.ErrNotMember
	}

	members, err := s.repo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &teamModel.MembersResponse{
		TeamID:  teamID,
		Members: members,
	}, nil
}
