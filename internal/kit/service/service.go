// Package service provides business logic layer for the kit module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	kitModel "squadhub/internal/kit/model"
	"squadhub/internal/kit/repository"
	teamModel "squadhub/internal/team/model"
	"squadhub/pkg/validate"
)

// RoleResolver resolves the caller's current role in a team. Satisfied by
// the team repository.
type RoleResolver interface {
	RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error)
}

// Service defines the interface for kit business logic operations.
type Service interface {
	// CreateKit creates a kit for the team. Coach/admin only.
	CreateKit(ctx context.Context, callerID, teamID string, req *kitModel.CreateKitRequest) (*kitModel.Kit, error)

	// ListKits returns the team's kits, default first. Members only.
	ListKits(ctx context.Context, callerID, teamID string) ([]kitModel.Kit, error)

	// GetDefaultKit returns the team's default kit. Members only.
	GetDefaultKit(ctx context.Context, callerID, teamID string) (*kitModel.Kit, error)

	// SetKitNumber assigns a member's number for a kit. Coach/admin only.
	SetKitNumber(ctx context.Context, callerID, teamID, kitID, userID string, jerseyNumber int) (*kitModel.KitNumber, error)

	// ClearKitNumber removes a member's number for a kit. Coach/admin only.
	ClearKitNumber(ctx context.Context, callerID, teamID, kitID, userID string) error
}

type service struct {
	repo   repository.Repository
	roles  RoleResolver
	logger *zap.SugaredLogger
}

// New creates a new kit service instance.
func New(repo repository.Repository, roles RoleResolver, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		roles:  roles,
		logger: logger,
	}
}

// CreateKit creates a kit for the team. Coach/admin only.
func (s *service) CreateKit(ctx context.Context, callerID, teamID string, req *kitModel.CreateKitRequest) (*kitModel.Kit, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, kitModel.ErrInvalidKitName
	}

	if err := s.requireManager(ctx, teamID, callerID); err != nil {
		return nil, err
	}

	kit := &kitModel.Kit{
		TeamID:    teamID,
		Name:      name,
		IsDefault: req.IsDefault,
	}
	if err := s.repo.Create(ctx, kit); err != nil {
		return nil, err
	}

	s.logger.Infow("kit created", "kit_id", kit.ID, "team_id", teamID)
	return kit, nil
}

// ListKits returns the team's kits, default first. Members only.
func (s *service) ListKits(ctx context.Context, callerID, teamID string) ([]kitModel.Kit, error) {
	if err := s.requireMember(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListByTeam(ctx, teamID)
}

// GetDefaultKit returns the team's default kit. Members only.
func (s *service) GetDefaultKit(ctx context.Context, callerID, teamID string) (*kitModel.Kit, error) {
	if err := s.requireMember(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	return s.repo.GetDefault(ctx, teamID)
}

// SetKitNumber assigns a member's number for a kit. Coach/admin only.
func (s *service) SetKitNumber(ctx context.Context, callerID, teamID, kitID, userID string, jerseyNumber int) (*kitModel.KitNumber, error) {
	if err := validate.JerseyNumber(jerseyNumber); err != nil {
		return nil, err
	}

	if err := s.requireManager(ctx, teamID, callerID); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, kitID); err != nil {
		return nil, err
	}

	number := &kitModel.KitNumber{
		TeamID:       teamID,
		KitID:        kitID,
		UserID:       userID,
		JerseyNumber: jerseyNumber,
	}
	if err := s.repo.SetNumber(ctx, number); err != nil {
		return nil, err
	}
	return number, nil
}

// ClearKitNumber removes a member's number for a kit. Coach/admin only.
func (s *service) ClearKitNumber(ctx context.Context, callerID, teamID, kitID, userID string) error {
	if err := s.requireManager(ctx, teamID, callerID); err != nil {
		return err
	}
	return s.repo.ClearNumber(ctx, teamID, kitID, userID)
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

func (s *service) requireMember(ctx context.Context, teamID, userID string) error {
	role, err := s.roles.RoleOf(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !role.IsMember() {
		return teamModel.ErrNotMember
	}
	return nil
}
