// Package service provides business logic layer for the invite module.
package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	inviteModel "squadhub/internal/invite/model"
	"squadhub/internal/invite/repository"
	teamModel "squadhub/internal/team/model"
	teamRepository "squadhub/internal/team/repository"
	"squadhub/pkg/validate"
)

// Codes skip 0/O/1/I so they survive being read aloud or handwritten.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 10
)

// RoleResolver resolves the caller's current role in a team. Satisfied by
// the team repository.
type RoleResolver interface {
	RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error)
}

// Service defines the interface for invite business logic operations.
type Service interface {
	// CreateInvite creates a shareable join code. Coach/admin only.
	CreateInvite(ctx context.Context, callerID, teamID string, req *inviteModel.CreateInviteRequest) (*inviteModel.Invite, error)

	// ListInvites returns the team's invites. Coach/admin only.
	ListInvites(ctx context.Context, callerID, teamID string) ([]inviteModel.Invite, error)

	// SetDisabled flips the disabled flag. Coach/admin only.
	SetDisabled(ctx context.Context, callerID, inviteID string, disabled bool) (*inviteModel.Invite, error)

	// Redeem joins the caller to the invite's team and burns one use, in
	// one transaction.
	Redeem(ctx context.Context, callerID, code string) (*inviteModel.RedeemResponse, error)
}

type service struct {
	repo   repository.Repository
	roles  RoleResolver
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new invite service instance.
func New(repo repository.Repository, roles RoleResolver, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		roles:  roles,
		db:     db,
		logger: logger,
	}
}

// CreateInvite creates a shareable join code. Coach/admin only.
func (s *service) CreateInvite(ctx context.Context, callerID, teamID string, req *inviteModel.CreateInviteRequest) (*inviteModel.Invite, error) {
	role := teamModel.RolePlayer
	if req.Role != "" {
		role = teamModel.Role(req.Role)
		if role != teamModel.RolePlayer && role != teamModel.RoleCoach {
			return nil, inviteModel.ErrInvalidInviteRole
		}
	}

	if err := s.requireManager(ctx, teamID, callerID); err != nil {
		return nil, err
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	invite := &inviteModel.Invite{
		TeamID:    teamID,
		Code:      code,
		Role:      role,
		CreatedBy: callerID,
		ExpiresAt: req.ExpiresAt,
		MaxUses:   req.MaxUses,
	}
	if err := s.repo.Create(ctx, invite); err != nil {
		return nil, err
	}

	s.logger.Infow("invite created", "invite_id", invite.ID, "team_id", teamID, "role", role)
	return invite, nil
}

// ListInvites returns the team's invites. Coach/admin only.
func (s *service) ListInvites(ctx context.Context, callerID, teamID string) ([]inviteModel.Invite, error) {
	if err := s.requireManager(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListByTeam(ctx, teamID)
}

// SetDisabled flips the disabled flag. Coach/admin only.
func (s *service) SetDisabled(ctx context.Context, callerID, inviteID string, disabled bool) (*inviteModel.Invite, error) {
	invite, err := s.repo.GetByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}

	if err := s.requireManager(ctx, invite.TeamID, callerID); err != nil {
		return nil, err
	}

	if err := s.repo.SetDisabled(ctx, inviteID, disabled); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, inviteID)
}

// Redeem joins the caller to the invite's team and burns one use.
func (s *service) Redeem(ctx context.Context, callerID, code string) (*inviteModel.RedeemResponse, error) {
	normalized, err := validate.InviteCode(code)
	if err != nil {
		return nil, inviteModel.ErrInviteNotFound
	}

	var response *inviteModel.RedeemResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)

		invite, txErr := repo.GetByCode(ctx, normalized)
		if txErr != nil {
			return txErr
		}
		if txErr := redeemableError(invite, time.Now()); txErr != nil {
			return txErr
		}

		// Existing members keep their current role; the insert is a
		// no-op for them.
		member := &teamModel.TeamMember{
			TeamID: invite.TeamID,
			UserID: callerID,
			Role:   invite.Role,
			Status: "active",
		}
		if txErr := teamRepository.New(tx).AddMember(ctx, member); txErr != nil {
			return txErr
		}
		if txErr := repo.IncrementUses(ctx, invite.ID); txErr != nil {
			return txErr
		}

		response = &inviteModel.RedeemResponse{
			TeamID: invite.TeamID,
			Role:   member.Role.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("invite redeemed", "team_id", response.TeamID, "user_id", callerID)
	return response, nil
}

// redeemableError maps the redeemability predicate onto the sentinel
// error of whichever condition failed.
func redeemableError(invite *inviteModel.Invite, now time.Time) error {
	if invite.Redeemable(now) {
		return nil
	}
	switch {
	case invite.Disabled:
		return inviteModel.ErrInviteDisabled
	case invite.ExpiresAt != nil && now.After(*invite.ExpiresAt):
		return inviteModel.ErrInviteExpired
	default:
		return inviteModel.ErrInviteExhausted
	}
}

func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
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
