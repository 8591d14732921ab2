// Package service provides business logic layer for the rsvp module.
package service

import (
	"context"

	"go.uber.org/zap"

	eventModel "squadhub/internal/event/model"
	rsvpModel "squadhub/internal/rsvp/model"
	"squadhub/internal/rsvp/repository"
	teamModel "squadhub/internal/team/model"
)

// EventResolver looks up events so answers can be scoped to the owning
// team. Satisfied by the event repository.
type EventResolver interface {
	GetByID(ctx context.Context, eventID string) (*eventModel.Event, error)
}

// RoleResolver resolves the caller's current role in a team. Satisfied by
// the team repository.
type RoleResolver interface {
	RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error)
}

// Service defines the interface for rsvp business logic operations.
type Service interface {
	// UpsertMine sets the caller's answer for the event and returns the
	// stored row. Members only.
	UpsertMine(ctx context.Context, callerID, eventID string, req *rsvpModel.UpsertRSVPRequest) (*rsvpModel.RSVP, error)

	// GetMine returns the caller's answer, nil when not answered yet.
	GetMine(ctx context.Context, callerID, eventID string) (*rsvpModel.RSVP, error)

	// Summary returns the per-event tally. Members only.
	Summary(ctx context.Context, callerID, eventID string) (*rsvpModel.Summary, error)

	// ListWithNames returns all answers with display names. Coach/admin only.
	ListWithNames(ctx context.Context, callerID, eventID string) ([]rsvpModel.CoachRow, error)
}

type service struct {
	repo   repository.Repository
	events EventResolver
	roles  RoleResolver
	logger *zap.SugaredLogger
}

// New creates a new rsvp service instance.
func New(repo repository.Repository, events EventResolver, roles RoleResolver, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		events: events,
		roles:  roles,
		logger: logger,
	}
}

// UpsertMine sets the caller's answer for the event.
func (s *service) UpsertMine(ctx context.Context, callerID, eventID string, req *rsvpModel.UpsertRSVPRequest) (*rsvpModel.RSVP, error) {
	status := rsvpModel.Status(req.Status)
	if !status.Valid() {
		return nil, rsvpModel.ErrInvalidStatus
	}

	if _, err := s.requireRole(ctx, eventID, callerID, false); err != nil {
		return nil, err
	}

	rsvp := &rsvpModel.RSVP{
		EventID: eventID,
		UserID:  callerID,
		Status:  status,
		Note:    req.Note,
	}
	if err := s.repo.Upsert(ctx, rsvp); err != nil {
		return nil, err
	}

	// Return the stored row rather than the input so the caller sees
	// the canonical updated_at.
	return s.repo.GetMine(ctx, eventID, callerID)
}

// GetMine returns the caller's answer, nil when not answered yet.
func (s *service) GetMine(ctx context.Context, callerID, eventID string) (*rsvpModel.RSVP, error) {
	if _, err := s.requireRole(ctx, eventID, callerID, false); err != nil {
		return nil, err
	}
	return s.repo.GetMine(ctx, eventID, callerID)
}

// Summary returns the per-event tally. Members only.
func (s *service) Summary(ctx context.Context, callerID, eventID string) (*rsvpModel.Summary, error) {
	if _, err := s.requireRole(ctx, eventID, callerID, false); err != nil {
		return nil, err
	}
	return s.repo.Summary(ctx, eventID)
}

// ListWithNames returns all answers with display names. Coach/admin only.
func (s *service) ListWithNames(ctx context.Context, callerID, eventID string) ([]rsvpModel.CoachRow, error) {
	if _, err := s.requireRole(ctx, eventID, callerID, true); err != nil {
		return nil, err
	}
	return s.repo.ListWithNames(ctx, eventID)
}

// requireRole resolves the event's team and checks the caller's role
// there, freshly on every call.
func (s *service) requireRole(ctx context.Context, eventID, userID string, manage bool) (teamModel.Role, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return teamModel.RoleNone, err
	}

	role, err := s.roles.RoleOf(ctx, event.TeamID, userID)
	if err != nil {
		return teamModel.RoleNone, err
	}
	if manage {
		if !role.CanManage() {
			return teamModel.RoleNone, teamModel.ErrRoleForbidden
		}
	} else if !role.IsMember() {
		return teamModel.RoleNone, teamModel.ErrNotMember
	}
	return role, nil
}
