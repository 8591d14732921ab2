// Package service provides business logic layer for the event module.
package service

import (
	"context"

	"go.uber.org/zap"

	eventModel "squadhub/internal/event/model"
	"squadhub/internal/event/repository"
	teamModel "squadhub/internal/team/model"
)

// RoleResolver resolves the caller's current role in a team. Satisfied by
// the team repository. Role checks always go through this before a write
// so a demoted coach loses access on the very next request.
type RoleResolver interface {
	RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error)
}

// Service defines the interface for event business logic operations.
type Service interface {
	// CreateEvent creates an event. Coach/admin only.
	CreateEvent(ctx context.Context, callerID, teamID string, req *eventModel.CreateEventRequest) (*eventModel.Event, error)

	// UpdateEvent applies a partial update. Coach/admin only.
	UpdateEvent(ctx context.Context, callerID, eventID string, req *eventModel.UpdateEventRequest) (*eventModel.Event, error)

	// DeleteEvent removes the event. Coach/admin only.
	DeleteEvent(ctx context.Context, callerID, eventID string) error

	// ListTeamEvents returns the team's events in start order. Members only.
	ListTeamEvents(ctx context.Context, callerID, teamID string) ([]eventModel.Event, error)

	// GetEvent returns a single event. Members only.
	GetEvent(ctx context.Context, callerID, eventID string) (*eventModel.Event, error)

	// SetEventKit binds a kit to the event. Coach/admin only.
	SetEventKit(ctx context.Context, callerID, eventID, kitID string) (*eventModel.Event, error)

	// EventRoster returns the filtered event roster. Members only.
	EventRoster(ctx context.Context, callerID, eventID string, showDeclined bool) ([]eventModel.RosterRow, error)
}

type service struct {
	repo   repository.Repository
	roles  RoleResolver
	logger *zap.SugaredLogger
}

// New creates a new event service instance.
func New(repo repository.Repository, roles RoleResolver, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		roles:  roles,
		logger: logger,
	}
}

// CreateEvent creates an event. Coach/admin only.
func (s *service) CreateEvent(ctx context.Context, callerID, teamID string, req *eventModel.CreateEventRequest) (*eventModel.Event, error) {
	eventType := eventModel.EventType(req.Type)
	if !eventType.Valid() {
		return nil, eventModel.ErrInvalidEventType
	}

	if err := s.requireManager(ctx, teamID, callerID); err != nil {
		return nil, err
	}

	event := &eventModel.Event{
		TeamID:    teamID,
		Type:      eventType,
		Title:     req.Title,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Location:  req.Location,
		Notes:     req.Notes,
		CreatedBy: callerID,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Infow("event created", "event_id", event.ID, "team_id", teamID, "type", eventType)
	return event, nil
}

// UpdateEvent applies a partial update. Coach/admin only.
func (s *service) UpdateEvent(ctx context.Context, callerID, eventID string, req *eventModel.UpdateEventRequest) (*eventModel.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.requireManager(ctx, event.TeamID, callerID); err != nil {
		return nil, err
	}

	if req.Type != nil {
		eventType := eventModel.EventType(*req.Type)
		if !eventType.Valid() {
			return nil, eventModel.ErrInvalidEventType
		}
		event.Type = eventType
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt
	}
	if req.Title != nil {
		event.Title = req.Title
	}
	if req.Location != nil {
		event.Location = req.Location
	}
	if req.Notes != nil {
		event.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes the event. Coach/admin only.
func (s *service) DeleteEvent(ctx context.Context, callerID, eventID string) error {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.requireManager(ctx, event.TeamID, callerID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, eventID)
}

// ListTeamEvents returns the team's events in start order. Members only.
func (s *service) ListTeamEvents(ctx context.Context, callerID, teamID string) ([]eventModel.Event, error) {
	if err := s.requireMember(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListByTeam(ctx, teamID)
}

// GetEvent returns a single event. Members only.
func (s *service) GetEvent(ctx context.Context, callerID, eventID string) (*eventModel.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, event.TeamID, callerID); err != nil {
		return nil, err
	}
	return event, nil
}

// SetEventKit binds a kit to the event. Coach/admin only.
func (s *service) SetEventKit(ctx context.Context, callerID, eventID, kitID string) (*eventModel.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.requireManager(ctx, event.TeamID, callerID); err != nil {
		return nil, err
	}

	if err := s.repo.SetKit(ctx, eventID, kitID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, eventID)
}

// EventRoster returns the filtered event roster. Members only.
func (s *service) EventRoster(ctx context.Context, callerID, eventID string, showDeclined bool) ([]eventModel.RosterRow, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, event.TeamID, callerID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListRoster(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return eventModel.FilterEligible(rows, showDeclined), nil
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
