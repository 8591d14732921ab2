// Package service provides business logic layer for the lineup module.
package service

import (
	"context"

	"go.uber.org/zap"

	eventModel "squadhub/internal/event/model"
	lineupModel "squadhub/internal/lineup/model"
	"squadhub/internal/lineup/repository"
	teamModel "squadhub/internal/team/model"
)

// EventResolver looks up events to scope lineup listings to their team.
// Satisfied by the event repository.
type EventResolver interface {
	GetByID(ctx context.Context, eventID string) (*eventModel.Event, error)
}

// RoleResolver resolves the caller's current role in a team. Satisfied by
// the team repository. Resolved fresh before every mutation so stale
// roles never authorize a write.
type RoleResolver interface {
	RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error)
}

// Service defines the interface for lineup business logic operations.
type Service interface {
	// ListTemplates returns the templates for a sport.
	ListTemplates(ctx context.Context, sport string) ([]lineupModel.Template, error)

	// ListTemplateSlots returns a template's slots in display order.
	ListTemplateSlots(ctx context.Context, templateID string) ([]lineupModel.TemplateSlot, error)

	// CreateFromTemplate creates a lineup seeded with the template's
	// slots, all unassigned. Coach/admin only.
	CreateFromTemplate(ctx context.Context, callerID, teamID string, req *lineupModel.CreateFromTemplateRequest) (*lineupModel.Lineup, error)

	// Duplicate copies a lineup, assignments included, into a new scope.
	// Coach/admin only.
	Duplicate(ctx context.Context, callerID, lineupID string, req *lineupModel.DuplicateRequest) (*lineupModel.Lineup, error)

	// ListTeamLineups returns all of the team's lineups. Members only.
	ListTeamLineups(ctx context.Context, callerID, teamID string) ([]lineupModel.Lineup, error)

	// ListEventLineups returns the event's lineups. Members only.
	ListEventLineups(ctx context.Context, callerID, eventID string) ([]lineupModel.Lineup, error)

	// ListTeamDefaultLineups returns the team's event-less lineups.
	// Members only.
	ListTeamDefaultLineups(ctx context.Context, callerID, teamID string) ([]lineupModel.Lineup, error)

	// GetLineup returns one lineup. Members only.
	GetLineup(ctx context.Context, callerID, lineupID string) (*lineupModel.Lineup, error)

	// ListSlots returns the lineup's labeled slots. Members only.
	ListSlots(ctx context.Context, callerID, lineupID string) ([]lineupModel.LabeledSlot, error)

	// SetSlot assigns a user to a slot and returns the re-read labeled
	// slots. Guarded: coach/admin and unlocked only.
	SetSlot(ctx context.Context, callerID, lineupID, slotKey string, req *lineupModel.SetSlotRequest) ([]lineupModel.LabeledSlot, error)

	// ClearSlot unassigns a slot and returns the re-read labeled slots.
	// Guarded like SetSlot.
	ClearSlot(ctx context.Context, callerID, lineupID, slotKey string) ([]lineupModel.LabeledSlot, error)

	// SetSlotGroup moves a slot between starter and bench and returns
	// the re-read labeled slots. Guarded like SetSlot.
	SetSlotGroup(ctx context.Context, callerID, lineupID, slotKey, group string) ([]lineupModel.LabeledSlot, error)

	// SetLocked flips the lock state and returns the refreshed lineup
	// list for the lineup's scope, because the lock can change which
	// lineup a view considers current. Coach/admin only.
	SetLocked(ctx context.Context, callerID, lineupID string, locked bool) ([]lineupModel.Lineup, error)
}

type service struct {
	repo   repository.Repository
	events EventResolver
	roles  RoleResolver
	logger *zap.SugaredLogger
}

// New creates a new lineup service instance.
func New(repo repository.Repository, events EventResolver, roles RoleResolver, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		events: events,
		roles:  roles,
		logger: logger,
	}
}

// ListTemplates returns the templates for a sport.
func (s *service) ListTemplates(ctx context.Context, sport string) ([]lineupModel.Template, error) {
	if sport == "" {
		sport = "generic"
	}
	return s.repo.ListTemplates(ctx, sport)
}

// ListTemplateSlots returns a template's slots in display order.
func (s *service) ListTemplateSlots(ctx context.Context, templateID string) ([]lineupModel.TemplateSlot, error) {
	if _, err := s.repo.GetTemplate(ctx, templateID); err != nil {
		return nil, err
	}
	return s.repo.ListTemplateSlots(ctx, templateID)
}

// CreateFromTemplate creates a lineup seeded with the template's slots.
func (s *service) CreateFromTemplate(ctx context.Context, callerID, teamID string, req *lineupModel.CreateFromTemplateRequest) (*lineupModel.Lineup, error) {
	role, err := s.roles.RoleOf(ctx, teamID, callerID)
	if err != nil {
		return nil, err
	}
	if err := lineupModel.GuardLockToggle(role); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetTemplate(ctx, req.TemplateID); err != nil {
		return nil, err
	}

	lineup := &lineupModel.Lineup{
		TeamID:    teamID,
		EventID:   req.EventID,
		Formation: req.Formation,
		CreatedBy: callerID,
	}
	if err := s.repo.CreateFromTemplate(ctx, lineup, req.TemplateID); err != nil {
		return nil, err
	}

	s.logger.Infow("lineup created", "lineup_id", lineup.ID, "team_id", teamID, "template_id", req.TemplateID)
	return lineup, nil
}

// Duplicate copies a lineup, assignments included, into a new scope.
func (s *service) Duplicate(ctx context.Context, callerID, lineupID string, req *lineupModel.DuplicateRequest) (*lineupModel.Lineup, error) {
	source, err := s.repo.GetByID(ctx, lineupID)
	if err != nil {
		return nil, err
	}

	role, err := s.roles.RoleOf(ctx, source.TeamID, callerID)
	if err != nil {
		return nil, err
	}
	if err := lineupModel.GuardLockToggle(role); err != nil {
		return nil, err
	}

	formation := source.Formation
	if req.TargetFormation != nil {
		formation = req.TargetFormation
	}

	target := &lineupModel.Lineup{
		TeamID:     source.TeamID,
		EventID:    req.TargetEventID,
		TemplateID: source.TemplateID,
		Formation:  formation,
		CreatedBy:  callerID,
	}
	if err := s.repo.Duplicate(ctx, lineupID, target); err != nil {
		return nil, err
	}

	s.logger.Infow("lineup duplicated", "source_id", lineupID, "lineup_id", target.ID)
	return target, nil
}

// ListTeamLineups returns all of the team's lineups. Members only.
func (s *service) ListTeamLineups(ctx context.Context, callerID, teamID string) ([]lineupModel.Lineup, error) {
	if err := s.requireMember(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListByTeam(ctx, teamID)
}

// ListEventLineups returns the event's lineups. Members only.
func (s *service) ListEventLineups(ctx context.Context, callerID, eventID string) ([]lineupModel.Lineup, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, event.TeamID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListByEvent(ctx, eventID)
}

// ListTeamDefaultLineups returns the team's event-less lineups.
func (s *service) ListTeamDefaultLineups(ctx context.Context, callerID, teamID string) ([]lineupModel.Lineup, error) {
	if err := s.requireMember(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListTeamDefaults(ctx, teamID)
}

// GetLineup returns one lineup. Members only.
func (s *service) GetLineup(ctx context.Context, callerID, lineupID string) (*lineupModel.Lineup, error) {
	lineup, err := s.repo.GetByID(ctx, lineupID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, lineup.TeamID, callerID); err != nil {
		return nil, err
	}
	return lineup, nil
}

// ListSlots returns the lineup's labeled slots. Members only.
func (s *service) ListSlots(ctx context.Context, callerID, lineupID string) ([]lineupModel.LabeledSlot, error) {
	lineup, err := s.repo.GetByID(ctx, lineupID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, lineup.TeamID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListSlotsLabeled(ctx, lineupID)
}

// SetSlot assigns a user to a slot. Last write wins.
func (s *service) SetSlot(ctx context.Context, callerID, lineupID, slotKey string, req *lineupModel.SetSlotRequest) ([]lineupModel.LabeledSlot, error) {
	if err := s.guardSlotWrite(ctx, callerID, lineupID); err != nil {
		return nil, err
	}
	if err := s.repo.SetSlot(ctx, lineupID, slotKey, req.UserID, req.PositionID); err != nil {
		return nil, err
	}
	return s.repo.ListSlotsLabeled(ctx, lineupID)
}

// ClearSlot unassigns a slot.
func (s *service) ClearSlot(ctx context.Context, callerID, lineupID, slotKey string) ([]lineupModel.LabeledSlot, error) {
	if err := s.guardSlotWrite(ctx, callerID, lineupID); err != nil {
		return nil, err
	}
	if err := s.repo.ClearSlot(ctx, lineupID, slotKey); err != nil {
		return nil, err
	}
	return s.repo.ListSlotsLabeled(ctx, lineupID)
}

// SetSlotGroup moves a slot between starter and bench.
func (s *service) SetSlotGroup(ctx context.Context, callerID, lineupID, slotKey, group string) ([]lineupModel.LabeledSlot, error) {
	slotGroup := lineupModel.SlotGroup(group)
	if !slotGroup.Valid() {
		return nil, lineupModel.ErrInvalidSlotGroup
	}

	if err := s.guardSlotWrite(ctx, callerID, lineupID); err != nil {
		return nil, err
	}
	if err := s.repo.SetGroup(ctx, lineupID, slotKey, slotGroup); err != nil {
		return nil, err
	}
	return s.repo.ListSlotsLabeled(ctx, lineupID)
}

// SetLocked flips the lock state and returns the scope's lineup list.
func (s *service) SetLocked(ctx context.Context, callerID, lineupID string, locked bool) ([]lineupModel.Lineup, error) {
	lineup, err := s.repo.GetByID(ctx, lineupID)
	if err != nil {
		return nil, err
	}

	role, err := s.roles.RoleOf(ctx, lineup.TeamID, callerID)
	if err != nil {
		return nil, err
	}
	if err := lineupModel.GuardLockToggle(role); err != nil {
		return nil, err
	}

	if err := s.repo.SetLocked(ctx, lineupID, locked); err != nil {
		return nil, err
	}

	if lineup.EventID != nil {
		return s.repo.ListByEvent(ctx, *lineup.EventID)
	}
	return s.repo.ListTeamDefaults(ctx, lineup.TeamID)
}

// guardSlotWrite re-reads the lineup and re-resolves the caller's role,
// then runs the pure slot-mutation guard before any write.
func (s *service) guardSlotWrite(ctx context.Context, callerID, lineupID string) error {
	lineup, err := s.repo.GetByID(ctx, lineupID)
	if err != nil {
		return err
	}

	role, err := s.roles.RoleOf(ctx, lineup.TeamID, callerID)
	if err != nil {
		return err
	}
	return lineupModel.GuardSlotMutation(role, lineup)
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
