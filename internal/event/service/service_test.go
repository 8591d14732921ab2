package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	eventModel "squadhub/internal/event/model"
	teamModel "squadhub/internal/team/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, event *eventModel.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, eventID string) (*eventModel.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eventModel.Event), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, event *eventModel.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

func (m *mockRepository) ListByTeam(ctx context.Context, teamID string) ([]eventModel.Event, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventModel.Event), args.Error(1)
}

func (m *mockRepository) SetKit(ctx context.Context, eventID, kitID string) error {
	args := m.Called(ctx, eventID, kitID)
	return args.Error(0)
}

func (m *mockRepository) ListRoster(ctx context.Context, eventID string) ([]eventModel.RosterRow, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventModel.RosterRow), args.Error(1)
}

type stubRoles struct {
	role teamModel.Role
}

func (s stubRoles) RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error) {
	return s.role, nil
}

func strPtr(s string) *string { return &s }

func TestCreateEvent_RejectsUnknownType(t *testing.T) {
	repo := new(mockRepository)
	svc := New(repo, stubRoles{role: teamModel.RoleCoach}, zap.NewNop().Sugar())

	_, err := svc.CreateEvent(context.Background(), "user-1", "team-1", &eventModel.CreateEventRequest{
		Type:     "tournament",
		StartsAt: time.Now(),
	})

	assert.ErrorIs(t, err, eventModel.ErrInvalidEventType)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateEvent_PlayerForbiddenBeforeWrite(t *testing.T) {
	repo := new(mockRepository)
	svc := New(repo, stubRoles{role: teamModel.RolePlayer}, zap.NewNop().Sugar())

	_, err := svc.CreateEvent(context.Background(), "user-1", "team-1", &eventModel.CreateEventRequest{
		Type:     "training",
		StartsAt: time.Now(),
	})

	assert.ErrorIs(t, err, teamModel.ErrRoleForbidden)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateEvent_Coach(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)
	svc := New(repo, stubRoles{role: teamModel.RoleCoach}, zap.NewNop().Sugar())

	startsAt := time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC)
	event, err := svc.CreateEvent(context.Background(), "user-1", "team-1", &eventModel.CreateEventRequest{
		Type:     "match",
		StartsAt: startsAt,
		Title:    strPtr("Derby"),
	})

	require.NoError(t, err)
	assert.Equal(t, eventModel.EventTypeMatch, event.Type)
	assert.Equal(t, "team-1", event.TeamID)
	assert.Equal(t, "user-1", event.CreatedBy)
	assert.Equal(t, startsAt, event.StartsAt)
	repo.AssertExpectations(t)
}

func TestUpdateEvent_PatchesOnlyProvidedFields(t *testing.T) {
	existing := &eventModel.Event{
		ID:       "event-1",
		TeamID:   "team-1",
		Type:     eventModel.EventTypeTraining,
		Title:    strPtr("Tuesday session"),
		StartsAt: time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
		Location: strPtr("Main pitch"),
	}

	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, "event-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)
	svc := New(repo, stubRoles{role: teamModel.RoleAdmin}, zap.NewNop().Sugar())

	newType := "match"
	updated, err := svc.UpdateEvent(context.Background(), "user-1", "event-1", &eventModel.UpdateEventRequest{
		Type: &newType,
	})

	require.NoError(t, err)
	assert.Equal(t, eventModel.EventTypeMatch, updated.Type)
	// Omitted fields keep their value.
	assert.Equal(t, "Tuesday session", *updated.Title)
	assert.Equal(t, "Main pitch", *updated.Location)
	repo.AssertExpectations(t)
}

func TestGetEvent_NotFound(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, eventModel.ErrEventNotFound)
	svc := New(repo, stubRoles{role: teamModel.RolePlayer}, zap.NewNop().Sugar())

	_, err := svc.GetEvent(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, eventModel.ErrEventNotFound)
}

func TestListTeamEvents_NonMemberForbidden(t *testing.T) {
	repo := new(mockRepository)
	svc := New(repo, stubRoles{role: teamModel.RoleNone}, zap.NewNop().Sugar())

	_, err := svc.ListTeamEvents(context.Background(), "user-1", "team-1")
	assert.ErrorIs(t, err, teamModel.ErrNotMember)
	repo.AssertNotCalled(t, "ListByTeam")
}

func TestEventRoster_AppliesEligibilityFilter(t *testing.T) {
	event := &eventModel.Event{ID: "event-1", TeamID: "team-1"}
	rows := []eventModel.RosterRow{
		{UserID: "u1", IsActive: true, RSVPStatus: strPtr("yes")},
		{UserID: "u2", IsActive: true, RSVPStatus: strPtr("no")},
		{UserID: "u3", IsActive: false, RSVPStatus: strPtr("yes")},
	}

	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, "event-1").Return(event, nil)
	repo.On("ListRoster", mock.Anything, "event-1").Return(rows, nil)
	svc := New(repo, stubRoles{role: teamModel.RolePlayer}, zap.NewNop().Sugar())

	hidden, err := svc.EventRoster(context.Background(), "user-1", "event-1", false)
	require.NoError(t, err)
	require.Len(t, hidden, 1)
	assert.Equal(t, "u1", hidden[0].UserID)

	shown, err := svc.EventRoster(context.Background(), "user-1", "event-1", true)
	require.NoError(t, err)
	require.Len(t, shown, 2)
}
