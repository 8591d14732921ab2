package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	eventModel "squadhub/internal/event/model"
	rsvpModel "squadhub/internal/rsvp/model"
	"squadhub/internal/rsvp/repository"
	teamModel "squadhub/internal/team/model"
)

type stubEvents struct {
	event *eventModel.Event
	err   error
}

func (s stubEvents) GetByID(ctx context.Context, eventID string) (*eventModel.Event, error) {
	return s.event, s.err
}

type stubRoles struct {
	role teamModel.Role
}

func (s stubRoles) RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error) {
	return s.role, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	type Profile struct {
		ID          string  `gorm:"primaryKey;column:id"`
		DisplayName *string `gorm:"column:display_name"`
	}
	require.NoError(t, db.Table("profiles").AutoMigrate(&Profile{}))
	require.NoError(t, db.AutoMigrate(&rsvpModel.RSVP{}))

	return db
}

func newTestService(db *gorm.DB, role teamModel.Role) Service {
	events := stubEvents{event: &eventModel.Event{ID: "event-1", TeamID: "team-1"}}
	return New(repository.New(db), events, stubRoles{role: role}, zap.NewNop().Sugar())
}

func TestUpsertMine_SecondWriteReplacesFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db, teamModel.RolePlayer)
	ctx := context.Background()

	first, err := svc.UpsertMine(ctx, "user-1", "event-1", &rsvpModel.UpsertRSVPRequest{Status: "yes"})
	require.NoError(t, err)
	assert.Equal(t, rsvpModel.StatusYes, first.Status)

	second, err := svc.UpsertMine(ctx, "user-1", "event-1", &rsvpModel.UpsertRSVPRequest{Status: "no"})
	require.NoError(t, err)
	assert.Equal(t, rsvpModel.StatusNo, second.Status)

	var count int64
	require.NoError(t, db.Model(&rsvpModel.RSVP{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "upsert must keep one row per (event, user)")
}

func TestUpsertMine_RejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db, teamModel.RolePlayer)

	_, err := svc.UpsertMine(context.Background(), "user-1", "event-1", &rsvpModel.UpsertRSVPRequest{Status: "perhaps"})
	assert.ErrorIs(t, err, rsvpModel.ErrInvalidStatus)
}

func TestGetMine_NilWhenUnanswered(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db, teamModel.RolePlayer)

	rsvp, err := svc.GetMine(context.Background(), "user-1", "event-1")
	require.NoError(t, err)
	assert.Nil(t, rsvp)
}

func TestSummary_RecomputedAfterStatusChange(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db, teamModel.RolePlayer)
	ctx := context.Background()

	_, err := svc.UpsertMine(ctx, "user-1", "event-1", &rsvpModel.UpsertRSVPRequest{Status: "yes"})
	require.NoError(t, err)
	_, err = svc.UpsertMine(ctx, "user-2", "event-1", &rsvpModel.UpsertRSVPRequest{Status: "yes"})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "user-1", "event-1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.YesCount)
	assert.Equal(t, 0, summary.NoCount)

	// A yes -> no flip must move the count between buckets, not just
	// bump the new one.
	_, err = svc.UpsertMine(ctx, "user-2", "event-1", &rsvpModel.UpsertRSVPRequest{Status: "no"})
	require.NoError(t, err)

	summary, err = svc.Summary(ctx, "user-1", "event-1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.YesCount)
	assert.Equal(t, 1, summary.NoCount)
	assert.Equal(t, 0, summary.MaybeCount)
}

func TestSummary_ZeroCountsWhenNoAnswers(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db, teamModel.RolePlayer)

	summary, err := svc.Summary(context.Background(), "user-1", "event-1")
	require.NoError(t, err)
	assert.Equal(t, "event-1", summary.EventID)
	assert.Zero(t, summary.YesCount)
	assert.Zero(t, summary.NoCount)
	assert.Zero(t, summary.MaybeCount)
}

func TestListWithNames_PlayerForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db, teamModel.RolePlayer)

	_, err := svc.ListWithNames(context.Background(), "user-1", "event-1")
	assert.ErrorIs(t, err, teamModel.ErrRoleForbidden)
}

func TestListWithNames_JoinsDisplayNames(t *testing.T) {
	db := setupTestDB(t)
	coach := newTestService(db, teamModel.RoleCoach)
	ctx := context.Background()

	name := "Alice"
	require.NoError(t, db.Table("profiles").Create(map[string]interface{}{
		"id":           "user-1",
		"display_name": name,
	}).Error)

	_, err := coach.UpsertMine(ctx, "user-1", "event-1", &rsvpModel.UpsertRSVPRequest{Status: "maybe"})
	require.NoError(t, err)

	rows, err := coach.ListWithNames(ctx, "user-1", "event-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].DisplayName)
	assert.Equal(t, "Alice", *rows[0].DisplayName)
	assert.Equal(t, rsvpModel.StatusMaybe, rows[0].Status)
}
