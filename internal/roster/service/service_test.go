package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	rosterModel "squadhub/internal/roster/model"
	"squadhub/internal/roster/repository"
	teamModel "squadhub/internal/team/model"
	"squadhub/pkg/validate"
)

type stubRoles struct {
	role teamModel.Role
}

func (s stubRoles) RoleOf(ctx context.Context, teamID, userID string) (teamModel.Role, error) {
	return s.role, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&rosterModel.PlayerProfile{},
		&rosterModel.Position{},
		&rosterModel.PlayerPosition{},
	)
	require.NoError(t, err)

	type Team struct {
		ID    string `gorm:"primaryKey;column:id"`
		Sport string `gorm:"column:sport"`
	}
	type TeamMember struct {
		TeamID string `gorm:"primaryKey;column:team_id"`
		UserID string `gorm:"primaryKey;column:user_id"`
		Role   string `gorm:"column:role"`
		Status string `gorm:"column:status"`
	}
	type Profile struct {
		ID          string  `gorm:"primaryKey;column:id"`
		DisplayName *string `gorm:"column:display_name"`
	}
	require.NoError(t, db.Table("teams").AutoMigrate(&Team{}))
	require.NoError(t, db.Table("team_members").AutoMigrate(&TeamMember{}))
	require.NoError(t, db.Table("profiles").AutoMigrate(&Profile{}))

	return db
}

func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestUpsertPlayerProfile_ValidatesJersey(t *testing.T) {
	db := setupTestDB(t)
	svc := New(repository.New(db), stubRoles{role: teamModel.RoleCoach}, zap.NewNop().Sugar())

	_, err := svc.UpsertPlayerProfile(context.Background(), "coach-1", "team-1", "user-1", &rosterModel.UpsertPlayerProfileRequest{
		JerseyNumber: intPtr(1000),
	})
	assert.ErrorIs(t, err, validate.ErrJerseyNumberOutOfRange)

	_, err = svc.UpsertPlayerProfile(context.Background(), "coach-1", "team-1", "user-1", &rosterModel.UpsertPlayerProfileRequest{
		JerseyNumber: intPtr(-1),
	})
	assert.ErrorIs(t, err, validate.ErrJerseyNumberOutOfRange)
}

func TestUpsertPlayerProfile_MergesWithExistingRow(t *testing.T) {
	db := setupTestDB(t)
	svc := New(repository.New(db), stubRoles{role: teamModel.RoleCoach}, zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := svc.UpsertPlayerProfile(ctx, "coach-1", "team-1", "user-1", &rosterModel.UpsertPlayerProfileRequest{
		JerseyNumber: intPtr(7),
		IsActive:     boolPtr(true),
	})
	require.NoError(t, err)

	// A later write touching only the note must keep jersey and flag.
	profile, err := svc.UpsertPlayerProfile(ctx, "coach-1", "team-1", "user-1", &rosterModel.UpsertPlayerProfileRequest{
		Note: strPtr("left foot"),
	})
	require.NoError(t, err)

	require.NotNil(t, profile.JerseyNumber)
	assert.Equal(t, 7, *profile.JerseyNumber)
	require.NotNil(t, profile.IsActive)
	assert.True(t, *profile.IsActive)
	require.NotNil(t, profile.Note)
	assert.Equal(t, "left foot", *profile.Note)

	var count int64
	require.NoError(t, db.Model(&rosterModel.PlayerProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertPlayerProfile_PlayerForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := New(repository.New(db), stubRoles{role: teamModel.RolePlayer}, zap.NewNop().Sugar())

	_, err := svc.UpsertPlayerProfile(context.Background(), "player-1", "team-1", "user-1", &rosterModel.UpsertPlayerProfileRequest{})
	assert.ErrorIs(t, err, teamModel.ErrRoleForbidden)
}

func TestReplacePositions_DeleteThenInsert(t *testing.T) {
	db := setupTestDB(t)
	svc := New(repository.New(db), stubRoles{role: teamModel.RoleCoach}, zap.NewNop().Sugar())
	ctx := context.Background()

	require.NoError(t, svc.ReplacePositions(ctx, "coach-1", "team-1", "user-1", &rosterModel.ReplacePositionsRequest{
		PositionIDs: []int{1, 2, 3},
	}))

	require.NoError(t, svc.ReplacePositions(ctx, "coach-1", "team-1", "user-1", &rosterModel.ReplacePositionsRequest{
		PositionIDs: []int{5},
	}))

	var rows []rosterModel.PlayerPosition
	require.NoError(t, db.Where("team_id = ? AND user_id = ?", "team-1", "user-1").Find(&rows).Error)
	require.Len(t, rows, 1, "replace must drop the previous set")
	assert.Equal(t, 5, rows[0].PositionID)
	assert.Equal(t, 1, rows[0].Priority)
}

func TestReplacePositions_PriorityMismatch(t *testing.T) {
	db := setupTestDB(t)
	svc := New(repository.New(db), stubRoles{role: teamModel.RoleCoach}, zap.NewNop().Sugar())

	err := svc.ReplacePositions(context.Background(), "coach-1", "team-1", "user-1", &rosterModel.ReplacePositionsRequest{
		PositionIDs: []int{1, 2},
		Priorities:  []int{1},
	})
	assert.ErrorIs(t, err, rosterModel.ErrPriorityMismatch)
}

func TestListRoster_JoinsProfileAndPositions(t *testing.T) {
	db := setupTestDB(t)
	svc := New(repository.New(db), stubRoles{role: teamModel.RolePlayer}, zap.NewNop().Sugar())
	ctx := context.Background()

	require.NoError(t, db.Table("teams").Create(map[string]interface{}{
		"id": "team-1", "sport": "football",
	}).Error)
	require.NoError(t, db.Table("team_members").Create(map[string]interface{}{
		"team_id": "team-1", "user_id": "user-1", "role": "player", "status": "active",
	}).Error)
	require.NoError(t, db.Table("profiles").Create(map[string]interface{}{
		"id": "user-1", "display_name": "Alice",
	}).Error)
	require.NoError(t, db.Create(&rosterModel.Position{ID: 1, Sport: "football", Code: "GK", Name: "Goalkeeper"}).Error)

	coach := New(repository.New(db), stubRoles{role: teamModel.RoleCoach}, zap.NewNop().Sugar())
	_, err := coach.UpsertPlayerProfile(ctx, "coach-1", "team-1", "user-1", &rosterModel.UpsertPlayerProfileRequest{
		JerseyNumber: intPtr(1),
	})
	require.NoError(t, err)
	require.NoError(t, coach.ReplacePositions(ctx, "coach-1", "team-1", "user-1", &rosterModel.ReplacePositionsRequest{
		PositionIDs: []int{1},
	}))

	rows, err := svc.ListRoster(ctx, "user-1", "team-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.NotNil(t, row.DisplayName)
	assert.Equal(t, "Alice", *row.DisplayName)
	assert.Equal(t, "football", row.TeamSport)
	require.NotNil(t, row.JerseyNumber)
	assert.Equal(t, 1, *row.JerseyNumber)
	require.Len(t, row.Positions, 1)
	assert.Equal(t, "GK", row.Positions[0].Code)
}
