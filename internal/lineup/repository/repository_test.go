package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	lineupModel "squadhub/internal/lineup/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&lineupModel.Template{},
		&lineupModel.TemplateSlot{},
		&lineupModel.Lineup{},
		&lineupModel.Slot{},
	)
	require.NoError(t, err)

	type Profile struct {
		ID          string  `gorm:"primaryKey;column:id"`
		DisplayName *string `gorm:"column:display_name"`
	}
	type Position struct {
		ID   int    `gorm:"primaryKey;column:id"`
		Code string `gorm:"column:code"`
		Name string `gorm:"column:name"`
	}
	type TeamPlayerProfile struct {
		TeamID                string `gorm:"primaryKey;column:team_id"`
		UserID                string `gorm:"primaryKey;column:user_id"`
		PreferredJerseyNumber *int   `gorm:"column:preferred_jersey_number"`
	}
	require.NoError(t, db.Table("profiles").AutoMigrate(&Profile{}))
	require.NoError(t, db.Table("positions").AutoMigrate(&Position{}))
	require.NoError(t, db.Table("team_player_profiles").AutoMigrate(&TeamPlayerProfile{}))

	return db
}

func seedTemplate(t *testing.T, db *gorm.DB) {
	require.NoError(t, db.Create(&lineupModel.Template{ID: "template-1", Sport: "football", Name: "4-4-2"}).Error)
	slots := []lineupModel.TemplateSlot{
		{TemplateID: "template-1", SlotKey: "gk", Label: "Goalkeeper", SlotOrder: 1},
		{TemplateID: "template-1", SlotKey: "lb", Label: "Left back", SlotOrder: 2},
		{TemplateID: "template-1", SlotKey: "rb", Label: "Right back", SlotOrder: 3},
	}
	for i := range slots {
		require.NoError(t, db.Create(&slots[i]).Error)
	}
}

func TestCreateFromTemplate_SeedsUnassignedSlots(t *testing.T) {
	db := setupTestDB(t)
	seedTemplate(t, db)
	repo := New(db)
	ctx := context.Background()

	lineup := &lineupModel.Lineup{TeamID: "team-1", CreatedBy: "user-1"}
	require.NoError(t, repo.CreateFromTemplate(ctx, lineup, "template-1"))

	var slots []lineupModel.Slot
	require.NoError(t, db.Where("lineup_id = ?", lineup.ID).Order("slot_order").Find(&slots).Error)
	require.Len(t, slots, 3)
	for _, slot := range slots {
		assert.Nil(t, slot.UserID, "seeded slot %s must be unassigned", slot.SlotKey)
		assert.Equal(t, lineupModel.GroupStarter, slot.GroupKey)
	}
	assert.Equal(t, "Goalkeeper", slots[0].Label)
	require.NotNil(t, lineup.TemplateID)
	assert.Equal(t, "template-1", *lineup.TemplateID)
}

func TestSetSlot_LastWriteWins(t *testing.T) {
	db := setupTestDB(t)
	seedTemplate(t, db)
	repo := New(db)
	ctx := context.Background()

	lineup := &lineupModel.Lineup{TeamID: "team-1", CreatedBy: "user-1"}
	require.NoError(t, repo.CreateFromTemplate(ctx, lineup, "template-1"))

	require.NoError(t, repo.SetSlot(ctx, lineup.ID, "gk", "user-a", nil))
	require.NoError(t, repo.SetSlot(ctx, lineup.ID, "gk", "user-b", nil))

	var slot lineupModel.Slot
	require.NoError(t, db.Where("lineup_id = ? AND slot_key = ?", lineup.ID, "gk").First(&slot).Error)
	require.NotNil(t, slot.UserID)
	assert.Equal(t, "user-b", *slot.UserID, "later write must replace the earlier one")
}

func TestSetSlot_UnknownSlotKey(t *testing.T) {
	db := setupTestDB(t)
	seedTemplate(t, db)
	repo := New(db)
	ctx := context.Background()

	lineup := &lineupModel.Lineup{TeamID: "team-1", CreatedBy: "user-1"}
	require.NoError(t, repo.CreateFromTemplate(ctx, lineup, "template-1"))

	err := repo.SetSlot(ctx, lineup.ID, "st", "user-a", nil)
	assert.ErrorIs(t, err, lineupModel.ErrSlotNotFound)
}

func TestClearSlot_Unassigns(t *testing.T) {
	db := setupTestDB(t)
	seedTemplate(t, db)
	repo := New(db)
	ctx := context.Background()

	lineup := &lineupModel.Lineup{TeamID: "team-1", CreatedBy: "user-1"}
	require.NoError(t, repo.CreateFromTemplate(ctx, lineup, "template-1"))
	require.NoError(t, repo.SetSlot(ctx, lineup.ID, "gk", "user-a", nil))

	require.NoError(t, repo.ClearSlot(ctx, lineup.ID, "gk"))

	var slot lineupModel.Slot
	require.NoError(t, db.Where("lineup_id = ? AND slot_key = ?", lineup.ID, "gk").First(&slot).Error)
	assert.Nil(t, slot.UserID)
}

func TestDuplicate_CopiesAssignments(t *testing.T) {
	db := setupTestDB(t)
	seedTemplate(t, db)
	repo := New(db)
	ctx := context.Background()

	source := &lineupModel.Lineup{TeamID: "team-1", CreatedBy: "user-1"}
	require.NoError(t, repo.CreateFromTemplate(ctx, source, "template-1"))
	require.NoError(t, repo.SetSlot(ctx, source.ID, "gk", "user-a", nil))
	require.NoError(t, repo.SetGroup(ctx, source.ID, "lb", lineupModel.GroupBench))

	eventID := "event-1"
	target := &lineupModel.Lineup{TeamID: "team-1", EventID: &eventID, CreatedBy: "user-1"}
	require.NoError(t, repo.Duplicate(ctx, source.ID, target))

	var slots []lineupModel.Slot
	require.NoError(t, db.Where("lineup_id = ?", target.ID).Order("slot_order").Find(&slots).Error)
	require.Len(t, slots, 3)
	require.NotNil(t, slots[0].UserID)
	assert.Equal(t, "user-a", *slots[0].UserID)
	assert.Equal(t, lineupModel.GroupBench, slots[1].GroupKey)
}

func TestListTeamDefaults_ExcludesEventLineups(t *testing.T) {
	db := setupTestDB(t)
	seedTemplate(t, db)
	repo := New(db)
	ctx := context.Background()

	defaultLineup := &lineupModel.Lineup{TeamID: "team-1", CreatedBy: "user-1"}
	require.NoError(t, repo.CreateFromTemplate(ctx, defaultLineup, "template-1"))

	eventID := "event-1"
	eventLineup := &lineupModel.Lineup{TeamID: "team-1", EventID: &eventID, CreatedBy: "user-1"}
	require.NoError(t, repo.CreateFromTemplate(ctx, eventLineup, "template-1"))

	defaults, err := repo.ListTeamDefaults(ctx, "team-1")
	require.NoError(t, err)
	require.Len(t, defaults, 1)
	assert.Equal(t, defaultLineup.ID, defaults[0].ID)

	all, err := repo.ListByTeam(ctx, "team-1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListSlotsLabeled_JoinsProfileAndJersey(t *testing.T) {
	db := setupTestDB(t)
	seedTemplate(t, db)
	repo := New(db)
	ctx := context.Background()

	name := "Alice"
	jersey := 10
	require.NoError(t, db.Table("profiles").Create(map[string]interface{}{
		"id": "user-a", "display_name": name,
	}).Error)
	require.NoError(t, db.Table("team_player_profiles").Create(map[string]interface{}{
		"team_id": "team-1", "user_id": "user-a", "preferred_jersey_number": jersey,
	}).Error)

	lineup := &lineupModel.Lineup{TeamID: "team-1", CreatedBy: "user-1"}
	require.NoError(t, repo.CreateFromTemplate(ctx, lineup, "template-1"))
	require.NoError(t, repo.SetSlot(ctx, lineup.ID, "gk", "user-a", nil))

	slots, err := repo.ListSlotsLabeled(ctx, lineup.ID)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	gk := slots[0]
	assert.Equal(t, "gk", gk.SlotKey)
	require.NotNil(t, gk.DisplayName)
	assert.Equal(t, "Alice", *gk.DisplayName)
	require.NotNil(t, gk.JerseyNumber)
	assert.Equal(t, 10, *gk.JerseyNumber)

	// Unassigned slots keep nil display fields.
	assert.Nil(t, slots[1].DisplayName)
}

func TestSetLocked_Roundtrip(t *testing.T) {
	db := setupTestDB(t)
	seedTemplate(t, db)
	repo := New(db)
	ctx := context.Background()

	lineup := &lineupModel.Lineup{TeamID: "team-1", CreatedBy: "user-1"}
	require.NoError(t, repo.CreateFromTemplate(ctx, lineup, "template-1"))

	require.NoError(t, repo.SetLocked(ctx, lineup.ID, true))
	got, err := repo.GetByID(ctx, lineup.ID)
	require.NoError(t, err)
	assert.True(t, got.Locked())

	require.NoError(t, repo.SetLocked(ctx, lineup.ID, false))
	got, err = repo.GetByID(ctx, lineup.ID)
	require.NoError(t, err)
	assert.False(t, got.Locked())
}
