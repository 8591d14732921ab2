package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	profileModel "squadhub/internal/profile/model"
	"squadhub/internal/profile/repository"
	"squadhub/pkg/validate"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&profileModel.Profile{}))
	return db
}

func TestService_UpdateDisplayName(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects short names before any write", func(t *testing.T) {
		db := setupTestDB(t)
		svc := New(repository.New(db), zap.NewNop().Sugar())

		_, err := svc.UpdateDisplayName(ctx, "u1", " a ")
		assert.ErrorIs(t, err, validate.ErrDisplayNameTooShort)

		var count int64
		db.Model(&profileModel.Profile{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("creates profile on first write", func(t *testing.T) {
		db := setupTestDB(t)
		svc := New(repository.New(db), zap.NewNop().Sugar())

		profile, err := svc.UpdateDisplayName(ctx, "u1", "  Alice  ")
		require.NoError(t, err)
		require.NotNil(t, profile.DisplayName)
		assert.Equal(t, "Alice", *profile.DisplayName)
	})

	t.Run("upserts on second write", func(t *testing.T) {
		db := setupTestDB(t)
		svc := New(repository.New(db), zap.NewNop().Sugar())

		_, err := svc.UpdateDisplayName(ctx, "u1", "Alice")
		require.NoError(t, err)
		profile, err := svc.UpdateDisplayName(ctx, "u1", "Alice B")
		require.NoError(t, err)
		assert.Equal(t, "Alice B", *profile.DisplayName)

		var count int64
		db.Model(&profileModel.Profile{}).Count(&count)
		assert.EqualValues(t, 1, count)
	})
}

func TestService_GetMine(t *testing.T) {
	ctx := context.Background()

	t.Run("missing profile", func(t *testing.T) {
		db := setupTestDB(t)
		svc := New(repository.New(db), zap.NewNop().Sugar())

		_, err := svc.GetMine(ctx, "nobody")
		assert.ErrorIs(t, err, profileModel.ErrProfileNotFound)
	})
}
