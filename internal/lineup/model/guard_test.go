package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	teamModel "squadhub/internal/team/model"
)

func lockedLineup() *Lineup {
	now := time.Now()
	return &Lineup{ID: "lineup-1", TeamID: "team-1", LockedAt: &now}
}

func unlockedLineup() *Lineup {
	return &Lineup{ID: "lineup-1", TeamID: "team-1"}
}

func TestGuardSlotMutation(t *testing.T) {
	tests := []struct {
		name    string
		role    teamModel.Role
		lineup  *Lineup
		wantErr error
	}{
		{"admin on unlocked", teamModel.RoleAdmin, unlockedLineup(), nil},
		{"coach on unlocked", teamModel.RoleCoach, unlockedLineup(), nil},
		{"player on unlocked", teamModel.RolePlayer, unlockedLineup(), teamModel.ErrRoleForbidden},
		{"no membership", teamModel.RoleNone, unlockedLineup(), teamModel.ErrRoleForbidden},
		{"coach on locked", teamModel.RoleCoach, lockedLineup(), ErrLineupLocked},
		{"admin on locked", teamModel.RoleAdmin, lockedLineup(), ErrLineupLocked},
		// Role is checked before the lock so a player on a locked
		// lineup still gets the role error.
		{"player on locked", teamModel.RolePlayer, lockedLineup(), teamModel.ErrRoleForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GuardSlotMutation(tt.role, tt.lineup)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGuardLockToggle_IgnoresLockState(t *testing.T) {
	// Locking and unlocking only require the role; the lock itself must
	// not block its own toggle.
	assert.NoError(t, GuardLockToggle(teamModel.RoleCoach))
	assert.NoError(t, GuardLockToggle(teamModel.RoleAdmin))
	assert.ErrorIs(t, GuardLockToggle(teamModel.RolePlayer), teamModel.ErrRoleForbidden)
	assert.ErrorIs(t, GuardLockToggle(teamModel.RoleNone), teamModel.ErrRoleForbidden)
}

func TestLocked(t *testing.T) {
	assert.False(t, unlockedLineup().Locked())
	assert.True(t, lockedLineup().Locked())
}
