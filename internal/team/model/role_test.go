package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("valid roles", func(t *testing.T) {
		for _, s := range []string{"admin", "coach", "player"} {
			role, err := ParseRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, string(role))
		}
	})

	t.Run("empty string is RoleNone", func(t *testing.T) {
		role, err := ParseRole("")
		require.NoError(t, err)
		assert.Equal(t, RoleNone, role)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := ParseRole("manager")
		assert.Error(t, err)
	})
}

func TestRole_CanManage(t *testing.T) {
	assert.True(t, RoleAdmin.CanManage())
	assert.True(t, RoleCoach.CanManage())
	assert.False(t, RolePlayer.CanManage())
	assert.False(t, RoleNone.CanManage())
}

func TestRole_IsMember(t *testing.T) {
	assert.True(t, RolePlayer.IsMember())
	assert.False(t, RoleNone.IsMember())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "none", RoleNone.String())
	assert.Equal(t, "coach", RoleCoach.String())
}
