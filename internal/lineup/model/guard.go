package model

import (
	teamModel "squadhub/internal/team/model"
)

// GuardSlotMutation decides whether a slot write (assign, clear, group
// move) may proceed. Pure function of the caller's role and the lineup's
// lock state, checked before any write is issued. The role check runs
// first so a demoted coach sees FORBIDDEN rather than a lock error.
func GuardSlotMutation(role teamModel.Role, lineup *Lineup) error {
	if !role.CanManage() {
		return teamModel.ErrRoleForbidden
	}
	if lineup.Locked() {
		return ErrLineupLocked
	}
	return nil
}

// GuardLockToggle decides whether the lock state may be flipped. The
// toggle is exempt from the lock check, it is exactly the operation that
// changes that state.
func GuardLockToggle(role teamModel.Role) error {
	if !role.CanManage() {
		return teamModel.ErrRoleForbidden
	}
	return nil
}
