package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func fixtureRows() []RosterRow {
	return []RosterRow{
		{UserID: "u1", DisplayName: strPtr("Alice"), IsActive: true, RSVPStatus: strPtr("yes")},
		{UserID: "u2", DisplayName: strPtr("Bob"), IsActive: true, RSVPStatus: strPtr("no")},
		{UserID: "u3", DisplayName: strPtr("Carol"), IsActive: false, RSVPStatus: strPtr("yes")},
		{UserID: "u4", DisplayName: strPtr("Dan"), IsActive: true, RSVPStatus: nil},
		{UserID: "u5", DisplayName: strPtr("Eve"), IsActive: false, RSVPStatus: strPtr("no")},
		{UserID: "u6", DisplayName: strPtr("Frank"), IsActive: true, RSVPStatus: strPtr("maybe")},
	}
}

func userIDs(rows []RosterRow) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	return ids
}

func TestFilterEligible_HidesDeclinedByDefault(t *testing.T) {
	got := FilterEligible(fixtureRows(), false)
	assert.Equal(t, []string{"u1", "u4", "u6"}, userIDs(got))
}

func TestFilterEligible_ShowDeclinedKeepsNoResponses(t *testing.T) {
	got := FilterEligible(fixtureRows(), true)
	assert.Equal(t, []string{"u1", "u2", "u4", "u6"}, userIDs(got))
}

func TestFilterEligible_InactiveNeverAppears(t *testing.T) {
	for _, showDeclined := range []bool{false, true} {
		for _, row := range FilterEligible(fixtureRows(), showDeclined) {
			assert.True(t, row.IsActive, "inactive row %s leaked with showDeclined=%v", row.UserID, showDeclined)
		}
	}
}

func TestFilterEligible_Idempotent(t *testing.T) {
	for _, showDeclined := range []bool{false, true} {
		once := FilterEligible(fixtureRows(), showDeclined)
		twice := FilterEligible(once, showDeclined)
		assert.Equal(t, once, twice)
	}
}

func TestFilterEligible_PreservesOrderAndInput(t *testing.T) {
	rows := fixtureRows()
	got := FilterEligible(rows, false)

	// Input order preserved, no re-sort.
	assert.Equal(t, []string{"u1", "u4", "u6"}, userIDs(got))
	// Input untouched.
	assert.Equal(t, fixtureRows(), rows)
}

func TestFilterEligible_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterEligible(nil, false))
	assert.Empty(t, FilterEligible([]RosterRow{}, true))
}
