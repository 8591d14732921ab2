package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRedeemable(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		invite Invite
		want   bool
	}{
		{"fresh unlimited", Invite{MaxUses: 0, Uses: 5}, true},
		{"under cap", Invite{MaxUses: 3, Uses: 2}, true},
		{"at cap", Invite{MaxUses: 3, Uses: 3}, false},
		{"over cap", Invite{MaxUses: 3, Uses: 4}, false},
		{"disabled", Invite{Disabled: true}, false},
		{"expired", Invite{ExpiresAt: &past}, false},
		{"not yet expired", Invite{ExpiresAt: &future}, true},
		{"expiring exactly now", Invite{ExpiresAt: &now}, true},
		{"disabled and under cap", Invite{Disabled: true, MaxUses: 10, Uses: 1}, false},
		{"expired and unlimited", Invite{ExpiresAt: &past, MaxUses: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.invite.Redeemable(now))
		})
	}
}
