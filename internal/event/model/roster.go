package model

// RSVPStatusNo is the declined response value used by the eligibility
// filter below. The full status set lives in the rsvp module.
const RSVPStatusNo = "no"

// RosterRow is one member of the event roster: active membership joined
// with profile, player profile and the member's RSVP for the event.
type RosterRow struct {
	EventID               string  `gorm:"column:event_id"                json:"event_id"`
	TeamID                string  `gorm:"column:team_id"                 json:"team_id"`
	UserID                string  `gorm:"column:user_id"                 json:"user_id"`
	DisplayName           *string `gorm:"column:display_name"            json:"display_name"`
	IsActive              bool    `gorm:"column:is_active"               json:"is_active"`
	PreferredJerseyNumber *int    `gorm:"column:preferred_jersey_number" json:"preferred_jersey_number"`
	RSVPStatus            *string `gorm:"column:rsvp_status"             json:"rsvp_status"`
}

// FilterEligible returns the roster rows eligible for lineup selection.
// Inactive members are always dropped. Members who declined are dropped
// unless showDeclined is set. Input order is preserved and the input
// slice is never mutated.
func FilterEligible(rows []RosterRow, showDeclined bool) []RosterRow {
	out := make([]RosterRow, 0, len(rows))
	for _, row := range rows {
		if !row.IsActive {
			continue
		}
		if !showDeclined && row.RSVPStatus != nil && *row.RSVPStatus == RSVPStatusNo {
			continue
		}
		out = append(out, row)
	}
	return out
}
