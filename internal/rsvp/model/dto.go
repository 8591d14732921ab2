package model

// UpsertRSVPRequest represents the request to set the caller's answer.
type UpsertRSVPRequest struct {
	Status string  `json:"status" binding:"required"`
	Note   *string `json:"note"`
}

// CoachRowsResponse represents the coach-facing listing of answers.
type CoachRowsResponse struct {
	RSVPs []CoachRow `json:"rsvps"`
}
