package dto

// TrackViewRequest is the optional body of a view event. Out-of-range values
// are clamped, not rejected.
type TrackViewRequest struct {
	ScrollPosition int `json:"scroll_position"`
	TimeSpent      int `json:"time_spent"`
}

type SnoozeRequest struct {
	// Go duration string, e.g. "3h" or "72h".
	Duration string `json:"duration" binding:"required,snooze_duration"`
}
