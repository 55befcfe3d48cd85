package response

import "time"

type SubmitDayResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Day     string `json:"day"`
}

// DayStatusResponse is a DTO for a day's ledger entry, mirroring entity.DayStatus
type DayStatusResponse struct {
	Day           string     `json:"day"`
	CurrentStatus string     `json:"current_status"` // "pending", "archived", "partial", "failed"
	Posts         int        `json:"posts"`
	Pages         int        `json:"pages"`
	FailureReason string     `json:"failure_reason,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
