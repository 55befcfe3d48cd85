package entity

import "time"

const (
	DayStatusPending  = "pending"
	DayStatusArchived = "archived"
	DayStatusPartial  = "partial"
	DayStatusFailed   = "failed"
	DayStatusNotFound = "not_found"
)

// DayStatus is the ledger entry for one crawled day.
type DayStatus struct {
	Day           string
	CurrentStatus string // "pending", "archived", "partial", "failed", "not_found"
	Posts         int
	Pages         int
	FailureReason string
	UpdatedAt     *time.Time
}

// DayResult is what one day's pagination crawl produced.
// Err is set when the loop ended in Failed; Posts still holds
// everything accumulated before the failure.
type DayResult struct {
	Day     string
	Posts   []Post
	Pages   int
	HasMore bool
	Err     error
}

// Partial reports whether the crawl failed after collecting some posts.
func (r DayResult) Partial() bool {
	return r.Err != nil && len(r.Posts) > 0
}

// DayCount is the number of archived posts of one day.
type DayCount struct {
	Day   string
	Posts int
}
