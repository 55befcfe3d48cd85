package entity

import "time"

// FailedPage mirrors the `failed_pages` PostgreSQL table schema.
type FailedPage struct {
	ID                   int64
	Day                  string
	Page                 int
	FailureReason        string
	HTTPStatusCode       int
	LastAttemptTimestamp time.Time
	AttemptCount         int
}
