package repository

import (
	"context"

	"github.com/user/frontpage-archiver/internal/entity"
)

// StatusRepository records the outcome of each crawled day.
type StatusRepository interface {
	// SetStatus stores or replaces the ledger entry for status.Day.
	SetStatus(ctx context.Context, status *entity.DayStatus) error
	// GetStatus returns the entry for day, or ErrNotFound.
	GetStatus(ctx context.Context, day string) (*entity.DayStatus, error)
	// RemoveStatus forgets a day, used for forced recrawls.
	RemoveStatus(ctx context.Context, day string) error
}
