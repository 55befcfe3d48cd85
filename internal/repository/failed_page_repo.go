package repository

import (
	"context"

	"github.com/user/frontpage-archiver/internal/entity"
)

// FailedPageRepository keeps track of pages whose fetch failed.
type FailedPageRepository interface {
	// SaveOrUpdate creates or updates a record for a failed page.
	SaveOrUpdate(ctx context.Context, failed *entity.FailedPage) error
	// FindByDay returns the failed pages recorded for day.
	FindByDay(ctx context.Context, day string) ([]*entity.FailedPage, error)
	// DeleteDay removes the records of day, typically after a complete crawl.
	DeleteDay(ctx context.Context, day string) error
}
