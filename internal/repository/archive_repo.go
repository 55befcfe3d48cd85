package repository

import (
	"context"
	"errors"

	"github.com/user/frontpage-archiver/internal/entity"
)

var (
	ErrArchiveFailed = errors.New("failed to write day archive")
	ErrNotFound      = errors.New("not found")
	ErrQueueEmpty    = errors.New("queue is empty")
)

// ArchiveRepository persists one day's posts as a unit.
type ArchiveRepository interface {
	// Save replaces the archive for day with posts and returns how many were written.
	Save(ctx context.Context, day string, posts []entity.Post) (int, error)
	// Load returns a previously saved archive, or ErrNotFound.
	Load(ctx context.Context, day string) ([]entity.Post, error)
	// Days lists archived days in ascending order.
	Days(ctx context.Context) ([]string, error)
}
