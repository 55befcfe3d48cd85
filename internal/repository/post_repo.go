package repository

import (
	"context"

	"github.com/user/frontpage-archiver/internal/entity"
)

// PostRepository mirrors day archives into a queryable store.
type PostRepository interface {
	// ReplaceDay swaps every stored post of day for posts, preserving order.
	ReplaceDay(ctx context.Context, day string, posts []entity.Post) error
	// FindByDay returns the stored posts of day in rank order.
	FindByDay(ctx context.Context, day string) ([]entity.Post, error)
}
