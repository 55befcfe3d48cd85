package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/user/frontpage-archiver/internal/repository"
)

const crawlQueueKey = "frontpage:queue"

// QueueRepoImpl provides a concrete implementation for the QueueRepository interface using Redis Lists.
type QueueRepoImpl struct {
	client *redis.Client
}

// NewQueueRepo creates a new instance of QueueRepoImpl.
func NewQueueRepo(client *redis.Client) *QueueRepoImpl {
	return &QueueRepoImpl{client: client}
}

var _ repository.QueueRepository = (*QueueRepoImpl)(nil)

// Push adds a day to the left side of the list.
func (r *QueueRepoImpl) Push(ctx context.Context, day string) error {
	return r.client.LPush(ctx, crawlQueueKey, day).Err()
}

// Pop removes and returns a day from the right side of the list, so days
// come out in the order they were pushed.
func (r *QueueRepoImpl) Pop(ctx context.Context) (string, error) {
	day, err := r.client.RPop(ctx, crawlQueueKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrQueueEmpty
	}
	return day, err
}

// Size returns the current number of items in the queue.
func (r *QueueRepoImpl) Size(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, crawlQueueKey).Result()
}
