package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
)

const dayStatusPrefix = "frontpage:day:"

// StatusRepoImpl provides a concrete implementation for the StatusRepository
// interface, one Redis hash per day.
type StatusRepoImpl struct {
	client *redis.Client
}

// NewStatusRepo creates a new instance of StatusRepoImpl.
func NewStatusRepo(client *redis.Client) *StatusRepoImpl {
	return &StatusRepoImpl{client: client}
}

var _ repository.StatusRepository = (*StatusRepoImpl)(nil)

func (r *StatusRepoImpl) generateKey(day string) string {
	return fmt.Sprintf("%s%s", dayStatusPrefix, day)
}

// SetStatus replaces the hash of status.Day in a single transaction.
func (r *StatusRepoImpl) SetStatus(ctx context.Context, status *entity.DayStatus) error {
	key := r.generateKey(status.Day)
	fields := map[string]any{
		"status":         status.CurrentStatus,
		"posts":          status.Posts,
		"pages":          status.Pages,
		"failure_reason": status.FailureReason,
		"updated_at":     "",
	}
	if status.UpdatedAt != nil {
		fields["updated_at"] = status.UpdatedAt.UTC().Format(time.RFC3339)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		return nil
	})
	return err
}

func (r *StatusRepoImpl) GetStatus(ctx context.Context, day string) (*entity.DayStatus, error) {
	// HGETALL returns an empty map for a missing key.
	values, err := r.client.HGetAll(ctx, r.generateKey(day)).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, repository.ErrNotFound
	}

	status := &entity.DayStatus{
		Day:           day,
		CurrentStatus: values["status"],
		FailureReason: values["failure_reason"],
	}
	status.Posts, _ = strconv.Atoi(values["posts"])
	status.Pages, _ = strconv.Atoi(values["pages"])
	if ts, err := time.Parse(time.RFC3339, values["updated_at"]); err == nil {
		status.UpdatedAt = &ts
	}
	return status, nil
}

// RemoveStatus removes the hash of a day, used for forced recrawls.
func (r *StatusRepoImpl) RemoveStatus(ctx context.Context, day string) error {
	return r.client.Del(ctx, r.generateKey(day)).Err()
}
