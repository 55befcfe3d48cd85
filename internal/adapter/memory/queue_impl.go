package memory

import (
	"context"
	"sync"

	"github.com/user/frontpage-archiver/internal/repository"
)

// QueueRepository is an in-process FIFO of days.
type QueueRepository struct {
	mu   sync.Mutex
	days []string
}

var _ repository.QueueRepository = (*QueueRepository)(nil)

func NewQueueRepository() *QueueRepository {
	return &QueueRepository{}
}

func (q *QueueRepository) Push(_ context.Context, day string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.days = append(q.days, day)
	return nil
}

func (q *QueueRepository) Pop(_ context.Context) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.days) == 0 {
		return "", repository.ErrQueueEmpty
	}
	day := q.days[0]
	q.days = q.days[1:]
	return day, nil
}

func (q *QueueRepository) Size(_ context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.days)), nil
}
