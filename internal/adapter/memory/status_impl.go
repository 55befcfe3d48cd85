package memory

import (
	"context"
	"sync"

	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
)

// StatusRepository is an in-process day ledger, used when Redis is not configured.
type StatusRepository struct {
	mu       sync.RWMutex
	statuses map[string]entity.DayStatus
}

var _ repository.StatusRepository = (*StatusRepository)(nil)

func NewStatusRepository() *StatusRepository {
	return &StatusRepository{statuses: make(map[string]entity.DayStatus)}
}

func (r *StatusRepository) SetStatus(_ context.Context, status *entity.DayStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[status.Day] = *status
	return nil
}

func (r *StatusRepository) GetStatus(_ context.Context, day string) (*entity.DayStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	status, ok := r.statuses[day]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &status, nil
}

func (r *StatusRepository) RemoveStatus(_ context.Context, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.statuses, day)
	return nil
}
