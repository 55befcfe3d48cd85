package commands

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/user/frontpage-archiver/internal/entity"
)

// blockingDayManager holds every ProcessNext call until its context ends.
type blockingDayManager struct {
	started  chan struct{}
	running  atomic.Int32
	finished atomic.Int32
}

func (m *blockingDayManager) ProcessNext(ctx context.Context) (bool, error) {
	if m.running.Add(1) == 1 {
		close(m.started)
	}
	<-ctx.Done()
	m.finished.Add(1)
	return true, ctx.Err()
}

func (m *blockingDayManager) Submit(context.Context, string, bool) error { return nil }

func (m *blockingDayManager) GetStatus(context.Context, string) (*entity.DayStatus, error) {
	return nil, nil
}

func (m *blockingDayManager) GetPosts(context.Context, string) ([]entity.Post, error) {
	return nil, nil
}

func (m *blockingDayManager) EnqueueCatchUp(context.Context, string) (int, error) { return 0, nil }

func (m *blockingDayManager) RecentCounts(context.Context, int) ([]entity.DayCount, error) {
	return nil, nil
}

func TestStopWorkerWaitsForDayInProgress(t *testing.T) {
	dm := &blockingDayManager{started: make(chan struct{})}

	// The parent context stays alive, as when the listener fails to bind.
	stop := startWorker(context.Background(), dm)

	select {
	case <-dm.started:
	case <-time.After(time.Second):
		t.Fatal("worker did not start")
	}

	stop()
	require.EqualValues(t, 1, dm.running.Load())
	require.EqualValues(t, 1, dm.finished.Load(), "stop must return only after the worker has exited")

	stop()
}
