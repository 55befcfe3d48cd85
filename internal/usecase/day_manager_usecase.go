package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
	"github.com/user/frontpage-archiver/pkg/metrics"
	"github.com/user/frontpage-archiver/pkg/utils"
)

var (
	ErrDayAlreadyArchived = errors.New("day has already been archived and force is false")
	ErrDayNotComplete     = errors.New("day has not ended yet")
)

// DayManager defines the interface for submitting days and checking on them.
type DayManager interface {
	Submit(ctx context.Context, day string, force bool) error
	GetStatus(ctx context.Context, day string) (*entity.DayStatus, error)
	GetPosts(ctx context.Context, day string) ([]entity.Post, error)
	// ProcessNext archives the next queued day. It reports false when the
	// queue was empty.
	ProcessNext(ctx context.Context) (bool, error)
	// EnqueueCatchUp queues every day after the newest archive (or from
	// start when nothing is archived) up to yesterday.
	EnqueueCatchUp(ctx context.Context, start string) (int, error)
	// RecentCounts returns the post counts of the newest limit archived days,
	// oldest first.
	RecentCounts(ctx context.Context, limit int) ([]entity.DayCount, error)
}

type dayManagerUseCase struct {
	archiver    Archiver
	archiveRepo repository.ArchiveRepository
	statusRepo  repository.StatusRepository
	queueRepo   repository.QueueRepository
	now         func() time.Time
}

// NewDayManager creates a new DayManager use case.
func NewDayManager(
	archiver Archiver,
	archiveRepo repository.ArchiveRepository,
	statusRepo repository.StatusRepository,
	queueRepo repository.QueueRepository,
) DayManager {
	return &dayManagerUseCase{
		archiver:    archiver,
		archiveRepo: archiveRepo,
		statusRepo:  statusRepo,
		queueRepo:   queueRepo,
		now:         time.Now,
	}
}

func (uc *dayManagerUseCase) Submit(ctx context.Context, day string, force bool) error {
	if err := uc.checkDay(day); err != nil {
		return err
	}

	if force {
		if err := uc.statusRepo.RemoveStatus(ctx, day); err != nil {
			slog.Warn("Failed to remove day status for forced recrawl", "day", day, "error", err)
			// Continue anyway, as this is not a critical failure
		}
	} else {
		status, err := uc.statusRepo.GetStatus(ctx, day)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if status != nil && status.CurrentStatus == entity.DayStatusArchived {
			return ErrDayAlreadyArchived
		}
	}

	return uc.enqueue(ctx, day)
}

func (uc *dayManagerUseCase) GetStatus(ctx context.Context, day string) (*entity.DayStatus, error) {
	if _, err := utils.ParseDay(day); err != nil {
		return nil, err
	}

	status, err := uc.statusRepo.GetStatus(ctx, day)
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// No ledger entry, but an archive file may predate the ledger.
	posts, err := uc.archiveRepo.Load(ctx, day)
	if err == nil {
		return &entity.DayStatus{
			Day:           day,
			CurrentStatus: entity.DayStatusArchived,
			Posts:         len(posts),
		}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		slog.Error("Error loading day archive", "day", day, "error", err)
	}

	return &entity.DayStatus{
		Day:           day,
		CurrentStatus: entity.DayStatusNotFound,
	}, nil
}

func (uc *dayManagerUseCase) GetPosts(ctx context.Context, day string) ([]entity.Post, error) {
	if _, err := utils.ParseDay(day); err != nil {
		return nil, err
	}
	return uc.archiveRepo.Load(ctx, day)
}

func (uc *dayManagerUseCase) ProcessNext(ctx context.Context) (bool, error) {
	day, err := uc.queueRepo.Pop(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrQueueEmpty) {
			// Queue is empty, which is a normal state.
			return false, nil
		}
		return false, fmt.Errorf("failed to pop day from queue: %w", err)
	}
	uc.updateQueueGauge(ctx)

	slog.Info("Processing day from queue", "day", day)
	if _, err := uc.archiver.ArchiveDay(ctx, day); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			uc.requeue(ctx, day)
		}
		return true, err
	}
	return true, nil
}

// requeue puts back a day whose crawl was interrupted, so its pending entry
// keeps matching a queued day. ctx is already done, so the writes detach from it.
func (uc *dayManagerUseCase) requeue(ctx context.Context, day string) {
	ctx = context.WithoutCancel(ctx)

	err := uc.queueRepo.Push(ctx, day)
	if err == nil {
		uc.updateQueueGauge(ctx)
		slog.Info("Interrupted day returned to queue", "day", day)
		return
	}
	slog.Error("Failed to requeue interrupted day", "day", day, "error", err)

	// Without a queue entry the day must not look pending, or catch-up skips it.
	if err := uc.statusRepo.RemoveStatus(ctx, day); err != nil {
		slog.Error("Failed to clear status of interrupted day", "day", day, "error", err)
	}
}

func (uc *dayManagerUseCase) EnqueueCatchUp(ctx context.Context, start string) (int, error) {
	archived, err := uc.archiveRepo.Days(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list archived days: %w", err)
	}

	from := start
	if len(archived) > 0 {
		latest := archived[len(archived)-1]
		if latest >= start {
			if from, err = utils.NextDay(latest); err != nil {
				return 0, err
			}
		}
	}

	days, err := utils.DaysFrom(from, uc.now())
	if err != nil {
		return 0, err
	}

	queued := 0
	for day := range days {
		status, err := uc.statusRepo.GetStatus(ctx, day)
		if err == nil && status.CurrentStatus == entity.DayStatusPending {
			continue
		}
		if err := uc.enqueue(ctx, day); err != nil {
			return queued, err
		}
		queued++
	}
	if queued > 0 {
		slog.Info("Queued catch-up days", "from", from, "days", queued)
	}
	return queued, nil
}

func (uc *dayManagerUseCase) RecentCounts(ctx context.Context, limit int) ([]entity.DayCount, error) {
	days, err := uc.archiveRepo.Days(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived days: %w", err)
	}
	if limit > 0 && len(days) > limit {
		days = days[len(days)-limit:]
	}

	counts := make([]entity.DayCount, 0, len(days))
	for _, day := range days {
		posts, err := uc.archiveRepo.Load(ctx, day)
		if err != nil {
			slog.Warn("Skipping unreadable day archive", "day", day, "error", err)
			continue
		}
		counts = append(counts, entity.DayCount{Day: day, Posts: len(posts)})
	}
	return counts, nil
}

func (uc *dayManagerUseCase) enqueue(ctx context.Context, day string) error {
	if err := uc.queueRepo.Push(ctx, day); err != nil {
		return err
	}
	uc.updateQueueGauge(ctx)

	now := uc.now()
	if err := uc.statusRepo.SetStatus(ctx, &entity.DayStatus{
		Day:           day,
		CurrentStatus: entity.DayStatusPending,
		UpdatedAt:     &now,
	}); err != nil {
		// The day is queued either way; it may just be queued twice.
		slog.Error("Failed to mark day as pending after queueing", "day", day, "error", err)
	}
	return nil
}

func (uc *dayManagerUseCase) checkDay(day string) error {
	t, err := utils.ParseDay(day)
	if err != nil {
		return err
	}
	local := uc.now().In(time.Local)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	if !t.Before(today) {
		return fmt.Errorf("%w: %s", ErrDayNotComplete, day)
	}
	return nil
}

func (uc *dayManagerUseCase) updateQueueGauge(ctx context.Context) {
	size, err := uc.queueRepo.Size(ctx)
	if err != nil {
		return
	}
	metrics.DaysInQueue.Set(float64(size))
}
