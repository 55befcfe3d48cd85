package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
	"github.com/user/frontpage-archiver/pkg/metrics"
)

// Archiver drives day crawls and persists their results.
type Archiver interface {
	// ArchiveDay crawls one day and writes its archive, even a partial one.
	ArchiveDay(ctx context.Context, day string) (*entity.DayStatus, error)
	// Run archives each day in order. A failed day never stops the run;
	// only ctx cancellation does.
	Run(ctx context.Context, days iter.Seq[string]) (Summary, error)
}

// ArchiverOptions tunes the driver.
type ArchiverOptions struct {
	// SkipArchived skips days whose ledger entry is already archived.
	SkipArchived bool
}

// Summary counts day outcomes of one Run.
type Summary struct {
	Days     int
	Archived int
	Partial  int
	Failed   int
	Skipped  int
	Posts    int
}

type archiverUseCase struct {
	crawler        DayCrawler
	archiveRepo    repository.ArchiveRepository
	statusRepo     repository.StatusRepository
	postRepo       repository.PostRepository
	failedPageRepo repository.FailedPageRepository
	opts           ArchiverOptions
}

// NewArchiverUseCase wires the driver. statusRepo, postRepo and
// failedPageRepo are optional and may be nil.
func NewArchiverUseCase(
	crawler DayCrawler,
	archiveRepo repository.ArchiveRepository,
	statusRepo repository.StatusRepository,
	postRepo repository.PostRepository,
	failedPageRepo repository.FailedPageRepository,
	opts ArchiverOptions,
) Archiver {
	return &archiverUseCase{
		crawler:        crawler,
		archiveRepo:    archiveRepo,
		statusRepo:     statusRepo,
		postRepo:       postRepo,
		failedPageRepo: failedPageRepo,
		opts:           opts,
	}
}

func (uc *archiverUseCase) Run(ctx context.Context, days iter.Seq[string]) (Summary, error) {
	var summary Summary

	for day := range days {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Days++

		if uc.alreadyArchived(ctx, day) {
			slog.Info("Skipping archived day", "day", day)
			metrics.DaysCrawledTotal.WithLabelValues("skipped", "").Inc()
			summary.Skipped++
			continue
		}

		status, err := uc.ArchiveDay(ctx, day)
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return summary, ctxErr
		}

		summary.Posts += status.Posts
		switch status.CurrentStatus {
		case entity.DayStatusArchived:
			summary.Archived++
		case entity.DayStatusPartial:
			summary.Partial++
		default:
			summary.Failed++
		}
	}

	slog.Info("Crawl finished",
		"days", summary.Days,
		"archived", summary.Archived,
		"partial", summary.Partial,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"posts", summary.Posts,
	)
	return summary, nil
}

func (uc *archiverUseCase) ArchiveDay(ctx context.Context, day string) (*entity.DayStatus, error) {
	result := uc.crawler.CrawlDay(ctx, day)
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(result.Err, ctxErr) {
		slog.Warn("Crawl canceled, day not archived", "day", day, "posts", len(result.Posts))
		return nil, result.Err
	}

	now := time.Now()
	status := &entity.DayStatus{
		Day:       day,
		Pages:     result.Pages,
		UpdatedAt: &now,
	}

	count, saveErr := uc.archiveRepo.Save(ctx, day, result.Posts)
	if saveErr != nil {
		status.CurrentStatus = entity.DayStatusFailed
		status.FailureReason = saveErr.Error()
		metrics.DaysCrawledTotal.WithLabelValues("failed", "persistence").Inc()
		slog.Error("Day archive could not be written", "day", day, "posts", len(result.Posts), "error", saveErr)
		uc.saveStatus(ctx, status)
		return status, fmt.Errorf("archive day %s: %w", day, saveErr)
	}

	status.Posts = count
	metrics.PostsArchivedTotal.Add(float64(count))
	uc.mirror(ctx, day, result.Posts)

	switch {
	case result.Err == nil:
		status.CurrentStatus = entity.DayStatusArchived
		metrics.DaysCrawledTotal.WithLabelValues("archived", "").Inc()
		slog.Info("Day archived", "day", day, "posts", count, "pages", result.Pages)
		uc.clearFailures(ctx, day)
	case result.Partial():
		status.CurrentStatus = entity.DayStatusPartial
		status.FailureReason = result.Err.Error()
		metrics.DaysCrawledTotal.WithLabelValues("partial", errorType(result.Err)).Inc()
		slog.Error("Day archived partially", "day", day, "posts", count, "pages", result.Pages, "error_type", errorType(result.Err), "error", result.Err)
	default:
		status.CurrentStatus = entity.DayStatusFailed
		status.FailureReason = result.Err.Error()
		metrics.DaysCrawledTotal.WithLabelValues("failed", errorType(result.Err)).Inc()
		slog.Error("Day crawl failed", "day", day, "error_type", errorType(result.Err), "error", result.Err)
	}

	uc.saveStatus(ctx, status)
	return status, result.Err
}

func (uc *archiverUseCase) alreadyArchived(ctx context.Context, day string) bool {
	if !uc.opts.SkipArchived || uc.statusRepo == nil {
		return false
	}
	status, err := uc.statusRepo.GetStatus(ctx, day)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Warn("Failed to read day status", "day", day, "error", err)
		}
		return false
	}
	return status.CurrentStatus == entity.DayStatusArchived
}

func (uc *archiverUseCase) mirror(ctx context.Context, day string, posts []entity.Post) {
	if uc.postRepo == nil {
		return
	}
	if err := uc.postRepo.ReplaceDay(ctx, day, posts); err != nil {
		metrics.DaysCrawledTotal.WithLabelValues("mirror_failed", "persistence").Inc()
		slog.Warn("Failed to mirror day posts", "day", day, "error", err)
	}
}

func (uc *archiverUseCase) clearFailures(ctx context.Context, day string) {
	if uc.failedPageRepo == nil {
		return
	}
	if err := uc.failedPageRepo.DeleteDay(ctx, day); err != nil {
		// Not critical, the records are only informational.
		slog.Warn("Failed to clear failed pages after complete crawl", "day", day, "error", err)
	}
}

func (uc *archiverUseCase) saveStatus(ctx context.Context, status *entity.DayStatus) {
	if uc.statusRepo == nil {
		return
	}
	if err := uc.statusRepo.SetStatus(ctx, status); err != nil {
		slog.Warn("Failed to record day status", "day", status.Day, "error", err)
	}
}

func errorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, repository.ErrFetchTimeout):
		return "timeout"
	case errors.Is(err, repository.ErrFetchFailed):
		return "transport"
	case errors.Is(err, repository.ErrArchiveFailed):
		return "persistence"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "unknown"
	}
}
