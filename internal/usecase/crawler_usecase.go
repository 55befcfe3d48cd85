package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/frontpage"
	"github.com/user/frontpage-archiver/internal/repository"
	"github.com/user/frontpage-archiver/pkg/metrics"
)

// DayCrawler walks the pages of one day's archive.
type DayCrawler interface {
	CrawlDay(ctx context.Context, day string) entity.DayResult
}

// CrawlerOptions tunes the pagination loop.
type CrawlerOptions struct {
	// StopWithoutMore ends a day after a non-empty page that has no More row,
	// instead of waiting for the first empty page.
	StopWithoutMore bool
}

type crawlerUseCase struct {
	pageRepo       repository.PageRepository
	failedPageRepo repository.FailedPageRepository
	opts           CrawlerOptions
}

// NewCrawlerUseCase creates a new instance of the crawler use case.
// failedPageRepo may be nil.
func NewCrawlerUseCase(
	pageRepo repository.PageRepository,
	failedPageRepo repository.FailedPageRepository,
	opts CrawlerOptions,
) DayCrawler {
	return &crawlerUseCase{
		pageRepo:       pageRepo,
		failedPageRepo: failedPageRepo,
		opts:           opts,
	}
}

// CrawlDay fetches pages 0, 1, 2... of day until a page yields no posts or a
// fetch fails. Posts gathered before a failure are kept in the result.
func (uc *crawlerUseCase) CrawlDay(ctx context.Context, day string) entity.DayResult {
	result := entity.DayResult{Day: day, Posts: []entity.Post{}}

	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}

		params := entity.PageParams{Day: day, Page: page}
		startTime := time.Now()
		body, err := uc.pageRepo.Fetch(ctx, params)
		metrics.PageFetchDuration.Observe(time.Since(startTime).Seconds())

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				result.Err = ctxErr
				return result
			}
			metrics.PagesFetchedTotal.WithLabelValues("failure").Inc()
			slog.Error("Fetching page failed, ending day early", "day", day, "page", page, "posts", len(result.Posts), "error", err)
			uc.recordFailure(ctx, params, err)
			result.Err = fmt.Errorf("day %s page %d: %w", day, page, err)
			return result
		}
		metrics.PagesFetchedTotal.WithLabelValues("success").Inc()
		result.Pages++

		parsed, err := frontpage.ParseString(body)
		if err != nil {
			if errors.Is(err, frontpage.ErrListingNotFound) {
				slog.Debug("Listing table absent, day exhausted", "day", day, "page", page)
			} else {
				slog.Warn("Page could not be parsed, day exhausted", "day", day, "page", page, "error", err)
			}
			return result
		}
		if len(parsed.Posts) == 0 {
			slog.Debug("Page has no posts, day exhausted", "day", day, "page", page, "rows", parsed.Rows)
			return result
		}

		result.Posts = append(result.Posts, parsed.Posts...)
		result.HasMore = parsed.HasMore
		slog.Debug("Page assembled", "day", day, "page", page, "posts", len(parsed.Posts), "has_more", parsed.HasMore)

		if uc.opts.StopWithoutMore && !parsed.HasMore {
			return result
		}
	}
}

func (uc *crawlerUseCase) recordFailure(ctx context.Context, params entity.PageParams, fetchErr error) {
	if uc.failedPageRepo == nil {
		return
	}

	failed := &entity.FailedPage{
		Day:                  params.Day,
		Page:                 params.Page,
		FailureReason:        fetchErr.Error(),
		LastAttemptTimestamp: time.Now(),
	}
	var fe *repository.FetchError
	if errors.As(fetchErr, &fe) {
		failed.HTTPStatusCode = fe.StatusCode
	}

	if err := uc.failedPageRepo.SaveOrUpdate(ctx, failed); err != nil {
		slog.Warn("Failed to record failed page", "day", params.Day, "page", params.Page, "error", err)
	}
}
