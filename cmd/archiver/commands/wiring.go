package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/user/frontpage-archiver/internal/adapter/fsarchive"
	"github.com/user/frontpage-archiver/internal/adapter/httpfetch"
	"github.com/user/frontpage-archiver/internal/adapter/memory"
	"github.com/user/frontpage-archiver/internal/adapter/postgres"
	redis_adapter "github.com/user/frontpage-archiver/internal/adapter/redis"
	"github.com/user/frontpage-archiver/internal/repository"
	"github.com/user/frontpage-archiver/internal/usecase"
	"github.com/user/frontpage-archiver/pkg/config"
)

// app holds the wired use cases of one process.
type app struct {
	archiveRepo repository.ArchiveRepository
	archiver    usecase.Archiver
	dayManager  usecase.DayManager
	closers     []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newApp connects the optional stores and builds the use cases. Redis and
// Postgres are used only when configured; the day archive files are always
// written.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	var (
		statusRepo     repository.StatusRepository
		queueRepo      repository.QueueRepository
		postRepo       repository.PostRepository
		failedPageRepo repository.FailedPageRepository
	)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("unable to connect to Redis: %w", err)
		}
		a.closers = append(a.closers, func() { rdb.Close() })
		slog.Info("Redis connection established", "addr", cfg.RedisAddr)

		statusRepo = redis_adapter.NewStatusRepo(rdb)
		queueRepo = redis_adapter.NewQueueRepo(rdb)
	} else {
		statusRepo = memory.NewStatusRepository()
		queueRepo = memory.NewQueueRepository()
	}

	if cfg.PostgresURL != "" {
		dbpool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		a.closers = append(a.closers, dbpool.Close)
		if err := postgres.EnsureSchema(ctx, dbpool); err != nil {
			a.Close()
			return nil, fmt.Errorf("unable to create database schema: %w", err)
		}
		slog.Info("PostgreSQL connection pool established")

		postRepo = postgres.NewPostRepo(dbpool)
		failedPageRepo = postgres.NewFailedPageRepo(dbpool)
	}

	pageRepo := httpfetch.NewPageFetcher(httpfetch.Options{
		BaseURL:   cfg.ListingBaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.HTTPTimeout(),
		Delay:     cfg.RequestDelay(),
	})
	a.archiveRepo = fsarchive.NewStore(cfg.DataDir)

	crawler := usecase.NewCrawlerUseCase(pageRepo, failedPageRepo, usecase.CrawlerOptions{
		StopWithoutMore: cfg.StopWithoutMore,
	})
	a.archiver = usecase.NewArchiverUseCase(crawler, a.archiveRepo, statusRepo, postRepo, failedPageRepo, usecase.ArchiverOptions{
		SkipArchived: cfg.SkipArchived,
	})
	a.dayManager = usecase.NewDayManager(a.archiver, a.archiveRepo, statusRepo, queueRepo)

	return a, nil
}
