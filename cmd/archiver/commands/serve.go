package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"github.com/user/frontpage-archiver/internal/delivery/http/handler"
	"github.com/user/frontpage-archiver/internal/delivery/http/router"
	"github.com/user/frontpage-archiver/internal/usecase"
)

const workerIdleWait = 2 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the HTTP API and a worker that archives queued days.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		// Stop the worker before the deferred Close releases the stores it uses.
		stopWorker := startWorker(ctx, a.dayManager)
		defer stopWorker()

		if cfg.CrawlSchedule != "" {
			scheduler := cron.New()
			_, err := scheduler.AddFunc(cfg.CrawlSchedule, func() {
				if _, err := a.dayManager.EnqueueCatchUp(ctx, cfg.StartDate); err != nil {
					slog.Error("Scheduled catch-up failed", "error", err)
				}
			})
			if err != nil {
				return err
			}
			scheduler.Start()
			defer func() { <-scheduler.Stop().Done() }()
			slog.Info("Catch-up crawl scheduled", "schedule", cfg.CrawlSchedule)
		}

		server := &http.Server{
			Addr:         ":" + cfg.ServerPort,
			Handler:      router.New(handler.NewHandler(a.dayManager)),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				slog.Error("Server shutdown failed", "error", err)
			}
		}()

		slog.Info("Starting server", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", "port", cfg.ServerPort, "error", err)
			return err
		}

		stopWorker()
		slog.Info("Server stopped")
		return nil
	},
}

// startWorker runs the queue worker in the background. The returned stop
// cancels it and waits for the day in progress to be abandoned; calling it
// more than once is safe.
func startWorker(ctx context.Context, dm usecase.DayManager) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runWorker(ctx, dm)
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}

// runWorker archives queued days one at a time until ctx is done.
func runWorker(ctx context.Context, dm usecase.DayManager) {
	for {
		processed, err := dm.ProcessNext(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			slog.Warn("Queued day finished with errors", "error", err)
		}
		if processed {
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(workerIdleWait):
		}
	}
}
