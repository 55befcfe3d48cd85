package commands

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/frontpage-archiver/pkg/utils"
)

var (
	crawlFrom string
	crawlDays []string
)

func init() {
	crawlCmd.Flags().StringVar(&crawlFrom, "from", "", "First day to crawl (YYYY-MM-DD), defaults to START_DATE.")
	crawlCmd.Flags().StringSliceVar(&crawlDays, "day", nil, "Crawl only these days instead of a range. May be repeated.")
	rootCmd.AddCommand(crawlCmd)
}

var crawlCmd = &cobra.Command{
	Use:   "crawl [--from YYYY-MM-DD] [--day YYYY-MM-DD]...",
	Short: "Archives every day from the start date up to yesterday.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		days, err := crawlRange(time.Now())
		if err != nil {
			return err
		}

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		slog.Info("Starting crawl", "data_dir", cfg.DataDir, "delay_ms", cfg.RequestDelayMS)
		summary, err := a.archiver.Run(ctx, days)
		if err != nil {
			if ctx.Err() != nil {
				slog.Warn("Crawl interrupted", "days", summary.Days, "archived", summary.Archived)
				return nil
			}
			return err
		}
		if summary.Days == 0 {
			slog.Info("Nothing to crawl")
		}
		return nil
	},
}

func crawlRange(now time.Time) (iter.Seq[string], error) {
	if len(crawlDays) > 0 {
		for _, day := range crawlDays {
			if _, err := utils.ParseDay(day); err != nil {
				return nil, err
			}
		}
		return slices.Values(crawlDays), nil
	}

	start := crawlFrom
	if start == "" {
		start = cfg.StartDate
	}
	days, err := utils.DaysFrom(start, now)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDate) {
			return nil, fmt.Errorf("bad start date: %w", err)
		}
		return nil, err
	}
	return days, nil
}
