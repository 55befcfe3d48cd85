package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/frontpage-archiver/pkg/config"
	"github.com/user/frontpage-archiver/pkg/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "archiver",
	Short: "archiver saves the Hacker News front page of every past day as JSON.",
	Long: `archiver walks the daily front page listings from START_DATE up to yesterday
and writes one JSON array of posts per day into DATA_DIR.

Without a subcommand it runs the crawl.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level := logger.ParseLevel(cfg.LogLevel)
		logger.Init(os.Stdout, level)
		slog.Debug("Logger initialized", "level", level.String())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return crawlCmd.RunE(cmd, args)
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
