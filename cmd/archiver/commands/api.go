package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/user/frontpage-archiver/internal/adapter/hnapi"
	"github.com/user/frontpage-archiver/pkg/utils"
)

var (
	storiesLimit int
	walkFrom     int
	walkCount    int
)

func init() {
	storiesCmd.Flags().IntVar(&storiesLimit, "limit", 0, "Print at most this many ids.")
	walkCmd.Flags().IntVar(&walkFrom, "from", 0, "Item id to start from. Defaults to the newest item.")
	walkCmd.Flags().IntVar(&walkCount, "count", 0, "Visit at most this many ids. Zero walks down to item 1.")
	rootCmd.AddCommand(itemCmd, userCmd, storiesCmd, walkCmd)
}

func apiClient() *hnapi.Client {
	return hnapi.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout())
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var itemCmd = &cobra.Command{
	Use:   "item <id>",
	Short: "Prints one item from the JSON API.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		item, err := apiClient().GetItem(cmd.Context(), id)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("item %d not found", id)
		}
		return printJSON(item)
	},
}

var userCmd = &cobra.Command{
	Use:   "user <name>",
	Short: "Prints a user profile from the JSON API.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := apiClient().GetUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %s not found", args[0])
		}
		return printJSON(user)
	},
}

var storiesCmd = &cobra.Command{
	Use:       "stories <top|new|best|ask|show|job|updates|max>",
	Short:     "Prints a story id list from the JSON API.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"top", "new", "best", "ask", "show", "job", "updates", "max"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client := apiClient()
		switch args[0] {
		case "updates":
			updates, err := client.GetUpdates(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(updates)
		case "max":
			id, err := client.GetMaxItemID(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(id)
		}

		ids, err := client.Stories(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if storiesLimit > 0 && len(ids) > storiesLimit {
			ids = ids[:storiesLimit]
		}
		return printJSON(ids)
	},
}

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Prints items one JSON line each, walking down from the newest id.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(os.Stdout)
		pacer := utils.NewPacer(cfg.RequestDelay())
		return apiClient().Walk(cmd.Context(), walkFrom, walkCount, pacer, func(id int, item hnapi.Item) error {
			if item == nil {
				slog.Debug("Skipping missing item", "id", id)
				return nil
			}
			return enc.Encode(item)
		})
	},
}
