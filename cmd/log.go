package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avoyan/quittrack/internal/tracker"

	"github.com/spf13/cobra"
)

var flagLogDate string

var logCmd = &cobra.Command{
	Use:   "log <count>",
	Short: "Record the cigarette count for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&flagLogDate, "date", "", `Day to record (default today; accepts "yesterday", "last monday", YYYY-MM-DD)`)
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("count must be an integer, got %q", args[0])
	}

	now := time.Now()
	day, err := parseDay(flagLogDate, now)
	if err != nil {
		return err
	}

	store, err := openLog()
	if err != nil {
		return err
	}
	if err := store.SetCount(day, count); err != nil {
		return err
	}

	fmt.Printf("\n  Saved %s: %d\n\n", tracker.DayKey(day), count)
	printSummary(store, loadSettings(now), now)
	fmt.Println()
	return nil
}
