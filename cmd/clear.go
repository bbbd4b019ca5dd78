package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/avoyan/quittrack/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	flagClearDate string
	flagClearAll  bool
	flagClearYes  bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the count for a day, or the whole log",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().StringVar(&flagClearDate, "date", "", "Day to clear (default today)")
	clearCmd.Flags().BoolVar(&flagClearAll, "all", false, "Clear the entire log")
	clearCmd.Flags().BoolVar(&flagClearYes, "yes", false, "Confirm clearing the entire log")
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	store, err := openLog()
	if err != nil {
		return err
	}

	if flagClearAll {
		if !flagClearYes {
			return errors.New("clearing the whole log is irreversible; re-run with --yes (consider `quittrack export` first)")
		}
		if err := store.ClearAll(); err != nil {
			return err
		}
		fmt.Println("\n  Log cleared.")
		return nil
	}

	day, err := parseDay(flagClearDate, time.Now())
	if err != nil {
		return err
	}
	if err := store.ClearDay(day); err != nil {
		return err
	}
	fmt.Printf("\n  Cleared %s.\n", tracker.DayKey(day))
	return nil
}
