package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avoyan/quittrack/internal/cli"
	"github.com/avoyan/quittrack/internal/report"
	"github.com/avoyan/quittrack/internal/tracker"

	"github.com/spf13/cobra"
)

var flagWeeksBack int

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Weekly totals and averages (Mon-Sun weeks)",
	RunE:  runWeekly,
}

func init() {
	weeklyCmd.Flags().IntVarP(&flagWeeksBack, "weeks", "w", 7, "Weeks to look back (the window also includes the current week)")
	rootCmd.AddCommand(weeklyCmd)
}

func runWeekly(_ *cobra.Command, _ []string) error {
	store, err := openLog()
	if err != nil {
		return err
	}

	now := time.Now()
	weeks := report.WeeklyWindow(store.Counts(), now, flagWeeksBack)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WEEKLY  Last %d weeks", len(weeks))))
	fmt.Println()

	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		label := w.Start.Format(tracker.DayFormat) + " - " + w.End.Format(tracker.DayFormat)
		rows = append(rows, []string{
			label,
			strconv.Itoa(w.Total),
			cli.FormatAverage(w.Average),
			strconv.Itoa(w.Days),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Week (Mon-Sun)", "Total", "Avg/day", "Days"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
