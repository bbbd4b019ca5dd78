package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avoyan/quittrack/internal/cli"
	"github.com/avoyan/quittrack/internal/metrics"
	"github.com/avoyan/quittrack/internal/report"
	"github.com/avoyan/quittrack/internal/tracker"

	"github.com/spf13/cobra"
)

var flagDailyDays int

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily counts for the last N days",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().IntVarP(&flagDailyDays, "days", "n", 30, "Window size in days")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	store, err := openLog()
	if err != nil {
		return err
	}

	now := time.Now()
	set := loadSettings(now)
	cells := report.DailyWindow(store.Counts(), now, flagDailyDays)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY LOG  Last %dd", flagDailyDays)))
	fmt.Println()

	rows := make([][]string, 0, len(cells))
	values := make([]float64, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, []string{
			c.Date.Format(tracker.DayFormat),
			cli.FormatDayOfWeek(int(c.Date.Weekday())),
			strconv.Itoa(c.Count),
			cli.FormatMoney(set.Currency, metrics.DailySaving(c.Count, set)),
		})
		values = append(values, float64(c.Count))
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Cigarettes", "Saved"},
		Rows:    rows,
	}))

	fmt.Printf("\n  %s\n\n", cli.RenderSparkline(values))
	return nil
}
