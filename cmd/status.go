package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/avoyan/quittrack/internal/cli"
	"github.com/avoyan/quittrack/internal/config"
	"github.com/avoyan/quittrack/internal/metrics"
	"github.com/avoyan/quittrack/internal/tracker"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show streak, savings, and today's count",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	store, err := openLog()
	if err != nil {
		return err
	}

	now := time.Now()
	set := loadSettings(now)

	if set.NotificationsEnabled {
		notice("  %s\n", quotes[rand.IntN(len(quotes))])
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("QUITTRACK"))
	fmt.Println()
	printSummary(store, set, now)
	fmt.Println()

	return nil
}

// printSummary prints the streak/saved/today block shared by status and log.
func printSummary(store *tracker.Store, set config.Settings, now time.Time) {
	streak := metrics.Streak(store.Counts(), set.QuitDate, now)
	saved := metrics.Savings(store.Counts(), set, true)

	fmt.Printf("  Streak: %s smoke-free\n", cli.FormatStreak(streak))
	fmt.Printf("  Saved:  %s since %s\n",
		cli.FormatMoney(set.Currency, saved),
		set.QuitDate.Format(tracker.DayFormat))
	fmt.Printf("  Today:  %d cigarettes\n", store.Count(now))
}

var quotes = []string{
	"Small steps every day beat big plans once a year.",
	"Your lungs are already thanking you.",
	"One day at a time. One choice at a time.",
	"Cravings pass. Pride lasts.",
	"Today's zero is tomorrow's streak.",
}
