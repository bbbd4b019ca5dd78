package cmd

import (
	"fmt"
	"time"

	"github.com/avoyan/quittrack/internal/cli"
	"github.com/avoyan/quittrack/internal/config"
	"github.com/avoyan/quittrack/internal/tracker"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show current settings",
	RunE:  runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(_ *cobra.Command, _ []string) error {
	now := time.Now()
	set := loadSettings(now)

	fmt.Printf("  Settings file: %s\n", config.Path())
	if config.Exists(config.Path()) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no settings file)")
	}
	fmt.Println()

	fmt.Println("  [Habit]")
	fmt.Printf("    Price per pack:     %s\n", cli.FormatMoney(set.Currency, set.PricePerPack))
	fmt.Printf("    Cigarettes/pack:    %d\n", set.CigsPerPack)
	fmt.Printf("    Baseline/day:       %d\n", set.BaselinePerDay)
	fmt.Println()

	fmt.Println("  [Tracking]")
	fmt.Printf("    Quit date:          %s\n", set.QuitDate.Format(tracker.DayFormat))
	fmt.Printf("    Currency:           %s\n", set.Currency)
	fmt.Printf("    Startup quote:      %v\n", set.NotificationsEnabled)
	fmt.Println()

	fmt.Printf("  Log file:   %s\n", logPath())
	fmt.Printf("  Backups:    %s\n", backupDir())
	fmt.Println()
	fmt.Println("  Run `quittrack setup` to change these.")
	return nil
}
