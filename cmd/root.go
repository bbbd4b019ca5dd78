// Package cmd implements the quittrack CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avoyan/quittrack/internal/config"
	"github.com/avoyan/quittrack/internal/tracker"

	"github.com/markusmobius/go-dateparser"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "quittrack",
	Short: "Smoke-free streak and savings tracker",
	Long:  "Track daily cigarette counts, your smoke-free streak, and the money saved since quitting.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", config.DataDir(), "Directory holding the log and backups")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notices on stderr")
}

func logPath() string {
	return filepath.Join(flagDataDir, "logs.csv")
}

func backupDir() string {
	return filepath.Join(flagDataDir, "backups")
}

// openLog loads the CSV log; malformed lines are skipped on load.
func openLog() (*tracker.Store, error) {
	return tracker.Open(logPath())
}

// loadSettings reads persisted settings, degrading to defaults per field.
func loadSettings(now time.Time) config.Settings {
	return config.Load(config.Path(), now)
}

// parseDay resolves a --date expression to a calendar day. Empty means
// today. Accepts YYYY-MM-DD directly, anything else goes through the
// natural-language parser ("yesterday", "last monday").
func parseDay(expr string, now time.Time) (time.Time, error) {
	if expr == "" {
		return tracker.DayStart(now), nil
	}
	if d, err := time.Parse(tracker.DayFormat, expr); err == nil {
		return d, nil
	}

	cfg := &dateparser.Configuration{CurrentTime: now}
	dt, err := dateparser.Parse(cfg, expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", expr)
	}
	return tracker.DayStart(dt.Time), nil
}

func notice(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
