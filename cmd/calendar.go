package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avoyan/quittrack/internal/cli"
	"github.com/avoyan/quittrack/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Month calendar with counts and savings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(_ *cobra.Command, args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if len(args) == 1 {
		ym, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("month must be YYYY-MM, got %q", args[0])
		}
		year, month = ym.Year(), ym.Month()
	}

	store, err := openLog()
	if err != nil {
		return err
	}
	set := loadSettings(now)
	grid := report.MonthGrid(store.Counts(), year, month, now, set)

	fmt.Println()
	fmt.Println(cli.RenderTitle(strings.ToUpper(month.String()) + " " + strconv.Itoa(year)))
	fmt.Println()

	// Sunday-first weekday header
	var header strings.Builder
	header.WriteString("  ")
	for wd := 0; wd < 7; wd++ {
		header.WriteString(fmt.Sprintf("%-8s", cli.FormatDayOfWeek(wd)))
	}
	fmt.Println(cli.Muted(header.String()))

	todayStyle := lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	cleanStyle := lipgloss.NewStyle().Foreground(cli.ColorGreen)
	smokedStyle := lipgloss.NewStyle().Foreground(cli.ColorOrange)

	var total int
	var saved float64
	for _, week := range grid.Weeks {
		var line strings.Builder
		line.WriteString("  ")
		for _, c := range week {
			if c.Day == 0 {
				line.WriteString(strings.Repeat(" ", 8))
				continue
			}
			total += c.Count
			saved += c.Saved

			cell := fmt.Sprintf("%2d %-3d", c.Day, c.Count)
			switch {
			case c.IsToday:
				cell = todayStyle.Render(cell)
			case c.Count == 0:
				cell = cleanStyle.Render(cell)
			default:
				cell = smokedStyle.Render(cell)
			}
			line.WriteString(cell)
			line.WriteString("  ")
		}
		fmt.Println(line.String())
	}

	fmt.Println()
	fmt.Printf("  Month total: %d cigarettes, saved %s\n\n",
		total, cli.FormatMoney(set.Currency, saved))
	return nil
}
