// Package report derives the fixed-size reporting windows shown by the
// daily, weekly, and calendar views. Views are read-only; they never mutate
// the log.
package report

import (
	"time"

	"github.com/avoyan/quittrack/internal/config"
	"github.com/avoyan/quittrack/internal/metrics"
	"github.com/avoyan/quittrack/internal/tracker"
)

// DayCell is one day of the daily window.
type DayCell struct {
	Date  time.Time
	Count int
}

// WeekRow is one Monday-to-Sunday week of the weekly window.
type WeekRow struct {
	Start   time.Time // Monday
	End     time.Time // Sunday, or today for the partial current week
	Total   int
	Days    int // days counted: 7 for completed weeks
	Average float64
}

// Cell is one slot of the month grid. Day 0 marks a padding cell outside
// the month.
type Cell struct {
	Day     int
	Count   int
	Saved   float64
	IsToday bool
}

// Grid is a Sunday-first month calendar, padded to full 7-column rows.
type Grid struct {
	Year  int
	Month time.Month
	Weeks [][]Cell
}

// DailyWindow returns exactly days consecutive dates ending today,
// ascending, each paired with its count (0 if absent).
func DailyWindow(counts tracker.DayCounts, today time.Time, days int) []DayCell {
	if days <= 0 {
		return nil
	}

	start := tracker.DayStart(today).AddDate(0, 0, -(days - 1))
	cells := make([]DayCell, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		cells = append(cells, DayCell{Date: d, Count: counts.At(d)})
	}
	return cells
}

// WeeklyWindow returns Monday-to-Sunday weeks starting at the Monday
// on/before (today − weeksBack weeks) and running through the week
// containing today. The current week may be partial; its Days field then
// counts only the days elapsed through today. weeksBack=7 yields 8 rows.
func WeeklyWindow(counts tracker.DayCounts, today time.Time, weeksBack int) []WeekRow {
	end := tracker.DayStart(today)
	start := mondayOnOrBefore(end.AddDate(0, 0, -7*weeksBack))

	var rows []WeekRow
	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 0, 7) {
		weekEnd := cursor.AddDate(0, 0, 6)
		if weekEnd.After(end) {
			weekEnd = end
		}

		total, days := 0, 0
		for d := cursor; !d.After(weekEnd); d = d.AddDate(0, 0, 1) {
			total += counts.At(d)
			days++
		}

		var avg float64
		if days > 0 {
			avg = float64(total) / float64(days)
		}
		rows = append(rows, WeekRow{
			Start:   cursor,
			End:     weekEnd,
			Total:   total,
			Days:    days,
			Average: avg,
		})
	}
	return rows
}

// MonthGrid lays out one month as a Sunday-first calendar. Each day cell
// carries its count, computed daily saving, and whether it is today.
func MonthGrid(counts tracker.DayCounts, year int, month time.Month, today time.Time, set config.Settings) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayKey := tracker.DayKey(today)

	cells := make([]Cell, 0, 42)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		d := first.AddDate(0, 0, day-1)
		count := counts.At(d)
		cells = append(cells, Cell{
			Day:     day,
			Count:   count,
			Saved:   metrics.DailySaving(count, set),
			IsToday: tracker.DayKey(d) == todayKey,
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, Cell{})
	}

	grid := Grid{Year: year, Month: month}
	for i := 0; i < len(cells); i += 7 {
		grid.Weeks = append(grid.Weeks, cells[i:i+7])
	}
	return grid
}

// mondayOnOrBefore returns the Monday of the week containing t.
func mondayOnOrBefore(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
