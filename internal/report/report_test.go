package report

import (
	"testing"
	"time"

	"github.com/avoyan/quittrack/internal/config"
	"github.com/avoyan/quittrack/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testSettings() config.Settings {
	return config.Settings{
		Currency:       "$",
		PricePerPack:   10.0,
		CigsPerPack:    20,
		BaselinePerDay: 20,
		QuitDate:       day(2024, time.January, 1),
	}
}

func TestDailyWindowExactLengthNoGaps(t *testing.T) {
	today := day(2024, time.March, 15)
	counts := tracker.DayCounts{
		"2024-03-15": 2,
		"2024-03-01": 7,
	}

	cells := DailyWindow(counts, today, 30)
	require.Len(t, cells, 30)

	// Ascending, consecutive, ending today.
	assert.Equal(t, day(2024, time.February, 15), cells[0].Date)
	assert.Equal(t, today, cells[29].Date)
	for i := 1; i < len(cells); i++ {
		assert.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), cells[i].Date)
	}

	assert.Equal(t, 2, cells[29].Count)
	assert.Equal(t, 7, cells[15].Count)
	assert.Equal(t, 0, cells[1].Count)
}

func TestDailyWindowNonPositiveDays(t *testing.T) {
	assert.Nil(t, DailyWindow(tracker.DayCounts{}, day(2024, time.March, 15), 0))
}

func TestWeeklyWindowEmptyLog(t *testing.T) {
	// 2024-03-15 is a Friday.
	today := day(2024, time.March, 15)

	rows := WeeklyWindow(tracker.DayCounts{}, today, 7)
	require.Len(t, rows, 8)

	for _, w := range rows {
		assert.Equal(t, time.Monday, w.Start.Weekday())
		assert.Equal(t, 0, w.Total)
		assert.Equal(t, 0.0, w.Average)
	}

	// Completed weeks count all 7 days; the current week runs Mon-Fri.
	assert.Equal(t, 7, rows[0].Days)
	assert.Equal(t, 5, rows[7].Days)
	assert.Equal(t, today, rows[7].End)
}

func TestWeeklyWindowTotalsAndAverages(t *testing.T) {
	// Wednesday, so the current week is partial (Mon-Wed, 3 days).
	today := day(2024, time.March, 20)
	counts := tracker.DayCounts{
		"2024-03-11": 7, // Monday of the previous week
		"2024-03-14": 7,
		"2024-03-19": 6, // Tuesday of the current week
	}

	rows := WeeklyWindow(counts, today, 1)
	require.Len(t, rows, 2)

	assert.Equal(t, day(2024, time.March, 11), rows[0].Start)
	assert.Equal(t, 14, rows[0].Total)
	assert.Equal(t, 7, rows[0].Days)
	assert.InDelta(t, 2.0, rows[0].Average, 1e-9)

	assert.Equal(t, day(2024, time.March, 18), rows[1].Start)
	assert.Equal(t, day(2024, time.March, 20), rows[1].End)
	assert.Equal(t, 6, rows[1].Total)
	assert.Equal(t, 3, rows[1].Days)
	assert.InDelta(t, 2.0, rows[1].Average, 1e-9)
}

func TestMonthGridFebruaryLeapYear(t *testing.T) {
	today := day(2024, time.March, 15) // outside the rendered month
	grid := MonthGrid(tracker.DayCounts{}, 2024, time.February, today, testSettings())

	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, time.February, grid.Month)
	require.Len(t, grid.Weeks, 5)

	var dayCells, leading int
	for _, c := range grid.Weeks[0] {
		if c.Day == 0 {
			leading++
		}
	}
	for _, week := range grid.Weeks {
		require.Len(t, week, 7)
		for _, c := range week {
			if c.Day != 0 {
				dayCells++
			}
		}
	}

	// February 2024 starts on a Thursday: 4 leading blanks, 29 days.
	assert.Equal(t, 4, leading)
	assert.Equal(t, 29, dayCells)
	assert.Equal(t, 1, grid.Weeks[0][4].Day)
	assert.Equal(t, 29, grid.Weeks[4][4].Day)
}

func TestMonthGridCountsSavingsAndToday(t *testing.T) {
	today := day(2024, time.February, 10)
	counts := tracker.DayCounts{"2024-02-10": 5}
	grid := MonthGrid(counts, 2024, time.February, today, testSettings())

	// Feb 10 2024 is the Saturday closing the second row.
	cell := grid.Weeks[1][6]
	require.Equal(t, 10, cell.Day)
	assert.Equal(t, 5, cell.Count)
	assert.InDelta(t, 7.5, cell.Saved, 1e-9) // (20-5) * 0.50
	assert.True(t, cell.IsToday)

	// A smoke-free day saves the full baseline worth.
	clean := grid.Weeks[1][5]
	require.Equal(t, 9, clean.Day)
	assert.Equal(t, 0, clean.Count)
	assert.InDelta(t, 10.0, clean.Saved, 1e-9)
	assert.False(t, clean.IsToday)
}
