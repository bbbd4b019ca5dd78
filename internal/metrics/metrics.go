// Package metrics computes the derived figures shown to the user: the
// smoke-free streak and the estimated money saved. All functions are pure;
// "today" is always an explicit parameter.
package metrics

import (
	"math"
	"time"

	"github.com/avoyan/quittrack/internal/config"
	"github.com/avoyan/quittrack/internal/tracker"
)

// PricePerCig returns the per-cigarette price, 0 when the pack size is not
// positive (never an error path).
func PricePerCig(set config.Settings) float64 {
	if set.CigsPerPack <= 0 {
		return 0
	}
	return set.PricePerPack / float64(set.CigsPerPack)
}

// Streak counts consecutive smoke-free days ending today, walking backward.
// A day is smoke-free when its count is exactly 0 (missing dates count as
// 0). The walk stops at the first day with a positive count, or once the
// walked-back date falls before quitDate. A zero quitDate is treated as
// today, capping the window at a single day.
func Streak(counts tracker.DayCounts, quitDate, today time.Time) int {
	day := tracker.DayStart(today)
	if quitDate.IsZero() {
		quitDate = day
	}
	quit := tracker.DayStart(quitDate)

	streak := 0
	for {
		if counts.At(day) != 0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
		if day.Before(quit) {
			break
		}
	}
	return streak
}

// Savings sums the estimated money saved across logged days:
// max(0, baselinePerDay − count) × price-per-cigarette per day. When
// fromQuitDate is true, days before the quit date are excluded.
func Savings(counts tracker.DayCounts, set config.Settings, fromQuitDate bool) float64 {
	price := PricePerCig(set)
	if price == 0 {
		return 0
	}

	quitKey := tracker.DayKey(set.QuitDate)
	var total float64
	for key, count := range counts {
		if fromQuitDate && key < quitKey {
			continue
		}
		if diff := set.BaselinePerDay - count; diff > 0 {
			total += float64(diff) * price
		}
	}
	return total
}

// DailySaving is the single-day savings term used by the calendar view.
func DailySaving(count int, set config.Settings) float64 {
	diff := set.BaselinePerDay - count
	if diff < 0 {
		diff = 0
	}
	return float64(diff) * PricePerCig(set)
}

// Round2 rounds to 2 decimal places, half away from zero. Money stays at
// full float precision between calls; rounding happens at display time.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
