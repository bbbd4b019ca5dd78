package cmd

import (
	"testing"
	"time"

	"github.com/avoyan/quittrack/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayEmptyMeansToday(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	day, err := parseDay("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), day)
}

func TestParseDayISO(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	day, err := parseDay("2024-01-02", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", tracker.DayKey(day))
}

func TestParseDayNaturalLanguage(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	day, err := parseDay("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-14", tracker.DayKey(day))
}

func TestParseDayUnrecognized(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	_, err := parseDay("@@not-a-date@@", now)
	assert.Error(t, err)
}
