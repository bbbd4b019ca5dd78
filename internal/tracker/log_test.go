package tracker

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// tempLogPath returns a log path inside a fresh temp dir without creating
// the file, so tests can exercise the absent-file path.
func tempLogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "logs.csv")
}

func TestOpenAbsentFile(t *testing.T) {
	s, err := Open(tempLogPath(t))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestSetCountRoundTrip(t *testing.T) {
	path := tempLogPath(t)
	s, err := Open(path)
	require.NoError(t, err)

	for _, count := range []int{0, 1, 42, 200} {
		d := day(2024, time.March, count%28+1)
		require.NoError(t, s.SetCount(d, count))
		assert.Equal(t, count, s.Count(d))
	}

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, s.Counts(), reloaded.Counts())
}

func TestSetCountRejectsOutOfRange(t *testing.T) {
	s, err := Open(tempLogPath(t))
	require.NoError(t, err)

	d := day(2024, time.March, 15)
	require.NoError(t, s.SetCount(d, 3))

	require.ErrorIs(t, s.SetCount(d, -1), ErrCountRange)
	require.ErrorIs(t, s.SetCount(d, 201), ErrCountRange)

	// The rejected writes must not have touched the stored value.
	assert.Equal(t, 3, s.Count(d))
}

func TestOpenSkipsMalformedLines(t *testing.T) {
	path := tempLogPath(t)
	content := "# comment line\n" +
		"\n" +
		"2024-03-15,5\n" +
		"not-a-date,3\n" +
		"2024-03-16\n" +
		"2024-03-17,many\n" +
		"2024-03-18,250\n" +
		"2024-03-19,-2\n" +
		"2024-03-20,0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 5, s.Count(day(2024, time.March, 15)))
	assert.Equal(t, 0, s.Count(day(2024, time.March, 20)))
	assert.Contains(t, s.Counts(), "2024-03-20")
}

func TestSaveSortsByDateAscending(t *testing.T) {
	path := tempLogPath(t)
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.SetCount(day(2024, time.March, 20), 1))
	require.NoError(t, s.SetCount(day(2024, time.February, 2), 2))
	require.NoError(t, s.SetCount(day(2024, time.March, 1), 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-02,2\n2024-03-01,3\n2024-03-20,1\n", string(data))
}

func TestClearDay(t *testing.T) {
	path := tempLogPath(t)
	s, err := Open(path)
	require.NoError(t, err)

	d := day(2024, time.March, 15)
	require.NoError(t, s.SetCount(d, 7))
	require.NoError(t, s.ClearDay(d))

	assert.Equal(t, 0, s.Count(d))

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Len())
}

func TestClearAllThenReload(t *testing.T) {
	path := tempLogPath(t)
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.SetCount(day(2024, time.March, 15), 7))
	require.NoError(t, s.SetCount(day(2024, time.March, 16), 2))
	require.NoError(t, s.ClearAll())

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Len())
}

func TestEntriesSorted(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)

	require.NoError(t, s.SetCount(day(2024, time.March, 20), 1))
	require.NoError(t, s.SetCount(day(2024, time.January, 2), 2))

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, day(2024, time.January, 2), entries[0].Date)
	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, day(2024, time.March, 20), entries[1].Date)
}

func TestInMemoryStore(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)

	d := day(2024, time.March, 15)
	require.NoError(t, s.SetCount(d, 9))
	assert.Equal(t, 9, s.Count(d))
	assert.Empty(t, s.Path())
}
