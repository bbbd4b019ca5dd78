// Package tracker owns the daily cigarette log: an ordered mapping from
// calendar date to count, persisted as a two-column CSV file.
package tracker

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// MinCount and MaxCount bound a single day's cigarette count.
	MinCount = 0
	MaxCount = 200

	// DayFormat is the calendar date layout used for log keys and the
	// on-disk CSV records.
	DayFormat = "2006-01-02"
)

// ErrCountRange is returned when a count falls outside [MinCount, MaxCount].
var ErrCountRange = fmt.Errorf("count must be between %d and %d", MinCount, MaxCount)

// Entry is one logged day.
type Entry struct {
	Date  time.Time
	Count int
}

// DayCounts maps DayFormat-formatted dates to counts. Missing dates mean 0.
type DayCounts map[string]int

// At returns the count for the given day, 0 if absent.
func (c DayCounts) At(day time.Time) int {
	return c[DayKey(day)]
}

// DayKey formats a time as a log key.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// DayStart truncates a time to midnight in its own location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Store holds the log and persists it after every mutation.
// An empty path makes the store in-memory only (used by tests); Save then
// becomes a no-op.
type Store struct {
	path   string
	counts DayCounts
}

// Open loads the log at path. An absent file yields an empty store.
//
// Parsing is lenient: blank lines and lines starting with '#' are ignored,
// and lines that do not parse as `YYYY-MM-DD,int` or carry an out-of-range
// count are skipped.
func Open(path string) (*Store, error) {
	s := &Store{path: path, counts: make(DayCounts)}
	if path == "" {
		return s, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dateStr, countStr, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		day, err := time.Parse(DayFormat, strings.TrimSpace(dateStr))
		if err != nil {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil || count < MinCount || count > MaxCount {
			continue
		}
		s.counts[DayKey(day)] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}

	return s, nil
}

// Save rewrites the whole log file, entries sorted by date ascending.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	keys := make([]string, 0, len(s.counts))
	for k := range s.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(s.counts[k]))
		b.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("writing log: %w", err)
	}
	return nil
}

// SetCount upserts the count for a day and persists immediately.
// Counts outside [MinCount, MaxCount] are rejected with no state mutated.
func (s *Store) SetCount(day time.Time, count int) error {
	if count < MinCount || count > MaxCount {
		return ErrCountRange
	}
	s.counts[DayKey(day)] = count
	return s.Save()
}

// ClearDay removes the entry for a day (equivalent to an implicit 0) and
// persists.
func (s *Store) ClearDay(day time.Time) error {
	delete(s.counts, DayKey(day))
	return s.Save()
}

// ClearAll empties the log and persists. Destructive; recoverable only via
// a prior backup.
func (s *Store) ClearAll() error {
	s.counts = make(DayCounts)
	return s.Save()
}

// Count returns the stored count for a day, 0 if absent.
func (s *Store) Count(day time.Time) int {
	return s.counts.At(day)
}

// Len returns the number of logged days.
func (s *Store) Len() int {
	return len(s.counts)
}

// Counts exposes the day-keyed mapping for the metrics and report packages.
// Callers must treat it as read-only.
func (s *Store) Counts() DayCounts {
	return s.counts
}

// Entries returns all logged days sorted by date ascending.
func (s *Store) Entries() []Entry {
	keys := make([]string, 0, len(s.counts))
	for k := range s.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		day, err := time.Parse(DayFormat, k)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Date: day, Count: s.counts[k]})
	}
	return entries
}

// Path returns the backing file path, empty for in-memory stores.
func (s *Store) Path() string {
	return s.path
}
