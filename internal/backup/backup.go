// Package backup copies the log file to timestamped snapshots on demand.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNoLogs is returned when there is no log file to export yet.
var ErrNoLogs = errors.New("no logs to export yet")

// Backup describes one snapshot in the backup directory.
type Backup struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Export copies the log file verbatim to
// <backupDir>/logs_<YYYYMMDD_HHMMSS>.csv and returns the destination path.
// A missing log file yields ErrNoLogs and creates nothing. A timestamp
// collision overwrites the earlier snapshot.
func Export(logPath, backupDir string, now time.Time) (string, error) {
	data, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoLogs
		}
		return "", fmt.Errorf("reading log: %w", err)
	}

	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}

	dst := filepath.Join(backupDir, "logs_"+now.Format("20060102_150405")+".csv")
	if err := os.WriteFile(dst, data, 0o600); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return dst, nil
}

// List returns existing snapshots, newest first. An absent backup
// directory yields an empty list. Backups are never auto-pruned.
func List(backupDir string) ([]Backup, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading backup dir: %w", err)
	}

	var backups []Backup
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "logs_") || !strings.HasSuffix(name, ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Backup{
			Name:    name,
			Path:    filepath.Join(backupDir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	// Timestamped names sort chronologically, so newest first is a
	// reverse name sort.
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Name > backups[j].Name
	})
	return backups, nil
}
