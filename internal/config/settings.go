// Package config holds user settings and their TOML persistence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/avoyan/quittrack/internal/tracker"
)

// AppName names the config and data directories.
const AppName = "quittrack"

// Defaults applied when a field is missing or unparseable.
const (
	DefaultCurrency       = "$"
	DefaultPricePerPack   = 7.0
	DefaultCigsPerPack    = 20
	DefaultBaselinePerDay = 20
)

// Settings is the singleton user configuration.
type Settings struct {
	Currency             string
	PricePerPack         float64
	CigsPerPack          int
	BaselinePerDay       int
	NotificationsEnabled bool
	QuitDate             time.Time
}

// fileSettings mirrors the on-disk key-value layout. Pointer fields let a
// missing key fall back to its default independently of the others.
type fileSettings struct {
	Currency             *string  `toml:"currency"`
	PricePerPack         *float64 `toml:"pricePerPack"`
	CigsPerPack          *int     `toml:"cigsPerPack"`
	BaselinePerDay       *int     `toml:"baselinePerDay"`
	NotificationsEnabled *bool    `toml:"notificationsEnabled"`
	QuitDate             *string  `toml:"quitDate"`
}

type fileSettingsOut struct {
	Currency             string  `toml:"currency"`
	PricePerPack         float64 `toml:"pricePerPack"`
	CigsPerPack          int     `toml:"cigsPerPack"`
	BaselinePerDay       int     `toml:"baselinePerDay"`
	NotificationsEnabled bool    `toml:"notificationsEnabled"`
	QuitDate             string  `toml:"quitDate"`
}

// Default returns the settings used when nothing is persisted yet.
// The quit date defaults to today, supplied by the caller.
func Default(today time.Time) Settings {
	return Settings{
		Currency:             DefaultCurrency,
		PricePerPack:         DefaultPricePerPack,
		CigsPerPack:          DefaultCigsPerPack,
		BaselinePerDay:       DefaultBaselinePerDay,
		NotificationsEnabled: true,
		QuitDate:             tracker.DayStart(today),
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Path returns the full path to the settings file.
func Path() string {
	return filepath.Join(Dir(), "settings.toml")
}

// DataDir returns the XDG-compliant data directory holding the log and
// backups.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Exists reports whether a settings file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads settings from path. Loading never fails: an absent or
// unparseable file degrades to defaults, and any individual field that is
// missing or out of range falls back to its default. The injected today
// supplies the default quit date.
func Load(path string, today time.Time) Settings {
	set := Default(today)

	data, err := os.ReadFile(path)
	if err != nil {
		return set
	}

	var raw fileSettings
	if err := toml.Unmarshal(data, &raw); err != nil {
		return set
	}

	if raw.Currency != nil && *raw.Currency != "" {
		set.Currency = *raw.Currency
	}
	if raw.PricePerPack != nil && *raw.PricePerPack > 0 {
		set.PricePerPack = *raw.PricePerPack
	}
	if raw.CigsPerPack != nil && *raw.CigsPerPack > 0 {
		set.CigsPerPack = *raw.CigsPerPack
	}
	if raw.BaselinePerDay != nil && *raw.BaselinePerDay >= 0 {
		set.BaselinePerDay = *raw.BaselinePerDay
	}
	if raw.NotificationsEnabled != nil {
		set.NotificationsEnabled = *raw.NotificationsEnabled
	}
	if raw.QuitDate != nil && *raw.QuitDate != "" {
		if qd, err := time.Parse(tracker.DayFormat, *raw.QuitDate); err == nil {
			set.QuitDate = qd
		}
	}

	return set
}

// Save validates the settings and writes them to path, whole-file
// overwrite. Nothing is written when validation fails.
func Save(path string, set Settings) error {
	if err := set.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	out := fileSettingsOut{
		Currency:             set.Currency,
		PricePerPack:         set.PricePerPack,
		CigsPerPack:          set.CigsPerPack,
		BaselinePerDay:       set.BaselinePerDay,
		NotificationsEnabled: set.NotificationsEnabled,
		QuitDate:             set.QuitDate.Format(tracker.DayFormat),
	}

	enc := toml.NewEncoder(f)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Validate checks field ranges. The per-cigarette price must stay
// well-defined, so pack price and pack size must be positive.
func (s Settings) Validate() error {
	if s.Currency == "" {
		return errors.New("currency must not be empty")
	}
	if s.PricePerPack <= 0 {
		return errors.New("price per pack must be greater than zero")
	}
	if s.CigsPerPack <= 0 {
		return errors.New("cigarettes per pack must be greater than zero")
	}
	if s.BaselinePerDay < 0 {
		return errors.New("baseline cigarettes per day must not be negative")
	}
	if s.QuitDate.IsZero() {
		return errors.New("quit date must be set")
	}
	return nil
}
