// Package config loads the tracker's settings from a YAML file.
//
// The tracker deliberately runs against a simulated "today" so that the
// schedule can be reviewed as of a chosen date; nothing downstream reads the
// system clock for schedule math.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"agmtrack/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
// It is read-only after Load returns.
type Config struct {
	// Today is the simulated current date (YYYY-MM-DD) all derived metrics
	// are computed against.
	Today string `yaml:"today"`

	// AGMDate is the general meeting date the countdown targets.
	AGMDate string `yaml:"agm_date"`

	// UpcomingWindowDays is the lookahead for due-soon notifications.
	UpcomingWindowDays int `yaml:"upcoming_window_days"`

	// Role selects which mutation affordances the UI offers.
	Role domain.Role `yaml:"role"`

	// Fixture is an optional path to a seed fixture file. Empty means the
	// embedded default dataset.
	Fixture string `yaml:"fixture"`
}

// Default returns the built-in settings: the AGM 2026 plan reviewed as of
// 7 Feb 2026, a 3-day notification window, and the admin role.
func Default() Config {
	return Config{
		Today:              "2026-02-07",
		AGMDate:            "2026-03-13",
		UpcomingWindowDays: 3,
		Role:               domain.RoleAdmin,
	}
}

// Path returns the config file location: $AGMTRACK_CONFIG if set, otherwise
// ~/.agmtrack/config.yaml.
func Path() (string, error) {
	if p := os.Getenv("AGMTRACK_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".agmtrack", "config.yaml"), nil
}

// Load reads the config file at path, layered over Default. A missing file
// is not an error — the defaults apply. $AGMTRACK_FIXTURE overrides the
// fixture path from either source.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to defaults
	case err != nil:
		return Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if p := os.Getenv("AGMTRACK_FIXTURE"); p != "" {
		cfg.Fixture = p
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if _, ok := domain.ParseDate(c.Today); !ok {
		return fmt.Errorf("config: today: invalid date %q (expected YYYY-MM-DD)", c.Today)
	}
	if _, ok := domain.ParseDate(c.AGMDate); !ok {
		return fmt.Errorf("config: agm_date: invalid date %q (expected YYYY-MM-DD)", c.AGMDate)
	}
	if c.UpcomingWindowDays < 0 {
		return fmt.Errorf("config: upcoming_window_days must not be negative")
	}
	if c.Role != domain.RoleAdmin && c.Role != domain.RoleStaff {
		return fmt.Errorf("config: role must be %q or %q", domain.RoleAdmin, domain.RoleStaff)
	}
	return nil
}

// CurrentDate returns Today as a time value.
func (c Config) CurrentDate() time.Time {
	t, _ := domain.ParseDate(c.Today)
	return t
}

// MeetingDate returns AGMDate as a time value.
func (c Config) MeetingDate() time.Time {
	t, _ := domain.ParseDate(c.AGMDate)
	return t
}
