package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"agmtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "2026-02-07", cfg.Today)
	assert.Equal(t, "2026-03-13", cfg.AGMDate)
	assert.Equal(t, 3, cfg.UpcomingWindowDays)
	assert.Equal(t, domain.RoleAdmin, cfg.Role)
	assert.Empty(t, cfg.Fixture)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"today: 2026-02-20\nupcoming_window_days: 7\nrole: staff\nfixture: /tmp/plan.json\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2026-02-20", cfg.Today)
	assert.Equal(t, "2026-03-13", cfg.AGMDate, "unset keys keep defaults")
	assert.Equal(t, 7, cfg.UpcomingWindowDays)
	assert.Equal(t, domain.RoleStaff, cfg.Role)
	assert.Equal(t, "/tmp/plan.json", cfg.Fixture)
}

func TestLoad_FixtureEnvOverride(t *testing.T) {
	t.Setenv("AGMTRACK_FIXTURE", "/override/plan.json")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/override/plan.json", cfg.Fixture)
}

func TestLoad_RejectsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("today: someday\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "today")
}

func TestLoad_RejectsBadRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("role: superuser\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")
}

func TestCurrentDate(t *testing.T) {
	cfg := Default()
	assert.Equal(t, time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC), cfg.CurrentDate())
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), cfg.MeetingDate())
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("AGMTRACK_CONFIG", "/etc/agmtrack.yaml")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/etc/agmtrack.yaml", p)
}
