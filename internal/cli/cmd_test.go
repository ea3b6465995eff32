package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"agmtrack/internal/config"
	"agmtrack/internal/fixture"
	"agmtrack/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App over the embedded seed for command tests.
// The simulated today is 7 Feb 2026; the AGM is 13 Mar 2026.
func testApp(t *testing.T) *App {
	t.Helper()
	return NewApp(store.New(fixture.Default()), config.Default())
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoTTYShowsHelp(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "agmtrack")
}

func TestStatusCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "status")
	require.NoError(t, err)
	assert.Contains(t, out, "34 days")
	assert.Contains(t, out, "Phase 2")
	assert.Contains(t, out, "overdue")
}

func TestStatusCmd_DateOverride(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "status", "--date", "2026-03-12")
	require.NoError(t, err)
	assert.Contains(t, out, "1 days")
}

func TestStatusCmd_RejectsBadDate(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "status", "--date", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--date")
}

func TestNotifyCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "notify")
	require.NoError(t, err)
	assert.Contains(t, out, "OVERDUE")
	assert.Contains(t, out, "Approve statements")
}

func TestNotifyCmd_WithinWidensWindow(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "notify", "--within", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "DUE SOON")
	assert.Contains(t, out, "colour proof")
}

func TestTasksCmd_NoFilter(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "tasks")
	require.NoError(t, err)
	assert.Contains(t, out, "Phase 1: Preparation & Planning")
	assert.Contains(t, out, "Phase 5: Annual General Meeting")
	assert.Contains(t, out, "Audit fieldwork")
}

func TestTasksCmd_StatusFilterDropsEmptyPhases(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "tasks", "--status", "delayed")
	require.NoError(t, err)
	assert.Contains(t, out, "Approve statements")
	assert.NotContains(t, out, "Phase 1: Preparation & Planning")
}

func TestTasksCmd_TeamAndDateFilters(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "tasks",
		"--team", "finance", "--from", "2026-01-01", "--to", "2026-02-28")
	require.NoError(t, err)
	assert.Contains(t, out, "Preliminary book closing")
	assert.NotContains(t, out, "Prepare the narrative manuscript")
}

func TestTasksCmd_RejectsUnknownStatus(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "tasks", "--status", "blocked")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--status")
}

func TestAgendaCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "agenda")
	require.NoError(t, err)
	assert.Contains(t, out, "Message from the chair")
	assert.Contains(t, out, "Finalized")
}

func TestTeamsCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "teams")
	require.NoError(t, err)
	assert.Contains(t, out, "Report Book Committee")
	assert.Contains(t, out, "Print Vendor")
}

func TestValidateCmd_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, fixture.SeedJSON(), 0o644))

	out, err := executeCmd(t, testApp(t), "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
}

func TestValidateCmd_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"teams":[{"id":""}]}`), 0o644))

	out, err := executeCmd(t, testApp(t), "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "id is required")
}

func TestValidateCmd_MissingArg(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "validate")
	assert.Error(t, err)
}
