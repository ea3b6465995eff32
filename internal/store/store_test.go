package store

import (
	"fmt"
	"testing"
	"time"

	"agmtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 7, 9, 30, 0, 0, time.UTC)

// testStore builds a store with a deterministic clock and sequential log ids.
func testStore(seed Snapshot) *Store {
	n := 0
	return New(seed,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("log-%d", n)
		}),
	)
}

func seedPhases() []domain.Phase {
	return []domain.Phase{
		{ID: 1, Name: "Preparation", Tasks: []domain.Task{
			{ID: "1.1", Title: "Print tender", Status: domain.TaskPending},
			{ID: "1.2", Title: "Draft narrative", Status: domain.TaskPending},
		}},
		{ID: 2, Name: "Audit", Tasks: []domain.Task{
			{ID: "2.1", Title: "Close the books", Status: domain.TaskPending},
		}},
	}
}

// ── teams ────────────────────────────────────────────────────────────────────

func TestAddTeam_AppendsAtEnd(t *testing.T) {
	s := testStore(Snapshot{Teams: []domain.Team{{ID: "book", Name: "Report Committee"}}})

	require.NoError(t, s.AddTeam(domain.Team{ID: "finance", Name: "Finance"}))

	teams := s.Snapshot().Teams
	require.Len(t, teams, 2)
	assert.Equal(t, "finance", teams[1].ID)
}

func TestAddTeam_RejectsEmptyID(t *testing.T) {
	s := testStore(Snapshot{})
	err := s.AddTeam(domain.Team{Name: "Nameless"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestAddTeam_RejectsDuplicateID(t *testing.T) {
	s := testStore(Snapshot{Teams: []domain.Team{{ID: "book"}}})
	err := s.AddTeam(domain.Team{ID: "book"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateTeam_ReplacesByID(t *testing.T) {
	s := testStore(Snapshot{Teams: []domain.Team{{ID: "book", Name: "Old"}, {ID: "finance"}}})

	ok := s.UpdateTeam(domain.Team{ID: "book", Name: "New"})

	assert.True(t, ok)
	teams := s.Snapshot().Teams
	assert.Equal(t, "New", teams[0].Name)
	assert.Equal(t, "finance", teams[1].ID, "order preserved")
}

func TestUpdateTeam_UnknownIDIsNoOp(t *testing.T) {
	s := testStore(Snapshot{Teams: []domain.Team{{ID: "book"}}})
	assert.False(t, s.UpdateTeam(domain.Team{ID: "ghost"}))
	assert.Len(t, s.Snapshot().Teams, 1)
}

func TestDeleteTeam_LeavesDanglingReferences(t *testing.T) {
	s := testStore(Snapshot{
		Teams: []domain.Team{{ID: "vendor", Name: "Print Vendor"}},
		Phases: []domain.Phase{
			{ID: 3, Tasks: []domain.Task{{ID: "3.2b", TeamID: "vendor"}}},
		},
	})

	assert.True(t, s.DeleteTeam("vendor"))

	snap := s.Snapshot()
	assert.Empty(t, snap.Teams)
	assert.Equal(t, "vendor", snap.Phases[0].Tasks[0].TeamID, "task reference untouched")

	_, ok := s.TeamByID("vendor")
	assert.False(t, ok)
	assert.Equal(t, "vendor", domain.TeamName(snap.Teams, "vendor"), "lookup falls back to raw id")
}

// ── agenda items ─────────────────────────────────────────────────────────────

func TestAddAgendaItem_PrependsNotAppends(t *testing.T) {
	s := testStore(Snapshot{AgendaItems: []domain.AgendaItem{{ID: "A"}, {ID: "B"}}})

	s.AddAgendaItem(domain.AgendaItem{ID: "new"})

	items := s.Snapshot().AgendaItems
	require.Len(t, items, 3)
	assert.Equal(t, []string{"new", "A", "B"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestUpdateAgendaItem_PreservesOrder(t *testing.T) {
	s := testStore(Snapshot{AgendaItems: []domain.AgendaItem{
		{ID: "1", Status: domain.AgendaDrafting},
		{ID: "2", Status: domain.AgendaDrafting},
	}})

	ok := s.UpdateAgendaItem(domain.AgendaItem{ID: "2", Status: domain.AgendaFinalized})

	assert.True(t, ok)
	items := s.Snapshot().AgendaItems
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, domain.AgendaFinalized, items[1].Status)
}

func TestDeleteAgendaItem_UnknownIDIsNoOp(t *testing.T) {
	s := testStore(Snapshot{AgendaItems: []domain.AgendaItem{{ID: "1"}}})
	assert.False(t, s.DeleteAgendaItem("ghost"))
	assert.Len(t, s.Snapshot().AgendaItems, 1)
}

func TestAppendAgendaLog_PrependsFreshLog(t *testing.T) {
	s := testStore(Snapshot{AgendaItems: []domain.AgendaItem{
		{ID: "5", Title: "Financial statements", Logs: []domain.TrackingLog{{ID: "existing"}}},
	}})

	ok := s.AppendAgendaLog("5", "Auditor draft received", "secretary")

	require.True(t, ok)
	item := s.Snapshot().AgendaItems[0]
	require.Len(t, item.Logs, 2)
	assert.Equal(t, "log-1", item.Logs[0].ID)
	assert.Equal(t, "Auditor draft received", item.Logs[0].Message)
	assert.Equal(t, "secretary", item.Logs[0].Author)
	assert.Equal(t, testNow, item.Logs[0].Timestamp)
	assert.Equal(t, "existing", item.Logs[1].ID)
}

func TestAppendAgendaLog_StaleIDIsNoOp(t *testing.T) {
	s := testStore(Snapshot{})
	assert.False(t, s.AppendAgendaLog("ghost", "msg", "who"))
}

// ── tasks ────────────────────────────────────────────────────────────────────

func TestAddTask_AppendsAtEndOfPhase(t *testing.T) {
	s := testStore(Snapshot{Phases: seedPhases()})

	ok := s.AddTask(1, domain.Task{ID: "1.3", Title: "Brief the auditor"})

	require.True(t, ok)
	tasks := s.Snapshot().Phases[0].Tasks
	require.Len(t, tasks, 3)
	assert.Equal(t, "1.3", tasks[2].ID, "tasks are oldest-first")
}

func TestAddTask_UnknownPhaseIsNoOp(t *testing.T) {
	s := testStore(Snapshot{Phases: seedPhases()})
	assert.False(t, s.AddTask(99, domain.Task{ID: "x"}))
}

func TestAddThenDeleteTask_RoundTrip(t *testing.T) {
	s := testStore(Snapshot{Phases: seedPhases()})
	before := s.Snapshot().Phases[0].Tasks

	require.True(t, s.AddTask(1, domain.Task{ID: "1.9"}))
	require.True(t, s.DeleteTask(1, "1.9"))

	after := s.Snapshot().Phases[0].Tasks
	assert.Equal(t, before, after)
}

func TestUpdateTask_ScopedToNamedPhase(t *testing.T) {
	phases := seedPhases()
	// Same task id in two phases; only the named phase may change.
	phases[1].Tasks = append(phases[1].Tasks, domain.Task{ID: "1.1", Title: "Shadow"})
	s := testStore(Snapshot{Phases: phases})

	ok := s.UpdateTask(2, domain.Task{ID: "1.1", Title: "Updated shadow"})

	require.True(t, ok)
	snap := s.Snapshot()
	assert.Equal(t, "Print tender", snap.Phases[0].Tasks[0].Title)
	assert.Equal(t, "Updated shadow", snap.Phases[1].Tasks[1].Title)
}

func TestDeleteTask_UnknownTaskIsNoOp(t *testing.T) {
	s := testStore(Snapshot{Phases: seedPhases()})
	assert.False(t, s.DeleteTask(1, "ghost"))
	assert.Len(t, s.Snapshot().Phases[0].Tasks, 2)
}

func TestAppendTaskLog_MonotonicAndNewestFirst(t *testing.T) {
	s := testStore(Snapshot{Phases: seedPhases()})

	require.True(t, s.AppendTaskLog(2, "2.1", "Trial balance done", "accounting"))
	require.True(t, s.AppendTaskLog(2, "2.1", "Adjustments posted", "accounting"))

	task := s.Snapshot().Phases[1].Tasks[0]
	require.Len(t, task.Logs, 2)
	assert.Equal(t, "Adjustments posted", task.Logs[0].Message, "newest log at index 0")
	assert.Equal(t, "Trial balance done", task.Logs[1].Message)
}

func TestAppendTaskLog_WrongPhaseIsNoOp(t *testing.T) {
	s := testStore(Snapshot{Phases: seedPhases()})
	assert.False(t, s.AppendTaskLog(1, "2.1", "msg", "who"))
	assert.Empty(t, s.Snapshot().Phases[1].Tasks[0].Logs)
}

// ── snapshot semantics ───────────────────────────────────────────────────────

func TestSnapshot_UnaffectedByLaterMutations(t *testing.T) {
	s := testStore(Snapshot{Phases: seedPhases(), AgendaItems: []domain.AgendaItem{{ID: "1"}}})
	before := s.Snapshot()

	s.AddTask(1, domain.Task{ID: "1.3"})
	s.AppendTaskLog(1, "1.1", "note", "who")
	s.AddAgendaItem(domain.AgendaItem{ID: "0"})
	s.DeleteTask(2, "2.1")

	assert.Len(t, before.Phases[0].Tasks, 2)
	assert.Empty(t, before.Phases[0].Tasks[0].Logs)
	assert.Len(t, before.AgendaItems, 1)
	assert.Len(t, before.Phases[1].Tasks, 1)
}
