package metrics

import (
	"testing"
	"time"

	"agmtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixed reference date used throughout: Saturday 2026-02-07.
var current = time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)

func task(id, end string, status domain.TaskStatus) domain.Task {
	return domain.Task{ID: id, EndDate: end, StartDate: end, Status: status}
}

func phasesOf(tasks ...domain.Task) []domain.Phase {
	return []domain.Phase{{ID: 1, Tasks: tasks}}
}

// ── progress ─────────────────────────────────────────────────────────────────

func TestOverallProgress_FourOfTen(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 10; i++ {
		status := domain.TaskPending
		if i < 4 {
			status = domain.TaskCompleted
		}
		tasks = append(tasks, task("t", "2026-01-01", status))
	}
	assert.Equal(t, 40, OverallProgress(phasesOf(tasks...)))
}

func TestOverallProgress_EmptyScheduleIsZero(t *testing.T) {
	assert.Equal(t, 0, OverallProgress(nil))
	assert.Equal(t, 0, OverallProgress([]domain.Phase{{ID: 1}}))
}

func TestOverallProgress_CountsAcrossPhases(t *testing.T) {
	phases := []domain.Phase{
		{ID: 1, Tasks: []domain.Task{task("a", "2026-01-01", domain.TaskCompleted)}},
		{ID: 2, Tasks: []domain.Task{task("b", "2026-01-01", domain.TaskPending)}},
	}
	assert.Equal(t, 50, OverallProgress(phases))
}

func TestPhaseProgress(t *testing.T) {
	p := domain.Phase{Tasks: []domain.Task{
		task("a", "2026-01-01", domain.TaskCompleted),
		task("b", "2026-01-01", domain.TaskCompleted),
		task("c", "2026-01-01", domain.TaskDelayed),
	}}
	assert.Equal(t, 67, PhaseProgress(p))
	assert.Equal(t, 0, PhaseProgress(domain.Phase{}))
}

func TestDaysRemaining(t *testing.T) {
	agm := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 34, DaysRemaining(agm, current))
	assert.Equal(t, 0, DaysRemaining(current, current))
	assert.Equal(t, -7, DaysRemaining(current.AddDate(0, 0, -7), current))
}

// ── overdue / upcoming ───────────────────────────────────────────────────────

func TestOverdueTasks_PastDuePending(t *testing.T) {
	phases := phasesOf(task("2.4", "2026-02-01", domain.TaskPending))
	overdue := OverdueTasks(phases, current)
	require.Len(t, overdue, 1)
	assert.Equal(t, "2.4", overdue[0].ID)
}

func TestOverdueTasks_DelayedAlwaysQualifies(t *testing.T) {
	// Delayed counts even when the end date is in the future.
	phases := phasesOf(task("3.1", "2026-03-01", domain.TaskDelayed))
	assert.Len(t, OverdueTasks(phases, current), 1)
}

func TestOverdueTasks_CompletedNeverQualifies(t *testing.T) {
	phases := phasesOf(task("1.1", "2025-11-15", domain.TaskCompleted))
	assert.Empty(t, OverdueTasks(phases, current))
}

func TestOverdueTasks_MalformedEndDateFailsClosed(t *testing.T) {
	phases := phasesOf(task("x", "soon", domain.TaskPending))
	assert.Empty(t, OverdueTasks(phases, current))
}

func TestOverdueTasks_PreservesTraversalOrder(t *testing.T) {
	phases := []domain.Phase{
		{ID: 1, Tasks: []domain.Task{task("1.2", "2025-12-31", domain.TaskPending)}},
		{ID: 2, Tasks: []domain.Task{
			task("2.1", "2026-01-15", domain.TaskPending),
			task("2.3", "2026-01-30", domain.TaskDelayed),
		}},
	}
	overdue := OverdueTasks(phases, current)
	require.Len(t, overdue, 3)
	assert.Equal(t, "1.2", overdue[0].ID)
	assert.Equal(t, "2.1", overdue[1].ID)
	assert.Equal(t, "2.3", overdue[2].ID)
}

func TestUpcomingTasks_WithinWindow(t *testing.T) {
	// Due 2026-02-09 at current 2026-02-07: diff of 2 days, inside the window.
	phases := phasesOf(task("3.2a", "2026-02-09", domain.TaskPending))
	upcoming := UpcomingTasks(phases, current, DefaultUpcomingWindow)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "3.2a", upcoming[0].ID)
}

func TestUpcomingTasks_DueTodayQualifies(t *testing.T) {
	phases := phasesOf(task("x", "2026-02-07", domain.TaskInProgress))
	assert.Len(t, UpcomingTasks(phases, current, 3), 1)
}

func TestUpcomingTasks_BeyondWindowExcluded(t *testing.T) {
	phases := phasesOf(task("x", "2026-02-11", domain.TaskPending))
	assert.Empty(t, UpcomingTasks(phases, current, 3))
}

func TestUpcomingTasks_DelayedAndCompletedExcluded(t *testing.T) {
	phases := phasesOf(
		task("a", "2026-02-08", domain.TaskDelayed),
		task("b", "2026-02-08", domain.TaskCompleted),
	)
	assert.Empty(t, UpcomingTasks(phases, current, 3))
}

func TestUpcomingTasks_MalformedEndDateFailsClosed(t *testing.T) {
	phases := phasesOf(task("x", "02/09/2026", domain.TaskPending))
	assert.Empty(t, UpcomingTasks(phases, current, 3))
}

func TestOverdueAndUpcoming_Disjoint(t *testing.T) {
	phases := phasesOf(
		task("past", "2026-02-01", domain.TaskPending),
		task("today", "2026-02-07", domain.TaskPending),
		task("soon", "2026-02-09", domain.TaskInProgress),
		task("late", "2026-02-09", domain.TaskDelayed),
		task("done", "2026-02-01", domain.TaskCompleted),
		task("far", "2026-03-01", domain.TaskPending),
	)

	overdue := OverdueTasks(phases, current)
	upcoming := UpcomingTasks(phases, current, DefaultUpcomingWindow)

	seen := make(map[string]bool)
	for _, tk := range overdue {
		seen[tk.ID] = true
	}
	for _, tk := range upcoming {
		assert.False(t, seen[tk.ID], "task %s in both sets", tk.ID)
	}

	require.Len(t, overdue, 2) // past, late
	require.Len(t, upcoming, 2) // today, soon
}

// ── agenda readiness ─────────────────────────────────────────────────────────

func TestAgendaReadiness_Partitions(t *testing.T) {
	items := []domain.AgendaItem{
		{ID: "1", Status: domain.AgendaDrafting},
		{ID: "2", Status: domain.AgendaDrafting},
		{ID: "3", Status: domain.AgendaReviewing},
		{ID: "4", Status: domain.AgendaFinalized},
	}
	r := AgendaReadiness(items)

	assert.Equal(t, 2, r.Drafting)
	assert.Equal(t, 1, r.Reviewing)
	assert.Equal(t, 1, r.Finalized)
	assert.Equal(t, 4, r.Total)
	assert.InDelta(t, 0.25, r.FinalizedRatio, 1e-9)
}

func TestAgendaReadiness_EmptyAgendaRatioIsZero(t *testing.T) {
	r := AgendaReadiness(nil)
	assert.Equal(t, 0, r.Total)
	assert.Zero(t, r.FinalizedRatio)
}

func TestMetrics_DoNotMutateInput(t *testing.T) {
	phases := phasesOf(
		task("a", "2026-02-01", domain.TaskPending),
		task("b", "2026-02-09", domain.TaskPending),
	)
	before := phases[0].Tasks[0]

	OverdueTasks(phases, current)
	UpcomingTasks(phases, current, 3)
	OverallProgress(phases)

	assert.Equal(t, before, phases[0].Tasks[0])
}
