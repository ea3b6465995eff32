package filter

import (
	"testing"

	"agmtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schedule() []domain.Phase {
	return []domain.Phase{
		{ID: 1, Name: "Preparation", Tasks: []domain.Task{
			{ID: "1.1", TeamID: "procurement", Status: domain.TaskCompleted, StartDate: "2025-11-01", EndDate: "2025-11-15"},
			{ID: "1.2", TeamID: "book", Status: domain.TaskInProgress, StartDate: "2025-11-01", EndDate: "2025-12-31"},
		}},
		{ID: 2, Name: "Audit", Tasks: []domain.Task{
			{ID: "2.1", TeamID: "finance", Status: domain.TaskPending, StartDate: "2026-01-02", EndDate: "2026-01-15"},
		}},
	}
}

func taskIDs(phases []domain.Phase) []string {
	var ids []string
	for _, t := range domain.FlattenTasks(phases) {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestApply_ZeroCriteriaIsIdentity(t *testing.T) {
	in := schedule()
	out := Apply(in, Criteria{})
	assert.Equal(t, taskIDs(in), taskIDs(out))
	assert.Len(t, out, 2)
}

func TestApply_StatusCriterion(t *testing.T) {
	out := Apply(schedule(), Criteria{Status: domain.TaskPending})
	assert.Equal(t, []string{"2.1"}, taskIDs(out))
}

func TestApply_TeamCriterion(t *testing.T) {
	out := Apply(schedule(), Criteria{TeamID: "book"})
	assert.Equal(t, []string{"1.2"}, taskIDs(out))
}

func TestApply_DateRange(t *testing.T) {
	out := Apply(schedule(), Criteria{StartFrom: "2025-11-01", EndTo: "2025-12-31"})
	assert.Equal(t, []string{"1.1", "1.2"}, taskIDs(out))
}

func TestApply_CriteriaAreConjunctive(t *testing.T) {
	// Team matches 1.2 but the status criterion excludes it.
	out := Apply(schedule(), Criteria{TeamID: "book", Status: domain.TaskPending})
	assert.Empty(t, out)
}

func TestApply_DropsEmptiedPhases(t *testing.T) {
	out := Apply(schedule(), Criteria{Status: domain.TaskCompleted})
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID, "phase 2 dropped, not kept empty")
}

func TestApply_Idempotent(t *testing.T) {
	c := Criteria{TeamID: "finance", StartFrom: "2026-01-01"}
	once := Apply(schedule(), c)
	twice := Apply(once, c)
	assert.Equal(t, once, twice)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := schedule()
	Apply(in, Criteria{Status: domain.TaskPending})
	assert.Len(t, in[0].Tasks, 2)
	assert.Len(t, in[1].Tasks, 1)
}

func TestMatches_MalformedTaskDateFailsDateCriterion(t *testing.T) {
	c := Criteria{StartFrom: "2026-01-01"}
	assert.False(t, c.Matches(domain.Task{StartDate: "around new year"}))

	// Without a date criterion the same task still matches.
	assert.True(t, Criteria{}.Matches(domain.Task{StartDate: "around new year"}))
}

func TestMatches_BoundaryDatesInclusive(t *testing.T) {
	task := domain.Task{StartDate: "2026-01-02", EndDate: "2026-01-15"}
	assert.True(t, Criteria{StartFrom: "2026-01-02"}.Matches(task))
	assert.True(t, Criteria{EndTo: "2026-01-15"}.Matches(task))
	assert.False(t, Criteria{StartFrom: "2026-01-03"}.Matches(task))
	assert.False(t, Criteria{EndTo: "2026-01-14"}.Matches(task))
}
