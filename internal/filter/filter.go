// Package filter narrows the phase/task schedule by status, team, and date
// range. Filtering is pure: inputs are never modified.
package filter

import "agmtrack/internal/domain"

// All is the wildcard value for the status and team criteria.
// The zero Criteria matches every task.
const All = ""

// Criteria is a conjunction: a task must satisfy every specified field.
// Unset fields are wildcards.
type Criteria struct {
	Status    domain.TaskStatus
	TeamID    string
	StartFrom string // tasks with StartDate >= StartFrom, calendar date
	EndTo     string // tasks with EndDate <= EndTo, calendar date
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Status == All && c.TeamID == All && c.StartFrom == "" && c.EndTo == ""
}

// Matches reports whether a single task satisfies all specified criteria.
// Date criteria compare chronologically; a task whose relevant date cannot
// be parsed fails a set date criterion.
func (c Criteria) Matches(t domain.Task) bool {
	if c.Status != All && t.Status != c.Status {
		return false
	}
	if c.TeamID != All && t.TeamID != c.TeamID {
		return false
	}
	if c.StartFrom != "" {
		from, okFrom := domain.ParseDate(c.StartFrom)
		start, okStart := t.Start()
		if !okFrom || !okStart || start.Before(from) {
			return false
		}
	}
	if c.EndTo != "" {
		to, okTo := domain.ParseDate(c.EndTo)
		end, okEnd := t.End()
		if !okTo || !okEnd || end.After(to) {
			return false
		}
	}
	return true
}

// Apply returns the phases whose task lists, narrowed to tasks matching the
// criteria, are non-empty. Phases left with no tasks are dropped entirely.
// Phase and task ordering is preserved; with zero criteria the task lists
// come back unchanged.
func Apply(phases []domain.Phase, c Criteria) []domain.Phase {
	if c.IsZero() {
		return phases
	}

	var out []domain.Phase
	for _, p := range phases {
		var kept []domain.Task
		for _, t := range p.Tasks {
			if c.Matches(t) {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			continue
		}
		filtered := p
		filtered.Tasks = kept
		out = append(out, filtered)
	}
	return out
}
