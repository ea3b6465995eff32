package domain

import "time"

// Task is a unit of work within a phase: a due window, a status, an optional
// milestone flag, and its own tracking log.
type Task struct {
	ID                string
	Title             string
	Description       string
	StartDate         string // calendar date, YYYY-MM-DD
	EndDate           string // calendar date, YYYY-MM-DD
	TeamID            string // weak reference
	ResponsiblePerson string
	Status            TaskStatus
	IsMilestone       bool
	ProgressPercent   int // 0-100
	Logs              []TrackingLog
}

// Start parses the task's start date. ok is false for malformed dates.
func (t *Task) Start() (time.Time, bool) {
	return ParseDate(t.StartDate)
}

// End parses the task's end date. ok is false for malformed dates.
func (t *Task) End() (time.Time, bool) {
	return ParseDate(t.EndDate)
}

// Clone returns a deep copy, including an independent log list.
func (t Task) Clone() Task {
	out := t
	out.Logs = CloneLogs(t.Logs)
	return out
}
