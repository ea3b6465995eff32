// Package testutil provides fixture builders shared by package tests.
package testutil

import (
	"time"

	"agmtrack/internal/domain"
	"github.com/google/uuid"
)

// Team options
type TeamOption func(*domain.Team)

func WithTeamDescription(d string) TeamOption {
	return func(t *domain.Team) {
		t.Description = d
	}
}

func WithColorTag(c string) TeamOption {
	return func(t *domain.Team) {
		t.ColorTag = c
	}
}

func NewTestTeam(id, name string, opts ...TeamOption) domain.Team {
	t := domain.Team{
		ID:       id,
		Name:     name,
		ColorTag: "blue",
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Task options
type TaskOption func(*domain.Task)

func WithDates(start, end string) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = start
		t.EndDate = end
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTeamID(id string) TaskOption {
	return func(t *domain.Task) {
		t.TeamID = id
	}
}

func WithResponsible(name string) TaskOption {
	return func(t *domain.Task) {
		t.ResponsiblePerson = name
	}
}

func AsMilestone() TaskOption {
	return func(t *domain.Task) {
		t.IsMilestone = true
	}
}

func WithProgress(pct int) TaskOption {
	return func(t *domain.Task) {
		t.ProgressPercent = pct
	}
}

func WithTaskLogs(logs ...domain.TrackingLog) TaskOption {
	return func(t *domain.Task) {
		t.Logs = logs
	}
}

func NewTestTask(id, title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:        id,
		Title:     title,
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
		Status:    domain.TaskPending,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Phase options
type PhaseOption func(*domain.Phase)

func WithPeriod(p string) PhaseOption {
	return func(ph *domain.Phase) {
		ph.Period = p
	}
}

func WithTasks(tasks ...domain.Task) PhaseOption {
	return func(ph *domain.Phase) {
		ph.Tasks = tasks
	}
}

func NewTestPhase(id int, name string, opts ...PhaseOption) domain.Phase {
	ph := domain.Phase{
		ID:   id,
		Name: name,
	}
	for _, opt := range opts {
		opt(&ph)
	}
	return ph
}

// AgendaItem options
type AgendaOption func(*domain.AgendaItem)

func WithAgendaStatus(s domain.AgendaStatus) AgendaOption {
	return func(a *domain.AgendaItem) {
		a.Status = s
	}
}

func WithAgendaTeam(teamID, person string) AgendaOption {
	return func(a *domain.AgendaItem) {
		a.ResponsibleTeamID = teamID
		a.ResponsiblePerson = person
	}
}

func NewTestAgendaItem(id, title string, opts ...AgendaOption) domain.AgendaItem {
	a := domain.AgendaItem{
		ID:     id,
		Title:  title,
		Status: domain.AgendaDrafting,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// NewTestLog builds a tracking log with a fresh id and the given timestamp.
func NewTestLog(ts time.Time, message, author string) domain.TrackingLog {
	return domain.TrackingLog{
		ID:        uuid.New().String(),
		Timestamp: ts,
		Message:   message,
		Author:    author,
	}
}
