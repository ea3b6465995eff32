// Package report assembles the derived views the dashboard and CLI commands
// render: the overall overview, per-phase progress, and the notification
// sets. It is read-only glue over the store snapshot and the metrics
// functions; the reference date always comes from the caller.
package report

import (
	"time"

	"agmtrack/internal/domain"
	"agmtrack/internal/metrics"
	"agmtrack/internal/store"
)

// PhaseSummary is one row of the per-phase progress table.
type PhaseSummary struct {
	Phase       domain.Phase
	ProgressPct int
	TaskCount   int
}

// Overview is everything the dashboard needs in one pass.
type Overview struct {
	Today     time.Time
	AGMDate   time.Time
	DaysToAGM int

	CompletedTasks int
	TotalTasks     int
	ProgressPct    int

	Readiness metrics.Readiness

	Overdue  []domain.Task
	Upcoming []domain.Task

	Phases []PhaseSummary

	// NextMilestone is the earliest not-completed milestone due on or after
	// Today, if any.
	NextMilestone *domain.Task
}

// BuildOverview computes the full dashboard view from a snapshot.
// withinDays bounds the upcoming-task window.
func BuildOverview(snap store.Snapshot, today, agmDate time.Time, withinDays int) Overview {
	completed, total := metrics.Completion(snap.Phases)

	o := Overview{
		Today:          today,
		AGMDate:        agmDate,
		DaysToAGM:      metrics.DaysRemaining(agmDate, today),
		CompletedTasks: completed,
		TotalTasks:     total,
		ProgressPct:    metrics.OverallProgress(snap.Phases),
		Readiness:      metrics.AgendaReadiness(snap.AgendaItems),
		Overdue:        metrics.OverdueTasks(snap.Phases, today),
		Upcoming:       metrics.UpcomingTasks(snap.Phases, today, withinDays),
		NextMilestone:  nextMilestone(snap.Phases, today),
	}

	for _, p := range snap.Phases {
		o.Phases = append(o.Phases, PhaseSummary{
			Phase:       p,
			ProgressPct: metrics.PhaseProgress(p),
			TaskCount:   len(p.Tasks),
		})
	}

	return o
}

func nextMilestone(phases []domain.Phase, today time.Time) *domain.Task {
	var best *domain.Task
	var bestEnd time.Time

	for _, task := range domain.FlattenTasks(phases) {
		if !task.IsMilestone || task.Status == domain.TaskCompleted {
			continue
		}
		end, ok := task.End()
		if !ok || end.Before(today) {
			continue
		}
		if best == nil || end.Before(bestEnd) {
			t := task
			best = &t
			bestEnd = end
		}
	}
	return best
}
