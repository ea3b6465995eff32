// Package metrics computes derived read-only values over a store snapshot.
//
// Every function takes the reference date as an explicit parameter — the
// tracker runs against a simulated "today", so nothing in this package may
// read the system clock. Same inputs always produce the same outputs.
package metrics

import (
	"math"
	"time"

	"agmtrack/internal/domain"
)

// Completion counts completed tasks against the total across all phases.
func Completion(phases []domain.Phase) (completed, total int) {
	for _, p := range phases {
		total += len(p.Tasks)
		for _, t := range p.Tasks {
			if t.Status == domain.TaskCompleted {
				completed++
			}
		}
	}
	return completed, total
}

// OverallProgress is the rounded percentage of completed tasks.
// Returns 0 for an empty schedule.
func OverallProgress(phases []domain.Phase) int {
	completed, total := Completion(phases)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// PhaseProgress is the rounded completion percentage of a single phase.
// Returns 0 for a phase with no tasks.
func PhaseProgress(p domain.Phase) int {
	if len(p.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range p.Tasks {
		if t.Status == domain.TaskCompleted {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(p.Tasks)) * 100))
}

// DaysRemaining is the ceiling day count from current to target.
// Negative once the target has passed; that is a meaningful value, not an
// error.
func DaysRemaining(target, current time.Time) int {
	return int(math.Ceil(target.Sub(current).Hours() / 24))
}
