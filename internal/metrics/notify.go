package metrics

import (
	"time"

	"agmtrack/internal/domain"
)

// DefaultUpcomingWindow is the lookahead window, in days, for upcoming-task
// notifications.
const DefaultUpcomingWindow = 3

// OverdueTasks returns tasks needing urgent attention: explicitly delayed,
// or not completed with an end date before current. Traversal order (phase
// order, then task order) is preserved. Tasks with unparseable end dates
// fail closed and are never overdue.
func OverdueTasks(phases []domain.Phase, current time.Time) []domain.Task {
	var out []domain.Task
	for _, task := range domain.FlattenTasks(phases) {
		if task.Status == domain.TaskDelayed {
			out = append(out, task)
			continue
		}
		if task.Status == domain.TaskCompleted {
			continue
		}
		end, ok := task.End()
		if ok && end.Before(current) {
			out = append(out, task)
		}
	}
	return out
}

// UpcomingTasks returns tasks due within withinDays of current, excluding
// completed and delayed ones. Disjoint from OverdueTasks by construction:
// delayed tasks are excluded here and past-due tasks have a negative day
// diff. Unparseable end dates fail closed.
func UpcomingTasks(phases []domain.Phase, current time.Time, withinDays int) []domain.Task {
	var out []domain.Task
	for _, task := range domain.FlattenTasks(phases) {
		if task.Status == domain.TaskCompleted || task.Status == domain.TaskDelayed {
			continue
		}
		end, ok := task.End()
		if !ok {
			continue
		}
		diff := DaysRemaining(end, current)
		if diff >= 0 && diff <= withinDays {
			out = append(out, task)
		}
	}
	return out
}
