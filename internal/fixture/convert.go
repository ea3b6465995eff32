package fixture

import (
	"time"

	"agmtrack/internal/domain"
	"agmtrack/internal/store"
)

// Convert transforms a validated fixture into a store snapshot.
// Call Validate first; Convert assumes the fixture is well-formed and maps
// unknown status strings to the zero-progress defaults.
func Convert(f *File) store.Snapshot {
	snap := store.Snapshot{}

	for _, t := range f.Teams {
		snap.Teams = append(snap.Teams, domain.Team{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			ColorTag:    t.ColorTag,
		})
	}

	for _, p := range f.Phases {
		phase := domain.Phase{
			ID:          p.ID,
			Name:        p.Name,
			Period:      p.Period,
			Description: p.Description,
		}
		for _, t := range p.Tasks {
			task := domain.Task{
				ID:                t.ID,
				Title:             t.Title,
				Description:       t.Description,
				StartDate:         t.StartDate,
				EndDate:           t.EndDate,
				TeamID:            t.TeamID,
				ResponsiblePerson: t.ResponsiblePerson,
				Status:            taskStatus(t.Status),
				IsMilestone:       t.IsMilestone,
				Logs:              convertLogs(t.Logs),
			}
			if t.ProgressPercent != nil {
				task.ProgressPercent = *t.ProgressPercent
			}
			phase.Tasks = append(phase.Tasks, task)
		}
		snap.Phases = append(snap.Phases, phase)
	}

	for _, a := range f.AgendaItems {
		snap.AgendaItems = append(snap.AgendaItems, domain.AgendaItem{
			ID:                a.ID,
			Title:             a.Title,
			ResponsibleTeamID: a.ResponsibleTeamID,
			ResponsiblePerson: a.ResponsiblePerson,
			Status:            agendaStatus(a.Status),
			Logs:              convertLogs(a.Logs),
		})
	}

	return snap
}

func taskStatus(s string) domain.TaskStatus {
	if domain.ValidTaskStatuses[s] {
		return domain.TaskStatus(s)
	}
	return domain.TaskPending
}

func agendaStatus(s string) domain.AgendaStatus {
	if domain.ValidAgendaStatuses[s] {
		return domain.AgendaStatus(s)
	}
	return domain.AgendaDrafting
}

func convertLogs(logs []LogSeed) []domain.TrackingLog {
	var out []domain.TrackingLog
	for _, l := range logs {
		ts, _ := time.Parse(time.RFC3339, l.Timestamp)
		out = append(out, domain.TrackingLog{
			ID:        l.ID,
			Timestamp: ts,
			Message:   l.Message,
			Author:    l.Author,
		})
	}
	return out
}
