package domain

// AgendaItem is a content section of the AGM report that must be drafted,
// reviewed, and finalized. Agenda items live in a top-level collection,
// independent of the phase/task schedule, and are kept newest-first.
type AgendaItem struct {
	ID                string
	Title             string
	ResponsibleTeamID string // weak reference
	ResponsiblePerson string
	Status            AgendaStatus
	Logs              []TrackingLog
}

// Clone returns a deep copy, including an independent log list.
func (a AgendaItem) Clone() AgendaItem {
	out := a
	out.Logs = CloneLogs(a.Logs)
	return out
}
