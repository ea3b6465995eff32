package metrics

import "agmtrack/internal/domain"

// Readiness partitions agenda items by drafting status.
type Readiness struct {
	Drafting  int
	Reviewing int
	Finalized int
	Total     int

	// FinalizedRatio is Finalized/Total, 0 for an empty agenda.
	FinalizedRatio float64
}

// AgendaReadiness summarizes how much of the report content is ready.
func AgendaReadiness(items []domain.AgendaItem) Readiness {
	var r Readiness
	r.Total = len(items)
	for _, item := range items {
		switch item.Status {
		case domain.AgendaDrafting:
			r.Drafting++
		case domain.AgendaReviewing:
			r.Reviewing++
		case domain.AgendaFinalized:
			r.Finalized++
		}
	}
	if r.Total > 0 {
		r.FinalizedRatio = float64(r.Finalized) / float64(r.Total)
	}
	return r
}
