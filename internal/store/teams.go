package store

import (
	"fmt"

	"agmtrack/internal/domain"
)

// AddTeam appends a team to the end of the team collection.
// The id must be non-empty and unused; a duplicate would silently shadow the
// original in lookups, so it is rejected instead.
func (s *Store) AddTeam(team domain.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if team.ID == "" {
		return fmt.Errorf("team id is required")
	}
	for _, t := range s.teams {
		if t.ID == team.ID {
			return fmt.Errorf("team id %q already exists", team.ID)
		}
	}

	next := make([]domain.Team, 0, len(s.teams)+1)
	next = append(next, s.teams...)
	next = append(next, team)
	s.teams = next
	return nil
}

// UpdateTeam replaces the team with a matching id, preserving order.
// Returns false (and changes nothing) if the id is absent.
func (s *Store) UpdateTeam(team domain.Team) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.teams {
		if t.ID == team.ID {
			next := append([]domain.Team(nil), s.teams...)
			next[i] = team
			s.teams = next
			return true
		}
	}
	return false
}

// DeleteTeam removes the team with the given id. Tasks and agenda items
// referencing the id are left untouched; their references dangle and lookups
// fall back to the raw id.
func (s *Store) DeleteTeam(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.teams {
		if t.ID == id {
			next := make([]domain.Team, 0, len(s.teams)-1)
			next = append(next, s.teams[:i]...)
			next = append(next, s.teams[i+1:]...)
			s.teams = next
			return true
		}
	}
	return false
}

// TeamByID looks up a team by id.
func (s *Store) TeamByID(id string) (domain.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.teams {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Team{}, false
}
