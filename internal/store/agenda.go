package store

import "agmtrack/internal/domain"

// AddAgendaItem inserts an item at the FRONT of the agenda collection.
// Newest-first ordering is part of the contract, not an accident.
func (s *Store) AddAgendaItem(item domain.AgendaItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.AgendaItem, 0, len(s.agenda)+1)
	next = append(next, item)
	next = append(next, s.agenda...)
	s.agenda = next
}

// UpdateAgendaItem replaces the item with a matching id, preserving order.
func (s *Store) UpdateAgendaItem(item domain.AgendaItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.agenda {
		if a.ID == item.ID {
			next := append([]domain.AgendaItem(nil), s.agenda...)
			next[i] = item
			s.agenda = next
			return true
		}
	}
	return false
}

// DeleteAgendaItem removes the item with the given id.
func (s *Store) DeleteAgendaItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.agenda {
		if a.ID == id {
			next := make([]domain.AgendaItem, 0, len(s.agenda)-1)
			next = append(next, s.agenda[:i]...)
			next = append(next, s.agenda[i+1:]...)
			s.agenda = next
			return true
		}
	}
	return false
}

// AppendAgendaLog prepends a fresh tracking log to the named item, leaving
// all other item fields untouched. Returns false if the item id is unknown.
func (s *Store) AppendAgendaLog(itemID, message, author string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.agenda {
		if a.ID == itemID {
			updated := a
			updated.Logs = domain.PrependLog(a.Logs, s.newLog(message, author))
			next := append([]domain.AgendaItem(nil), s.agenda...)
			next[i] = updated
			s.agenda = next
			return true
		}
	}
	return false
}
