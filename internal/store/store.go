// Package store owns the in-memory root collections of the tracker: teams,
// project phases (with their tasks), and agenda items.
//
// Mutations are copy-on-write: each operation installs new collection slices
// and clones any element it modifies, so slices handed out by Snapshot are
// never mutated afterwards and remain internally consistent. Every operation
// is total — a stale phase, task, item, or team id is reported through a
// false ok return, never a panic or error.
package store

import (
	"sync"
	"time"

	"agmtrack/internal/domain"
	"github.com/google/uuid"
)

// Snapshot is a consistent view of the three root collections.
// Collections in a snapshot must be treated as read-only.
type Snapshot struct {
	Teams       []domain.Team
	Phases      []domain.Phase
	AgendaItems []domain.AgendaItem
}

// Store holds the authoritative collections for one session.
type Store struct {
	mu     sync.RWMutex
	teams  []domain.Team
	phases []domain.Phase
	agenda []domain.AgendaItem

	now   func() time.Time
	newID func() string
}

// Option configures a Store during construction.
type Option func(*Store)

// WithClock overrides the timestamp source for new tracking logs.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source for new tracking logs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a Store seeded with the given snapshot.
func New(seed Snapshot, opts ...Option) *Store {
	s := &Store{
		teams:  seed.Teams,
		phases: seed.Phases,
		agenda: seed.AgendaItems,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current collections. The returned slices are the
// live heads; copy-on-write mutation guarantees they stay valid and
// unchanging after return.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Teams: s.teams, Phases: s.phases, AgendaItems: s.agenda}
}

// newLog constructs a tracking log with a fresh id and timestamp.
// Callers must hold the write lock.
func (s *Store) newLog(message, author string) domain.TrackingLog {
	return domain.TrackingLog{
		ID:        s.newID(),
		Timestamp: s.now(),
		Message:   message,
		Author:    author,
	}
}
