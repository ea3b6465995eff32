package store

import "agmtrack/internal/domain"

// replacePhase installs a new phase collection with index i swapped for the
// given phase. Callers must hold the write lock.
func (s *Store) replacePhase(i int, phase domain.Phase) {
	next := append([]domain.Phase(nil), s.phases...)
	next[i] = phase
	s.phases = next
}

// phaseIndex returns the index of the phase with the given id, or -1.
// Callers must hold the write lock.
func (s *Store) phaseIndex(phaseID int) int {
	for i, p := range s.phases {
		if p.ID == phaseID {
			return i
		}
	}
	return -1
}

// AddTask appends a task to the end of the named phase's task list.
// Tasks are oldest-first, unlike agenda items and logs; the asymmetry is a
// deliberate contract. Returns false if the phase id is unknown.
func (s *Store) AddTask(phaseID int, task domain.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.phaseIndex(phaseID)
	if i < 0 {
		return false
	}

	phase := s.phases[i]
	tasks := make([]domain.Task, 0, len(phase.Tasks)+1)
	tasks = append(tasks, phase.Tasks...)
	tasks = append(tasks, task)
	phase.Tasks = tasks
	s.replacePhase(i, phase)
	return true
}

// UpdateTask replaces the task with a matching id within the named phase
// only. Same-id tasks in other phases are unaffected. Returns false if
// either the phase or the task id is unknown.
func (s *Store) UpdateTask(phaseID int, task domain.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.phaseIndex(phaseID)
	if i < 0 {
		return false
	}

	phase := s.phases[i]
	for j, t := range phase.Tasks {
		if t.ID == task.ID {
			tasks := append([]domain.Task(nil), phase.Tasks...)
			tasks[j] = task
			phase.Tasks = tasks
			s.replacePhase(i, phase)
			return true
		}
	}
	return false
}

// DeleteTask removes the task with the given id from the named phase.
func (s *Store) DeleteTask(phaseID int, taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.phaseIndex(phaseID)
	if i < 0 {
		return false
	}

	phase := s.phases[i]
	for j, t := range phase.Tasks {
		if t.ID == taskID {
			tasks := make([]domain.Task, 0, len(phase.Tasks)-1)
			tasks = append(tasks, phase.Tasks[:j]...)
			tasks = append(tasks, phase.Tasks[j+1:]...)
			phase.Tasks = tasks
			s.replacePhase(i, phase)
			return true
		}
	}
	return false
}

// AppendTaskLog prepends a fresh tracking log to the named task, leaving all
// other task fields untouched. Returns false if the phase or task is unknown.
func (s *Store) AppendTaskLog(phaseID int, taskID, message, author string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.phaseIndex(phaseID)
	if i < 0 {
		return false
	}

	phase := s.phases[i]
	for j, t := range phase.Tasks {
		if t.ID == taskID {
			updated := t
			updated.Logs = domain.PrependLog(t.Logs, s.newLog(message, author))
			tasks := append([]domain.Task(nil), phase.Tasks...)
			tasks[j] = updated
			phase.Tasks = tasks
			s.replacePhase(i, phase)
			return true
		}
	}
	return false
}
