package domain

// Phase is a time-boxed stage of the reporting project. It exclusively owns
// its ordered task list; tasks do not exist outside a phase, and the phase id
// routes every task mutation.
type Phase struct {
	ID          int
	Name        string
	Period      string // display string, not parsed
	Description string
	Tasks       []Task
}

// TaskByID returns the task with the given id, or ok=false.
func (p *Phase) TaskByID(id string) (Task, bool) {
	for _, t := range p.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Clone returns a deep copy of the phase and its tasks.
func (p Phase) Clone() Phase {
	out := p
	if p.Tasks != nil {
		out.Tasks = make([]Task, len(p.Tasks))
		for i, t := range p.Tasks {
			out.Tasks[i] = t.Clone()
		}
	}
	return out
}

// FlattenTasks returns all tasks in traversal order: phase order, then task
// order within each phase.
func FlattenTasks(phases []Phase) []Task {
	var out []Task
	for _, p := range phases {
		out = append(out, p.Tasks...)
	}
	return out
}
