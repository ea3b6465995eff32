package domain

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCritical   TaskStatus = "critical"
	TaskDelayed    TaskStatus = "delayed"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"pending": true, "in_progress": true, "completed": true,
	"critical": true, "delayed": true,
}

// AllTaskStatuses lists task statuses in display order.
var AllTaskStatuses = []TaskStatus{
	TaskPending, TaskInProgress, TaskCompleted, TaskCritical, TaskDelayed,
}

type AgendaStatus string

const (
	AgendaDrafting  AgendaStatus = "drafting"
	AgendaReviewing AgendaStatus = "reviewing"
	AgendaFinalized AgendaStatus = "finalized"
)

// ValidAgendaStatuses is the canonical set of accepted agenda status strings.
var ValidAgendaStatuses = map[string]bool{
	"drafting": true, "reviewing": true, "finalized": true,
}

// AllAgendaStatuses lists agenda statuses in drafting-to-finalized order.
var AllAgendaStatuses = []AgendaStatus{
	AgendaDrafting, AgendaReviewing, AgendaFinalized,
}

// Role selects which affordances the presentation layer offers.
// It is a display concern, not an authorization system.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)
