package domain

type SessionStatus string

const (
	SessionPlanned    SessionStatus = "planned"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
)

type StepStatus string

const (
	StepTodo       StepStatus = "todo"
	StepInProgress StepStatus = "in_progress"
	StepDone       StepStatus = "done"
	StepSkipped    StepStatus = "skipped"
)

// ValidSessionStatuses is the canonical set of accepted session status strings.
var ValidSessionStatuses = map[string]bool{
	"planned": true, "in_progress": true, "completed": true, "cancelled": true,
}

// ValidStepStatuses is the canonical set of accepted step status strings.
var ValidStepStatuses = map[string]bool{
	"todo": true, "in_progress": true, "done": true, "skipped": true,
}
