package types

// Priority of a Task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// TaskStatus is the progress state of a Task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// Task is a unit of work handed to an intern.
//
// Every field except ID is a pointer: a field the client left out is
// stored as NULL and comes back as JSON null. AssignedTo is a free-text
// name and is never checked against the students table.
//
// The validate tags only apply when strict task validation is enabled;
// by default tasks are stored as given. On a pointer, required only
// rejects nil, so min=1 also rejects an empty string.
type Task struct {
	ID           int64       `json:"id"`
	Title        *string     `json:"title"        validate:"required,min=1"`
	Description  *string     `json:"description"`
	AssignedTo   *string     `json:"assignedTo"   validate:"required,min=1"`
	Priority     *Priority   `json:"priority"     validate:"omitempty,oneof=Low Medium High"`
	Status       *TaskStatus `json:"status"       validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	AssignedDate *string     `json:"assignedDate"`
	DueDate      *string     `json:"dueDate"      validate:"required,min=1"`
}

// Dashboard is the admin overview payload: the three tables, unfiltered.
type Dashboard struct {
	Students  []Student `json:"students"`
	Faculties []Faculty `json:"faculties"`
	Tasks     []Task    `json:"tasks"`
}
