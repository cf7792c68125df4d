package model

// Priority is a task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a read-only summary of an existing task, supplied by the caller
// as a candidate for edit-target resolution. The parser never mutates it.
type Task struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Priority    Priority
}
