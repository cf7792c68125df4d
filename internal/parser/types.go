package parser

import (
	"time"

	"smart-task-parser/internal/model"
)

// Intent is the coarse classification of an utterance.
type Intent string

const (
	IntentCreate Intent = "create"
	IntentEdit   Intent = "edit"
)

// DefaultTaskTitle is used when title extraction yields nothing.
const DefaultTaskTitle = "新任务"

// TaskDraft is a fully-formed new-task payload. It is produced fresh per
// parse call and never mutated afterwards.
type TaskDraft struct {
	Title       string
	Description string
	Priority    model.Priority // empty means not specified
	DueDate     *time.Time
	Tags        []string
}

// DueDateOp distinguishes the three states of an edit's due date:
// leave untouched, clear explicitly, or set to a value.
type DueDateOp int

const (
	DueDateUnset DueDateOp = iota
	DueDateClear
	DueDateSet
)

// DueDateChange is the tri-state due-date field of an EditUpdate.
// A nullable time would conflate "don't touch" with "clear".
type DueDateChange struct {
	Op    DueDateOp
	Value time.Time // valid only when Op == DueDateSet
}

// EditUpdate is a partial set of field changes. Only fields explicitly
// detected in the utterance are flagged as present.
type EditUpdate struct {
	Title          string
	HasTitle       bool
	Description    string
	HasDescription bool
	Priority       model.Priority
	HasPriority    bool
	Tags           []string
	DueDate        DueDateChange
}

// IsEmpty reports whether the update carries no concrete change.
func (u EditUpdate) IsEmpty() bool {
	return !u.HasTitle && !u.HasDescription && !u.HasPriority &&
		len(u.Tags) == 0 && u.DueDate.Op == DueDateUnset
}

// MatchResult is one scored candidate from the full-record matcher.
type MatchResult struct {
	Task       model.Task
	Confidence float64 // 0-100
	Reason     string
}

// OutcomeKind tags the variant of a ParseOutcome.
type OutcomeKind string

const (
	OutcomeCreate        OutcomeKind = "create"
	OutcomeEdit          OutcomeKind = "edit"
	OutcomeEditAmbiguous OutcomeKind = "edit_ambiguous"
)

// ParseOutcome is the single result of a parse call. Exactly one variant
// is populated: Draft for create, TaskID+Updates for a resolved edit, or
// Updates+Candidates when the edit target is ambiguous.
type ParseOutcome struct {
	Kind       OutcomeKind
	Draft      *TaskDraft
	TaskID     string
	Updates    *EditUpdate
	Candidates []model.Task
	Confidence float64
}

// ParseInput is the input for a parse call. Now is the injected reference
// time used for all date resolution.
type ParseInput struct {
	Text       string
	Candidates []model.Task
	Now        time.Time
}
