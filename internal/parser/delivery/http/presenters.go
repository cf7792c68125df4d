package http

import (
	"time"

	"smart-task-parser/internal/model"
	"smart-task-parser/internal/parser"
)

// --- Request DTOs ---

type parseReq struct {
	Text           string          `json:"text" binding:"required"`
	CandidateTasks []candidateTask `json:"candidate_tasks" binding:"omitempty,dive"`
	Now            string          `json:"now" binding:"omitempty"`

	now time.Time // populated by validate()
}

type candidateTask struct {
	ID          string   `json:"id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r parseReq) toInput() parser.ParseInput {
	candidates := make([]model.Task, len(r.CandidateTasks))
	for i, t := range r.CandidateTasks {
		candidates[i] = model.Task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Tags:        t.Tags,
			Priority:    model.Priority(t.Priority),
		}
	}
	return parser.ParseInput{
		Text:       r.Text,
		Candidates: candidates,
		Now:        r.now,
	}
}

// --- Response DTOs ---

type parseResp struct {
	Intent     string          `json:"intent"`
	Confidence float64         `json:"confidence"`
	Draft      *draftResp      `json:"draft,omitempty"`
	TaskID     string          `json:"task_id,omitempty"`
	Updates    *updatesResp    `json:"updates,omitempty"`
	Candidates []candidateTask `json:"candidates,omitempty"`
}

type draftResp struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type dueDateResp struct {
	Action string  `json:"action"` // set or clear
	Value  *string `json:"value,omitempty"`
}

type updatesResp struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Priority    *string      `json:"priority,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	DueDate     *dueDateResp `json:"due_date,omitempty"`
}

func (h *handler) newParseResp(outcome parser.ParseOutcome) parseResp {
	resp := parseResp{
		Intent:     string(outcome.Kind),
		Confidence: outcome.Confidence,
		TaskID:     outcome.TaskID,
	}

	if outcome.Draft != nil {
		resp.Draft = newDraftResp(outcome.Draft)
	}
	if outcome.Updates != nil {
		resp.Updates = newUpdatesResp(outcome.Updates)
	}
	if len(outcome.Candidates) > 0 {
		resp.Candidates = make([]candidateTask, len(outcome.Candidates))
		for i, t := range outcome.Candidates {
			resp.Candidates[i] = candidateTask{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Tags:        t.Tags,
				Priority:    string(t.Priority),
			}
		}
	}
	return resp
}

func newDraftResp(draft *parser.TaskDraft) *draftResp {
	resp := &draftResp{
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    string(draft.Priority),
		Tags:        draft.Tags,
	}
	if draft.DueDate != nil {
		due := draft.DueDate.Format(time.RFC3339Nano)
		resp.DueDate = &due
	}
	return resp
}

func newUpdatesResp(updates *parser.EditUpdate) *updatesResp {
	resp := &updatesResp{Tags: updates.Tags}
	if updates.HasTitle {
		resp.Title = &updates.Title
	}
	if updates.HasDescription {
		resp.Description = &updates.Description
	}
	if updates.HasPriority {
		priority := string(updates.Priority)
		resp.Priority = &priority
	}
	switch updates.DueDate.Op {
	case parser.DueDateSet:
		value := updates.DueDate.Value.Format(time.RFC3339Nano)
		resp.DueDate = &dueDateResp{Action: "set", Value: &value}
	case parser.DueDateClear:
		resp.DueDate = &dueDateResp{Action: "clear"}
	}
	return resp
}
