package usecase

import (
	"context"
	"strings"
	"time"

	"smart-task-parser/internal/model"
	"smart-task-parser/internal/parser"
)

// parseCreate builds a TaskDraft from the utterance. The rule-based
// pipeline always produces a complete draft; remote extraction, when
// available and confident, refines title, description and priority.
func (uc *implUseCase) parseCreate(ctx context.Context, text string, now time.Time) (parser.ParseOutcome, error) {
	attrs := uc.attrs.ExtractForCreate(text)

	draft := &parser.TaskDraft{
		Title:       attrs.Title,
		Description: attrs.Description,
		Tags:        attrs.Tags,
	}
	if attrs.HasPriority {
		draft.Priority = attrs.Priority
	}
	if due, ok := uc.dateMath.Extract(text, now); ok {
		draft.DueDate = &due
	}

	if cleaned := uc.cleaner.Clean(draft.Title); cleaned.ShouldUse() {
		uc.l.Debugf(ctx, "parseCreate: title %q cleaned to %q (removed %v)",
			draft.Title, cleaned.CleanTitle, cleaned.RemovedPatterns)
		draft.Title = cleaned.CleanTitle
	}

	confidence := ruleConfidence
	if remote := uc.tryRemoteExtract(ctx, text, now); remote != nil {
		uc.applyRemote(ctx, draft, remote)
		confidence = remote.Confidence
	}

	if strings.TrimSpace(draft.Title) == "" {
		draft.Title = parser.DefaultTaskTitle
	}

	return parser.ParseOutcome{
		Kind:       parser.OutcomeCreate,
		Draft:      draft,
		Confidence: confidence,
	}, nil
}

// parseEdit extracts field updates, then tries to resolve the single
// task the utterance refers to. An unresolved target or an update with
// no concrete change degrades to the ambiguous outcome so the caller
// can ask the user instead of guessing.
func (uc *implUseCase) parseEdit(ctx context.Context, text string, now time.Time, candidates []model.Task) parser.ParseOutcome {
	updates := uc.attrs.ExtractForEdit(text, now)

	task, similarity, ok := uc.matcher.ResolveEditTarget(text, candidates)
	if ok && !updates.IsEmpty() {
		uc.l.Infof(ctx, "parseEdit: resolved task=%s similarity=%.2f", task.ID, similarity)
		return parser.ParseOutcome{
			Kind:       parser.OutcomeEdit,
			TaskID:     task.ID,
			Updates:    &updates,
			Confidence: similarity,
		}
	}

	uc.l.Infof(ctx, "parseEdit: ambiguous target (resolved=%v, empty_update=%v)", ok, updates.IsEmpty())
	return parser.ParseOutcome{
		Kind:       parser.OutcomeEditAmbiguous,
		Updates:    &updates,
		Candidates: candidates,
	}
}

// tryRemoteExtract asks the extraction service for a refinement, within
// a bounded timeout. Every failure is absorbed: the rule-based draft is
// always good enough to return.
func (uc *implUseCase) tryRemoteExtract(ctx context.Context, text string, now time.Time) *nlpResult {
	if uc.extractor == nil {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.remoteTimeout)
	defer cancel()

	result, err := uc.extractor.Extract(callCtx, text, now)
	if err != nil {
		uc.l.Warnf(ctx, "tryRemoteExtract: extraction failed, keeping rule-based draft: %v", err)
		return nil
	}
	if result.Confidence <= uc.remoteMinConfidence || strings.TrimSpace(result.CleanTitle) == "" {
		uc.l.Debugf(ctx, "tryRemoteExtract: rejected result (confidence=%.2f, title=%q)",
			result.Confidence, result.CleanTitle)
		return nil
	}
	return &nlpResult{
		CleanTitle:  result.CleanTitle,
		Description: result.Description,
		Priority:    result.Priority,
		Confidence:  result.Confidence,
	}
}

// nlpResult is the accepted subset of a remote extraction. Due date and
// tags always come from the local extractors, which are deterministic.
type nlpResult struct {
	CleanTitle  string
	Description string
	Priority    string
	Confidence  float64
}

func (uc *implUseCase) applyRemote(ctx context.Context, draft *parser.TaskDraft, remote *nlpResult) {
	draft.Title = strings.TrimSpace(remote.CleanTitle)
	if remote.Description != "" {
		draft.Description = remote.Description
	}
	if p := model.Priority(remote.Priority); p.Valid() {
		draft.Priority = p
	} else if remote.Priority != "" {
		uc.l.Warnf(ctx, "applyRemote: ignoring unknown priority %q", remote.Priority)
	}
}
