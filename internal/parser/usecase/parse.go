package usecase

import (
	"context"
	"strings"
	"time"

	"smart-task-parser/internal/parser"
)

// ruleConfidence is reported for drafts built by the rule-based
// pipeline alone. Remote extraction replaces it with the service score.
const ruleConfidence = 0.8

// Parse classifies the utterance and routes it to the create or edit
// pipeline. All date resolution is anchored to input.Now.
func (uc *implUseCase) Parse(ctx context.Context, input parser.ParseInput) (parser.ParseOutcome, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return parser.ParseOutcome{}, parser.ErrEmptyInput
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	intent := uc.classifier.Classify(text)
	uc.l.Infof(ctx, "Parse: intent=%s candidates=%d text=%q", intent, len(input.Candidates), text)

	if intent == parser.IntentEdit {
		if len(input.Candidates) == 0 {
			// Nothing to edit; the utterance can only mean a new task.
			uc.l.Infof(ctx, "Parse: edit intent without candidates, falling back to create")
			return uc.parseCreate(ctx, text, now)
		}
		return uc.parseEdit(ctx, text, now, input.Candidates), nil
	}

	return uc.parseCreate(ctx, text, now)
}
