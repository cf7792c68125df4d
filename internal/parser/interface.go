package parser

import "context"

// UseCase is the parsing facade: one utterance in, one outcome out.
// Implementations are stateless per call and safe for concurrent use.
type UseCase interface {
	Parse(ctx context.Context, input ParseInput) (ParseOutcome, error)
}
