package nlpextract

import (
	"context"
	"time"
)

// IExtractor defines the interface for the remote text extraction
// service. Implementations are safe for concurrent use.
type IExtractor interface {
	// Extract asks the service to pull task fields out of free text.
	// The reference time anchors relative date expressions.
	Extract(ctx context.Context, text string, now time.Time) (*Result, error)
}

// New creates a new extraction client with the given configuration
func New(cfg Config) (IExtractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newExtractorImpl(cfg), nil
}
