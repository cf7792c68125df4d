package usecase

import (
	"time"

	"smart-task-parser/internal/parser"
	"smart-task-parser/pkg/datemath"
	pkgLog "smart-task-parser/pkg/log"
	"smart-task-parser/pkg/nlpextract"
)

const (
	// defaultRemoteTimeout bounds one remote extraction attempt. The
	// rule-based path must not wait on a slow service.
	defaultRemoteTimeout = 3 * time.Second

	// defaultRemoteMinConfidence is the bar a remote result must clear
	// before it overrides the rule-based fields.
	defaultRemoteMinConfidence = 0.7
)

type implUseCase struct {
	l                   pkgLog.Logger
	extractor           nlpextract.IExtractor
	dateMath            *datemath.Parser
	classifier          *parser.Classifier
	attrs               *parser.AttributeExtractor
	cleaner             *parser.TitleCleaner
	matcher             *parser.Matcher
	remoteTimeout       time.Duration
	remoteMinConfidence float64
}

// New creates a new parser UseCase instance. The extractor may be nil,
// in which case parsing runs purely on the rule-based pipeline.
func New(
	l pkgLog.Logger,
	dateMath *datemath.Parser,
	extractor nlpextract.IExtractor,
	ownerNames []string,
	remoteTimeout time.Duration,
	remoteMinConfidence float64,
) *implUseCase {
	if remoteTimeout <= 0 {
		remoteTimeout = defaultRemoteTimeout
	}
	if remoteMinConfidence <= 0 {
		remoteMinConfidence = defaultRemoteMinConfidence
	}
	return &implUseCase{
		l:                   l,
		extractor:           extractor,
		dateMath:            dateMath,
		classifier:          parser.NewClassifier(),
		attrs:               parser.NewAttributeExtractor(dateMath),
		cleaner:             parser.NewTitleCleaner(ownerNames),
		matcher:             parser.NewMatcher(),
		remoteTimeout:       remoteTimeout,
		remoteMinConfidence: remoteMinConfidence,
	}
}
