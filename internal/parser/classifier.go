package parser

import "regexp"

// editSignals are the cues that an utterance modifies an existing task
// rather than creating a new one. Any single match means edit; the check
// order does not matter.
var editSignals = []*regexp.Regexp{
	regexp.MustCompile(`修改|更改|调整|编辑`),
	regexp.MustCompile(`改成|变成|换成`),
	regexp.MustCompile(`从.+[到改]`),
	regexp.MustCompile(`设置成|设为`),
	regexp.MustCompile(`延期|推迟|提前`),
	regexp.MustCompile(`把.+[到改为]`),
}

// Classifier decides whether an utterance creates or edits a task.
type Classifier struct{}

// NewClassifier creates a stateless intent classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns IntentEdit when any edit signal matches, IntentCreate
// otherwise. Pure function of the text.
func (c *Classifier) Classify(text string) Intent {
	for _, pattern := range editSignals {
		if pattern.MatchString(text) {
			return IntentEdit
		}
	}
	return IntentCreate
}
