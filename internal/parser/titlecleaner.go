package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultOwnerNames is the built-in owner vocabulary used when no member
// list is configured. Owner mentions are stripped from titles.
var DefaultOwnerNames = []string{"阿伟", "小明", "小李", "老张", "阿强"}

// cleanerDatePatterns is the ordered list of date/time expressions the
// cleaner masks. Each pattern is applied globally; the order goes from
// specific to generic so compound expressions are recorded whole.
var cleanerDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}月\d{1,2}[日号]`),
	regexp.MustCompile(`(上午|下午|晚上|早上|中午|凌晨)\d{1,2}[点:：](\d{1,2})?分?`),
	regexp.MustCompile(`\d{1,2}[点:：](\d{1,2})?分?`),
	regexp.MustCompile(`本周|这周|下周|上周`),
	regexp.MustCompile(`(周|星期|礼拜)[一二三四五六日天]`),
	regexp.MustCompile(`今天|明天|后天|大后天`),
	regexp.MustCompile(`本月|这个月|下个月|下月`),
	regexp.MustCompile(`上午|下午|晚上|早上|中午|凌晨|傍晚`),
}

// fieldLabelPrefixes are labels whose token (not value) is stripped.
var fieldLabelPrefixes = []string{
	"负责人:", "负责人：",
	"截止",
	"时间:", "时间：",
	"标签:", "标签：",
	"优先级:", "优先级：",
}

var collapsePattern = regexp.MustCompile(`[\s，,、]+`)

// CleanResult is the outcome of one cleaning pass.
type CleanResult struct {
	CleanTitle      string
	RemovedPatterns []string
	Confidence      float64
}

// ShouldUse reports whether the cleaned title should replace the
// original. Too-short results, low confidence, and no-op passes are
// rejected; the caller keeps the unmodified title in those cases.
func (r CleanResult) ShouldUse() bool {
	if utf8.RuneCountInString(r.CleanTitle) < 2 {
		return false
	}
	if r.Confidence < 0.3 {
		return false
	}
	return len(r.RemovedPatterns) > 0
}

// TitleCleaner strips metadata phrases from text to leave a minimal task
// title. It works on the text alone, independent of the structured
// extractors, so it can clean titles from any source.
type TitleCleaner struct {
	owners []string
}

// NewTitleCleaner creates a cleaner with the given owner vocabulary.
// A nil or empty list falls back to DefaultOwnerNames.
func NewTitleCleaner(owners []string) *TitleCleaner {
	if len(owners) == 0 {
		owners = DefaultOwnerNames
	}
	return &TitleCleaner{owners: owners}
}

// Clean masks priority keywords, date/time expressions, owner names and
// field labels, in that order, recording every removed match. Confidence
// grows with how much recognized metadata was stripped; an empty result
// means everything was stripped and scores zero.
func (c *TitleCleaner) Clean(text string) CleanResult {
	result := text
	var removed []string

	for _, set := range priorityKeywords {
		for _, word := range set.words {
			for strings.Contains(result, word) {
				removed = append(removed, word)
				result = strings.Replace(result, word, " ", 1)
			}
		}
	}

	for _, pattern := range cleanerDatePatterns {
		matches := pattern.FindAllString(result, -1)
		if len(matches) == 0 {
			continue
		}
		removed = append(removed, matches...)
		result = pattern.ReplaceAllString(result, " ")
	}

	for _, owner := range c.owners {
		for strings.Contains(result, owner) {
			removed = append(removed, owner)
			result = strings.Replace(result, owner, " ", 1)
		}
	}

	for _, label := range fieldLabelPrefixes {
		for strings.Contains(result, label) {
			removed = append(removed, label)
			result = strings.Replace(result, label, " ", 1)
		}
	}

	result = strings.TrimSpace(collapsePattern.ReplaceAllString(result, " "))

	return CleanResult{
		CleanTitle:      result,
		RemovedPatterns: removed,
		Confidence:      cleanConfidence(text, result),
	}
}

// cleanConfidence maps the stripped share of the original text to a
// confidence tier. Stripping nothing leaves the cleaner unsure (0.5);
// stripping everything means the text was pure metadata (0).
func cleanConfidence(original, cleaned string) float64 {
	if cleaned == "" {
		return 0
	}
	if cleaned == original {
		return 0.5
	}

	stripped := 1 - float64(utf8.RuneCountInString(cleaned))/float64(utf8.RuneCountInString(original))
	switch {
	case stripped < 0.2:
		return 0.3
	case stripped < 0.4:
		return 0.6
	case stripped < 0.7:
		return 0.8
	default:
		return 0.9
	}
}
