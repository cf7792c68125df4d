package parser

import (
	"regexp"
	"strings"
	"time"

	"smart-task-parser/internal/model"
	"smart-task-parser/pkg/datemath"
)

// Keyword sets are fixed closed sets; their contents are part of the
// parsing contract and must not be reordered.
var (
	priorityKeywords = []struct {
		level model.Priority
		words []string
	}{
		{model.PriorityHigh, []string{"紧急", "重要", "高优先级"}},
		{model.PriorityMedium, []string{"中等", "普通"}},
		{model.PriorityLow, []string{"低优先级", "不急"}},
	}

	tagLabels         = []string{"标签", "分类", "类别"}
	descriptionLabels = []string{"详情", "描述", "说明", "备注"}
	editTitleLabels   = []string{"标题", "名称", "改成", "变成", "叫"}

	clearDueDatePattern = regexp.MustCompile(`清除时间|取消时间|删除时间`)
	punctEdgePattern    = regexp.MustCompile(`^[，,、\s]+|[，,、\s]+$`)
)

// CreateAttributes are the structured fields extracted from a
// create-intent utterance. Title is a raw candidate; final cleaning and
// the 新任务 fallback happen in the facade.
type CreateAttributes struct {
	Title       string
	Description string
	Priority    model.Priority
	HasPriority bool
	Tags        []string
}

// AttributeExtractor pulls priority, tags, description and due-date
// fields out of raw text. It holds no per-call state.
type AttributeExtractor struct {
	dates *datemath.Parser
}

// NewAttributeExtractor creates an extractor using the given date parser.
func NewAttributeExtractor(dates *datemath.Parser) *AttributeExtractor {
	return &AttributeExtractor{dates: dates}
}

// ExtractForCreate extracts new-task attributes. Matched metadata is
// consumed from the working text; what remains, punctuation-trimmed, is
// the title candidate.
func (e *AttributeExtractor) ExtractForCreate(text string) CreateAttributes {
	attrs := CreateAttributes{}
	working := text

	if level, ok := detectPriority(text); ok {
		attrs.Priority = level
		attrs.HasPriority = true
	}
	working = removePriorityKeywords(working)

	attrs.Tags, working = extractTags(working)

	title, description := splitDescription(working)
	attrs.Description = description
	attrs.Title = trimPunct(title)

	return attrs
}

// ExtractForEdit extracts only the fields the utterance explicitly
// mentions. The clear-due-date phrase is checked after normal date
// extraction and overrides it.
func (e *AttributeExtractor) ExtractForEdit(text string, now time.Time) EditUpdate {
	update := EditUpdate{}

	if level, ok := detectPriority(text); ok {
		update.Priority = level
		update.HasPriority = true
	}

	if tags, _ := extractTags(text); len(tags) > 0 {
		update.Tags = tags
	}

	if due, ok := e.dates.Extract(text, now); ok {
		update.DueDate = DueDateChange{Op: DueDateSet, Value: due}
	}
	if clearDueDatePattern.MatchString(text) {
		update.DueDate = DueDateChange{Op: DueDateClear}
	}

	if title, ok := extractEditTitle(text); ok && !isPureDate(title) {
		update.Title = title
		update.HasTitle = true
	}

	if _, description := splitDescription(text); description != "" {
		update.Description = description
		update.HasDescription = true
	}

	return update
}

// detectPriority scans the keyword sets high-first; the first set with a
// hit wins.
func detectPriority(text string) (model.Priority, bool) {
	for _, set := range priorityKeywords {
		for _, word := range set.words {
			if strings.Contains(text, word) {
				return set.level, true
			}
		}
	}
	return "", false
}

// removePriorityKeywords strips every priority keyword so none of them
// leak into the title.
func removePriorityKeywords(text string) string {
	for _, set := range priorityKeywords {
		for _, word := range set.words {
			text = strings.ReplaceAll(text, word, "")
		}
	}
	return text
}

// extractTags consumes every "标签X" style segment. The value runs from
// the label to the next comma-family separator; scan order is position
// order in the text.
func extractTags(text string) ([]string, string) {
	var tags []string
	for {
		idx, label := -1, ""
		for _, l := range tagLabels {
			if i := strings.Index(text, l); i >= 0 && (idx == -1 || i < idx) {
				idx, label = i, l
			}
		}
		if idx < 0 {
			break
		}

		rest := text[idx+len(label):]
		end := strings.IndexAny(rest, "，,、")
		if end < 0 {
			end = len(rest)
		}

		value := strings.TrimSpace(rest[:end])
		value = strings.TrimPrefix(value, "：")
		value = strings.TrimPrefix(value, ":")
		if value != "" {
			tags = append(tags, value)
		}

		text = text[:idx] + rest[end:]
	}
	return tags, text
}

// splitDescription splits at the first description label found, checking
// the labels in their fixed order. Everything before the label is the
// title candidate, everything after is the description.
func splitDescription(text string) (title, description string) {
	for _, label := range descriptionLabels {
		idx := strings.Index(text, label)
		if idx < 0 {
			continue
		}
		title = text[:idx]
		description = strings.TrimSpace(text[idx+len(label):])
		for _, prefix := range []string{"是", "：", ":"} {
			if strings.HasPrefix(description, prefix) {
				description = strings.TrimSpace(strings.TrimPrefix(description, prefix))
				break
			}
		}
		return title, description
	}
	return text, ""
}

// extractEditTitle finds a title-change label and takes what follows,
// truncated at any trailing tag or description label.
func extractEditTitle(text string) (string, bool) {
	for _, label := range editTitleLabels {
		idx := strings.Index(text, label)
		if idx < 0 {
			continue
		}

		value := text[idx+len(label):]
		cut := len(value)
		for _, suffix := range append(append([]string{}, tagLabels...), descriptionLabels...) {
			if i := strings.Index(value, suffix); i >= 0 && i < cut {
				cut = i
			}
		}

		value = trimPunct(value[:cut])
		if value == "" {
			return "", false
		}
		return value, true
	}
	return "", false
}

// isPureDate reports whether the text is nothing but date expressions.
// 改成下周 changes the due date, not the title.
func isPureDate(text string) bool {
	for _, pattern := range cleanerDatePatterns {
		text = pattern.ReplaceAllString(text, " ")
	}
	return strings.TrimSpace(text) == ""
}

// trimPunct strips leading and trailing comma-family punctuation and
// whitespace runs.
func trimPunct(text string) string {
	return punctEdgePattern.ReplaceAllString(text, "")
}
