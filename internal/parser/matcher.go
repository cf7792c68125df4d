package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"smart-task-parser/internal/model"
)

// SimilarityThreshold is the bar a candidate must clear for edit-target
// resolution. Below it the caller must ask the user instead of guessing.
const SimilarityThreshold = 0.4

var (
	// 把X改成Y / 把X延期到Y — the referenced name is X.
	baCommandPattern = regexp.MustCompile(`把(.+?)(?:修改|更改|调整|编辑|改成|变成|换成|延期|推迟|提前|设置|设为|改|到|成|为)`)
	// 修改X为Y / 调整X到Y — the referenced name is X.
	verbCommandPattern = regexp.MustCompile(`(?:修改|更改|调整|编辑|变更)(.+?)(?:到|成|为)`)

	// noiseWords are command particles dropped during name extraction.
	noiseWords = map[string]struct{}{
		"把": {}, "将": {}, "给": {}, "让": {}, "请": {}, "帮": {}, "我": {}, "要": {},
		"修改": {}, "更改": {}, "调整": {}, "编辑": {},
		"改成": {}, "变成": {}, "换成": {},
		"到": {}, "成": {}, "为": {},
		"的": {}, "了": {}, "吧": {}, "啊": {}, "呢": {},
	}
)

// Matcher resolves which existing task an utterance refers to.
type Matcher struct{}

// NewMatcher creates a stateless task matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// ExtractReferenceName strips command verbs, prepositions and noise
// particles from an edit utterance, leaving a best-effort task name.
func (m *Matcher) ExtractReferenceName(text string) string {
	name := strings.TrimSpace(text)

	if sub := baCommandPattern.FindStringSubmatch(name); sub != nil {
		name = sub[1]
	} else if sub := verbCommandPattern.FindStringSubmatch(name); sub != nil {
		name = sub[1]
	}

	var kept []string
	for _, token := range strings.Fields(name) {
		if _, noisy := noiseWords[token]; noisy {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// Similarity scores two names in [0,1]: exact match 1.0, containment
// either way 0.9, otherwise token overlap (equal tokens weigh 1,
// substring tokens 0.5; single-rune tokens are ignored) over the larger
// token count.
func (m *Matcher) Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}

	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)
	score := 0.0
	for _, ta := range tokensA {
		if utf8.RuneCountInString(ta) <= 1 {
			continue
		}
		for _, tb := range tokensB {
			if utf8.RuneCountInString(tb) <= 1 {
				continue
			}
			switch {
			case ta == tb:
				score += 1
			case strings.Contains(ta, tb) || strings.Contains(tb, ta):
				score += 0.5
			}
		}
	}

	max := len(tokensA)
	if len(tokensB) > max {
		max = len(tokensB)
	}
	return score / float64(max)
}

// Rank scores every candidate task against the utterance with the
// full-record rules (title, description, tags) and returns the non-zero
// scorers in descending confidence. Ties keep input order.
func (m *Matcher) Rank(utterance string, candidates []model.Task) []MatchResult {
	query := strings.ToLower(strings.TrimSpace(utterance))
	var keywords []string
	for _, token := range strings.Fields(query) {
		if utf8.RuneCountInString(token) > 1 {
			keywords = append(keywords, token)
		}
	}

	results := make([]MatchResult, 0, len(candidates))
	for _, task := range candidates {
		confidence := 0.0
		var reasons []string
		title := strings.ToLower(task.Title)

		switch {
		case title == query:
			confidence += 100
			reasons = append(reasons, "标题完全匹配")
		case strings.Contains(title, query) || strings.Contains(query, title):
			confidence += 80
			reasons = append(reasons, "标题包含匹配")
		case len(keywords) > 0:
			matched := 0
			for _, kw := range keywords {
				if strings.Contains(title, kw) {
					matched++
				}
			}
			if matched > 0 {
				confidence += float64(matched) / float64(len(keywords)) * 60
				reasons = append(reasons, fmt.Sprintf("关键词匹配(%d/%d)", matched, len(keywords)))
			}
		}

		if task.Description != "" {
			description := strings.ToLower(task.Description)
			if strings.Contains(description, query) || strings.Contains(query, description) {
				confidence += 30
				reasons = append(reasons, "描述匹配")
			}
		}

		for _, tag := range task.Tags {
			if tag == "" {
				continue
			}
			lowered := strings.ToLower(tag)
			if strings.Contains(query, lowered) || strings.Contains(lowered, query) {
				confidence += 20
				reasons = append(reasons, "标签匹配:"+tag)
			}
		}

		if confidence <= 0 {
			continue
		}
		if confidence > 100 {
			confidence = 100
		}
		results = append(results, MatchResult{
			Task:       task,
			Confidence: confidence,
			Reason:     strings.Join(reasons, " | "),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

// ResolveEditTarget picks the single candidate whose title is most
// similar to the referenced name, provided it clears the similarity
// threshold. Ties keep the first candidate encountered.
func (m *Matcher) ResolveEditTarget(text string, candidates []model.Task) (model.Task, float64, bool) {
	name := m.ExtractReferenceName(text)

	var best model.Task
	bestSimilarity := 0.0
	for _, candidate := range candidates {
		if s := m.Similarity(name, candidate.Title); s > bestSimilarity {
			best, bestSimilarity = candidate, s
		}
	}

	if bestSimilarity > SimilarityThreshold {
		return best, bestSimilarity, true
	}
	return model.Task{}, 0, false
}
