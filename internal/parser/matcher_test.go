package parser_test

import (
	"testing"

	"smart-task-parser/internal/model"
	"smart-task-parser/internal/parser"
)

func TestExtractReferenceName(t *testing.T) {
	m := parser.NewMatcher()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"Ba-construction", "把会议时间改成下周", "会议时间"},
		{"Ba-construction with reschedule", "把设计稿延期到明天", "设计稿"},
		{"Verb command", "修改写周报为写月报", "写周报"},
		{"Noise words dropped", "帮 我 修改 开会", "开会"},
		{"No command shape", "写方案", "写方案"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ExtractReferenceName(tt.text); got != tt.want {
				t.Errorf("ExtractReferenceName(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	m := parser.NewMatcher()

	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"Exact", "写周报", "写周报", 1.0},
		{"Containment", "周报", "写周报", 0.9},
		{"Reverse containment", "完成设计稿初版", "设计稿", 0.9},
		{"Empty side", "", "写周报", 0},
		{"Unrelated", "会议时间", "写方案", 0},
		{"Token overlap", "整理 周报", "归档 周报", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	m := parser.NewMatcher()
	candidates := []model.Task{
		{ID: "t1", Title: "写周报", Description: "每周五提交"},
		{ID: "t2", Title: "开会", Tags: []string{"会议"}},
		{ID: "t3", Title: "部署上线"},
	}

	t.Run("Exact Title Tops The Ranking", func(t *testing.T) {
		results := m.Rank("写周报", candidates)
		if len(results) == 0 {
			t.Fatal("expected at least one match")
		}
		if results[0].Task.ID != "t1" || results[0].Confidence != 100 {
			t.Errorf("expected t1 at 100, got %s at %v", results[0].Task.ID, results[0].Confidence)
		}
		if results[0].Reason != "标题完全匹配" {
			t.Errorf("unexpected reason %q", results[0].Reason)
		}
	})

	t.Run("Containment Beats Keyword Overlap", func(t *testing.T) {
		results := m.Rank("周报", candidates)
		if len(results) == 0 || results[0].Task.ID != "t1" {
			t.Fatalf("expected t1 first, got %v", results)
		}
		if results[0].Confidence != 80 {
			t.Errorf("expected containment score 80, got %v", results[0].Confidence)
		}
	})

	t.Run("Tag Match Adds Score", func(t *testing.T) {
		results := m.Rank("会议相关", candidates)
		if len(results) == 0 || results[0].Task.ID != "t2" {
			t.Fatalf("expected t2 via its tag, got %v", results)
		}
	})

	t.Run("Tag Containing The Query Matches", func(t *testing.T) {
		tagged := []model.Task{{ID: "t5", Title: "开会", Tags: []string{"季度汇报会议"}}}
		results := m.Rank("会议", tagged)
		if len(results) != 1 || results[0].Task.ID != "t5" {
			t.Fatalf("expected the wider tag to match the query, got %v", results)
		}
		if results[0].Reason != "标签匹配:季度汇报会议" {
			t.Errorf("unexpected reason %q", results[0].Reason)
		}
	})

	t.Run("Zero Scorers Are Excluded", func(t *testing.T) {
		results := m.Rank("买菜", candidates)
		if len(results) != 0 {
			t.Errorf("expected no matches, got %v", results)
		}
	})

	t.Run("Score Is Clamped", func(t *testing.T) {
		loaded := []model.Task{{ID: "t4", Title: "写周报", Description: "写周报", Tags: []string{"写周报"}}}
		results := m.Rank("写周报", loaded)
		if len(results) != 1 || results[0].Confidence != 100 {
			t.Errorf("expected clamp at 100, got %v", results)
		}
	})
}

func TestResolveEditTarget(t *testing.T) {
	m := parser.NewMatcher()
	candidates := []model.Task{
		{ID: "t1", Title: "写周报"},
		{ID: "t2", Title: "开会"},
	}

	t.Run("Confident Resolution", func(t *testing.T) {
		task, similarity, ok := m.ResolveEditTarget("把写周报改成周会总结", candidates)
		if !ok {
			t.Fatal("expected a confident match")
		}
		if task.ID != "t1" {
			t.Errorf("expected t1, got %s", task.ID)
		}
		if similarity <= parser.SimilarityThreshold {
			t.Errorf("similarity %v must clear the threshold", similarity)
		}
	})

	t.Run("No Candidate Clears Threshold", func(t *testing.T) {
		_, _, ok := m.ResolveEditTarget("把会议时间改成下周", candidates)
		if ok {
			t.Error("expected ambiguous result for an unknown reference")
		}
	})

	t.Run("Empty Candidate List", func(t *testing.T) {
		_, _, ok := m.ResolveEditTarget("把写周报延期到明天", nil)
		if ok {
			t.Error("expected no match without candidates")
		}
	})
}
