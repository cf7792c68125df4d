package parser_test

import (
	"testing"

	"smart-task-parser/internal/parser"
)

func TestClassify(t *testing.T) {
	c := parser.NewClassifier()

	tests := []struct {
		name string
		text string
		want parser.Intent
	}{
		{"Ba-construction with move verb", "把写文档调整到明天", parser.IntentEdit},
		{"Plain create with metadata", "写文档 明天 紧急", parser.IntentCreate},
		{"Modification verb", "修改会议时间", parser.IntentEdit},
		{"Transformation verb", "会议改成下午", parser.IntentEdit},
		{"From-to pattern", "从周三改到周五", parser.IntentEdit},
		{"Set-to pattern", "优先级设为高", parser.IntentEdit},
		{"Reschedule verb", "设计稿延期两天", parser.IntentEdit},
		{"Ba-construction with target", "把报告改为周报", parser.IntentEdit},
		{"Simple create", "明天上午开周会", parser.IntentCreate},
		{"Empty text", "", parser.IntentCreate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
