package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-parser/internal/middleware"
	"smart-task-parser/internal/parser"
	parserHTTP "smart-task-parser/internal/parser/delivery/http"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockParserUseCase struct {
	outcome   parser.ParseOutcome
	err       error
	lastInput parser.ParseInput
}

func (m *mockParserUseCase) Parse(ctx context.Context, input parser.ParseInput) (parser.ParseOutcome, error) {
	m.lastInput = input
	return m.outcome, m.err
}

func newTestRouter(uc parser.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := parserHTTP.New(&mockLogger{}, uc)
	mw := middleware.New(&mockLogger{}, 0)
	parserHTTP.RegisterRoutes(router.Group("/api/v1/parser"), h, mw)
	return router
}

func doParse(t *testing.T, router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parser/parse", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestParseEndpoint(t *testing.T) {
	due := time.Date(2024, 1, 2, 23, 59, 59, 999000000, time.UTC)
	uc := &mockParserUseCase{outcome: parser.ParseOutcome{
		Kind: parser.OutcomeCreate,
		Draft: &parser.TaskDraft{
			Title:    "完成设计稿",
			Priority: "high",
			DueDate:  &due,
		},
		Confidence: 0.8,
	}}
	router := newTestRouter(uc)

	w := doParse(t, router, map[string]any{
		"text": "明天完成设计稿，高优先级",
		"now":  "2024-01-01T10:00:00Z",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Intent string `json:"intent"`
			Draft  struct {
				Title    string  `json:"title"`
				Priority string  `json:"priority"`
				DueDate  *string `json:"due_date"`
			} `json:"draft"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Intent != "create" {
		t.Errorf("expected intent create, got %q", resp.Data.Intent)
	}
	if resp.Data.Draft.Title != "完成设计稿" || resp.Data.Draft.Priority != "high" {
		t.Errorf("unexpected draft: %+v", resp.Data.Draft)
	}
	if resp.Data.Draft.DueDate == nil {
		t.Error("expected due_date in draft")
	}

	if !uc.lastInput.Now.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("expected now forwarded to the use case, got %v", uc.lastInput.Now)
	}
}

func TestParseEndpointOmitsAbsentPriority(t *testing.T) {
	uc := &mockParserUseCase{outcome: parser.ParseOutcome{
		Kind:       parser.OutcomeCreate,
		Draft:      &parser.TaskDraft{Title: "写周报"},
		Confidence: 0.8,
	}}
	router := newTestRouter(uc)

	w := doParse(t, router, map[string]any{"text": "写周报"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Draft map[string]any `json:"draft"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, present := resp.Data.Draft["priority"]; present {
		t.Errorf("absent priority must not serialize, got %v", resp.Data.Draft["priority"])
	}
}

func TestParseEndpointAmbiguous(t *testing.T) {
	uc := &mockParserUseCase{outcome: parser.ParseOutcome{
		Kind:    parser.OutcomeEditAmbiguous,
		Updates: &parser.EditUpdate{DueDate: parser.DueDateChange{Op: parser.DueDateClear}},
	}}
	router := newTestRouter(uc)

	w := doParse(t, router, map[string]any{
		"text": "把会议时间取消时间",
		"candidate_tasks": []map[string]any{
			{"id": "t1", "title": "写方案"},
			{"id": "t2", "title": "开会"},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(uc.lastInput.Candidates) != 2 {
		t.Fatalf("expected candidates forwarded, got %d", len(uc.lastInput.Candidates))
	}

	var resp struct {
		Data struct {
			Updates struct {
				DueDate *struct {
					Action string  `json:"action"`
					Value  *string `json:"value"`
				} `json:"due_date"`
			} `json:"updates"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Updates.DueDate == nil || resp.Data.Updates.DueDate.Action != "clear" {
		t.Errorf("expected clear due-date action, got %+v", resp.Data.Updates.DueDate)
	}
}

func TestParseEndpointValidation(t *testing.T) {
	router := newTestRouter(&mockParserUseCase{})

	t.Run("Missing Text", func(t *testing.T) {
		w := doParse(t, router, map[string]any{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Bad Now Format", func(t *testing.T) {
		w := doParse(t, router, map[string]any{"text": "开会", "now": "yesterday"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Candidate Without ID", func(t *testing.T) {
		w := doParse(t, router, map[string]any{
			"text":            "开会",
			"candidate_tasks": []map[string]any{{"title": "写方案"}},
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestParseEndpointDomainError(t *testing.T) {
	uc := &mockParserUseCase{err: parser.ErrEmptyInput}
	router := newTestRouter(uc)

	w := doParse(t, router, map[string]any{"text": "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty input, got %d", w.Code)
	}
}
