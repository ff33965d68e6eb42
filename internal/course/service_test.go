package course

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rahulnair/lingua/internal/llm"
)

func validAnalysisJSON() json.RawMessage {
	return json.RawMessage(`{
		"originalGoal": "Travel to the USA",
		"suggestedTopics": [
			{"id": "airport", "title": "Airport Immigration", "description": "Answering officer questions", "keyVocabulary": ["passport", "visa", "purpose of visit"]},
			{"id": "", "title": "Ordering Food", "description": "Restaurants and cafes", "keyVocabulary": ["menu", "check", "tip"]}
		]
	}`)
}

func validPlanJSON() json.RawMessage {
	return json.RawMessage(`{
		"planTitle": "Your USA Travel English Journey",
		"totalDuration": "1 Week",
		"modules": [
			{"id": "m1", "title": "Airport Immigration", "description": "Get through the border", "estimatedTime": "2 Days", "status": "current"},
			{"id": "", "title": "Ordering Food", "description": "Eat out with confidence", "estimatedTime": "2 Days", "status": "locked"}
		]
	}`)
}

func TestService_Analyze(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAnalysisJSON()})
	svc := NewService(mock, DefaultConfig())

	result, err := svc.Analyze(t.Context(), "Travel to the USA")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if result.OriginalGoal != "Travel to the USA" {
		t.Errorf("original goal = %q", result.OriginalGoal)
	}
	if len(result.SuggestedTopics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(result.SuggestedTopics))
	}
	if result.SuggestedTopics[0].ID != "airport" {
		t.Errorf("topic 0 id = %q", result.SuggestedTopics[0].ID)
	}
	// Missing IDs are filled in.
	if result.SuggestedTopics[1].ID == "" {
		t.Error("expected generated id for topic with empty id")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "scenario-analysis" {
		t.Error("expected scenario-analysis schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Travel to the USA") {
		t.Error("expected goal in the prompt")
	}
}

func TestService_Plan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON()})
	svc := NewService(mock, DefaultConfig())

	topics := []ScenarioTopic{
		{ID: "airport", Title: "Airport Immigration"},
		{ID: "food", Title: "Ordering Food"},
	}

	plan, err := svc.Plan(t.Context(), topics, TimeFrameWeek)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	if plan.PlanTitle == "" {
		t.Error("expected a plan title")
	}
	if len(plan.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(plan.Modules))
	}
	if plan.Modules[0].Status != StatusCurrent {
		t.Errorf("module 0 status = %q", plan.Modules[0].Status)
	}
	if plan.Modules[1].ID == "" {
		t.Error("expected generated id for module with empty id")
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "Airport Immigration, Ordering Food") {
		t.Errorf("expected topic titles in prompt, got: %s", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, `"Week"`) {
		t.Error("expected timeframe in prompt")
	}
}

func TestService_PlanRejectsEmptyTopics(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, err := svc.Plan(t.Context(), nil, TimeFrameWeek); err == nil {
		t.Fatal("expected error for empty topic list")
	}
}

func TestNormalizePlan_RepairsCurrentStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []ModuleStatus
		want     []ModuleStatus
	}{
		{
			name:     "all locked promotes first",
			statuses: []ModuleStatus{StatusLocked, StatusLocked},
			want:     []ModuleStatus{StatusCurrent, StatusLocked},
		},
		{
			name:     "two current demotes extras",
			statuses: []ModuleStatus{StatusCurrent, StatusCurrent, StatusLocked},
			want:     []ModuleStatus{StatusCurrent, StatusLocked, StatusLocked},
		},
		{
			name:     "valid plan untouched",
			statuses: []ModuleStatus{StatusCompleted, StatusCurrent, StatusLocked},
			want:     []ModuleStatus{StatusCompleted, StatusCurrent, StatusLocked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := &CoursePlan{}
			for i, st := range tt.statuses {
				plan.Modules = append(plan.Modules, CourseModule{ID: string(rune('a' + i)), Status: st})
			}
			normalizePlan(plan)
			for i, want := range tt.want {
				if plan.Modules[i].Status != want {
					t.Errorf("module %d status = %q, want %q", i, plan.Modules[i].Status, want)
				}
			}
		})
	}
}

func TestCompleteModule_UnlocksNext(t *testing.T) {
	plan := &CoursePlan{Modules: []CourseModule{
		{ID: "m1", Status: StatusCurrent},
		{ID: "m2", Status: StatusLocked},
		{ID: "m3", Status: StatusLocked},
	}}

	if !plan.CompleteModule("m1") {
		t.Fatal("expected module m1 to be found")
	}
	if plan.Modules[0].Status != StatusCompleted {
		t.Errorf("m1 status = %q", plan.Modules[0].Status)
	}
	if plan.Modules[1].Status != StatusCurrent {
		t.Errorf("m2 status = %q", plan.Modules[1].Status)
	}
	if plan.Modules[2].Status != StatusLocked {
		t.Errorf("m3 status = %q", plan.Modules[2].Status)
	}

	if cur := plan.CurrentModule(); cur == nil || cur.ID != "m2" {
		t.Errorf("current module = %+v", cur)
	}

	if plan.CompleteModule("missing") {
		t.Error("expected false for unknown module id")
	}

	plan.CompleteModule("m2")
	plan.CompleteModule("m3")
	if !plan.Completed() {
		t.Error("expected plan to be completed")
	}
	if plan.CurrentModule() != nil {
		t.Error("expected no current module after completion")
	}
}
