package welcome

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rahulnair/lingua/internal/course"
	"github.com/rahulnair/lingua/internal/flow"
	"github.com/rahulnair/lingua/internal/i18n"
	"github.com/rahulnair/lingua/internal/llm"
	"github.com/rahulnair/lingua/internal/router"
)

var analysisJSON = json.RawMessage(`{
	"originalGoal": "Travel to the USA",
	"suggestedTopics": [
		{"id": "t1", "title": "At the Airport", "description": "Navigating check-in and security", "keyVocabulary": ["boarding pass", "gate"]},
		{"id": "t2", "title": "Ordering Food", "description": "Restaurants and cafes", "keyVocabulary": ["menu", "check"]}
	]
}`)

func testWelcome(responses ...llm.MockResponse) *WelcomeScreen {
	provider := llm.NewMockProvider(responses...)
	deps := &flow.Deps{
		I18n:   i18n.New(i18n.EN),
		Course: course.NewService(provider, course.DefaultConfig()),
	}
	return New(deps)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestEnterWithEmptyGoalDoesNothing(t *testing.T) {
	w := testWelcome()

	_, cmd := w.Update(enterKey())
	if cmd != nil {
		t.Error("enter with an empty goal should not start analysis")
	}
	if w.analyzing {
		t.Error("screen should not enter the analyzing state")
	}
}

func TestTypedGoalStartsAnalysis(t *testing.T) {
	w := testWelcome(llm.MockResponse{Content: analysisJSON})

	for _, r := range "Travel to the USA" {
		w.Update(keyPress(r))
	}
	_, cmd := w.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected an analysis command")
	}
	if !w.analyzing {
		t.Error("screen should be in the analyzing state")
	}

	msg := cmd()
	done, ok := msg.(analysisDoneMsg)
	if !ok {
		t.Fatalf("expected analysisDoneMsg, got %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("unexpected error: %v", done.Err)
	}
	if done.Goal != "Travel to the USA" {
		t.Errorf("unexpected goal: %q", done.Goal)
	}
	if len(done.Result.SuggestedTopics) != 2 {
		t.Errorf("expected 2 topics, got %d", len(done.Result.SuggestedTopics))
	}
}

func TestAnalysisDonePushesAnalysisScreen(t *testing.T) {
	w := testWelcome()
	w.analyzing = true

	var result course.AnalysisResult
	if err := json.Unmarshal(analysisJSON, &result); err != nil {
		t.Fatal(err)
	}

	_, cmd := w.Update(analysisDoneMsg{Goal: "Travel to the USA", Result: &result})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if w.analyzing {
		t.Error("analyzing state should be cleared")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen == nil {
		t.Error("pushed screen should not be nil")
	}
}

func TestAnalysisErrorShownInline(t *testing.T) {
	w := testWelcome()
	w.analyzing = true

	w.Update(analysisDoneMsg{Goal: "x", Err: errors.New("provider unavailable")})
	if w.analyzing {
		t.Error("analyzing state should be cleared on error")
	}
	view := w.View(80, 30)
	if !strings.Contains(view, "provider unavailable") {
		t.Error("error message should be rendered")
	}
}

func TestPopularGoalSelection(t *testing.T) {
	w := testWelcome(llm.MockResponse{Content: analysisJSON})

	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if w.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", w.cursor)
	}

	_, cmd := w.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected an analysis command for the selected goal")
	}
	done := cmd().(analysisDoneMsg)
	if done.Goal != popularGoals[1] {
		t.Errorf("expected goal %q, got %q", popularGoals[1], done.Goal)
	}
}

func TestUpReturnsToInput(t *testing.T) {
	w := testWelcome()

	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	w.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if w.cursor != -1 {
		t.Errorf("expected focus back on the input, got cursor %d", w.cursor)
	}
}

func TestKeysIgnoredWhileAnalyzing(t *testing.T) {
	w := testWelcome()
	w.analyzing = true

	_, cmd := w.Update(enterKey())
	if cmd != nil {
		t.Error("keys should be ignored while analysis is running")
	}
}

func TestViewShowsPopularGoals(t *testing.T) {
	w := testWelcome()

	view := w.View(100, 40)
	for _, goal := range popularGoals {
		if !strings.Contains(view, goal) {
			t.Errorf("view should list popular goal %q", goal)
		}
	}
}
