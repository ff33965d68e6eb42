package level

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rahulnair/lingua/internal/course"
	"github.com/rahulnair/lingua/internal/drill"
	"github.com/rahulnair/lingua/internal/flow"
	"github.com/rahulnair/lingua/internal/i18n"
	lvl "github.com/rahulnair/lingua/internal/level"
	"github.com/rahulnair/lingua/internal/llm"
	"github.com/rahulnair/lingua/internal/roleplay"
	"github.com/rahulnair/lingua/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	drillEvents []store.DrillEventData
	quizEvents  []store.QuizEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendDrillEvent(_ context.Context, data store.DrillEventData) error {
	m.drillEvents = append(m.drillEvents, data)
	return nil
}
func (m *mockEventRepo) DrillStatsByMode(_ context.Context) ([]store.DrillStats, error) {
	return nil, nil
}
func (m *mockEventRepo) CardAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}
func (m *mockEventRepo) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) QuizStatsByLevel(_ context.Context) ([]store.QuizStats, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testData() *lvl.Data {
	return &lvl.Data{
		Topic:     "At the Airport",
		LevelName: "Airport Basics",
		Flashcards: []lvl.Flashcard{
			{ID: "c1", Front: "Where is the boarding gate", Back: "登机口在哪里", Pronunciation: "/wɛər ɪz ðə ˈbɔːrdɪŋ ɡeɪt/"},
			{ID: "c2", Front: "I have a connecting flight", Back: "我有转机航班"},
		},
		RolePlay: lvl.RolePlayScenario{
			Setting:     "Airport check-in counter",
			UserRole:    "Traveler",
			AIRole:      "Check-in agent",
			Objective:   "Check in and ask about the gate",
			OpeningLine: "Good morning, may I see your passport?",
		},
		Exam: []lvl.QuizQuestion{
			{ID: "q1", Question: "What do you show at check-in?", Options: []string{"Passport", "Umbrella"}, CorrectIndex: 0},
			{ID: "q2", Question: "Where do planes depart from?", Options: []string{"Platform", "Gate"}, CorrectIndex: 1},
		},
		Tasks: []lvl.StudyTask{
			{Day: 1, Focus: "Vocabulary", Task: "Review all cards", Duration: "15 min"},
		},
	}
}

func testLevelScreen() (*LevelScreen, *mockEventRepo) {
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	deps := &flow.Deps{
		I18n:      i18n.New(i18n.EN),
		Provider:  llm.NewMockProvider(),
		Roleplay:  roleplay.DefaultConfig(),
		Events:    events,
		Snapshots: snaps,
		Locale:    "en-US",
		State: &course.State{
			Goal: "Travel to the USA",
			Plan: &course.CoursePlan{
				Modules: []course.CourseModule{
					{ID: "m1", Title: "At the Airport", Status: course.StatusCurrent},
					{ID: "m2", Title: "At the Hotel", Status: course.StatusLocked},
				},
			},
		},
	}
	module := deps.State.Plan.Modules[0]
	return New(deps, module, testData()), events
}

func TestTitlePrefersLevelName(t *testing.T) {
	s, _ := testLevelScreen()
	if s.Title() != "Airport Basics" {
		t.Errorf("expected level name as title, got %q", s.Title())
	}
}

func TestCardNavigation(t *testing.T) {
	s, _ := testLevelScreen()

	if s.session.Index() != 0 {
		t.Fatalf("expected start at card 0, got %d", s.session.Index())
	}
	s.Update(keyPress('l'))
	if s.session.Index() != 1 {
		t.Errorf("expected card 1 after right, got %d", s.session.Index())
	}
	s.Update(keyPress('h'))
	if s.session.Index() != 0 {
		t.Errorf("expected card 0 after left, got %d", s.session.Index())
	}
}

func TestFlipTogglesTranslation(t *testing.T) {
	s, _ := testLevelScreen()

	if s.session.Flipped() {
		t.Fatal("card should start front side up")
	}
	s.Update(keyPress(' '))
	if !s.session.Flipped() {
		t.Error("space should flip the card")
	}
	view := s.View(80, 30)
	if !strings.Contains(view, "登机口在哪里") {
		t.Error("flipped card should show the translation")
	}
}

func TestDictationRecordsDrillEvent(t *testing.T) {
	s, events := testLevelScreen()

	s.Update(keyPress('d'))
	if s.session.Mode() != drill.ModeDictation {
		t.Fatalf("expected dictation mode, got %v", s.session.Mode())
	}

	s.session.Dictation().SetInput("where is the boarding gate")
	s.Update(enterKey())

	if len(events.drillEvents) != 1 {
		t.Fatalf("expected 1 drill event, got %d", len(events.drillEvents))
	}
	ev := events.drillEvents[0]
	if ev.Mode != "dictation" {
		t.Errorf("expected mode dictation, got %q", ev.Mode)
	}
	if ev.LevelID != "m1" || ev.CardID != "c1" {
		t.Errorf("unexpected event identity: level=%q card=%q", ev.LevelID, ev.CardID)
	}
	if !ev.Correct {
		t.Error("exact transcription should be recorded as correct")
	}
	if ev.ExactWords != 5 || ev.MissedWords != 0 {
		t.Errorf("expected 5 exact words, got exact=%d missed=%d", ev.ExactWords, ev.MissedWords)
	}
}

func TestDictationWrongAnswerRecordedIncorrect(t *testing.T) {
	s, events := testLevelScreen()

	s.Update(keyPress('d'))
	s.session.Dictation().SetInput("completely wrong words entirely")
	s.Update(enterKey())

	if len(events.drillEvents) != 1 {
		t.Fatalf("expected 1 drill event, got %d", len(events.drillEvents))
	}
	if events.drillEvents[0].Correct {
		t.Error("wrong transcription should be recorded as incorrect")
	}
}

func TestDictationEnterAfterCheckAdvances(t *testing.T) {
	s, _ := testLevelScreen()

	s.Update(keyPress('d'))
	s.session.Dictation().SetInput("where is the boarding gate")
	s.Update(enterKey())
	s.Update(enterKey())

	if s.session.Index() != 1 {
		t.Errorf("second enter should advance to the next card, got index %d", s.session.Index())
	}
}

func TestEscLeavesDrillModeBeforePopping(t *testing.T) {
	s, _ := testLevelScreen()

	s.Update(keyPress('d'))
	if !s.HandleEsc() {
		t.Fatal("esc in dictation mode should be consumed")
	}
	if s.session.Mode() != drill.ModeView {
		t.Errorf("esc should return to view mode, got %v", s.session.Mode())
	}
	if s.HandleEsc() {
		t.Error("esc in view mode should let the router pop")
	}
}

func TestTabCycles(t *testing.T) {
	s, _ := testLevelScreen()

	tabs := []Tab{TabRoleplay, TabExam, TabTasks, TabCards}
	for _, want := range tabs {
		s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		if s.tab != want {
			t.Fatalf("expected tab %v, got %v", want, s.tab)
		}
	}
}

func TestExamRecordsQuizEvents(t *testing.T) {
	s, events := testLevelScreen()
	s.tab = TabExam

	// First question: choose the correct option.
	s.Update(enterKey())
	if len(events.quizEvents) != 1 {
		t.Fatalf("expected 1 quiz event, got %d", len(events.quizEvents))
	}
	ev := events.quizEvents[0]
	if !ev.Correct || ev.ChosenOption != "Passport" || ev.CorrectOption != "Passport" {
		t.Errorf("unexpected first answer event: %+v", ev)
	}

	// Second question: choose the wrong option.
	s.Update(enterKey()) // advance
	s.Update(enterKey()) // select option 0 (wrong)
	if len(events.quizEvents) != 2 {
		t.Fatalf("expected 2 quiz events, got %d", len(events.quizEvents))
	}
	if events.quizEvents[1].Correct {
		t.Error("wrong option should be recorded as incorrect")
	}
}

func TestPassingExamCompletesModule(t *testing.T) {
	s, _ := testLevelScreen()
	s.tab = TabExam

	// Answer both questions correctly: q1 option 0, q2 option 1.
	s.Update(enterKey())
	s.Update(enterKey())
	s.Update(keyPress('j'))
	s.Update(enterKey())
	s.Update(enterKey())

	if !s.exam.Finished() {
		t.Fatal("exam should be finished")
	}
	if s.exam.Percent() != 100 {
		t.Fatalf("expected 100%%, got %d", s.exam.Percent())
	}
	if !s.completed {
		t.Error("passing exam should mark the module completed")
	}
	plan := s.deps.State.Plan
	if plan.Modules[0].Status != course.StatusCompleted {
		t.Errorf("module 1 should be completed, got %s", plan.Modules[0].Status)
	}
	if plan.Modules[1].Status != course.StatusCurrent {
		t.Errorf("module 2 should be unlocked, got %s", plan.Modules[1].Status)
	}
}

func TestFailingExamDoesNotCompleteModule(t *testing.T) {
	s, _ := testLevelScreen()
	s.tab = TabExam

	// Answer both questions wrong: q1 option 1, q2 option 0.
	s.Update(keyPress('j'))
	s.Update(enterKey())
	s.Update(enterKey())
	s.Update(enterKey())
	s.Update(enterKey())

	if !s.exam.Finished() {
		t.Fatal("exam should be finished")
	}
	if s.completed {
		t.Error("failing exam should not complete the module")
	}
	if s.deps.State.Plan.Modules[0].Status != course.StatusCurrent {
		t.Error("module should stay current after a failed exam")
	}
}

func TestExamRetryResets(t *testing.T) {
	s, _ := testLevelScreen()
	s.tab = TabExam

	s.Update(keyPress('j'))
	s.Update(enterKey())
	s.Update(enterKey())
	s.Update(enterKey())
	s.Update(enterKey())

	s.Update(keyPress('r'))
	if s.exam.Finished() {
		t.Error("retry should restart the exam")
	}
	if s.exam.Index() != 0 {
		t.Errorf("retry should return to question 0, got %d", s.exam.Index())
	}
}

func TestDrillTimeMeasured(t *testing.T) {
	s, events := testLevelScreen()

	s.Update(keyPress('d'))
	s.drillStart = time.Now().Add(-2 * time.Second)
	s.session.Dictation().SetInput("where is the boarding gate")
	s.Update(enterKey())

	if len(events.drillEvents) != 1 {
		t.Fatalf("expected 1 drill event, got %d", len(events.drillEvents))
	}
	if events.drillEvents[0].TimeMs < 2000 {
		t.Errorf("expected at least 2000ms, got %d", events.drillEvents[0].TimeMs)
	}
}

func TestTasksViewListsPlan(t *testing.T) {
	s, _ := testLevelScreen()
	s.tab = TabTasks

	view := s.View(80, 30)
	if !strings.Contains(view, "Vocabulary") {
		t.Error("tasks view should show the task focus")
	}
	if !strings.Contains(view, "Review all cards") {
		t.Error("tasks view should show the task text")
	}
}
