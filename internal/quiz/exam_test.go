package quiz

import (
	"testing"

	"github.com/rahulnair/lingua/internal/level"
)

func testQuestions() []level.QuizQuestion {
	return []level.QuizQuestion{
		{ID: "q1", Question: "Pick A", Options: []string{"A", "B", "C", "D"}, CorrectIndex: 0, Explanation: "A is right"},
		{ID: "q2", Question: "Pick C", Options: []string{"A", "B", "C", "D"}, CorrectIndex: 2, Explanation: "C is right"},
	}
}

func TestExam_AnswerLocksQuestion(t *testing.T) {
	e := NewExam(testQuestions())

	if e.Answered() {
		t.Fatal("fresh question must not be answered")
	}
	if !e.Select(0) {
		t.Fatal("first selection must be accepted")
	}
	if !e.Answered() || e.Selected() != 0 {
		t.Errorf("answered=%v selected=%d", e.Answered(), e.Selected())
	}
	if !e.Correct() {
		t.Error("expected correct answer")
	}

	// Further selections are ignored and don't change the score.
	if e.Select(1) {
		t.Error("locked question must reject re-selection")
	}
	if e.Selected() != 0 || e.Score() != 1 {
		t.Errorf("selected=%d score=%d after re-select attempt", e.Selected(), e.Score())
	}
}

func TestExam_SelectRejectsOutOfRange(t *testing.T) {
	e := NewExam(testQuestions())
	if e.Select(-1) || e.Select(4) {
		t.Error("out-of-range selections must be rejected")
	}
	if e.Answered() {
		t.Error("rejected selection must not lock the question")
	}
}

func TestExam_NextRequiresAnswer(t *testing.T) {
	e := NewExam(testQuestions())
	if e.Next() {
		t.Fatal("Next before answering must be refused")
	}
	e.Select(1)
	if !e.Next() {
		t.Fatal("Next after answering must advance")
	}
	if e.Index() != 1 || e.Answered() || e.Selected() != -1 {
		t.Errorf("index=%d answered=%v selected=%d", e.Index(), e.Answered(), e.Selected())
	}
}

func TestExam_FinishAndScore(t *testing.T) {
	e := NewExam(testQuestions())

	e.Select(0) // correct
	e.Next()
	e.Select(1) // wrong
	e.Next()

	if !e.Finished() {
		t.Fatal("expected finished exam")
	}
	if _, ok := e.Current(); ok {
		t.Error("finished exam has no current question")
	}
	if e.Score() != 1 || e.Percent() != 50 {
		t.Errorf("score=%d percent=%d", e.Score(), e.Percent())
	}
}

func TestExam_ResultKeyThresholds(t *testing.T) {
	// Threshold boundaries over five questions.
	five := make([]level.QuizQuestion, 5)
	for i := range five {
		five[i] = level.QuizQuestion{Options: []string{"A", "B"}, CorrectIndex: 0}
	}
	cases := []struct {
		correct int
		want    string
	}{
		{5, "perfect_score"},
		{4, "great_job"},      // 80%
		{3, "good_effort"},    // 60%
		{2, "keep_practicing"}, // 40%
	}
	for _, c := range cases {
		e := NewExam(five)
		for i := 0; i < 5; i++ {
			if i < c.correct {
				e.Select(0)
			} else {
				e.Select(1)
			}
			e.Next()
		}
		if got := e.ResultKey(); got != c.want {
			t.Errorf("%d/5 correct: result key = %q, want %q", c.correct, got, c.want)
		}
	}
}

func TestExam_RetryResetsEverything(t *testing.T) {
	e := NewExam(testQuestions())
	e.Select(0)
	e.Next()
	e.Select(2)
	e.Next()

	e.Retry()

	if e.Finished() || e.Index() != 0 || e.Score() != 0 || e.Answered() || e.Selected() != -1 {
		t.Errorf("after retry: finished=%v index=%d score=%d answered=%v selected=%d",
			e.Finished(), e.Index(), e.Score(), e.Answered(), e.Selected())
	}
	if _, ok := e.Current(); !ok {
		t.Error("expected current question after retry")
	}
}

func TestExam_EmptyQuestionList(t *testing.T) {
	e := NewExam(nil)
	if _, ok := e.Current(); ok {
		t.Error("empty exam has no current question")
	}
	if e.Select(0) {
		t.Error("selection on empty exam must be rejected")
	}
	if e.Percent() != 0 {
		t.Errorf("percent = %d", e.Percent())
	}
}
