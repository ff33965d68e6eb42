package quiz

import (
	"math"

	"github.com/rahulnair/lingua/internal/level"
)

// Exam walks a learner through a level's multiple-choice questions.
// Each question locks after one selection; the explanation is shown and
// Next moves on. After the last question the exam is finished and can be
// retried from scratch.
type Exam struct {
	questions []level.QuizQuestion
	index     int
	selected  int
	answered  bool
	score     int
	finished  bool
}

// NewExam starts an exam over the given questions.
func NewExam(questions []level.QuizQuestion) *Exam {
	return &Exam{questions: questions, selected: -1}
}

// Current returns the active question. ok is false when the exam is
// finished or has no questions.
func (e *Exam) Current() (level.QuizQuestion, bool) {
	if e.finished || e.index >= len(e.questions) {
		return level.QuizQuestion{}, false
	}
	return e.questions[e.index], true
}

// Index returns the zero-based position of the active question.
func (e *Exam) Index() int { return e.index }

// Total returns the number of questions.
func (e *Exam) Total() int { return len(e.questions) }

// Select records the learner's choice for the active question and locks
// it. Returns false if the question is already answered, the index is
// out of range, or the exam is finished.
func (e *Exam) Select(option int) bool {
	q, ok := e.Current()
	if !ok || e.answered {
		return false
	}
	if option < 0 || option >= len(q.Options) {
		return false
	}

	e.selected = option
	e.answered = true
	if option == q.CorrectIndex {
		e.score++
	}
	return true
}

// Answered reports whether the active question is locked.
func (e *Exam) Answered() bool { return e.answered }

// Selected returns the locked choice for the active question, or -1.
func (e *Exam) Selected() int { return e.selected }

// Correct reports whether the locked choice was right.
func (e *Exam) Correct() bool {
	q, ok := e.Current()
	return ok && e.answered && e.selected == q.CorrectIndex
}

// Next advances past an answered question, finishing the exam after the
// last one. Returns false if the active question is not answered yet.
func (e *Exam) Next() bool {
	if !e.answered {
		return false
	}
	if e.index < len(e.questions)-1 {
		e.index++
		e.selected = -1
		e.answered = false
	} else {
		e.finished = true
	}
	return true
}

// Finished reports whether every question has been answered.
func (e *Exam) Finished() bool { return e.finished }

// Score returns the number of correct answers so far.
func (e *Exam) Score() int { return e.score }

// Percent returns the rounded score percentage.
func (e *Exam) Percent() int {
	if len(e.questions) == 0 {
		return 0
	}
	return int(math.Round(float64(e.score) / float64(len(e.questions)) * 100))
}

// ResultKey returns the translation key for the result message.
func (e *Exam) ResultKey() string {
	switch p := e.Percent(); {
	case p == 100:
		return "perfect_score"
	case p >= 80:
		return "great_job"
	case p >= 60:
		return "good_effort"
	default:
		return "keep_practicing"
	}
}

// Retry resets the exam to the first question with a zero score.
func (e *Exam) Retry() {
	e.index = 0
	e.selected = -1
	e.answered = false
	e.score = 0
	e.finished = false
}
