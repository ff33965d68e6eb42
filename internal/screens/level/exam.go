package level

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/rahulnair/lingua/internal/screen"
	"github.com/rahulnair/lingua/internal/store"
)

func (s *LevelScreen) handleExamKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	e := s.exam

	if e.Finished() {
		if msg.String() == "r" {
			e.Retry()
			s.examCursor = 0
		}
		return s, nil
	}

	q, ok := e.Current()
	if !ok {
		return s, nil
	}

	if e.Answered() {
		switch msg.String() {
		case "enter", "n":
			e.Next()
			s.examCursor = 0
			if e.Finished() {
				s.markCompleted()
			}
		}
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.examCursor > 0 {
			s.examCursor--
		}
	case "down", "j":
		if s.examCursor < len(q.Options)-1 {
			s.examCursor++
		}
	case "enter":
		if e.Select(s.examCursor) {
			s.recordQuizAnswer(q.Question, q.Options, s.examCursor, q.CorrectIndex, e.Correct())
		}
	}
	return s, nil
}

// recordQuizAnswer persists one locked-in exam answer.
func (s *LevelScreen) recordQuizAnswer(question string, options []string, chosen, correct int, isCorrect bool) {
	if s.deps.Events == nil {
		return
	}
	var chosenText, correctText string
	if chosen >= 0 && chosen < len(options) {
		chosenText = options[chosen]
	}
	if correct >= 0 && correct < len(options) {
		correctText = options[correct]
	}
	_ = s.deps.Events.AppendQuizEvent(context.Background(), store.QuizEventData{
		LevelID:       s.module.ID,
		QuestionIndex: s.exam.Index(),
		QuestionText:  question,
		ChosenOption:  chosenText,
		CorrectOption: correctText,
		Correct:       isCorrect,
	})
}
