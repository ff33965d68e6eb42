package store

import (
	"context"
	"fmt"
	"sort"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetLevelID(data.LevelID).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionText(data.QuestionText).
		SetChosenOption(data.ChosenOption).
		SetCorrectOption(data.CorrectOption).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizStatsByLevel(ctx context.Context) ([]QuizStats, error) {
	events, err := r.client.QuizEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	byLevel := make(map[string]*QuizStats)
	for _, e := range events {
		s := byLevel[e.LevelID]
		if s == nil {
			s = &QuizStats{LevelID: e.LevelID}
			byLevel[e.LevelID] = s
		}
		s.Answered++
		if e.Correct {
			s.Correct++
		}
	}

	out := make([]QuizStats, 0, len(byLevel))
	for _, s := range byLevel {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LevelID < out[j].LevelID })
	return out, nil
}
