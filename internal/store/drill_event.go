package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/rahulnair/lingua/ent/drillevent"
)

func (r *eventRepo) AppendDrillEvent(ctx context.Context, data DrillEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DrillEvent.Create().
		SetSequence(seqNum).
		SetLevelID(data.LevelID).
		SetCardID(data.CardID).
		SetMode(data.Mode).
		SetTargetText(data.TargetText).
		SetAttemptText(data.AttemptText).
		SetCorrect(data.Correct).
		SetExactWords(data.ExactWords).
		SetCloseWords(data.CloseWords).
		SetMissedWords(data.MissedWords).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save drill event: %w", err)
	}
	return nil
}

func (r *eventRepo) DrillStatsByMode(ctx context.Context) ([]DrillStats, error) {
	events, err := r.client.DrillEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query drill events: %w", err)
	}

	byMode := make(map[string]*DrillStats)
	for _, e := range events {
		s := byMode[e.Mode]
		if s == nil {
			s = &DrillStats{Mode: e.Mode}
			byMode[e.Mode] = s
		}
		s.Attempts++
		if e.Correct {
			s.Correct++
		}
	}

	out := make([]DrillStats, 0, len(byMode))
	for _, s := range byMode {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mode < out[j].Mode })
	return out, nil
}

func (r *eventRepo) CardAccuracy(ctx context.Context, cardID string) (float64, error) {
	events, err := r.client.DrillEvent.Query().
		Where(drillevent.CardID(cardID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query card accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
