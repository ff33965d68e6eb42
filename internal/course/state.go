package course

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rahulnair/lingua/internal/store"
)

const snapshotVersion = 1

// keepSnapshots bounds how many historical snapshots are retained.
const keepSnapshots = 10

// State is the learner's persisted course progress.
type State struct {
	Goal     string
	Analysis *AnalysisResult
	Plan     *CoursePlan
}

// Save snapshots the state so the course survives restarts.
func Save(ctx context.Context, repo store.SnapshotRepo, state *State) error {
	data := store.SnapshotData{
		Version: snapshotVersion,
		Goal:    state.Goal,
	}

	if state.Analysis != nil {
		b, err := json.Marshal(state.Analysis)
		if err != nil {
			return fmt.Errorf("marshal analysis: %w", err)
		}
		data.Analysis = b
	}
	if state.Plan != nil {
		b, err := json.Marshal(state.Plan)
		if err != nil {
			return fmt.Errorf("marshal plan: %w", err)
		}
		data.Plan = b
	}

	err := repo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("save course snapshot: %w", err)
	}
	return repo.Prune(ctx, keepSnapshots)
}

// Load restores the latest saved state, or returns nil if none exists.
func Load(ctx context.Context, repo store.SnapshotRepo) (*State, error) {
	snap, err := repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load course snapshot: %w", err)
	}
	if snap == nil {
		return nil, nil
	}

	state := &State{Goal: snap.Data.Goal}

	if len(snap.Data.Analysis) > 0 {
		var a AnalysisResult
		if err := json.Unmarshal(snap.Data.Analysis, &a); err != nil {
			return nil, fmt.Errorf("unmarshal analysis: %w", err)
		}
		state.Analysis = &a
	}
	if len(snap.Data.Plan) > 0 {
		var p CoursePlan
		if err := json.Unmarshal(snap.Data.Plan, &p); err != nil {
			return nil, fmt.Errorf("unmarshal plan: %w", err)
		}
		state.Plan = &p
	}

	return state, nil
}
