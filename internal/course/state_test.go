package course

import (
	"testing"

	"github.com/rahulnair/lingua/internal/store"
)

func TestStateSaveLoadRoundTrip(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	repo := s.SnapshotRepo()
	ctx := t.Context()

	// Nothing saved yet.
	loaded, err := Load(ctx, repo)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if loaded != nil {
		t.Fatal("expected nil state before any save")
	}

	state := &State{
		Goal: "Business meetings in English",
		Analysis: &AnalysisResult{
			OriginalGoal: "Business meetings in English",
			SuggestedTopics: []ScenarioTopic{
				{ID: "intro", Title: "Introductions", Description: "Meeting new colleagues", KeyVocabulary: []string{"pleased to meet you"}},
			},
		},
		Plan: &CoursePlan{
			PlanTitle:     "Business English Sprint",
			TotalDuration: "1 Month",
			Modules: []CourseModule{
				{ID: "m1", Title: "Introductions", EstimatedTime: "1 Week", Status: StatusCurrent},
			},
		},
	}

	if err := Save(ctx, repo, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err = Load(ctx, repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected saved state")
	}
	if loaded.Goal != state.Goal {
		t.Errorf("goal = %q", loaded.Goal)
	}
	if loaded.Analysis == nil || len(loaded.Analysis.SuggestedTopics) != 1 {
		t.Fatalf("analysis = %+v", loaded.Analysis)
	}
	if loaded.Plan == nil || loaded.Plan.Modules[0].Status != StatusCurrent {
		t.Fatalf("plan = %+v", loaded.Plan)
	}

	// Progress updates persist through subsequent saves.
	loaded.Plan.CompleteModule("m1")
	if err := Save(ctx, repo, loaded); err != nil {
		t.Fatalf("save (update): %v", err)
	}
	again, err := Load(ctx, repo)
	if err != nil {
		t.Fatalf("load (update): %v", err)
	}
	if again.Plan.Modules[0].Status != StatusCompleted {
		t.Errorf("module status after reload = %q", again.Plan.Modules[0].Status)
	}
}
