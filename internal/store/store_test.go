package store

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Goal:    "learn Spanish for travel",
			Plan:    json.RawMessage(`{"modules":[]}`),
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
	if snap.Data.Goal != "learn Spanish for travel" {
		t.Errorf("data.goal = %q", snap.Data.Goal)
	}
	if string(snap.Data.Plan) != `{"modules":[]}` {
		t.Errorf("data.plan = %s", snap.Data.Plan)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestDrillEventAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []DrillEventData{
		{LevelID: "lvl-1", CardID: "card-1", Mode: "dictation", TargetText: "hola", AttemptText: "hola", Correct: true, TimeMs: 4200},
		{LevelID: "lvl-1", CardID: "card-1", Mode: "dictation", TargetText: "hola", AttemptText: "ola", Correct: false, TimeMs: 3100},
		{LevelID: "lvl-1", CardID: "card-2", Mode: "pronunciation", TargetText: "buenos días", AttemptText: "buenos dias", Correct: true, ExactWords: 2},
	}
	for i, e := range events {
		if err := repo.AppendDrillEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.DrillStatsByMode(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 modes, got %d", len(stats))
	}
	// Sorted by mode: dictation first.
	if stats[0].Mode != "dictation" || stats[0].Attempts != 2 || stats[0].Correct != 1 {
		t.Errorf("dictation stats = %+v", stats[0])
	}
	if stats[1].Mode != "pronunciation" || stats[1].Attempts != 1 || stats[1].Correct != 1 {
		t.Errorf("pronunciation stats = %+v", stats[1])
	}

	acc, err := repo.CardAccuracy(ctx, "card-1")
	if err != nil {
		t.Fatalf("card accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("card-1 accuracy = %v, want 0.5", acc)
	}

	acc, err = repo.CardAccuracy(ctx, "card-missing")
	if err != nil {
		t.Fatalf("card accuracy (missing): %v", err)
	}
	if acc != 0 {
		t.Errorf("missing card accuracy = %v, want 0", acc)
	}
}

func TestQuizEventAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []QuizEventData{
		{LevelID: "lvl-1", QuestionIndex: 0, QuestionText: "q1", ChosenOption: "a", CorrectOption: "a", Correct: true},
		{LevelID: "lvl-1", QuestionIndex: 1, QuestionText: "q2", ChosenOption: "b", CorrectOption: "c", Correct: false},
		{LevelID: "lvl-2", QuestionIndex: 0, QuestionText: "q1", ChosenOption: "a", CorrectOption: "a", Correct: true},
	}
	for i, e := range events {
		if err := repo.AppendQuizEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.QuizStatsByLevel(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(stats))
	}
	if stats[0].LevelID != "lvl-1" || stats[0].Answered != 2 || stats[0].Correct != 1 {
		t.Errorf("lvl-1 stats = %+v", stats[0])
	}
	if stats[1].LevelID != "lvl-2" || stats[1].Answered != 1 || stats[1].Correct != 1 {
		t.Errorf("lvl-2 stats = %+v", stats[1])
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "course-plan",
		InputTokens:  120,
		OutputTokens: 800,
		LatencyMs:    950,
		Success:      true,
		RequestBody:  "[user]\nGenerate a course plan.",
		ResponseBody: `{"modules":[]}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "roleplay",
		InputTokens:  80,
		OutputTokens: 40,
		LatencyMs:    300,
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	recs, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(recs))
	}
	// Newest first.
	if recs[0].Purpose != "roleplay" {
		t.Errorf("first event purpose = %q, want roleplay", recs[0].Purpose)
	}
	if recs[1].RequestBody == "" || recs[1].ResponseBody == "" {
		t.Error("expected request/response bodies to be captured")
	}

	got, err := repo.GetLLMEvent(ctx, recs[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "gemini-2.5-flash" {
		t.Fatalf("get returned %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	if byPurpose[0].Purpose != "course-plan" || byPurpose[0].InputTokens != 120 {
		t.Errorf("course-plan usage = %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 2 || byModel[0].OutputTokens != 840 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestEventSequenceSharedAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendDrillEvent(ctx, DrillEventData{
		LevelID: "lvl-1", CardID: "c", Mode: "dictation", TargetText: "hola", Correct: true,
	}); err != nil {
		t.Fatalf("append drill: %v", err)
	}
	if err := repo.AppendQuizEvent(ctx, QuizEventData{
		LevelID: "lvl-1", QuestionText: "q", ChosenOption: "a", CorrectOption: "a", Correct: true,
	}); err != nil {
		t.Fatalf("append quiz: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "test", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	recs, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 LLM event, got %d", len(recs))
	}
	// Third event appended, so it carries sequence 3.
	if recs[0].Sequence != 3 {
		t.Errorf("LLM event sequence = %d, want 3", recs[0].Sequence)
	}
}

func TestMediaCachePutGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.MediaRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "image:card-1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for uncached key")
	}

	asset := MediaAsset{
		Key:      "image:card-1",
		Kind:     "image",
		MIMEType: "image/png",
		Data:     []byte{0x89, 0x50, 0x4e, 0x47},
	}
	if err := repo.Put(ctx, asset); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err = repo.Get(ctx, "image:card-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached asset")
	}
	if got.Kind != "image" || got.MIMEType != "image/png" || !bytes.Equal(got.Data, asset.Data) {
		t.Errorf("asset = %+v", got)
	}

	// Put with the same key replaces the entry.
	asset.Data = []byte{0x01}
	if err := repo.Put(ctx, asset); err != nil {
		t.Fatalf("put (replace): %v", err)
	}
	got, err = repo.Get(ctx, "image:card-1")
	if err != nil {
		t.Fatalf("get (replaced): %v", err)
	}
	if !bytes.Equal(got.Data, []byte{0x01}) {
		t.Errorf("replaced data = %v", got.Data)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
