package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the learner's course state at a point in time.
// Analysis and Plan hold the course package's types as raw JSON so the
// store stays decoupled from their shape.
type SnapshotData struct {
	Version  int             `json:"version"`
	Goal     string          `json:"goal"`
	Analysis json.RawMessage `json:"analysis,omitempty"`
	Plan     json.RawMessage `json:"plan,omitempty"`
}

// Snapshot represents a point-in-time capture of course state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages course state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// DrillEventData captures a completed drill attempt on a flashcard.
type DrillEventData struct {
	LevelID     string
	CardID      string
	Mode        string // "dictation" or "pronunciation"
	TargetText  string
	AttemptText string
	Correct     bool
	ExactWords  int
	CloseWords  int
	MissedWords int
	TimeMs      int
}

// DrillEventRecord is a stored drill event.
type DrillEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	DrillEventData
}

// DrillStats aggregates drill attempts for one mode.
type DrillStats struct {
	Mode     string
	Attempts int
	Correct  int
}

// QuizEventData captures a single answered exam question.
type QuizEventData struct {
	LevelID       string
	QuestionIndex int
	QuestionText  string
	ChosenOption  string
	CorrectOption string
	Correct       bool
}

// QuizStats aggregates exam answers for one level.
type QuizStats struct {
	LevelID  string
	Answered int
	Correct  int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns the event with the given ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendDrillEvent records a completed drill attempt.
	AppendDrillEvent(ctx context.Context, data DrillEventData) error

	// DrillStatsByMode aggregates drill attempts grouped by mode.
	DrillStatsByMode(ctx context.Context) ([]DrillStats, error)

	// CardAccuracy returns the fraction of correct attempts for a card,
	// or 0 if the card has no attempts.
	CardAccuracy(ctx context.Context, cardID string) (float64, error)

	// AppendQuizEvent records an answered exam question.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QuizStatsByLevel aggregates exam answers grouped by level.
	QuizStatsByLevel(ctx context.Context) ([]QuizStats, error)
}

// MediaAsset is a cached generated asset.
type MediaAsset struct {
	Key       string
	Kind      string // "image" or "audio"
	MIMEType  string
	Data      []byte
	CreatedAt time.Time
}

// MediaRepo caches generated media so each asset is produced once.
type MediaRepo interface {
	// Get returns the asset for key, or nil if not cached.
	Get(ctx context.Context, key string) (*MediaAsset, error)

	// Put stores an asset, replacing any existing entry for its key.
	Put(ctx context.Context, asset MediaAsset) error
}
