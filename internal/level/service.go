package level

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rahulnair/lingua/internal/llm"
)

// Config holds level generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for level generation.
// Levels are the largest structured response in the app.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.6,
	}
}

// Service generates complete learning levels for course modules.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a level generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate builds the full level content for a scenario.
func (s *Service) Generate(ctx context.Context, scenario string) (*Data, error) {
	ctx = llm.WithPurpose(ctx, "level-gen")

	req := llm.Request{
		System: levelSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLevelUserMessage(scenario)},
		},
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("level generation: %w", err)
	}

	var out Data
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse level response: %w", err)
	}

	if err := validate(&out); err != nil {
		return nil, fmt.Errorf("level content: %w", err)
	}
	return &out, nil
}

// validate rejects structurally broken levels and fills missing IDs.
func validate(d *Data) error {
	if len(d.Flashcards) == 0 {
		return fmt.Errorf("no flashcards")
	}
	if len(d.Exam) == 0 {
		return fmt.Errorf("no exam questions")
	}

	for i := range d.Flashcards {
		if d.Flashcards[i].Front == "" {
			return fmt.Errorf("flashcard %d has no front text", i)
		}
		if d.Flashcards[i].ID == "" {
			d.Flashcards[i].ID = uuid.NewString()
		}
	}

	for i := range d.Exam {
		q := &d.Exam[i]
		if len(q.Options) < 2 {
			return fmt.Errorf("exam question %d has %d options", i, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("exam question %d has correct index %d out of range", i, q.CorrectIndex)
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
	}

	return nil
}
