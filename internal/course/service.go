package course

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rahulnair/lingua/internal/llm"
)

// Service turns a learner's goal into scenarios and a study roadmap.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a course generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Analyze breaks a free-form goal into 6-10 practical scenarios.
func (s *Service) Analyze(ctx context.Context, goal string) (*AnalysisResult, error) {
	ctx = llm.WithPurpose(ctx, "analysis")

	req := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnalysisUserMessage(goal)},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("scenario analysis: %w", err)
	}

	var out AnalysisResult
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}

	for i := range out.SuggestedTopics {
		if out.SuggestedTopics[i].ID == "" {
			out.SuggestedTopics[i].ID = uuid.NewString()
		}
	}
	return &out, nil
}

// Plan builds an ordered roadmap from the selected topics.
func (s *Service) Plan(ctx context.Context, topics []ScenarioTopic, timeFrame TimeFrame) (*CoursePlan, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("no topics selected")
	}

	ctx = llm.WithPurpose(ctx, "course-plan")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(topics, timeFrame)},
		},
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("course planning: %w", err)
	}

	var out CoursePlan
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}
	if len(out.Modules) == 0 {
		return nil, fmt.Errorf("plan has no modules")
	}

	normalizePlan(&out)
	return &out, nil
}

// normalizePlan repairs the state the model sometimes gets wrong: missing
// IDs and a module sequence without exactly one 'current' entry.
func normalizePlan(p *CoursePlan) {
	for i := range p.Modules {
		if p.Modules[i].ID == "" {
			p.Modules[i].ID = uuid.NewString()
		}
	}

	current := 0
	for i := range p.Modules {
		if p.Modules[i].Status == StatusCurrent {
			current++
			if current > 1 {
				p.Modules[i].Status = StatusLocked
			}
		}
	}
	if current == 0 {
		for i := range p.Modules {
			if p.Modules[i].Status == StatusLocked {
				p.Modules[i].Status = StatusCurrent
				return
			}
		}
	}
}
