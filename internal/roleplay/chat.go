package roleplay

import (
	"context"
	"fmt"
	"strings"

	"github.com/rahulnair/lingua/internal/level"
	"github.com/rahulnair/lingua/internal/llm"
)

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerUser    Speaker = "user"
	SpeakerPartner Speaker = "partner"
)

// Turn is one utterance in the conversation.
type Turn struct {
	Speaker Speaker
	Text    string
}

// Config holds roleplay chat settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for conversational replies.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.8,
	}
}

// Chat is a stateful roleplay conversation framed by a level's scenario.
// The partner opens with the scenario's opening line.
type Chat struct {
	provider llm.Provider
	scenario level.RolePlayScenario
	cfg      Config
	history  []Turn
}

// NewChat starts a conversation for the given scenario.
func NewChat(provider llm.Provider, scenario level.RolePlayScenario, cfg Config) *Chat {
	return &Chat{
		provider: provider,
		scenario: scenario,
		cfg:      cfg,
		history:  []Turn{{Speaker: SpeakerPartner, Text: scenario.OpeningLine}},
	}
}

// History returns the conversation so far, oldest first.
func (c *Chat) History() []Turn {
	out := make([]Turn, len(c.history))
	copy(out, c.history)
	return out
}

// Send delivers the learner's message and returns the partner's reply.
// The turn is recorded only when the provider answers, so a failed send
// can be retried with the same text.
func (c *Chat) Send(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("empty message")
	}

	ctx = llm.WithPurpose(ctx, "roleplay")

	messages := make([]llm.Message, 0, len(c.history)+1)
	for _, turn := range c.history {
		role := llm.RoleUser
		if turn.Speaker == SpeakerPartner {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Text})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	req := llm.Request{
		System:      c.systemPrompt(),
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("roleplay reply: %w", err)
	}

	reply := strings.TrimSpace(string(resp.Content))
	if reply == "" {
		reply = "I didn't catch that."
	}

	c.history = append(c.history,
		Turn{Speaker: SpeakerUser, Text: message},
		Turn{Speaker: SpeakerPartner, Text: reply},
	)
	return reply, nil
}

func (c *Chat) systemPrompt() string {
	var b strings.Builder

	b.WriteString("You are a roleplay partner helping someone practice English. Keep responses concise (1-2 sentences), natural, and helpful.\n\n")
	b.WriteString(fmt.Sprintf("Setting: %s\n", c.scenario.Setting))
	b.WriteString(fmt.Sprintf("Your role: %s\n", c.scenario.AIRole))
	b.WriteString(fmt.Sprintf("The learner's role: %s\n", c.scenario.UserRole))
	b.WriteString(fmt.Sprintf("The learner's objective: %s\n", c.scenario.Objective))
	b.WriteString("Stay in character. Gently rephrase if the learner makes a mistake.")

	return b.String()
}
