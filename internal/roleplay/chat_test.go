package roleplay

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rahulnair/lingua/internal/level"
	"github.com/rahulnair/lingua/internal/llm"
)

func testScenario() level.RolePlayScenario {
	return level.RolePlayScenario{
		Setting:     "A busy hotel lobby",
		UserRole:    "A guest arriving late",
		AIRole:      "The receptionist",
		Objective:   "Check in and ask about breakfast",
		OpeningLine: "Good evening! Welcome to the Grand Hotel.",
	}
}

func TestChat_OpensWithScenarioLine(t *testing.T) {
	chat := NewChat(llm.NewMockProvider(), testScenario(), DefaultConfig())

	history := chat.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 opening turn, got %d", len(history))
	}
	if history[0].Speaker != SpeakerPartner {
		t.Errorf("opening speaker = %q", history[0].Speaker)
	}
	if history[0].Text != "Good evening! Welcome to the Grand Hotel." {
		t.Errorf("opening text = %q", history[0].Text)
	}
}

func TestChat_SendAppendsTurns(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Of course, may I have your name?"),
	})
	chat := NewChat(mock, testScenario(), DefaultConfig())

	reply, err := chat.Send(t.Context(), "Hi, I'd like to check in.")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != "Of course, may I have your name?" {
		t.Errorf("reply = %q", reply)
	}

	history := chat.History()
	if len(history) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(history))
	}
	if history[1].Speaker != SpeakerUser || history[2].Speaker != SpeakerPartner {
		t.Errorf("history speakers = %v", history)
	}

	// The request carried the scenario framing and full history.
	req := mock.Calls[0]
	if !strings.Contains(req.System, "The receptionist") {
		t.Error("expected AI role in system prompt")
	}
	if !strings.Contains(req.System, "Check in and ask about breakfast") {
		t.Error("expected objective in system prompt")
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected opening line + user message, got %d messages", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleAssistant {
		t.Errorf("opening line role = %q", req.Messages[0].Role)
	}
	if req.Schema != nil {
		t.Error("roleplay must not request structured output")
	}
}

func TestChat_FailedSendKeepsHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	}, llm.MockResponse{
		Content: json.RawMessage("Certainly."),
	})
	chat := NewChat(mock, testScenario(), DefaultConfig())

	if _, err := chat.Send(t.Context(), "One room please."); err == nil {
		t.Fatal("expected error from failed send")
	}
	if len(chat.History()) != 1 {
		t.Errorf("failed send must not record turns, history = %d", len(chat.History()))
	}

	// Retry succeeds and records both turns.
	if _, err := chat.Send(t.Context(), "One room please."); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(chat.History()) != 3 {
		t.Errorf("history after retry = %d", len(chat.History()))
	}
}

func TestChat_RejectsEmptyMessage(t *testing.T) {
	chat := NewChat(llm.NewMockProvider(), testScenario(), DefaultConfig())
	if _, err := chat.Send(t.Context(), "   "); err == nil {
		t.Fatal("expected error for blank message")
	}
}

func TestChat_EmptyReplyUsesFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("")})
	chat := NewChat(mock, testScenario(), DefaultConfig())

	reply, err := chat.Send(t.Context(), "Hello?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != "I didn't catch that." {
		t.Errorf("reply = %q", reply)
	}
}
