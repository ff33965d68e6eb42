package level

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/rahulnair/lingua/internal/screen"
	"github.com/rahulnair/lingua/internal/ui/components"
)

func (s *LevelScreen) handleRoleplayKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.sending {
		return s, nil
	}

	if msg.String() == "enter" {
		text := strings.TrimSpace(s.chatInput.Value())
		if text == "" {
			return s, nil
		}
		s.sending = true
		s.chatErr = ""
		chat := s.chat
		return s, func() tea.Msg {
			reply, err := chat.Send(context.Background(), text)
			return replyMsg{Text: reply, Err: err}
		}
	}

	var cmd tea.Cmd
	s.chatInput, cmd = s.chatInput.Update(msg)
	return s, cmd
}

// clearChatInput resets the composer after a successful send. A failed send
// keeps the draft so the learner can retry.
func (s *LevelScreen) clearChatInput() tea.Cmd {
	s.chatInput = components.NewTextInput(s.deps.I18n.T("type_response"), false, 200)
	return s.chatInput.Init()
}
