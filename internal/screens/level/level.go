// Package level implements the level dashboard screen: scene cards with the
// typing and speech drills, the roleplay chat, the exam, and the study-task
// list, arranged as tabs.
package level

import (
	"context"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rahulnair/lingua/internal/course"
	"github.com/rahulnair/lingua/internal/drill"
	"github.com/rahulnair/lingua/internal/flow"
	"github.com/rahulnair/lingua/internal/i18n"
	lvl "github.com/rahulnair/lingua/internal/level"
	"github.com/rahulnair/lingua/internal/quiz"
	"github.com/rahulnair/lingua/internal/roleplay"
	"github.com/rahulnair/lingua/internal/screen"
	"github.com/rahulnair/lingua/internal/ui/components"
	"github.com/rahulnair/lingua/internal/ui/layout"
)

// Tab identifies one pane of the level dashboard.
type Tab int

const (
	TabCards Tab = iota
	TabRoleplay
	TabExam
	TabTasks
)

var tabKeys = []string{"tab_cards", "tab_roleplay", "tab_exam", "tab_tasks"}

// LevelScreen is the tabbed dashboard for one generated learning level.
type LevelScreen struct {
	deps   *flow.Deps
	module course.CourseModule
	data   *lvl.Data

	tab Tab

	// Cards tab.
	session    *drill.Session
	input      components.TextInput
	drillStart time.Time
	imageState map[string]string // card ID -> "loading" | "ready" | error text
	playing    bool
	audioErr   string
	speechErr  string

	// Roleplay tab.
	chat      *roleplay.Chat
	chatInput components.TextInput
	sending   bool
	chatErr   string

	// Exam tab.
	exam       *quiz.Exam
	examCursor int
	completed  bool
}

var _ screen.Screen = (*LevelScreen)(nil)
var _ screen.KeyHintProvider = (*LevelScreen)(nil)
var _ screen.EscHandler = (*LevelScreen)(nil)

// New creates the dashboard for a generated level.
func New(deps *flow.Deps, module course.CourseModule, data *lvl.Data) *LevelScreen {
	cards := make([]drill.Card, len(data.Flashcards))
	for i, fc := range data.Flashcards {
		cards[i] = drill.Card{
			ID:                fc.ID,
			TargetText:        fc.Front,
			Translation:       fc.Back,
			PronunciationHint: fc.Pronunciation,
		}
	}

	s := &LevelScreen{
		deps:       deps,
		module:     module,
		data:       data,
		session:    drill.NewSession(cards),
		input:      components.NewTextInput(deps.I18n.T("drill_instruction"), false, 120),
		imageState: make(map[string]string),
		chat:       roleplay.NewChat(deps.Provider, data.RolePlay, deps.Roleplay),
		chatInput:  components.NewTextInput(deps.I18n.T("type_response"), false, 200),
		exam:       quiz.NewExam(data.Exam),
		completed:  module.Status == course.StatusCompleted,
	}
	s.drillStart = time.Now()
	return s
}

func (s *LevelScreen) Title() string {
	if s.data.LevelName != "" {
		return s.data.LevelName
	}
	return s.module.Title
}

func (s *LevelScreen) Init() tea.Cmd {
	return s.fetchImageCmd()
}

// HandleEsc leaves a drill sub-mode instead of navigating back. Returns
// false when the screen is already at rest, letting the router pop.
func (s *LevelScreen) HandleEsc() bool {
	if s.tab == TabCards && s.session.Mode() != drill.ModeView {
		s.session.SetMode(drill.ModeView)
		s.speechErr = ""
		return true
	}
	// Navigating back: make sure capture is released.
	s.session.Pronunciation().Stop()
	return false
}

func (s *LevelScreen) KeyHints() []layout.KeyHint {
	t := s.deps.I18n
	hints := []layout.KeyHint{
		{Key: "Tab", Description: tabLabel(t, s.tab)},
	}
	switch s.tab {
	case TabCards:
		switch s.session.Mode() {
		case drill.ModeView:
			hints = append(hints,
				layout.KeyHint{Key: "←→", Description: t.T("card_of", map[string]string{
					"current": strconv.Itoa(s.session.Index() + 1),
					"total":   strconv.Itoa(s.session.Len()),
				})},
				layout.KeyHint{Key: "Space", Description: t.T("tap_meaning")},
				layout.KeyHint{Key: "P", Description: "Play"},
				layout.KeyHint{Key: "D", Description: t.T("drill_mode")},
				layout.KeyHint{Key: "S", Description: t.T("speech_mode")},
			)
		case drill.ModeDictation:
			hints = append(hints,
				layout.KeyHint{Key: "Enter", Description: t.T("check")},
				layout.KeyHint{Key: "Ctrl+P", Description: "Play"},
				layout.KeyHint{Key: "Esc", Description: t.T("view_mode")},
			)
		case drill.ModePronunciation:
			hints = append(hints,
				layout.KeyHint{Key: "M", Description: "Mic"},
				layout.KeyHint{Key: "P", Description: "Play"},
				layout.KeyHint{Key: "Esc", Description: t.T("view_mode")},
			)
		}
	case TabRoleplay:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Send"})
	case TabExam:
		if s.exam.Finished() {
			hints = append(hints, layout.KeyHint{Key: "R", Description: t.T("try_retry")})
		} else if s.exam.Answered() {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: t.T("next_question")})
		} else {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Select"})
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: t.T("back_map")})
	return hints
}

func tabLabel(t *i18n.Translator, tab Tab) string {
	next := (tab + 1) % Tab(len(tabKeys))
	return t.T(tabKeys[next])
}

func (s *LevelScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case audioDoneMsg:
		s.playing = false
		if msg.Err != nil {
			s.audioErr = msg.Err.Error()
		}
		return s, nil

	case imageReadyMsg:
		if msg.Err != nil {
			s.imageState[msg.CardID] = msg.Err.Error()
		} else {
			s.imageState[msg.CardID] = "ready"
		}
		return s, nil

	case speechEventMsg:
		return s.handleSpeechEvent(msg)

	case speechClosedMsg:
		return s, nil

	case replyMsg:
		s.sending = false
		if msg.Err != nil {
			s.chatErr = msg.Err.Error()
			return s, nil
		}
		return s, s.clearChatInput()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardInput(msg)
}

func (s *LevelScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "tab" {
		s.leaveTab()
		s.tab = (s.tab + 1) % Tab(len(tabKeys))
		return s, s.enterTab()
	}

	switch s.tab {
	case TabCards:
		return s.handleCardsKey(msg)
	case TabRoleplay:
		return s.handleRoleplayKey(msg)
	case TabExam:
		return s.handleExamKey(msg)
	}
	return s, nil
}

// leaveTab releases resources held by the tab being left.
func (s *LevelScreen) leaveTab() {
	if s.tab == TabCards {
		s.session.Pronunciation().Stop()
	}
}

// enterTab returns the entry command for the tab being shown.
func (s *LevelScreen) enterTab() tea.Cmd {
	switch s.tab {
	case TabCards:
		return s.fetchImageCmd()
	case TabRoleplay:
		return s.chatInput.Init()
	}
	return nil
}

func (s *LevelScreen) forwardInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case s.tab == TabCards && s.session.Mode() == drill.ModeDictation:
		s.input, cmd = s.input.Update(msg)
		s.session.Dictation().SetInput(s.input.Value())
	case s.tab == TabRoleplay && !s.sending:
		s.chatInput, cmd = s.chatInput.Update(msg)
	}
	return s, cmd
}

// markCompleted records module completion after a passing exam. Runs once.
func (s *LevelScreen) markCompleted() {
	if s.completed || s.exam.Percent() < 60 {
		return
	}
	s.completed = true
	_ = s.deps.CompleteModule(context.Background(), s.module.ID)
}

