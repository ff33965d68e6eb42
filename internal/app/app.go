// Package app wires the dependency bundle and runs the Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rahulnair/lingua/internal/audio"
	"github.com/rahulnair/lingua/internal/course"
	"github.com/rahulnair/lingua/internal/flow"
	"github.com/rahulnair/lingua/internal/i18n"
	"github.com/rahulnair/lingua/internal/level"
	"github.com/rahulnair/lingua/internal/llm"
	"github.com/rahulnair/lingua/internal/roleplay"
	"github.com/rahulnair/lingua/internal/router"
	"github.com/rahulnair/lingua/internal/screen"
	"github.com/rahulnair/lingua/internal/screens/roadmap"
	"github.com/rahulnair/lingua/internal/screens/welcome"
	"github.com/rahulnair/lingua/internal/store"
	"github.com/rahulnair/lingua/internal/ui/layout"
)

// Options carries the injected dependencies for a run of the TUI.
type Options struct {
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	MediaRepo    store.MediaRepo
	Provider     llm.Provider

	// Lang selects the initial UI language.
	Lang i18n.Lang
	// Locale is the BCP 47 locale used for speech capture.
	Locale string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   *flow.Deps
	width  int
	height int
}

// newAppModel builds the dependency bundle and picks the start screen: the
// roadmap when a saved course exists, the goal-entry screen otherwise.
func newAppModel(opts Options) AppModel {
	images, speech := llm.Media(opts.Provider)

	var player audio.Player = audio.NopPlayer{}
	if p, ok := audio.NewExecPlayer(); ok {
		player = p
	}

	deps := &flow.Deps{
		I18n:      i18n.New(opts.Lang),
		Course:    course.NewService(opts.Provider, course.DefaultConfig()),
		Levels:    level.NewService(opts.Provider, level.DefaultConfig()),
		Media:     level.NewMediaLoader(images, speech, opts.MediaRepo),
		Player:    player,
		Events:    opts.EventRepo,
		Snapshots: opts.SnapshotRepo,
		Provider:  opts.Provider,
		Roleplay:  roleplay.DefaultConfig(),
		Locale:    opts.Locale,
	}

	if opts.SnapshotRepo != nil {
		if state, err := course.Load(context.Background(), opts.SnapshotRepo); err == nil && state != nil {
			deps.State = state
		}
	}

	var start screen.Screen
	if deps.State != nil && deps.State.Plan != nil {
		start = roadmap.New(deps)
	} else {
		start = welcome.New(deps)
	}

	return AppModel{
		router: router.New(start),
		deps:   deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+l":
			m.deps.ToggleLang()
			return m, nil
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandleEsc() {
				return m, nil
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	completed, total := m.deps.Progress()
	header := layout.RenderHeader(title, string(m.deps.I18n.Lang()), completed, total, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			footerHints = append(hints, footerHints...)
		}
	} else if m.router.Depth() > 1 {
		footerHints = append([]layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}, footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
