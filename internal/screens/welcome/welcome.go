// Package welcome implements the goal-entry screen: the learner types a
// free-form learning goal (or picks a popular one) and the goal is analyzed
// into concrete scenarios.
package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rahulnair/lingua/internal/course"
	"github.com/rahulnair/lingua/internal/flow"
	"github.com/rahulnair/lingua/internal/router"
	"github.com/rahulnair/lingua/internal/screen"
	"github.com/rahulnair/lingua/internal/screens/analysis"
	"github.com/rahulnair/lingua/internal/ui/components"
	"github.com/rahulnair/lingua/internal/ui/layout"
	"github.com/rahulnair/lingua/internal/ui/theme"
)

// popularGoals are the suggested starting points shown under the input.
var popularGoals = []string{
	"Travel to the USA",
	"Business English for IT",
	"Moving to Canada",
	"Medical English",
	"Study Abroad Preparation",
}

// analysisDoneMsg carries the result of goal analysis.
type analysisDoneMsg struct {
	Goal   string
	Result *course.AnalysisResult
	Err    error
}

// WelcomeScreen collects the learning goal and kicks off scenario analysis.
type WelcomeScreen struct {
	deps      *flow.Deps
	input     components.TextInput
	cursor    int // -1 = text input focused, otherwise popularGoals index
	analyzing bool
	errMsg    string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the goal-entry screen.
func New(deps *flow.Deps) *WelcomeScreen {
	t := deps.I18n
	return &WelcomeScreen{
		deps:   deps,
		input:  components.NewTextInput(t.T("goal_placeholder"), false, 60),
		cursor: -1,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.analyzing {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Suggestions"},
		{Key: "Enter", Description: w.deps.I18n.T("analyze_btn")},
		{Key: "Ctrl+L", Description: "中文/EN"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		w.analyzing = false
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			return w, nil
		}
		next := analysis.New(w.deps, msg.Goal, msg.Result)
		return w, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	if !w.analyzing && w.cursor < 0 {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *WelcomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if w.analyzing {
		return w, nil
	}
	w.errMsg = ""

	switch msg.String() {
	case "up":
		if w.cursor >= 0 {
			w.cursor--
		}
		return w, nil
	case "down":
		if w.cursor < len(popularGoals)-1 {
			w.cursor++
		}
		return w, nil
	case "enter":
		goal := w.input.Value()
		if w.cursor >= 0 {
			goal = popularGoals[w.cursor]
		}
		goal = strings.TrimSpace(goal)
		if goal == "" {
			return w, nil
		}
		w.analyzing = true
		return w, w.analyzeCmd(goal)
	}

	if w.cursor < 0 {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

// analyzeCmd runs goal analysis off the UI loop.
func (w *WelcomeScreen) analyzeCmd(goal string) tea.Cmd {
	svc := w.deps.Course
	return func() tea.Msg {
		result, err := svc.Analyze(context.Background(), goal)
		return analysisDoneMsg{Goal: goal, Result: result, Err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	t := w.deps.I18n
	cw := components.ContentWidth(width)

	if w.analyzing {
		loading := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(t.T("mission_analysis") + "...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, loading)
	}

	var sections []string
	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(t.T("welcome_subtitle")))
	sections = append(sections, "")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(t.T("goal_prompt"))
	sections = append(sections, prompt)

	inputView := w.input.View()
	if w.cursor < 0 {
		inputView = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1).
			Width(cw - 2).
			Render(inputView)
	} else {
		inputView = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Width(cw - 2).
			Render(inputView)
	}
	sections = append(sections, inputView)
	sections = append(sections, "")

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Bold(true).
		Render(t.T("popular_goals")))

	for i, goal := range popularGoals {
		if i == w.cursor {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("▸ "+goal))
		} else {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("  "+goal))
		}
	}

	if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
