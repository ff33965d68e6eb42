// Package analysis implements the scenario-selection screen: the analyzed
// goal's sub-scenarios are shown as a checklist, the learner picks a pace,
// and a course plan is generated from the selection.
package analysis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rahulnair/lingua/internal/course"
	"github.com/rahulnair/lingua/internal/flow"
	"github.com/rahulnair/lingua/internal/router"
	"github.com/rahulnair/lingua/internal/screen"
	"github.com/rahulnair/lingua/internal/screens/roadmap"
	"github.com/rahulnair/lingua/internal/ui/components"
	"github.com/rahulnair/lingua/internal/ui/layout"
	"github.com/rahulnair/lingua/internal/ui/theme"
)

// planDoneMsg carries the generated course plan.
type planDoneMsg struct {
	Plan *course.CoursePlan
	Err  error
}

// AnalysisScreen lets the learner pick scenarios and a pace, then
// generates the roadmap.
type AnalysisScreen struct {
	deps   *flow.Deps
	goal   string
	result *course.AnalysisResult

	topics     components.MultiSelect
	paceIndex  int
	generating bool
	errMsg     string
}

var _ screen.Screen = (*AnalysisScreen)(nil)
var _ screen.KeyHintProvider = (*AnalysisScreen)(nil)

// New creates the scenario-selection screen for an analyzed goal.
func New(deps *flow.Deps, goal string, result *course.AnalysisResult) *AnalysisScreen {
	titles := make([]string, len(result.SuggestedTopics))
	for i, topic := range result.SuggestedTopics {
		titles[i] = topic.Title
	}
	paceIndex := 1 // default to Week
	return &AnalysisScreen{
		deps:      deps,
		goal:      goal,
		result:    result,
		topics:    components.NewMultiSelect(titles),
		paceIndex: paceIndex,
	}
}

func (a *AnalysisScreen) Title() string {
	return a.deps.I18n.T("mission_analysis")
}

func (a *AnalysisScreen) Init() tea.Cmd {
	return nil
}

func (a *AnalysisScreen) KeyHints() []layout.KeyHint {
	if a.generating {
		return nil
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "←→", Description: a.deps.I18n.T("pace")},
		{Key: "Enter", Description: a.deps.I18n.T("generate_plan")},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AnalysisScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planDoneMsg:
		a.generating = false
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
			return a, nil
		}
		a.deps.State = &course.State{
			Goal:     a.goal,
			Analysis: a.result,
			Plan:     msg.Plan,
		}
		if err := a.deps.SaveState(context.Background()); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		next := roadmap.New(a.deps)
		return a, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *AnalysisScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if a.generating {
		return a, nil
	}
	a.errMsg = ""

	frames := course.TimeFrames()
	switch msg.String() {
	case "left", "h":
		if a.paceIndex > 0 {
			a.paceIndex--
		}
		return a, nil
	case "right", "l":
		if a.paceIndex < len(frames)-1 {
			a.paceIndex++
		}
		return a, nil
	case "enter":
		selected := a.selectedTopics()
		if len(selected) == 0 {
			return a, nil
		}
		a.generating = true
		return a, a.planCmd(selected, frames[a.paceIndex])
	}

	var cmd tea.Cmd
	a.topics, cmd = a.topics.Update(msg)
	return a, cmd
}

func (a *AnalysisScreen) selectedTopics() []course.ScenarioTopic {
	var out []course.ScenarioTopic
	for _, i := range a.topics.Selected() {
		out = append(out, a.result.SuggestedTopics[i])
	}
	return out
}

// planCmd generates the course plan off the UI loop.
func (a *AnalysisScreen) planCmd(topics []course.ScenarioTopic, pace course.TimeFrame) tea.Cmd {
	svc := a.deps.Course
	return func() tea.Msg {
		plan, err := svc.Plan(context.Background(), topics, pace)
		return planDoneMsg{Plan: plan, Err: err}
	}
}

func (a *AnalysisScreen) View(width, height int) string {
	t := a.deps.I18n
	cw := components.ContentWidth(width)

	if a.generating {
		loading := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(t.T("generate_plan") + "...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, loading)
	}

	var sections []string

	found := fmt.Sprintf("%d %s",
		len(a.result.SuggestedTopics), t.T("found_scenarios"))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(found))
	sections = append(sections, "")

	sections = append(sections, a.topics.View())

	// Description and vocabulary for the topic under the cursor.
	if a.topics.Cursor >= 0 && a.topics.Cursor < len(a.result.SuggestedTopics) {
		topic := a.result.SuggestedTopics[a.topics.Cursor]
		desc := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Render(topic.Description)
		sections = append(sections, desc)
		if len(topic.KeyVocabulary) > 0 {
			vocab := lipgloss.NewStyle().
				Foreground(theme.Accent).
				Width(cw).
				Render(strings.Join(topic.KeyVocabulary, " · "))
			sections = append(sections, vocab)
		}
	}
	sections = append(sections, "")

	frames := course.TimeFrames()
	pace := fmt.Sprintf("%s:  ◂ %s ▸", t.T("pace"), frames[a.paceIndex])
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(pace))

	count := t.T("selected") + ": " + strconv.Itoa(len(a.topics.Selected()))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(count))
	sections = append(sections, "")

	sections = append(sections, components.CardButton(t.T("generate_plan"), true, cw/2))

	if a.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(a.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
