// Package roadmap implements the course-map screen: the ordered module
// list with locked, current, and completed states. Entering a module
// generates its learning level.
package roadmap

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rahulnair/lingua/internal/course"
	"github.com/rahulnair/lingua/internal/flow"
	"github.com/rahulnair/lingua/internal/level"
	"github.com/rahulnair/lingua/internal/router"
	"github.com/rahulnair/lingua/internal/screen"
	levelscreen "github.com/rahulnair/lingua/internal/screens/level"
	"github.com/rahulnair/lingua/internal/ui/components"
	"github.com/rahulnair/lingua/internal/ui/layout"
	"github.com/rahulnair/lingua/internal/ui/theme"
)

// levelReadyMsg carries a generated learning level.
type levelReadyMsg struct {
	Module course.CourseModule
	Data   *level.Data
	Err    error
}

// RoadmapScreen shows the plan's modules and opens the selected one.
type RoadmapScreen struct {
	deps    *flow.Deps
	cursor  int
	loading bool
	errMsg  string
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates the roadmap screen over the saved course plan.
func New(deps *flow.Deps) *RoadmapScreen {
	r := &RoadmapScreen{deps: deps}
	// Start the cursor on the current module.
	if plan := r.plan(); plan != nil {
		for i, m := range plan.Modules {
			if m.Status == course.StatusCurrent {
				r.cursor = i
				break
			}
		}
	}
	return r
}

func (r *RoadmapScreen) plan() *course.CoursePlan {
	if r.deps.State == nil {
		return nil
	}
	return r.deps.State.Plan
}

func (r *RoadmapScreen) Title() string {
	if plan := r.plan(); plan != nil {
		return plan.PlanTitle
	}
	return ""
}

func (r *RoadmapScreen) Init() tea.Cmd {
	return nil
}

func (r *RoadmapScreen) KeyHints() []layout.KeyHint {
	if r.loading {
		return nil
	}
	t := r.deps.I18n
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if m := r.cursorModule(); m != nil && m.Status != course.StatusLocked {
		label := t.T("start")
		if m.Status == course.StatusCompleted {
			label = t.T("review")
		}
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: label})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+L", Description: "中文/EN"})
	return hints
}

func (r *RoadmapScreen) cursorModule() *course.CourseModule {
	plan := r.plan()
	if plan == nil || r.cursor < 0 || r.cursor >= len(plan.Modules) {
		return nil
	}
	return &plan.Modules[r.cursor]
}

func (r *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case levelReadyMsg:
		r.loading = false
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
			return r, nil
		}
		next := levelscreen.New(r.deps, msg.Module, msg.Data)
		return r, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *RoadmapScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if r.loading {
		return r, nil
	}
	plan := r.plan()
	if plan == nil {
		return r, nil
	}
	r.errMsg = ""

	switch msg.String() {
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(plan.Modules)-1 {
			r.cursor++
		}
	case "enter":
		m := r.cursorModule()
		if m == nil || m.Status == course.StatusLocked {
			return r, nil
		}
		r.loading = true
		return r, r.generateCmd(*m)
	}
	return r, nil
}

// generateCmd generates the module's learning level off the UI loop.
func (r *RoadmapScreen) generateCmd(m course.CourseModule) tea.Cmd {
	svc := r.deps.Levels
	scenario := m.Title
	if m.Description != "" {
		scenario += ": " + m.Description
	}
	return func() tea.Msg {
		data, err := svc.Generate(context.Background(), scenario)
		return levelReadyMsg{Module: m, Data: data, Err: err}
	}
}

func (r *RoadmapScreen) View(width, height int) string {
	t := r.deps.I18n
	cw := components.ContentWidth(width)

	if r.loading {
		loading := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(t.T("loading_scene") + "...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, loading)
	}

	plan := r.plan()
	if plan == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.T("goal_prompt")))
	}

	var sections []string

	if plan.TotalDuration != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(t.T("duration")+": "+plan.TotalDuration))
	}
	if completed, total := r.deps.Progress(); total > 0 {
		bar := components.NewProgressBar("", float64(completed)/float64(total), true, cw)
		sections = append(sections, bar.View())
	}
	sections = append(sections, "")

	for i, m := range plan.Modules {
		label := t.T("level", map[string]string{"n": strconv.Itoa(i + 1)})
		var icon, line string
		switch m.Status {
		case course.StatusCompleted:
			icon = "✓"
			line = fmt.Sprintf("%s %s  %s", icon, label, m.Title)
		case course.StatusCurrent:
			icon = "▶"
			line = fmt.Sprintf("%s %s  %s  [%s]", icon, label, m.Title, t.T("current"))
		default:
			icon = "■"
			line = fmt.Sprintf("%s %s  %s  (%s)", icon, label, m.Title, t.T("locked"))
		}

		style := lipgloss.NewStyle()
		switch {
		case i == r.cursor:
			style = style.Foreground(theme.Primary).Bold(true)
			line = "▸ " + line
		case m.Status == course.StatusCompleted:
			style = style.Foreground(theme.Success)
			line = "  " + line
		case m.Status == course.StatusCurrent:
			style = style.Foreground(theme.Accent)
			line = "  " + line
		default:
			style = style.Foreground(theme.TextDim)
			line = "  " + line
		}
		sections = append(sections, style.Render(line))
	}

	if m := r.cursorModule(); m != nil {
		sections = append(sections, "")
		detail := m.Description
		if m.EstimatedTime != "" {
			detail += "  ·  " + m.EstimatedTime
		}
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Render(detail))
	}

	if r.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(r.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
