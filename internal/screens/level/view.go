package level

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rahulnair/lingua/internal/align"
	"github.com/rahulnair/lingua/internal/drill"
	"github.com/rahulnair/lingua/internal/roleplay"
	"github.com/rahulnair/lingua/internal/ui/components"
	"github.com/rahulnair/lingua/internal/ui/theme"
)

func (s *LevelScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(s.renderTabBar(width))
	b.WriteString("\n\n")

	var body string
	switch s.tab {
	case TabCards:
		body = s.renderCards(width)
	case TabRoleplay:
		body = s.renderRoleplay(width)
	case TabExam:
		body = s.renderExam(width)
	case TabTasks:
		body = s.renderTasks(width)
	}
	b.WriteString(body)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *LevelScreen) renderTabBar(width int) string {
	t := s.deps.I18n
	var parts []string
	for i, key := range tabKeys {
		label := " " + t.T(key) + " "
		if Tab(i) == s.tab {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(label))
		}
	}
	bar := strings.Join(parts, " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

func (s *LevelScreen) renderCards(width int) string {
	t := s.deps.I18n
	cw := components.ContentWidth(width)

	if s.session.Len() == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.T("loading_scene"))
	}

	counter := t.T("card_of", map[string]string{
		"current": strconv.Itoa(s.session.Index() + 1),
		"total":   strconv.Itoa(s.session.Len()),
	})
	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)

	var body string
	switch s.session.Mode() {
	case drill.ModeView:
		body = s.renderCardFace(cw)
	case drill.ModeDictation:
		body = s.renderDictation(cw)
	case drill.ModePronunciation:
		body = s.renderPronunciation(cw)
	}

	var extra string
	if s.audioErr != "" {
		extra = "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.audioErr)
	}

	return header + "\n\n" + body + extra
}

func (s *LevelScreen) renderCardFace(cw int) string {
	t := s.deps.I18n
	card := s.session.Card()
	fc := s.currentFlashcard()

	var inner strings.Builder

	// Scene line from the image cache state.
	scene := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	switch s.imageState[fc.ID] {
	case "loading":
		inner.WriteString(scene.Render(t.T("visualizing")))
	case "ready", "":
		if fc.ImagePrompt != "" {
			inner.WriteString(scene.Render(t.T("scene") + ": " + fc.ImagePrompt))
		}
	default:
		// Image fetch failed; show the textual scene instead.
		inner.WriteString(scene.Render(t.T("scene") + ": " + fc.ImagePrompt))
	}
	inner.WriteString("\n\n")

	if s.session.Flipped() {
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(t.T("translation")))
		inner.WriteString("\n")
		inner.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(card.Translation))
	} else {
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(card.TargetText))
		if card.PronunciationHint != "" {
			inner.WriteString("\n")
			inner.WriteString(lipgloss.NewStyle().
				Foreground(theme.Accent).
				Render(card.PronunciationHint))
		}
		inner.WriteString("\n\n")
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(t.T("tap_meaning")))
	}

	return components.FocusCard(inner.String(), cw)
}

func (s *LevelScreen) renderDictation(cw int) string {
	t := s.deps.I18n
	d := s.session.Dictation()

	var inner strings.Builder
	inner.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(t.T("drill_instruction")))
	inner.WriteString("\n\n")
	inner.WriteString(s.input.View())
	inner.WriteString("\n\n")

	switch d.Status() {
	case drill.StatusCorrect:
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render(t.T("perfect")))
	case drill.StatusIncorrect:
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(t.T("try_again")))
	default:
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(t.T("check") + ": Enter"))
	}

	return components.Card(inner.String(), cw)
}

func (s *LevelScreen) renderPronunciation(cw int) string {
	t := s.deps.I18n
	p := s.session.Pronunciation()
	card := s.session.Card()

	var inner strings.Builder
	inner.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(t.T("speech_instruction")))
	inner.WriteString("\n\n")

	// Per-word feedback over the target sentence.
	scores := p.Scores()
	if len(scores) == 0 {
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(card.TargetText))
	} else {
		var words []string
		for _, ws := range scores {
			switch ws.Class {
			case align.Exact:
				words = append(words, lipgloss.NewStyle().
					Foreground(theme.Success).Bold(true).Render(ws.Word))
			case align.Close:
				words = append(words, lipgloss.NewStyle().
					Foreground(theme.Warning).Render(ws.Word))
			default:
				words = append(words, lipgloss.NewStyle().
					Foreground(theme.Error).Render(ws.Word))
			}
		}
		inner.WriteString(strings.Join(words, " "))
	}
	inner.WriteString("\n\n")

	if p.Listening() {
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("● " + t.T("listening")))
	} else if len(scores) > 0 {
		exact := 0
		for _, ws := range scores {
			if ws.Class == align.Exact {
				exact++
			}
		}
		pct := exact * 100 / len(scores)
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(fmt.Sprintf("%s: %d%%", t.T("accuracy"), pct)))
	}

	if s.speechErr != "" {
		inner.WriteString("\n")
		inner.WriteString(lipgloss.NewStyle().
			Foreground(theme.Warning).
			Render(s.speechErr))
	}

	return components.Card(inner.String(), cw)
}

func (s *LevelScreen) renderRoleplay(width int) string {
	t := s.deps.I18n
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(s.data.RolePlay.Setting))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Render(t.T("objective") + ": " + s.data.RolePlay.Objective))
	b.WriteString("\n\n")

	// Last few turns, partner left, learner right.
	turns := s.chat.History()
	const maxTurns = 8
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}
	for _, turn := range turns {
		if turn.Speaker == roleplay.SpeakerUser {
			line := lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Padding(0, 1).
				Render(turn.Text)
			b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Right, line))
		} else {
			line := lipgloss.NewStyle().
				Foreground(theme.Text).
				Background(theme.BgCard).
				Padding(0, 1).
				Render(turn.Text)
			b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Left, line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.sending {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(s.data.RolePlay.AIRole + "..."))
	} else {
		b.WriteString(s.chatInput.View())
	}

	if s.chatErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.chatErr))
	}

	return b.String()
}

func (s *LevelScreen) renderExam(width int) string {
	t := s.deps.I18n
	cw := components.ContentWidth(width)
	e := s.exam

	if e.Finished() {
		return s.renderExamResults(cw)
	}

	q, ok := e.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d/%d", t.T("question"), e.Index()+1, e.Total())))
	b.WriteString("\n\n")

	b.WriteString(components.RenderOptionList(components.OptionList{
		Question: q.Question,
		Options:  q.Options,
		Cursor:   s.examCursor,
		Locked:   e.Answered(),
		Chosen:   e.Selected(),
		Correct:  q.CorrectIndex,
	}))

	if e.Answered() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(t.T("explanation")))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw).
			Render(q.Explanation))
		b.WriteString("\n\n")
		nextLabel := t.T("next_question")
		if e.Index() == e.Total()-1 {
			nextLabel = t.T("see_results")
		}
		b.WriteString(components.CardButton(nextLabel, true, cw/2))
	}

	return b.String()
}

func (s *LevelScreen) renderExamResults(cw int) string {
	t := s.deps.I18n
	e := s.exam

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(t.T("exam_complete")))
	b.WriteString("\n\n")

	headline := t.T(e.ResultKey())
	color := theme.Success
	if e.Percent() < 60 {
		color = theme.Warning
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(fmt.Sprintf("%s  %d%%", headline, e.Percent())))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(t.T("you_got", map[string]string{
			"score": strconv.Itoa(e.Score()),
			"total": strconv.Itoa(e.Total()),
		})))
	b.WriteString("\n\n")
	b.WriteString(components.CardButton(t.T("try_retry"), true, cw/2))

	return b.String()
}

func (s *LevelScreen) renderTasks(width int) string {
	t := s.deps.I18n
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(t.T("attack_plan")))
	b.WriteString("\n\n")

	for _, task := range s.data.Tasks {
		day := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(t.T("day", map[string]string{"n": strconv.Itoa(task.Day)}))
		b.WriteString(day)
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(task.Focus))
		if task.Duration != "" {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("  (" + task.Duration + ")"))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Render("   " + task.Task))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(t.T("consistency")))

	return b.String()
}
