package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/rahulnair/lingua/internal/ui/theme"
)

// OptionList describes a multiple-choice answer list to render. The caller
// owns the selection state; Chosen and Correct are only consulted once
// Locked is set.
type OptionList struct {
	Question string
	Options  []string
	Cursor   int
	Locked   bool
	Chosen   int
	Correct  int
}

// RenderOptionList draws a question with lettered answer options. After the
// answer is locked in, the correct option is shown green and a wrong choice
// red.
func RenderOptionList(ol OptionList) string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(ol.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E", "F"}

	for i, opt := range ol.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == ol.Cursor && !ol.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case ol.Locked && i == ol.Correct:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case ol.Locked && i == ol.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case ol.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == ol.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
