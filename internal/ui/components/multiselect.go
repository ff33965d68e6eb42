package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rahulnair/lingua/internal/ui/theme"
)

// MultiSelect is a checkbox list. Space toggles the item under the cursor.
type MultiSelect struct {
	Items   []string
	Cursor  int
	checked map[int]bool
}

// NewMultiSelect creates a multi-select with all items checked.
func NewMultiSelect(items []string) MultiSelect {
	checked := make(map[int]bool, len(items))
	for i := range items {
		checked[i] = true
	}
	return MultiSelect{Items: items, checked: checked}
}

// Update handles keyboard navigation and toggling.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "space":
		m.checked[m.Cursor] = !m.checked[m.Cursor]
	}

	return m, nil
}

// Checked reports whether the item at i is selected.
func (m MultiSelect) Checked(i int) bool {
	return m.checked[i]
}

// Selected returns the indices of all checked items in order.
func (m MultiSelect) Selected() []int {
	var out []int
	for i := range m.Items {
		if m.checked[i] {
			out = append(out, i)
		}
	}
	return out
}

// View renders the checkbox list.
func (m MultiSelect) View() string {
	var s string
	for i, item := range m.Items {
		box := "☐"
		if m.checked[i] {
			box = "☑"
		}
		line := box + " " + item
		if i == m.Cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+line) + "\n"
		} else if m.checked[i] {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render("  "+line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+line) + "\n"
		}
	}
	return s
}
