package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ritika/funlearn/internal/ui/theme"
)

// MenuItem is one row of a Menu. Disabled rows render dimmed and are
// skipped by cursor movement.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions driven by the arrow keys.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled row.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// move walks the cursor in the given direction to the next enabled row.
func (m *Menu) move(delta int) {
	for i := m.Selected + delta; i >= 0 && i < len(m.Items); i += delta {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(theme.Hint.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
