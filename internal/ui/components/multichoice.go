package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/ui/theme"
)

// MultiChoice presents one question with lettered options. After Enter the
// component locks and colors the chosen and correct options.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice builds an unanswered selector over the given options.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}
	return m, nil
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Unselected.Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Selected && !m.Submitted {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", cursor, 'A'+i, opt)
		b.WriteString(m.optionStyle(i).Render(line))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	if m.Submitted {
		switch i {
		case m.CorrectIndex:
			return theme.Correct
		case m.ChosenIndex:
			return theme.Incorrect
		default:
			return theme.Hint
		}
	}
	if i == m.Selected {
		return theme.Selected
	}
	return theme.Unselected
}
