package lesson

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/ui/components"
	"github.com/ritika/funlearn/internal/ui/theme"
)

// updateBlanks walks the blank questions one at a time. Questions with
// options use left/right selection; free-form ones use the text input.
// The last answer submits the whole set.
func (l *LessonScreen) updateBlanks(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	questions := l.item.FillBlanks.Questions
	if l.cursor >= len(questions) {
		return l, nil
	}
	q := questions[l.cursor]

	if len(q.Options) > 0 {
		switch msg.String() {
		case "left", "h":
			l.choice--
			if l.choice < 0 {
				l.choice = len(q.Options) - 1
			}
		case "right", "l":
			l.choice = (l.choice + 1) % len(q.Options)
		case "enter":
			return l, l.recordBlank(q.Options[l.choice])
		}
		return l, nil
	}

	if msg.String() == "enter" {
		value := strings.TrimSpace(l.input.Value())
		if value == "" {
			return l, nil
		}
		l.input.Model.SetValue("")
		return l, l.recordBlank(value)
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *LessonScreen) recordBlank(value string) tea.Cmd {
	l.answers[fmt.Sprintf("%d", l.cursor)] = value
	l.choice = 0
	if l.cursor < len(l.item.FillBlanks.Questions)-1 {
		l.cursor++
		return nil
	}
	return l.submit()
}

func (l *LessonScreen) viewBlanks(cw int) string {
	data := l.item.FillBlanks

	var rows []string
	if data.Instructions != "" {
		rows = append(rows, theme.Hint.Render(data.Instructions), "")
	}

	for i, q := range data.Questions {
		filled := l.answers[fmt.Sprintf("%d", i)]
		switch {
		case i < l.cursor || (l.done && filled != ""):
			rows = append(rows, renderSentence(q.SentenceParts, theme.Correct.Render(filled)))
		case i == l.cursor && !l.done:
			gap := l.currentGap(q)
			rows = append(rows, renderSentence(q.SentenceParts, gap))
		default:
			rows = append(rows, renderSentence(q.SentenceParts, theme.Hint.Render("_____")))
		}
	}

	return components.Card(strings.Join(rows, "\n\n"), cw)
}

// currentGap renders the active blank: option choices or the text input.
func (l *LessonScreen) currentGap(q catalog.BlankQuestion) string {
	if len(q.Options) > 0 {
		var opts []string
		for j, opt := range q.Options {
			if j == l.choice {
				opts = append(opts, theme.Selected.Render("["+opt+"]"))
			} else {
				opts = append(opts, theme.Unselected.Render(" "+opt+" "))
			}
		}
		return strings.Join(opts, " ")
	}
	return l.input.View()
}

func renderSentence(parts [2]string, gap string) string {
	return lipgloss.NewStyle().Foreground(theme.Text).Render(parts[0]) +
		gap +
		lipgloss.NewStyle().Foreground(theme.Text).Render(parts[1])
}
