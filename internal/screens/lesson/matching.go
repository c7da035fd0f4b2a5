package lesson

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/ui/components"
	"github.com/ritika/funlearn/internal/ui/theme"
)

// dragTiles returns the prompt tiles in declaration order.
func (l *LessonScreen) dragTiles() []catalog.MatchItem {
	var out []catalog.MatchItem
	for _, it := range l.item.DragDrop.Items {
		if it.Kind == "drag" {
			out = append(out, it)
		}
	}
	return out
}

// dropTiles returns the answer tiles in declaration order.
func (l *LessonScreen) dropTiles() []catalog.MatchItem {
	var out []catalog.MatchItem
	for _, it := range l.item.DragDrop.Items {
		if it.Kind == "drop" {
			out = append(out, it)
		}
	}
	return out
}

// updateMatching walks one drag tile at a time: left/right cycles the drop
// choices, enter locks the pair in. The last pair submits the whole set.
func (l *LessonScreen) updateMatching(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	drags := l.dragTiles()
	drops := l.dropTiles()
	if len(drags) == 0 || len(drops) == 0 {
		return l, nil
	}

	switch msg.String() {
	case "left", "h":
		l.choice--
		if l.choice < 0 {
			l.choice = len(drops) - 1
		}
	case "right", "l":
		l.choice = (l.choice + 1) % len(drops)
	case "enter":
		l.answers[drags[l.cursor].ID] = drops[l.choice].Value
		l.choice = 0
		if l.cursor < len(drags)-1 {
			l.cursor++
			return l, nil
		}
		return l, l.submit()
	}
	return l, nil
}

func (l *LessonScreen) viewMatching(cw int) string {
	data := l.item.DragDrop
	drags := l.dragTiles()
	drops := l.dropTiles()

	var rows []string
	if data.Instructions != "" {
		rows = append(rows, theme.Hint.Render(data.Instructions), "")
	}

	for i, drag := range drags {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(drag.Value)
		switch {
		case i < l.cursor:
			rows = append(rows, prompt+"  →  "+theme.Correct.Render(l.answers[drag.ID]))
		case i == l.cursor:
			var opts []string
			for j, drop := range drops {
				if j == l.choice {
					opts = append(opts, theme.Selected.Render("▸"+drop.Value))
				} else {
					opts = append(opts, theme.Unselected.Render(" "+drop.Value))
				}
			}
			rows = append(rows, prompt+"  →  "+strings.Join(opts, "  "))
		default:
			rows = append(rows, prompt+"  →  "+theme.Hint.Render("?"))
		}
	}

	return components.Card(strings.Join(rows, "\n"), cw)
}
