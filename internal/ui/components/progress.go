package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/ui/theme"
)

// ProgressBar renders a filled horizontal bar, optionally with a label on
// the left and a percentage on the right.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar builds a bar. Width is the total width including label
// and percentage.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(theme.Unselected.Render(p.Label))
		b.WriteString("  ")
	}

	reserved := lipgloss.Width(b.String())
	if p.ShowPercent {
		reserved += 6
	}
	barWidth := max(p.Width-reserved, 4)

	filled := int(float64(barWidth) * p.Percent)
	filled = min(max(filled, 0), barWidth)

	b.WriteString(lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}
	return b.String()
}
