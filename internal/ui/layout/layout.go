// Package layout renders the chrome around every screen: the header bar
// with points and subject levels, the key-hint footer, and the frame that
// stacks them with the screen content.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/ui/theme"
)

// Minimum terminal size the app is usable at.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the top bar: app name, screen title, then points and
// per-subject levels on the right.
func RenderHeader(title string, points, mathLevel, literacyLevel int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  FunLearn")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	level := lipgloss.NewStyle().Foreground(theme.Secondary)
	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("★ %d pts", points)) +
		dim.Render("   ") +
		level.Render(fmt.Sprintf("Math L%d", mathLevel)) +
		dim.Render("  ") +
		level.Render(fmt.Sprintf("Reading L%d", literacyLevel))

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(width, left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right)
}

// RenderFooter draws the bottom bar listing the active key bindings.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return bar(width, "  "+strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer to fill the terminal.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	styled := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styled + "\n" + footer
}
