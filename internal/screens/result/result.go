// Package result implements the quiz result screen and its follow-up
// navigation: next content on a pass, targeted practice on a fail.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/ui/components"
	"github.com/ritika/funlearn/internal/ui/layout"
	"github.com/ritika/funlearn/internal/ui/theme"
)

// ResultScreen shows a finished quiz outcome.
type ResultScreen struct {
	deps    *nav.Deps
	outcome progression.QuizOutcome
	next    components.Button
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a result screen for a quiz outcome.
func New(deps *nav.Deps, outcome progression.QuizOutcome) *ResultScreen {
	r := &ResultScreen{deps: deps, outcome: outcome}
	r.next = components.NewButton(r.continueLabel(), true, r.follow)
	return r
}

func (r *ResultScreen) Init() tea.Cmd { return nil }

func (r *ResultScreen) Title() string { return "Results" }

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: r.continueLabel()},
		{Key: "Esc", Description: "Dashboard"},
	}
}

// continueLabel names where Enter goes, mirroring the follow-up rule.
func (r *ResultScreen) continueLabel() string {
	d := r.deps.Engine.ResultDirective(r.deps.Profile, r.outcome)
	switch d.Kind {
	case progression.GoToPractice:
		return "Practice weak skills"
	case progression.StayOnDashboard:
		return "Dashboard"
	default:
		return "Keep going"
	}
}

// follow resolves the outcome's follow-up directive when the button fires.
func (r *ResultScreen) follow() tea.Cmd {
	directive := r.deps.Engine.ResultDirective(r.deps.Profile, r.outcome)
	return func() tea.Msg {
		return nav.DirectiveMsg{Directive: directive}
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.next, cmd = r.next.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	out := r.outcome
	cw := components.ContentWidth(width)

	var rows []string

	if out.Passed {
		rows = append(rows, theme.Correct.Render("🎉 You passed!"))
	} else {
		rows = append(rows, theme.Incorrect.Render("Almost! Let's practice and try again."))
	}
	rows = append(rows, "")

	rows = append(rows, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
		fmt.Sprintf("%d / %d correct (%.0f%%)", out.Score, out.Total, out.Percentage*100)))

	bar := components.NewProgressBar("", out.Percentage, false, cw-12)
	rows = append(rows, bar.View())
	rows = append(rows, "")

	if out.NewLevel > out.OldLevel {
		rows = append(rows, theme.Correct.Render(fmt.Sprintf(
			"⬆ %s level up: %d → %d!",
			catalog.SubjectDisplayName(out.Subject), out.OldLevel, out.NewLevel)))
	} else {
		rows = append(rows, theme.Hint.Render(fmt.Sprintf(
			"%s level: %d", catalog.SubjectDisplayName(out.Subject), out.NewLevel)))
	}
	rows = append(rows, "", r.next.View())

	content := components.CenteredFrame(strings.Join(rows, "\n"), cw+10, height-2)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
