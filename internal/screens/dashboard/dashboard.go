// Package dashboard implements the main menu: subject entry points,
// progress overview, practice and the buddy chat.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/proficiency"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/router"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/screens/buddychat"
	"github.com/ritika/funlearn/internal/screens/drill"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/ui/components"
	"github.com/ritika/funlearn/internal/ui/theme"
)

// subjectEnteredMsg carries the result of the level advance check that
// runs when a subject is opened.
type subjectEnteredMsg struct {
	Subject   catalog.Subject
	LeveledUp bool
	Directive progression.Directive
	Err       error
}

// DashboardScreen is the post-login home screen.
type DashboardScreen struct {
	deps *nav.Deps

	menu    components.Menu
	notice  string
	errText string
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(deps *nav.Deps) *DashboardScreen {
	d := &DashboardScreen{deps: deps}

	var items []components.MenuItem
	for _, subject := range deps.Engine.Catalog().Subjects() {
		items = append(items, components.MenuItem{
			Label:  "Continue " + catalog.SubjectDisplayName(subject),
			Action: d.enterSubject(subject),
		})
	}
	items = append(items,
		components.MenuItem{Label: "Practice", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drill.New(deps, nil)}
			}
		}},
		components.MenuItem{Label: "Buddy Chat", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: buddychat.New(deps)}
			}
		}},
		components.MenuItem{Label: "Log Out & Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	d.menu = components.NewMenu(items)
	return d
}

// enterSubject runs the level advance check and resolves the next content
// before navigating.
func (d *DashboardScreen) enterSubject(subject catalog.Subject) func() tea.Cmd {
	return func() tea.Cmd {
		deps := d.deps
		return func() tea.Msg {
			ctx := context.Background()
			leveled, err := deps.Engine.EnterSubject(ctx, deps.Profile, subject)
			if err != nil {
				return subjectEnteredMsg{Subject: subject, Err: err}
			}
			return subjectEnteredMsg{
				Subject:   subject,
				LeveledUp: leveled,
				Directive: deps.Engine.ContinueSubject(deps.Profile, subject),
			}
		}
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case subjectEnteredMsg:
		if msg.Err != nil {
			d.errText = msg.Err.Error()
			return d, nil
		}
		d.errText = ""
		if msg.LeveledUp {
			d.notice = fmt.Sprintf("Level up! %s is now level %d.",
				catalog.SubjectDisplayName(msg.Subject), d.deps.Profile.Level(msg.Subject))
		}
		if msg.Directive.Kind == progression.SubjectComplete {
			d.notice = fmt.Sprintf("You finished everything in %s. Amazing!",
				catalog.SubjectDisplayName(msg.Subject))
			return d, nil
		}
		directive := msg.Directive
		return d, func() tea.Msg {
			return nav.DirectiveMsg{Directive: directive}
		}
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) View(width, height int) string {
	p := d.deps.Profile
	c := d.deps.Engine.Catalog()
	cw := components.ContentWidth(width)

	var sections []string

	greeting := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Hi %s! What do you want to do today?", p.Username))
	sections = append(sections, greeting)

	// Per-subject progress card.
	var rows []string
	for _, subject := range c.Subjects() {
		pct := proficiency.SubjectProgress(p, c, subject)
		bar := components.NewProgressBar(
			fmt.Sprintf("%-18s L%d", catalog.SubjectDisplayName(subject), p.Level(subject)),
			pct, true, cw-8)
		rows = append(rows, bar.View())
		if last := p.LastQuizResult[subject]; last != nil {
			rows = append(rows, theme.Hint.Render(fmt.Sprintf(
				"   last quiz: %d/%d (%.0f%%)", last.Score, last.Total, last.Percentage*100)))
		}
	}
	sections = append(sections, components.Card(strings.Join(rows, "\n"), cw))

	sections = append(sections, d.menu.View())

	if d.notice != "" {
		sections = append(sections, theme.Correct.Render(d.notice))
	}
	if d.errText != "" {
		sections = append(sections, theme.Incorrect.Render(d.errText))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
