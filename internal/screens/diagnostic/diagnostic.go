// Package diagnostic implements the first-run placement check that
// decides each subject's starting level.
package diagnostic

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/quiz"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/ui/components"
	"github.com/ritika/funlearn/internal/ui/layout"
	"github.com/ritika/funlearn/internal/ui/theme"
)

// placedMsg carries the per-subject placement after scoring.
type placedMsg struct {
	Placed map[catalog.Subject]int
	Err    error
}

// DiagnosticScreen walks the flattened placement questions in order.
type DiagnosticScreen struct {
	deps      *nav.Deps
	questions []quiz.DiagnosticQuestion
	answers   map[int]string
	index     int

	mc      components.MultiChoice
	placed  map[catalog.Subject]int
	errText string
}

var _ screen.Screen = (*DiagnosticScreen)(nil)
var _ screen.KeyHintProvider = (*DiagnosticScreen)(nil)

// New creates the placement screen from the catalog's diagnostic items.
func New(deps *nav.Deps) *DiagnosticScreen {
	d := &DiagnosticScreen{
		deps:      deps,
		questions: quiz.DiagnosticQuestions(deps.Engine.Catalog()),
		answers:   make(map[int]string),
	}
	if len(d.questions) > 0 {
		d.loadQuestion()
	}
	return d
}

func (d *DiagnosticScreen) Init() tea.Cmd { return nil }

func (d *DiagnosticScreen) Title() string { return "Placement Check" }

func (d *DiagnosticScreen) KeyHints() []layout.KeyHint {
	if d.placed != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Start learning"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
	}
}

func (d *DiagnosticScreen) loadQuestion() {
	question := d.questions[d.index].Question
	correct := 0
	for i, opt := range question.Options {
		if opt == question.Answer {
			correct = i
			break
		}
	}
	d.mc = components.NewMultiChoice(question.Prompt, question.Options, correct)
}

func (d *DiagnosticScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case placedMsg:
		if msg.Err != nil {
			d.errText = msg.Err.Error()
			return d, nil
		}
		d.placed = msg.Placed
		return d, nil

	case tea.KeyMsg:
		if d.placed != nil {
			if msg.String() == "enter" {
				return d, func() tea.Msg { return nav.DiagnosticCompleteMsg{} }
			}
			return d, nil
		}
		if len(d.questions) == 0 {
			return d, d.apply()
		}

		var cmd tea.Cmd
		d.mc, cmd = d.mc.Update(msg)
		if d.mc.Submitted {
			d.answers[d.index] = d.questions[d.index].Question.Options[d.mc.ChosenIndex]
			if d.index < len(d.questions)-1 {
				d.index++
				d.loadQuestion()
				return d, nil
			}
			return d, d.apply()
		}
		return d, cmd
	}
	return d, nil
}

// apply scores the answers and persists the placement.
func (d *DiagnosticScreen) apply() tea.Cmd {
	deps := d.deps
	questions := d.questions
	answers := d.answers
	return func() tea.Msg {
		placed, err := quiz.ApplyDiagnostic(context.Background(),
			deps.Profiles, deps.Attempts, deps.Profile, questions, answers)
		return placedMsg{Placed: placed, Err: err}
	}
}

func (d *DiagnosticScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if d.errText != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(d.errText))
	}

	if d.placed != nil {
		var rows []string
		rows = append(rows, theme.Correct.Render("All done! Here's where you'll start:"), "")
		for _, subject := range d.deps.Engine.Catalog().Subjects() {
			if level, ok := d.placed[subject]; ok {
				rows = append(rows, lipgloss.NewStyle().Foreground(theme.Text).Render(
					fmt.Sprintf("%s: Level %d", catalog.SubjectDisplayName(subject), level)))
			}
		}
		content := components.CenteredFrame(strings.Join(rows, "\n"), cw+10, height-2)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	if len(d.questions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Press any key to continue."))
	}

	subject := d.questions[d.index].Subject
	progress := theme.Hint.Render(fmt.Sprintf("%s · Question %d of %d",
		catalog.SubjectDisplayName(subject), d.index+1, len(d.questions)))

	intro := theme.Subtitle.Render("A few quick questions so we know where to start. No pressure!")

	content := intro + "\n" + progress + "\n\n" + components.Card(d.mc.View(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
