// Package drill implements the practice screen: quick-fire generated
// problems that nudge proficiency and earn points.
package drill

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/practice"
	"github.com/ritika/funlearn/internal/proficiency"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/ui/components"
	"github.com/ritika/funlearn/internal/ui/layout"
	"github.com/ritika/funlearn/internal/ui/theme"
)

// recordedMsg confirms a practice answer was persisted.
type recordedMsg struct {
	Err error
}

// DrillScreen cycles generated problems for a skill pool.
type DrillScreen struct {
	deps   *nav.Deps
	skills []string

	problem  practice.Problem
	input    components.TextInput
	answered bool
	correct  bool
	solved   int
	attempts int
	errText  string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a practice screen. A nil or empty skill list practices the
// learner's weak skills, or every practicable skill when none are weak.
func New(deps *nav.Deps, skills []string) *DrillScreen {
	d := &DrillScreen{
		deps:  deps,
		input: components.NewTextInput("Your answer...", 24),
	}
	d.skills = practicableSkills(deps, skills)
	d.nextProblem()
	return d
}

// practicableSkills narrows a skill pool to ones with a generator,
// preferring weak skills when no explicit pool is given.
func practicableSkills(deps *nav.Deps, skills []string) []string {
	c := deps.Engine.Catalog()
	if len(skills) == 0 {
		skills = proficiency.WeakSkills(deps.Profile, c.AllSkills())
	}
	var out []string
	for _, s := range skills {
		if practice.Knows(s) {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		for _, s := range c.AllSkills() {
			if practice.Knows(s) {
				out = append(out, s)
			}
		}
	}
	return out
}

func (d *DrillScreen) nextProblem() {
	if len(d.skills) == 0 {
		d.problem = d.deps.Gen.Problem("")
		return
	}
	d.problem = d.deps.Gen.Problem(d.deps.Gen.PickSkill(d.skills))
	d.answered = false
	d.input.Model.SetValue("")
}

func (d *DrillScreen) Init() tea.Cmd {
	return d.input.Init()
}

func (d *DrillScreen) Title() string { return "Practice" }

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.answered {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next problem"},
			{Key: "Esc", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check answer"},
		{Key: "Esc", Description: "Done"},
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordedMsg:
		if msg.Err != nil {
			d.errText = msg.Err.Error()
		}
		return d, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if d.answered {
				d.nextProblem()
				return d, nil
			}
			return d, d.check()
		}
	}

	if !d.answered {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

// check scores the answer locally and persists the outcome.
func (d *DrillScreen) check() tea.Cmd {
	if !d.problem.Scored {
		d.nextProblem()
		return nil
	}
	value := strings.TrimSpace(d.input.Value())
	if value == "" {
		return nil
	}

	d.correct = practice.CheckAnswer(d.problem, value)
	d.answered = true
	d.attempts++
	if d.correct {
		d.solved++
	}

	deps := d.deps
	skill := d.problem.Skill
	correct := d.correct
	return func() tea.Msg {
		err := deps.Engine.RecordPractice(context.Background(), deps.Profile, skill, correct)
		return recordedMsg{Err: err}
	}
}

func (d *DrillScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var rows []string

	rows = append(rows, theme.Hint.Render(fmt.Sprintf(
		"Skill: %s   Solved: %d/%d",
		strings.ReplaceAll(d.problem.Skill, "_", " "), d.solved, d.attempts)))
	rows = append(rows, "")

	rows = append(rows, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw-8).
		Render(d.problem.Prompt))
	rows = append(rows, "")

	if d.problem.Scored {
		rows = append(rows, d.input.View())
	}

	if d.answered {
		if d.correct {
			rows = append(rows, theme.Correct.Render("Correct! +1 point"))
		} else {
			rows = append(rows, theme.Incorrect.Render(
				fmt.Sprintf("Not quite. The answer was %q.", d.problem.Answer)))
		}
	}
	if d.errText != "" {
		rows = append(rows, theme.Incorrect.Render(d.errText))
	}

	content := components.Card(strings.Join(rows, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
