package result

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/profile"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/store"
)

type memRepo struct {
	profiles map[string]*profile.Profile
}

func (r *memRepo) Create(_ context.Context, _ string, p *profile.Profile) error {
	r.profiles[p.Username] = p.Clone()
	return nil
}

func (r *memRepo) Authenticate(ctx context.Context, username, _ string) (*profile.Profile, error) {
	return r.Load(ctx, username)
}

func (r *memRepo) Load(_ context.Context, username string) (*profile.Profile, error) {
	p, ok := r.profiles[username]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (r *memRepo) Save(_ context.Context, p *profile.Profile) error {
	r.profiles[p.Username] = p.Clone()
	return nil
}

func (r *memRepo) Delete(_ context.Context, username string) error {
	delete(r.profiles, username)
	return nil
}

func newTestDeps() *nav.Deps {
	repo := &memRepo{profiles: make(map[string]*profile.Profile)}
	engine := progression.New(catalog.Default(), repo)
	p := profile.New("t")
	p.Repair(engine.Catalog().AllSkills(), catalog.AllSubjects())
	return &nav.Deps{Engine: engine, Profiles: repo, Profile: p}
}

func TestEnterFollowsDirective(t *testing.T) {
	deps := newTestDeps()
	outcome := progression.QuizOutcome{
		Score: 3, Total: 3, Percentage: 1, Passed: true,
		Subject: catalog.SubjectMath, OldLevel: 1, NewLevel: 2,
		NextContentID: "lesson_math_2_1",
	}
	r := New(deps, outcome)

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should navigate")
	}
	msg, ok := cmd().(nav.DirectiveMsg)
	if !ok {
		t.Fatalf("expected DirectiveMsg, got %T", cmd())
	}
	if msg.Directive.Kind != progression.GoToLesson || msg.Directive.ContentID != "lesson_math_2_1" {
		t.Errorf("directive = %+v", msg.Directive)
	}
}

func TestFailDirectsToPractice(t *testing.T) {
	deps := newTestDeps()
	// Failed quiz over a skill that is now weak.
	deps.Profile.Proficiency["counting_1_10"] = 0.3
	outcome := progression.QuizOutcome{
		Score: 1, Total: 3, Percentage: 1.0 / 3.0, Passed: false,
		Subject: catalog.SubjectMath, OldLevel: 1, NewLevel: 1,
		SkillTags: []string{"counting_1_10"},
	}
	r := New(deps, outcome)

	if got := r.continueLabel(); got != "Practice weak skills" {
		t.Errorf("label = %q", got)
	}
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := cmd().(nav.DirectiveMsg)
	if msg.Directive.Kind != progression.GoToPractice {
		t.Fatalf("kind = %v", msg.Directive.Kind)
	}
	if len(msg.Directive.Skills) != 1 || msg.Directive.Skills[0] != "counting_1_10" {
		t.Errorf("skills = %v", msg.Directive.Skills)
	}
}

func TestViewShowsLevelUp(t *testing.T) {
	deps := newTestDeps()
	outcome := progression.QuizOutcome{
		Score: 3, Total: 3, Percentage: 1, Passed: true,
		Subject: catalog.SubjectMath, OldLevel: 1, NewLevel: 2,
	}
	r := New(deps, outcome)

	view := r.View(100, 30)
	if !strings.Contains(view, "level up") {
		t.Error("view should announce the level up")
	}
	if !strings.Contains(view, "3 / 3") {
		t.Error("view should show the score")
	}
}
