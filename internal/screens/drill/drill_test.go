package drill

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/practice"
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
	repo.profiles[p.Username] = p.Clone()
	return &nav.Deps{
		Engine:  engine,
		Profile: p,
		Gen:     practice.New(rand.NewPCG(1, 2)),
	}
}

func TestExplicitSkillPool(t *testing.T) {
	deps := newTestDeps()
	d := New(deps, []string{"addition_basic"})

	if len(d.skills) != 1 || d.skills[0] != "addition_basic" {
		t.Fatalf("skills = %v", d.skills)
	}
	if d.problem.Skill != "addition_basic" || !d.problem.Scored {
		t.Fatalf("problem = %+v", d.problem)
	}
}

func TestWeakSkillsDefaultPool(t *testing.T) {
	deps := newTestDeps()
	deps.Profile.Proficiency["addition_basic"] = 0.2
	d := New(deps, nil)

	for _, s := range d.skills {
		if s == "addition_basic" {
			return
		}
	}
	t.Errorf("weak skill not in pool: %v", d.skills)
}

func TestCorrectAnswerScoresAndPersists(t *testing.T) {
	deps := newTestDeps()
	d := New(deps, []string{"addition_basic"})

	before := deps.Profile.Proficiency["addition_basic"]
	d.input.Model.SetValue(d.problem.Answer)

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("checking an answer should produce a command")
	}
	if !d.correct || d.solved != 1 {
		t.Fatalf("correct=%v solved=%d", d.correct, d.solved)
	}

	msg := cmd()
	d.Update(msg)
	if d.errText != "" {
		t.Fatalf("record failed: %s", d.errText)
	}
	if deps.Profile.Points != 1 {
		t.Errorf("points = %d, want 1", deps.Profile.Points)
	}
	after := deps.Profile.Proficiency["addition_basic"]
	if after <= before {
		t.Errorf("proficiency %v -> %v, want an increase", before, after)
	}
}

func TestWrongAnswerShowsSolution(t *testing.T) {
	deps := newTestDeps()
	d := New(deps, []string{"addition_basic"})
	d.input.Model.SetValue("999999")

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if d.correct {
		t.Fatal("999999 should be wrong")
	}
	d.Update(cmd())
	if deps.Profile.Points != 0 {
		t.Errorf("points = %d, wrong answers earn nothing", deps.Profile.Points)
	}

	// Enter again moves on to a fresh problem.
	d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if d.answered {
		t.Error("next problem should reset the answered flag")
	}
}
