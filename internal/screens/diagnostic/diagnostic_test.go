package diagnostic

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/profile"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/quiz"
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

func newTestDeps() (*nav.Deps, *memRepo) {
	repo := &memRepo{profiles: make(map[string]*profile.Profile)}
	engine := progression.New(catalog.Default(), repo)
	p := profile.New("t")
	p.Repair(engine.Catalog().AllSkills(), catalog.AllSubjects())
	repo.profiles[p.Username] = p.Clone()
	return &nav.Deps{Engine: engine, Profiles: repo, Profile: p}, repo
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// answer selects the option matching want on the current question and
// submits it, applying any resulting command synchronously.
func answer(t *testing.T, d *DiagnosticScreen, correct bool) {
	t.Helper()
	q := d.questions[d.index].Question
	want := q.Answer
	if !correct {
		for _, opt := range q.Options {
			if opt != q.Answer {
				want = opt
				break
			}
		}
	}
	for i := 0; i < len(q.Options); i++ {
		if q.Options[d.mc.Selected] == want {
			break
		}
		d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := d.Update(enter())
	if cmd != nil {
		d.Update(cmd())
	}
}

func TestAllCorrectPlacesHigh(t *testing.T) {
	deps, _ := newTestDeps()
	d := New(deps)
	if len(d.questions) == 0 {
		t.Fatal("seed has no diagnostic questions")
	}

	for d.placed == nil {
		answer(t, d, true)
	}

	for _, subject := range deps.Engine.Catalog().Subjects() {
		if d.placed[subject] != 2 {
			t.Errorf("%s placed at %d, want 2", subject, d.placed[subject])
		}
		if !deps.Profile.Diagnostic[subject] {
			t.Errorf("%s not marked placed", subject)
		}
	}
	if !quiz.DiagnosticDone(deps.Engine.Catalog(), deps.Profile) {
		t.Error("diagnostic should be done")
	}
}

func TestAllWrongPlacesLow(t *testing.T) {
	deps, _ := newTestDeps()
	d := New(deps)

	for d.placed == nil {
		answer(t, d, false)
	}

	for _, subject := range deps.Engine.Catalog().Subjects() {
		if d.placed[subject] != 1 {
			t.Errorf("%s placed at %d, want 1", subject, d.placed[subject])
		}
	}
}

func TestEnterAfterPlacementCompletes(t *testing.T) {
	deps, _ := newTestDeps()
	d := New(deps)
	for d.placed == nil {
		answer(t, d, true)
	}

	_, cmd := d.Update(enter())
	if cmd == nil {
		t.Fatal("enter after placement should navigate")
	}
	if _, ok := cmd().(nav.DiagnosticCompleteMsg); !ok {
		t.Fatalf("expected DiagnosticCompleteMsg, got %T", cmd())
	}
}

func TestPlacementPersisted(t *testing.T) {
	deps, repo := newTestDeps()
	d := New(deps)
	for d.placed == nil {
		answer(t, d, true)
	}

	stored := repo.profiles["t"]
	for _, subject := range deps.Engine.Catalog().Subjects() {
		if stored.SubjectLevels[subject] != 2 {
			t.Errorf("stored %s level = %d, want 2", subject, stored.SubjectLevels[subject])
		}
	}
}
