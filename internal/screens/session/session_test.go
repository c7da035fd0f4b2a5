package session

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/profile"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/router"
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
		Engine:   engine,
		Profiles: repo,
		Profile:  p,
	}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// openQuiz runs Init and feeds the resulting message back into the screen.
func openQuiz(t *testing.T, q *QuizScreen) {
	t.Helper()
	msg := q.Init()()
	q.Update(msg)
	if q.errText != "" || q.locked != "" {
		t.Fatalf("open failed: err=%q locked=%q", q.errText, q.locked)
	}
	if q.sess == nil {
		t.Fatal("session not started")
	}
}

// answerCurrent submits the current question via the choice component and
// applies the resulting feedback message.
func answerCurrent(t *testing.T, q *QuizScreen) {
	t.Helper()
	// The correct option is preselected by loadQuestion only if it is
	// first; walk the cursor onto it.
	want := q.sess.Question().Answer
	for i := 0; i < len(q.sess.Question().Options); i++ {
		if q.sess.Question().Options[q.mc.Selected] == want {
			break
		}
		q.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := q.Update(enter())
	if cmd == nil {
		t.Fatal("submitting an answer should produce a command")
	}
	q.Update(cmd())
	if q.feedback == nil {
		t.Fatal("expected feedback after scoring")
	}
	if !q.feedback.Correct {
		t.Fatalf("picked %q, expected a correct answer", want)
	}
}

func TestQuizFlowEndsOnResultScreen(t *testing.T) {
	deps := newTestDeps()
	q := New(deps, "quiz_math_1_1")
	openQuiz(t, q)

	total := q.sess.Total()
	for i := 0; i < total; i++ {
		answerCurrent(t, q)

		_, cmd := q.Update(enter())
		if cmd == nil {
			t.Fatalf("question %d: advance should produce a command", i)
		}
		msg := cmd()

		if i < total-1 {
			q.Update(msg)
			if q.feedback != nil {
				t.Fatalf("question %d: feedback should clear on advance", i)
			}
			continue
		}

		// Last advance finishes the session and swaps in the result.
		_, navCmd := q.Update(msg)
		if navCmd == nil {
			t.Fatal("final advance should navigate")
		}
		replace, ok := navCmd().(router.ReplaceScreenMsg)
		if !ok {
			t.Fatalf("expected ReplaceScreenMsg, got %T", navCmd())
		}
		if replace.Screen == nil {
			t.Fatal("result screen is nil")
		}
	}

	if deps.Profile.Points != total*2 {
		t.Errorf("points = %d, want %d", deps.Profile.Points, total*2)
	}
}

func TestFeedbackPauseAutoAdvances(t *testing.T) {
	deps := newTestDeps()
	q := New(deps, "quiz_math_1_1")
	openQuiz(t, q)
	answerCurrent(t, q)

	// A tick for an earlier question must not advance.
	if _, cmd := q.Update(feedbackElapsedMsg{index: q.sess.Index() - 1}); cmd != nil {
		t.Fatal("stale tick should be ignored")
	}

	_, cmd := q.Update(feedbackElapsedMsg{index: q.sess.Index()})
	if cmd == nil {
		t.Fatal("elapsed feedback should advance")
	}
	q.Update(cmd())
	if q.feedback != nil {
		t.Error("feedback should clear after the pause")
	}
}

func TestLockedQuizShowsGate(t *testing.T) {
	deps := newTestDeps()
	// Level 1 learner opening the level 2 quiz.
	q := New(deps, "quiz_math_2_1")
	msg := q.Init()()
	q.Update(msg)

	if q.locked == "" {
		t.Fatal("expected the level gate message")
	}
	if q.sess != nil {
		t.Error("no session should start for locked content")
	}
}

func TestBossBattleTitle(t *testing.T) {
	deps := newTestDeps()
	deps.Profile.SubjectLevels[catalog.SubjectMath] = 3

	q := New(deps, "boss_math_3_1")
	openQuiz(t, q)
	if q.Title() != "Boss Battle" {
		t.Errorf("title = %q", q.Title())
	}
}
