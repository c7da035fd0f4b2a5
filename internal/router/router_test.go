package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritika/funlearn/internal/screen"
)

type fakeScreen struct {
	name    string
	inits   int
	updates int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	f.updates++
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func stack(names ...string) (*Router, []*fakeScreen) {
	screens := make([]*fakeScreen, len(names))
	for i, n := range names {
		screens[i] = &fakeScreen{name: n}
	}
	r := New(screens[0])
	for _, s := range screens[1:] {
		r.Push(s)
	}
	return r, screens
}

func TestPushInitsAndActivates(t *testing.T) {
	r, screens := stack("dashboard", "lesson")

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "lesson" {
		t.Errorf("active = %q, want lesson", r.Active().Title())
	}
	if screens[1].inits != 1 {
		t.Errorf("pushed screen Init ran %d times, want 1", screens[1].inits)
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	r, _ := stack("dashboard", "lesson")
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "dashboard" {
		t.Errorf("active = %q, want dashboard", r.Active().Title())
	}
}

func TestPopKeepsRootScreen(t *testing.T) {
	r, _ := stack("dashboard")
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1; root must survive", r.Depth())
	}
}

func TestReplaceSwapsWithoutGrowingStack(t *testing.T) {
	r, _ := stack("dashboard", "lesson")

	quiz := &fakeScreen{name: "quiz"}
	r.Replace(quiz)

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
	if quiz.inits != 1 {
		t.Errorf("replacement Init ran %d times, want 1", quiz.inits)
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	r, _ := stack("dashboard")

	lesson := &fakeScreen{name: "lesson"}
	r.Update(PushScreenMsg{Screen: lesson})
	if r.Active().Title() != "lesson" || lesson.inits != 1 {
		t.Fatalf("after push msg: active = %q, inits = %d", r.Active().Title(), lesson.inits)
	}

	result := &fakeScreen{name: "result"}
	r.Update(ReplaceScreenMsg{Screen: result})
	if r.Active().Title() != "result" || r.Depth() != 2 {
		t.Fatalf("after replace msg: active = %q, depth = %d", r.Active().Title(), r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "dashboard" {
		t.Fatalf("after pop msg: active = %q", r.Active().Title())
	}
}

func TestUpdateForwardsOnlyToActiveScreen(t *testing.T) {
	r, screens := stack("dashboard", "lesson")

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if screens[1].updates != 1 {
		t.Errorf("active screen saw %d updates, want 1", screens[1].updates)
	}
	if screens[0].updates != 0 {
		t.Errorf("covered screen saw %d updates, want 0", screens[0].updates)
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r, _ := stack("dashboard", "lesson")
	if got := r.View(80, 24); got != "lesson" {
		t.Errorf("View() = %q, want lesson", got)
	}
}
