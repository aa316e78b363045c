package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ascendquiz/ascendquiz/internal/screen"
)

// fakeScreen stands in for a real screen and records whether Init ran.
type fakeScreen struct {
	name    string
	initRan bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func newTestRouter(root string) (*Router, *fakeScreen) {
	s := &fakeScreen{name: root}
	return New(s), s
}

func assertActive(t *testing.T, r *Router, want string) {
	t.Helper()
	if got := r.Active().Title(); got != want {
		t.Errorf("active screen = %q, want %q", got, want)
	}
}

func TestPushRunsInitAndGrowsStack(t *testing.T) {
	r, _ := newTestRouter("home")

	quiz := &fakeScreen{name: "quiz"}
	r.Push(quiz)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	assertActive(t, r, "quiz")
	if !quiz.initRan {
		t.Error("pushed screen's Init did not run")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	r, _ := newTestRouter("home")
	r.Push(&fakeScreen{name: "quiz"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	assertActive(t, r, "home")
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r, _ := newTestRouter("home")

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after popping the root, want 1", r.Depth())
	}
	assertActive(t, r, "home")
}

func TestReplaceSwapsInPlace(t *testing.T) {
	r, _ := newTestRouter("welcome")

	home := &fakeScreen{name: "home"}
	r.Replace(home)

	if r.Depth() != 1 {
		t.Errorf("depth = %d after replace, want 1", r.Depth())
	}
	assertActive(t, r, "home")
	if !home.initRan {
		t.Error("replacement screen's Init did not run")
	}
}

func TestReplaceAboveStackedScreens(t *testing.T) {
	r, _ := newTestRouter("home")
	r.Push(&fakeScreen{name: "quiz"})

	r.Replace(&fakeScreen{name: "summary"})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	assertActive(t, r, "summary")
}

func TestNavigationMessages(t *testing.T) {
	r, _ := newTestRouter("home")

	quiz := &fakeScreen{name: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})
	assertActive(t, r, "quiz")
	if !quiz.initRan {
		t.Error("PushScreenMsg did not run Init")
	}

	summary := &fakeScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})
	assertActive(t, r, "summary")
	if !summary.initRan {
		t.Error("ReplaceScreenMsg did not run Init")
	}

	r.Update(PopScreenMsg{})
	assertActive(t, r, "home")
}
