package router

import (
	"github.com/ascendquiz/ascendquiz/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg asks the router to push a screen onto the stack. The
// home screen emits this to start a quiz; the quiz emits it to show
// the summary.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to return to the previous screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen without growing the stack,
// used when the welcome screen hands off to home.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router keeps the screen stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a router rooted at the initial screen.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Push puts s on top of the stack and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen; popping the last screen is a no-op.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active returns the screen currently on top.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update intercepts navigation messages and forwards everything else
// to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
