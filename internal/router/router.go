// Package router keeps the screen stack. Screens navigate by returning
// Push/Pop/Replace messages; the app shell decides which one to emit.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ritika/funlearn/internal/screen"
)

// PushScreenMsg puts a screen on top of the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg discards the top screen, revealing the one beneath.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen in place. Used when "back" must
// not return to the old screen, e.g. a quiz replaced by its result.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router is a stack of screens; the top one receives input and renders.
type Router struct {
	stack []screen.Screen
}

// New starts the stack with a single root screen.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push activates a new screen and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the top screen. The root screen is never popped.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the top screen without changing depth and runs the new
// screen's Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active is the screen currently receiving input, or nil on an empty stack.
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

// Update applies navigation messages itself and forwards everything else
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
	next, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

// View renders the active screen's body.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
