package tui

import "fmt"

// ScreenName identifies a screen of the TUI
type ScreenName string

const (
	ScreenList     ScreenName = "list"
	ScreenDetail   ScreenName = "detail"
	ScreenAdd      ScreenName = "add"
	ScreenSettings ScreenName = "settings"
)

// Screen is a route: a screen name plus the task it shows, if any
type Screen struct {
	Name ScreenName
	ID   int
}

func (s Screen) String() string {
	if s.ID > 0 {
		return fmt.Sprintf("%s/%d", s.Name, s.ID)
	}
	return string(s.Name)
}

// Router keeps the navigation stack. The list screen is always at the bottom.
type Router struct {
	stack []Screen
}

// NewRouter starts at the list screen
func NewRouter() *Router {
	return &Router{stack: []Screen{{Name: ScreenList}}}
}

// Current returns the screen on top of the stack
func (r *Router) Current() Screen {
	return r.stack[len(r.stack)-1]
}

// Push navigates to s
func (r *Router) Push(s Screen) {
	r.stack = append(r.stack, s)
}

// Replace swaps the current screen for s, keeping the list at the bottom
func (r *Router) Replace(s Screen) {
	if len(r.stack) == 1 {
		r.Push(s)
		return
	}
	r.stack[len(r.stack)-1] = s
}

// Back pops the current screen. It reports false when already at the list.
func (r *Router) Back() bool {
	if len(r.stack) == 1 {
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

// Depth returns the number of screens on the stack
func (r *Router) Depth() int {
	return len(r.stack)
}
