package screen

// Stack is the navigation history of screens. The bottom screen is the root.
type Stack struct {
	screens []*Screen
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{screens: make([]*Screen, 0, 2)}
}

// Push adds a screen to the top of the stack.
func (s *Stack) Push(sc *Screen) {
	s.screens = append(s.screens, sc)
}

// Pop disposes and removes the top screen. The root screen is never popped;
// Pop reports whether a screen was removed.
func (s *Stack) Pop() bool {
	if len(s.screens) <= 1 {
		return false
	}
	last := len(s.screens) - 1
	s.screens[last].Dispose()
	s.screens[last] = nil
	s.screens = s.screens[:last]
	return true
}

// Top returns the current screen, or nil if the stack is empty.
func (s *Stack) Top() *Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Len returns the number of screens on the stack.
func (s *Stack) Len() int {
	return len(s.screens)
}

// Breadcrumbs returns the titles of all screens, root first.
func (s *Stack) Breadcrumbs() []string {
	titles := make([]string, len(s.screens))
	for i, sc := range s.screens {
		titles[i] = sc.Title()
	}
	return titles
}

// Unwind disposes every screen and empties the stack.
func (s *Stack) Unwind() {
	for i := len(s.screens) - 1; i >= 0; i-- {
		s.screens[i].Dispose()
	}
	s.screens = s.screens[:0]
}
