package navigation

import "sync"

// State of a page.
type State int

const (
	Active State = iota
	Disposed
)

func (s State) String() string {
	if s == Disposed {
		return "disposed"
	}
	return "active"
}

// Lifecycle tracks the ACTIVE -> DISPOSED transition of a page. The
// transition happens at most once.
type Lifecycle struct {
	mu    sync.Mutex
	state State
}

// Dispose runs teardown if the page is still active and reports whether it
// did.
func (l *Lifecycle) Dispose(teardown func()) bool {
	l.mu.Lock()
	if l.state == Disposed {
		l.mu.Unlock()
		return false
	}
	l.state = Disposed
	l.mu.Unlock()

	if teardown != nil {
		teardown()
	}
	return true
}

// Active reports whether the page still responds to input.
func (l *Lifecycle) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == Active
}

func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
