package game

import "sync"

// Session guards one State with a mutex. Every Start and Guess holds the
// lock from reading the state until the new state is written, word source
// reads included, so commands arriving concurrently are applied one at a
// time against the latest state.
type Session struct {
	mu     sync.Mutex
	state  *State
	engine *Engine
}

// NewSession wraps state. A nil state starts the session Idle.
func NewSession(engine *Engine, state *State) *Session {
	if state == nil {
		state = &State{}
	}
	return &Session{state: state, engine: engine}
}

// Start begins a game if none is running.
func (s *Session) Start() Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Start(s.state)
}

// Guess applies text (for example "!guess crane") to the running game.
func (s *Session) Guess(text string) Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Guess(s.state, text)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state
}
