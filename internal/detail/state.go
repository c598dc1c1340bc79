// Package detail tracks which record, if any, is expanded into a detail view.
package detail

import (
	"fmt"
	"sync"
)

// Snapshot is an observable state of the machine: Closed, or Open(ID)
type Snapshot struct {
	Open bool
	ID   string
}

// Closed is the initial state
var Closed = Snapshot{}

// OpenOn returns the Open(id) state
func OpenOn(id string) Snapshot {
	return Snapshot{Open: true, ID: id}
}

func (s Snapshot) String() string {
	if !s.Open {
		return "Closed"
	}
	return fmt.Sprintf("Open(%s)", s.ID)
}

// Transition describes a state change
type Transition struct {
	From Snapshot
	To   Snapshot
}

// Listener observes transitions. Hosts use it to suspend background
// interaction while a detail view is open.
type Listener func(Transition)

// State is a single-selection state machine. The zero value is Closed and ready to use.
// At most one record is open at any time.
type State struct {
	mu        sync.Mutex
	current   Snapshot
	listeners []Listener
}

// Current returns the present state
func (s *State) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsOpen reports whether any record is open
func (s *State) IsOpen() bool {
	return s.Current().Open
}

// Subscribe registers fn to be called after every state change.
func (s *State) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Select opens id, replacing any previous selection.
// Selecting the record that is already open is not a change.
func (s *State) Select(id string) (Transition, bool) {
	return s.move(OpenOn(id))
}

// Dismiss closes the open record. Dismissing while Closed is a no-op.
func (s *State) Dismiss() (Transition, bool) {
	return s.move(Closed)
}

func (s *State) move(to Snapshot) (Transition, bool) {
	s.mu.Lock()
	tr := Transition{From: s.current, To: to}
	if tr.From == tr.To {
		s.mu.Unlock()
		return tr, false
	}
	s.current = to
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(tr)
	}
	return tr, true
}
