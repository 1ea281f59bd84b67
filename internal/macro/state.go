// Package macro implements the contagion sequence, its hold-to-run
// activation, and the secondary rapid-click burst.
package macro

import (
	"sync"
	"sync/atomic"
)

// State is the shared run state every task reads. The boolean flags are
// atomics; each has a single conceptual writer and a stale read costs at
// most one poll interval. The burst flag is the one read-modify-write
// race (trigger handler vs. burst task) and sits behind a mutex.
type State struct {
	running atomic.Bool
	enabled atomic.Bool
	focused atomic.Bool

	burstMu  sync.Mutex
	bursting bool
}

// NewState returns run state with macros globally enabled.
func NewState() *State {
	s := &State{}
	s.enabled.Store(true)
	return s
}

// Running reports whether the contagion sequence is active.
func (s *State) Running() bool {
	return s.running.Load()
}

// StartRun sets the run flag, reporting false if a sequence was
// already running.
func (s *State) StartRun() bool {
	return s.running.CompareAndSwap(false, true)
}

// StopRun clears the run flag, reporting whether it was set.
func (s *State) StopRun() bool {
	return s.running.CompareAndSwap(true, false)
}

// Enabled reports whether macros are globally enabled.
func (s *State) Enabled() bool {
	return s.enabled.Load()
}

// ToggleEnabled flips the global enable flag and returns the new value.
func (s *State) ToggleEnabled() bool {
	for {
		old := s.enabled.Load()
		if s.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetEnabled sets the global enable flag.
func (s *State) SetEnabled(v bool) {
	s.enabled.Store(v)
}

// Focused reports whether the target application owns the foreground.
func (s *State) Focused() bool {
	return s.focused.Load()
}

// SetFocused records the latest focus poll result.
func (s *State) SetFocused(v bool) {
	s.focused.Store(v)
}

// BeginBurst marks a rapid-click burst as in progress, reporting false
// if one already is.
func (s *State) BeginBurst() bool {
	s.burstMu.Lock()
	defer s.burstMu.Unlock()
	if s.bursting {
		return false
	}
	s.bursting = true
	return true
}

// EndBurst clears the burst-in-progress flag.
func (s *State) EndBurst() {
	s.burstMu.Lock()
	s.bursting = false
	s.burstMu.Unlock()
}

// Bursting reports whether a rapid-click burst is in progress.
func (s *State) Bursting() bool {
	s.burstMu.Lock()
	defer s.burstMu.Unlock()
	return s.bursting
}
