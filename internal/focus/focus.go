// Package focus answers whether the target game currently owns the
// foreground window, by polling the platform's foreground-app query.
package focus

import (
	"log"
	"time"
)

// Checker queries the OS for the currently focused application.
// Implemented per platform in focus_windows.go, focus_darwin.go and
// focus_linux.go; anywhere else the target is assumed active.
type Checker interface {
	// Active reports whether the target application is focused
	Active() (bool, error)
}

// Monitor polls a Checker on a fixed interval and mirrors the result
// into shared state. A query failure counts as active (fail-open) so a
// transient OS error never silently disables the tool.
type Monitor struct {
	checker  Checker
	interval time.Duration
	state    focusState
	quit     chan struct{}
	done     chan struct{}
}

// focusState is the slice of shared run state the monitor touches.
type focusState interface {
	SetFocused(bool)
	Running() bool
	StopRun() bool
}

// NewMonitor creates a focus monitor polling checker every interval.
func NewMonitor(checker Checker, interval time.Duration, state focusState) *Monitor {
	return &Monitor{
		checker:  checker,
		interval: interval,
		state:    state,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the poll loop on a background goroutine.
func (m *Monitor) Start() {
	go m.run()
}

// Stop terminates the poll loop and waits for it to exit.
func (m *Monitor) Stop() {
	close(m.quit)
	<-m.done
}

func (m *Monitor) run() {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.poll()
	for {
		select {
		case <-ticker.C:
			m.poll()
		case <-m.quit:
			return
		}
	}
}

// Poll performs one focus check and updates shared state. Exposed for
// the hotkey handlers, which re-check focus on each trigger event.
func (m *Monitor) Poll() bool {
	return m.poll()
}

func (m *Monitor) poll() bool {
	active := Check(m.checker)

	if !active && m.state.Running() {
		m.state.StopRun()
		log.Printf("Target window lost focus - macro stopped")
	}

	m.state.SetFocused(active)
	return active
}

// Check runs one fail-open query against a checker.
func Check(c Checker) bool {
	active, err := c.Active()
	if err != nil {
		// Fail open: a broken query must not stop a running sequence.
		return true
	}
	return active
}
