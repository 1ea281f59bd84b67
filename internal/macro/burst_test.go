package macro

import (
	"testing"
	"time"

	"contagion/internal/config"
	"contagion/internal/input"
)

func newTestBurst(state *State, clicker *fakeClicker) (*Burst, *fakeInjector) {
	inj := &fakeInjector{}
	cfg := config.DefaultConfig()
	var c input.Clicker
	if clicker != nil {
		c = clicker
	}
	b := NewBurst(inj, c, cfg.Keybinds, cfg.Timing, testDelays(), state)
	b.sleep = instantSleep
	return b, inj
}

// TestBurstClickCount checks a full burst performs the configured count
func TestBurstClickCount(t *testing.T) {
	state := NewState()
	b, inj := newTestBurst(state, nil)

	if !b.Trigger() {
		t.Fatal("burst should start")
	}
	b.Wait()

	if n := inj.count("btndown:left"); n != 10 {
		t.Errorf("burst pressed fire %d times, want 10", n)
	}

	// Final op must be the defensive release.
	ops := inj.Ops()
	if ops[len(ops)-1] != "btnup:left" {
		t.Errorf("burst did not end with fire released: %v", ops[len(ops)-3:])
	}
	if state.Bursting() {
		t.Error("burst flag should be clear after completion")
	}
}

// TestBurstNoReentry checks overlapping triggers are rejected
func TestBurstNoReentry(t *testing.T) {
	state := NewState()
	b, _ := newTestBurst(state, nil)

	gate := make(chan struct{})
	b.sleep = func(time.Duration) { <-gate }

	if !b.Trigger() {
		t.Fatal("first burst should start")
	}
	if b.Trigger() {
		t.Error("second burst must not start while one is in progress")
	}

	close(gate)
	b.Wait()

	if !b.Trigger() {
		t.Error("a new burst should start once the first finished")
	}
	b.Wait()
}

// TestBurstDisabledBlocksStart checks the global toggle gates bursts
func TestBurstDisabledBlocksStart(t *testing.T) {
	state := NewState()
	state.SetEnabled(false)
	b, inj := newTestBurst(state, nil)

	if b.Trigger() {
		t.Error("burst must not start while macros are disabled")
	}
	if len(inj.Ops()) != 0 {
		t.Errorf("disabled burst injected events: %v", inj.Ops())
	}
}

// TestBurstStopsWhenDisabled checks disabling mid-burst cuts it short
// and leaves the fire button released
func TestBurstStopsWhenDisabled(t *testing.T) {
	state := NewState()
	b, inj := newTestBurst(state, nil)

	sleeps := 0
	b.sleep = func(time.Duration) {
		sleeps++
		if sleeps == 2 {
			state.SetEnabled(false)
		}
	}

	if !b.Trigger() {
		t.Fatal("burst should start")
	}
	b.Wait()

	if n := inj.count("btndown:left"); n >= 10 {
		t.Errorf("burst ran to completion (%d clicks) despite disable", n)
	}
	ops := inj.Ops()
	if ops[len(ops)-1] != "btnup:left" {
		t.Errorf("fire not released after early stop: %v", ops)
	}
	if state.Bursting() {
		t.Error("burst flag should be clear after early stop")
	}
}

// TestBurstPrefersClicker checks the low-level path is used when present
func TestBurstPrefersClicker(t *testing.T) {
	state := NewState()
	clicker := &fakeClicker{}
	b, inj := newTestBurst(state, clicker)

	if !b.Trigger() {
		t.Fatal("burst should start")
	}
	b.Wait()

	if clicker.presses != 10 {
		t.Errorf("low-level path pressed %d times, want 10", clicker.presses)
	}
	// One release per click plus the defensive one at the end.
	if clicker.releases != 11 {
		t.Errorf("low-level path released %d times, want 11", clicker.releases)
	}
	if n := inj.count("btndown:left"); n != 0 {
		t.Errorf("generic path used despite clicker: %d presses", n)
	}
}
