package macro

import (
	"strings"
	"testing"
	"time"
)

// TestSequenceOrder checks one full sequence emits every step in order
func TestSequenceOrder(t *testing.T) {
	state := NewState()
	state.StartRun()
	exec, inj := newTestExecutor(state)

	exec.RunOnce()

	want := []string{
		"keydown:space", "keyup:space",
		"keydown:space", "keyup:space",
		"btndown:right",
		"keydown:e", "keyup:e",
		"btnup:right",
		"keydown:.", "keyup:.",
		"keydown:.", "keyup:.",
	}

	ops := inj.Ops()
	if len(ops) < len(want) {
		t.Fatalf("got %d ops, want at least %d: %v", len(ops), len(want), ops)
	}
	for i, w := range want {
		if ops[i] != w {
			t.Fatalf("op[%d] = %q, want %q (all: %v)", i, ops[i], w, ops)
		}
	}

	// The remainder is the rapid-fire loop: fire clicks only.
	rest := ops[len(want):]
	if len(rest) == 0 {
		t.Fatal("sequence emitted no rapid-fire clicks")
	}
	for _, op := range rest {
		if op != "click:left" {
			t.Fatalf("unexpected op after emote cancel: %q", op)
		}
	}
}

// TestRapidFireBounded checks the rapid-fire loop stops at the window
func TestRapidFireBounded(t *testing.T) {
	state := NewState()
	state.StartRun()
	exec, inj := newTestExecutor(state)

	exec.RunOnce()

	// Fake clock steps 100ms per reading against a 230ms window: the
	// loop must see elapsed 100, 200, 300 and stop at three clicks.
	if n := inj.count("click:left"); n != 3 {
		t.Errorf("rapid fire clicked %d times, want 3", n)
	}
}

// TestSequenceSkippedWhenStopped checks a cleared run flag suppresses
// the whole sequence
func TestSequenceSkippedWhenStopped(t *testing.T) {
	state := NewState()
	exec, inj := newTestExecutor(state)

	exec.RunOnce()

	if ops := inj.Ops(); len(ops) != 0 {
		t.Errorf("stopped sequence injected events: %v", ops)
	}
}

// TestSequenceAbortsMidway checks the flag is honored between steps:
// clearing it during the double jump must prevent the aim press
func TestSequenceAbortsMidway(t *testing.T) {
	state := NewState()
	state.StartRun()
	exec, inj := newTestExecutor(state)

	calls := 0
	exec.sleep = func(time.Duration) {
		calls++
		if calls == 2 {
			state.StopRun()
		}
	}

	exec.RunOnce()

	for _, op := range inj.Ops() {
		if strings.HasPrefix(op, "btndown:") {
			t.Errorf("aim pressed after run flag cleared: %v", inj.Ops())
		}
	}
}

// TestClickFireDuringBurst checks the fire click is allowed while a
// burst is in progress even with no sequence running
func TestClickFireDuringBurst(t *testing.T) {
	state := NewState()
	exec, inj := newTestExecutor(state)

	exec.clickFire()
	if inj.count("click:left") != 0 {
		t.Error("clickFire should be suppressed while idle")
	}

	state.BeginBurst()
	exec.clickFire()
	if inj.count("click:left") != 1 {
		t.Error("clickFire should pass during a burst")
	}
}

// TestReleaseAll checks every holdable input is released
func TestReleaseAll(t *testing.T) {
	state := NewState()
	exec, inj := newTestExecutor(state)

	exec.ReleaseAll()

	want := []string{"keyup:e", "keyup:.", "btnup:right", "btnup:left"}
	ops := inj.Ops()
	if len(ops) != len(want) {
		t.Fatalf("ReleaseAll ops = %v, want %v", ops, want)
	}
	for i, w := range want {
		if ops[i] != w {
			t.Errorf("ReleaseAll op[%d] = %q, want %q", i, ops[i], w)
		}
	}
}
