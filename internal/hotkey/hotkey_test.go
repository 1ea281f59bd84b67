package hotkey

import (
	"testing"

	"contagion/internal/config"
)

type recorded struct {
	downs, ups int
}

func newTestListener(binds config.Keybinds) (*Listener, *recorded) {
	rec := &recorded{}
	l := NewListener(binds, Actions{
		TriggerDown: func() { rec.downs++ },
		TriggerUp:   func() { rec.ups++ },
	})
	return l, rec
}

// TestTriggerButtonDispatch checks press/release routing for the
// primary trigger button
func TestTriggerButtonDispatch(t *testing.T) {
	binds := config.DefaultConfig().Keybinds
	l, rec := newTestListener(binds)

	l.handleMouse(binds.TriggerButton, true)
	l.handleMouse(binds.TriggerButton, false)

	if rec.downs != 1 || rec.ups != 1 {
		t.Errorf("got %d downs / %d ups, want 1/1", rec.downs, rec.ups)
	}
}

// TestAltTriggerButton checks the alternate button honors its enable flag
func TestAltTriggerButton(t *testing.T) {
	binds := config.DefaultConfig().Keybinds

	l, rec := newTestListener(binds)
	l.handleMouse(binds.AltTriggerButton, true)
	if rec.downs != 1 {
		t.Error("enabled alt trigger should dispatch")
	}

	binds.EnableAltTrigger = false
	l, rec = newTestListener(binds)
	l.handleMouse(binds.AltTriggerButton, true)
	if rec.downs != 0 {
		t.Error("disabled alt trigger must not dispatch")
	}
}

// TestOtherButtonsIgnored checks ordinary clicks never reach the runner
func TestOtherButtonsIgnored(t *testing.T) {
	binds := config.DefaultConfig().Keybinds
	l, rec := newTestListener(binds)

	for _, btn := range []uint16{1, 2, 3} {
		l.handleMouse(btn, true)
		l.handleMouse(btn, false)
	}

	if rec.downs != 0 || rec.ups != 0 {
		t.Errorf("ordinary buttons dispatched: %d downs / %d ups", rec.downs, rec.ups)
	}
}

// TestNilActions checks a listener with no callbacks is inert
func TestNilActions(t *testing.T) {
	binds := config.DefaultConfig().Keybinds
	l := NewListener(binds, Actions{})

	// Must not panic.
	l.handleMouse(binds.TriggerButton, true)
	l.handleMouse(binds.TriggerButton, false)
}
