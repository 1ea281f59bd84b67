// Package hotkey wires the global keyboard/mouse hook to macro actions.
package hotkey

import (
	"log"

	hook "github.com/robotn/gohook"

	"contagion/internal/config"
)

// Actions are the callbacks a Listener drives. Any nil action is skipped.
type Actions struct {
	// TriggerDown/TriggerUp fire on the hold-to-run mouse button
	TriggerDown func()
	TriggerUp   func()

	// RapidClick fires on the rapid-click key press
	RapidClick func()

	// Toggle fires on the global enable/disable key press
	Toggle func()
}

// Listener owns the global event hook. One per process; Start registers
// the callbacks and runs the hook loop on a background goroutine.
type Listener struct {
	binds config.Keybinds
	acts  Actions
}

// NewListener creates a listener for the configured keybinds.
func NewListener(binds config.Keybinds, acts Actions) *Listener {
	return &Listener{binds: binds, acts: acts}
}

// Start installs the hook and begins dispatching events.
func (l *Listener) Start() {
	hook.Register(hook.KeyDown, []string{l.binds.RapidClick}, func(e hook.Event) {
		if l.acts.RapidClick != nil {
			l.acts.RapidClick()
		}
	})

	hook.Register(hook.KeyDown, []string{l.binds.Toggle}, func(e hook.Event) {
		if l.acts.Toggle != nil {
			l.acts.Toggle()
		}
	})

	hook.Register(hook.MouseDown, []string{}, func(e hook.Event) {
		l.handleMouse(e.Button, true)
	})

	hook.Register(hook.MouseUp, []string{}, func(e hook.Event) {
		l.handleMouse(e.Button, false)
	})

	events := hook.Start()
	go func() {
		<-hook.Process(events)
		log.Printf("Input hook stopped")
	}()
}

// Stop tears down the global hook.
func (l *Listener) Stop() {
	hook.End()
}

// handleMouse routes trigger-button transitions to the runner actions.
func (l *Listener) handleMouse(button uint16, down bool) {
	if !l.isTrigger(button) {
		return
	}

	if down {
		if l.acts.TriggerDown != nil {
			l.acts.TriggerDown()
		}
	} else {
		if l.acts.TriggerUp != nil {
			l.acts.TriggerUp()
		}
	}
}

func (l *Listener) isTrigger(button uint16) bool {
	if button == l.binds.TriggerButton {
		return true
	}
	return l.binds.EnableAltTrigger && button == l.binds.AltTriggerButton
}
