package macro

import (
	"time"

	"contagion/internal/config"
	"contagion/internal/input"
	"contagion/internal/timing"
)

// Executor performs one contagion sequence: double jump, aim+melee,
// emote cancel, rapid fire, end delay. Every step re-checks the run
// flag and bails out as soon as it reads false; releasing whatever is
// still held is the runner's job, not the sequence's.
type Executor struct {
	inj    input.Injector
	binds  config.Keybinds
	delays timing.Values
	state  *State

	// replaced in tests
	sleep func(time.Duration)
	now   func() time.Time
}

// NewExecutor creates a sequence executor.
func NewExecutor(inj input.Injector, binds config.Keybinds, delays timing.Values, state *State) *Executor {
	return &Executor{
		inj:    inj,
		binds:  binds,
		delays: delays,
		state:  state,
		sleep:  delays.Sleep,
		now:    time.Now,
	}
}

// RunOnce executes one full contagion sequence. Injection errors are
// dropped; this runs at sub-frame cadence and the worst case is a
// missed step the next iteration repeats anyway.
func (e *Executor) RunOnce() {
	if !e.state.Running() {
		return
	}

	// Double jump, timed to the game's frame pacing
	e.tapKey(e.binds.Jump)
	e.sleep(e.delays.DoubleJump)
	e.tapKey(e.binds.Jump)
	e.sleep(e.delays.DoubleJump)

	if !e.state.Running() {
		return
	}

	// Aim + melee combo; must land inside one frame interval
	e.inj.ButtonDown(e.binds.Aim)
	e.sleep(e.delays.AimMelee)
	e.tapKey(e.binds.Melee)
	e.sleep(e.delays.MeleeHold)
	e.inj.ButtonUp(e.binds.Aim)

	// Emote cancel (the contagion proc)
	e.sleep(e.delays.EmotePrep)
	e.tapKey(e.binds.Emote)
	e.sleep(e.delays.DoubleJump)
	e.tapKey(e.binds.Emote)
	e.sleep(e.delays.DoubleJump)

	if !e.state.Running() {
		return
	}

	// Rapid fire until the window closes or the run flag drops
	start := e.now()
	for {
		e.clickFire()
		e.sleep(e.delays.RapidFireClick)

		if !e.state.Running() {
			return
		}
		if e.now().Sub(start) > e.delays.RapidFireWindow {
			break
		}
	}

	if e.state.Running() {
		e.sleep(e.delays.SequenceEnd)
	}
}

// tapKey presses and releases a key, skipped once the run flag drops.
func (e *Executor) tapKey(key string) {
	if !e.state.Running() {
		return
	}
	e.inj.KeyDown(key)
	e.inj.KeyUp(key)
}

// clickFire clicks the fire button while a sequence or burst is active.
func (e *Executor) clickFire() {
	if !e.state.Running() && !e.state.Bursting() {
		return
	}
	e.inj.Click(e.binds.Fire)
}

// ReleaseAll forces every input the sequence can hold back to the
// released state, regardless of where the sequence was interrupted.
func (e *Executor) ReleaseAll() {
	e.inj.KeyUp(e.binds.Melee)
	e.inj.KeyUp(e.binds.Emote)
	e.inj.ButtonUp(e.binds.Aim)
	e.inj.ButtonUp(e.binds.Fire)
}
