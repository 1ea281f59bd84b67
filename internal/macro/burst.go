package macro

import (
	"log"
	"sync"
	"time"

	"contagion/internal/config"
	"contagion/internal/input"
	"contagion/internal/timing"
)

// burstHold is how long each burst click holds the button down.
const burstHold = 10 * time.Millisecond

// Burst is the secondary rapid-click macro: a fixed count of fire
// clicks, independent of the main sequence. Re-entry is blocked by the
// state's burst flag; disabling macros mid-burst stops it early.
type Burst struct {
	inj     input.Injector
	clicker input.Clicker // low-level path, nil when unavailable
	state   *State

	fire  string
	count int
	delay time.Duration

	sleep func(time.Duration)
	wg    sync.WaitGroup
}

// NewBurst creates the rapid-click macro. clicker may be nil, in which
// case clicks go through the generic injector.
func NewBurst(inj input.Injector, clicker input.Clicker, binds config.Keybinds, t config.Timing, delays timing.Values, state *State) *Burst {
	return &Burst{
		inj:     inj,
		clicker: clicker,
		state:   state,
		fire:    binds.Fire,
		count:   t.RapidClickCount,
		delay:   delays.RapidClick,
		sleep:   delays.Sleep,
	}
}

// Trigger starts a burst on a background goroutine. It reports false
// when macros are disabled or a burst is already in progress.
func (b *Burst) Trigger() bool {
	if !b.state.Enabled() {
		return false
	}
	if !b.state.BeginBurst() {
		return false
	}

	b.wg.Add(1)
	go b.run()
	return true
}

// Wait blocks until any in-flight burst has finished.
func (b *Burst) Wait() {
	b.wg.Wait()
}

func (b *Burst) run() {
	defer b.wg.Done()
	defer func() {
		if p := recover(); p != nil {
			log.Printf("Warning: rapid-click burst panicked: %v", p)
		}
		// Whatever happened, the fire button must not stay down.
		b.releaseFire()
		b.state.EndBurst()
	}()

	for i := 0; i < b.count; i++ {
		if !b.state.Enabled() {
			break
		}
		b.click()
		b.sleep(b.delay)
	}
}

// click performs one press/hold/release, preferring the low-level path.
func (b *Burst) click() {
	if b.clicker != nil {
		b.clicker.Press()
		b.sleep(burstHold)
		b.clicker.Release()
		return
	}

	b.inj.ButtonDown(b.fire)
	b.sleep(burstHold)
	b.inj.ButtonUp(b.fire)
}

func (b *Burst) releaseFire() {
	if b.clicker != nil {
		b.clicker.Release()
	}
	b.inj.ButtonUp(b.fire)
}
