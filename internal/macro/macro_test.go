package macro

import (
	"sync"
	"time"

	"contagion/internal/config"
	"contagion/internal/timing"
)

// fakeInjector records every injected event in order.
type fakeInjector struct {
	mu  sync.Mutex
	ops []string
}

func (f *fakeInjector) record(op string) {
	f.mu.Lock()
	f.ops = append(f.ops, op)
	f.mu.Unlock()
}

func (f *fakeInjector) KeyDown(key string) error  { f.record("keydown:" + key); return nil }
func (f *fakeInjector) KeyUp(key string) error    { f.record("keyup:" + key); return nil }
func (f *fakeInjector) KeyTap(key string) error   { f.record("keytap:" + key); return nil }
func (f *fakeInjector) ButtonDown(b string) error { f.record("btndown:" + b); return nil }
func (f *fakeInjector) ButtonUp(b string) error   { f.record("btnup:" + b); return nil }
func (f *fakeInjector) Click(b string) error      { f.record("click:" + b); return nil }

func (f *fakeInjector) Ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.ops))
	copy(out, f.ops)
	return out
}

func (f *fakeInjector) count(op string) int {
	n := 0
	for _, o := range f.Ops() {
		if o == op {
			n++
		}
	}
	return n
}

// fakeClicker records low-level press/release calls.
type fakeClicker struct {
	mu       sync.Mutex
	presses  int
	releases int
}

func (f *fakeClicker) Press() error {
	f.mu.Lock()
	f.presses++
	f.mu.Unlock()
	return nil
}

func (f *fakeClicker) Release() error {
	f.mu.Lock()
	f.releases++
	f.mu.Unlock()
	return nil
}

// fakeClock advances a fixed step on every reading, so the rapid-fire
// window closes after a handful of iterations instead of wall time.
type fakeClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{t: time.Unix(0, 0), step: step}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

func instantSleep(time.Duration) {}

func testDelays() timing.Values {
	return timing.Compute(config.DefaultConfig().Timing)
}

// newTestExecutor builds an executor with stubbed sleeping and a fake
// clock stepping 100ms per reading (three rapid-fire clicks per run).
func newTestExecutor(state *State) (*Executor, *fakeInjector) {
	inj := &fakeInjector{}
	binds := config.DefaultConfig().Keybinds
	exec := NewExecutor(inj, binds, testDelays(), state)
	exec.sleep = instantSleep
	exec.now = newFakeClock(100 * time.Millisecond).now
	return exec, inj
}
