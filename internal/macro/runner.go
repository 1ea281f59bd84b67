package macro

import (
	"log"
	"sync"
	"time"
)

// Runner is the hold-to-run state machine. TriggerDown starts the
// sequence loop on a background goroutine when the target is focused
// and macros are enabled; TriggerUp (or a focus loss) clears the run
// flag and the loop winds down on its own.
type Runner struct {
	exec      *Executor
	state     *State
	loopDelay time.Duration

	sleep func(time.Duration)
	wg    sync.WaitGroup
}

// NewRunner creates the activation controller around an executor.
func NewRunner(exec *Executor, state *State) *Runner {
	return &Runner{
		exec:      exec,
		state:     state,
		loopDelay: exec.delays.Loop,
		sleep:     exec.delays.Sleep,
	}
}

// TriggerDown handles the trigger button being pressed. It reports
// whether a new sequence loop was started.
func (r *Runner) TriggerDown() bool {
	if !r.state.Enabled() || !r.state.Focused() {
		return false
	}
	if !r.state.StartRun() {
		return false
	}

	log.Printf("Contagion sequence started")
	r.wg.Add(1)
	go r.loop()
	return true
}

// TriggerUp handles the trigger button being released.
func (r *Runner) TriggerUp() {
	if r.state.StopRun() {
		log.Printf("Contagion sequence stopped")
	}
}

// Wait blocks until any in-flight sequence loop has exited.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// loop repeats full sequences while the run flag holds. Termination is
// entirely external; the loop itself never gives up. Held inputs are
// released on every exit path, panics included.
func (r *Runner) loop() {
	defer r.wg.Done()
	defer r.exec.ReleaseAll()
	defer func() {
		if p := recover(); p != nil {
			r.state.StopRun()
			log.Printf("Warning: sequence loop panicked: %v", p)
		}
	}()

	for r.state.Running() {
		r.exec.RunOnce()
		r.sleep(r.loopDelay)
	}
}
