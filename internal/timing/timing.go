// Package timing computes the delay table for the contagion sequence and
// provides a high-precision sleep built on a coarse sleep plus spin tail.
package timing

import (
	"math"
	"time"

	"contagion/internal/config"
)

// Values holds the delays derived once at startup from the timing config.
type Values struct {
	// DoubleJump is the inter-jump (and inter-emote) delay: JumpDelayMS / FPS
	DoubleJump time.Duration

	// AimMelee is the delay between pressing aim and pressing melee
	AimMelee time.Duration

	// MeleeHold is how long the melee key is held
	MeleeHold time.Duration

	// EmotePrep is the pause before the emote-cancel presses
	EmotePrep time.Duration

	// EmotePrepClamped reports that the formula went negative and was
	// clamped to zero (configured FPS above the formula's valid range)
	EmotePrepClamped bool

	// RapidFireWindow bounds the in-sequence rapid-fire loop
	RapidFireWindow time.Duration

	// RapidFireClick is the delay between rapid-fire clicks
	RapidFireClick time.Duration

	// SequenceEnd is the delay at the end of each sequence
	SequenceEnd time.Duration

	// Loop is the delay between sequence repetitions
	Loop time.Duration

	// RapidClick is the delay between secondary burst clicks
	RapidClick time.Duration

	// SpinThreshold and Compensation parameterize PreciseSleep
	SpinThreshold time.Duration
	Compensation  time.Duration
}

func ms(v float64) time.Duration {
	return time.Duration(v * float64(time.Millisecond))
}

// Compute derives the delay table from the timing config.
func Compute(t config.Timing) Values {
	v := Values{
		DoubleJump:      ms(t.JumpDelayMS / t.FPS),
		AimMelee:        ms(t.AimMeleeDelayMS),
		MeleeHold:       ms(t.MeleeHoldMS),
		RapidFireWindow: ms(t.RapidFireDurationMS),
		RapidFireClick:  ms(t.RapidFireClickDelayMS),
		SequenceEnd:     ms(t.SequenceEndDelayMS),
		Loop:            ms(t.LoopDelayMS),
		RapidClick:      ms(t.RapidClickDelayMS),
		SpinThreshold:   ms(t.SpinThresholdMS),
		Compensation:    ms(t.SleepCompensationMS),
	}

	if t.UseEmoteFormula {
		// Empirical fit: higher frame rates need less preparation time.
		raw := -26*math.Log(t.FPS) + 245 // milliseconds
		if raw < 0 {
			v.EmotePrep = 0
			v.EmotePrepClamped = true
		} else {
			v.EmotePrep = ms(raw)
		}
	} else {
		v.EmotePrep = ms(t.EmotePrepManualMS)
	}

	return v
}

// Sleep is a PreciseSleep with the Values' spin threshold and compensation.
func (v Values) Sleep(d time.Duration) {
	PreciseSleep(d, v.SpinThreshold, v.Compensation)
}

// PreciseSleep sleeps for d with sub-millisecond accuracy. Delays above
// threshold go through the OS scheduler for d minus compensation, then
// spin out the remainder; shorter delays spin entirely. OS sleep
// granularity is too coarse for the sub-frame delays the sequence
// needs, so the tail burns a core briefly in exchange for accuracy.
func PreciseSleep(d, threshold, compensation time.Duration) {
	if d <= 0 {
		return
	}

	deadline := time.Now().Add(d)

	if d > threshold {
		if coarse := d - compensation; coarse > 0 {
			time.Sleep(coarse)
		}
	}

	for time.Now().Before(deadline) {
	}
}
