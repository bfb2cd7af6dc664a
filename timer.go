// @focus: #time { timer, countdown }
package frametime

import (
	"math"
	"time"
)

// TimerMode selects the completion behavior of a Timer
type TimerMode uint8

const (
	// TimerOnce finishes exactly once, then discards further deltas
	TimerOnce TimerMode = iota
	// TimerRepeating wraps elapsed time modulo the duration on completion
	TimerRepeating
)

// String returns the mode name used in serialized form
func (m TimerMode) String() string {
	if m == TimerRepeating {
		return "repeating"
	}
	return "once"
}

// Timer counts down a fixed duration driven by caller-supplied deltas
// It wraps a Stopwatch and adds a completion target. Like the stopwatch
// it never samples a clock, carries no locking, and copies freely.
type Timer struct {
	stopwatch Stopwatch
	duration  time.Duration
	mode      TimerMode
	finished  bool

	// Per-tick transient, rewritten by every Tick
	timesFinishedThisTick uint32
}

// NewTimer creates an unpaused timer that finishes after d
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// NewTimerFromSecs creates a timer from a duration in seconds
func NewTimerFromSecs(secs float32, mode TimerMode) Timer {
	return NewTimer(time.Duration(float64(secs) * float64(time.Second)), mode)
}

// RestoreTimer rebuilds a timer from previously captured state
// Used by decoders to reconstruct a timer without re-triggering
// completion: a restored finished timer stays finished and reports no
// new completions.
func RestoreTimer(elapsed, duration time.Duration, mode TimerMode, paused, finished bool) Timer {
	t := NewTimer(duration, mode)
	t.SetElapsed(elapsed)
	if paused {
		t.Pause()
	}
	t.finished = finished
	return t
}

// Tick advances the timer by delta
// A finished non-repeating timer discards the delta entirely. A
// repeating timer wraps its elapsed time modulo the duration and counts
// how many completions the delta produced. Returns the timer for
// chaining.
func (t *Timer) Tick(delta time.Duration) *Timer {
	if t.IsPaused() {
		t.timesFinishedThisTick = 0
		if t.mode == TimerRepeating {
			t.finished = false
		}
		return t
	}

	if t.mode != TimerRepeating && t.finished {
		t.timesFinishedThisTick = 0
		return t
	}

	t.stopwatch.Tick(delta)
	t.finished = t.Elapsed() >= t.duration
	if !t.finished {
		t.timesFinishedThisTick = 0
		return t
	}

	if t.mode == TimerRepeating {
		if t.duration == 0 {
			// Degenerate repeating timer: completes unboundedly often
			t.timesFinishedThisTick = math.MaxUint32
			t.stopwatch.SetElapsed(0)
			return t
		}
		t.timesFinishedThisTick = uint32(t.Elapsed() / t.duration)
		t.stopwatch.SetElapsed(t.Elapsed() % t.duration)
	} else {
		t.timesFinishedThisTick = 1
		t.stopwatch.SetElapsed(t.duration)
	}
	return t
}

// Elapsed returns the time accumulated toward the current completion
func (t *Timer) Elapsed() time.Duration {
	return t.stopwatch.Elapsed()
}

// ElapsedSecs returns the accumulated time in seconds as float32
func (t *Timer) ElapsedSecs() float32 {
	return t.stopwatch.ElapsedSecs()
}

// ElapsedSecsF64 returns the accumulated time in seconds as float64
func (t *Timer) ElapsedSecsF64() float64 {
	return t.stopwatch.ElapsedSecsF64()
}

// SetElapsed overwrites the accumulated time without triggering
// completion; completion state updates on the next Tick
func (t *Timer) SetElapsed(d time.Duration) {
	t.stopwatch.SetElapsed(d)
}

// Duration returns the completion target
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// SetDuration changes the completion target
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

// Mode returns the completion behavior
func (t *Timer) Mode() TimerMode {
	return t.mode
}

// SetMode changes the completion behavior
// A finished non-repeating timer switched to repeating restarts its
// accumulation; it stays finished only if it completed on the current
// tick.
func (t *Timer) SetMode(mode TimerMode) {
	if t.mode != TimerRepeating && mode == TimerRepeating && t.finished {
		t.stopwatch.Reset()
		t.finished = t.JustFinished()
	}
	t.mode = mode
}

// Finished reports whether the timer has reached its duration
// For repeating timers this holds only on ticks where a lap completed.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the timer completed on the most recent
// tick
func (t *Timer) JustFinished() bool {
	return t.timesFinishedThisTick > 0
}

// TimesFinishedThisTick returns how many completions the most recent
// tick produced; a large delta can lap a repeating timer several times
func (t *Timer) TimesFinishedThisTick() uint32 {
	return t.timesFinishedThisTick
}

// Pause stops the timer; ticks while paused are discarded. Idempotent.
func (t *Timer) Pause() {
	t.stopwatch.Pause()
}

// Unpause resumes the timer. Idempotent.
func (t *Timer) Unpause() {
	t.stopwatch.Unpause()
}

// IsPaused reports whether the timer is paused
func (t *Timer) IsPaused() bool {
	return t.stopwatch.IsPaused()
}

// Reset zeroes the elapsed time and clears completion state
// The pause state is preserved.
func (t *Timer) Reset() {
	t.stopwatch.Reset()
	t.finished = false
	t.timesFinishedThisTick = 0
}

// Fraction returns completion progress in [0, 1]
// A zero-duration timer reports 1.
func (t *Timer) Fraction() float32 {
	if t.duration == 0 {
		return 1
	}
	f := float32(t.Elapsed().Seconds() / t.duration.Seconds())
	if f > 1 {
		return 1
	}
	return f
}

// FractionRemaining returns 1 - Fraction
func (t *Timer) FractionRemaining() float32 {
	return 1 - t.Fraction()
}

// Remaining returns the time left until completion, floored at zero
func (t *Timer) Remaining() time.Duration {
	if t.Elapsed() >= t.duration {
		return 0
	}
	return t.duration - t.Elapsed()
}

// RemainingSecs returns the remaining time in seconds as float32
func (t *Timer) RemainingSecs() float32 {
	return float32(t.Remaining().Seconds())
}
