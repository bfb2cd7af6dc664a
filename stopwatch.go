// @focus: #time { stopwatch }
package frametime

import (
	"math"
	"time"
)

// maxDuration is the saturation ceiling for accumulated time
const maxDuration = time.Duration(math.MaxInt64)

// Stopwatch accumulates time from caller-supplied deltas
// It never samples a clock: the owner calls Tick once per update cycle
// with the frame's elapsed delta. While paused, Tick leaves the
// accumulated time untouched.
//
// Plain value semantics: copying a Stopwatch produces an independent
// accumulator. No internal locking; concurrent mutation requires
// external synchronization by the owner.
type Stopwatch struct {
	elapsed  time.Duration
	isPaused bool
}

// NewStopwatch creates an unpaused stopwatch with no elapsed time
// The zero value is equivalent and ready to use.
func NewStopwatch() Stopwatch {
	return Stopwatch{}
}

// Elapsed returns the time accumulated since the last Reset
func (sw *Stopwatch) Elapsed() time.Duration {
	return sw.elapsed
}

// ElapsedSecs returns the accumulated time in seconds as float32
// Converted fresh from the stored duration on every call, so rounding
// error never accumulates across calls.
func (sw *Stopwatch) ElapsedSecs() float32 {
	return float32(sw.elapsed.Seconds())
}

// ElapsedSecsF64 returns the accumulated time in seconds as float64
func (sw *Stopwatch) ElapsedSecsF64() float64 {
	return sw.elapsed.Seconds()
}

// SetElapsed overwrites the accumulated time, regardless of pause state
// Negative input clamps to zero; elapsed never goes negative.
func (sw *Stopwatch) SetElapsed(d time.Duration) {
	if d < 0 {
		d = 0
	}
	sw.elapsed = d
}

// Tick advances the stopwatch by delta
// A paused stopwatch ignores the delta. Accumulation saturates at the
// maximum representable duration instead of wrapping. Returns the
// stopwatch for chaining.
func (sw *Stopwatch) Tick(delta time.Duration) *Stopwatch {
	if !sw.isPaused {
		sw.elapsed = saturatingAdd(sw.elapsed, delta)
	}
	return sw
}

// Pause stops accumulation: any Tick while paused has no effect on the
// elapsed time. Idempotent.
func (sw *Stopwatch) Pause() {
	sw.isPaused = true
}

// Unpause resumes the effect of Tick on elapsed time. Idempotent.
func (sw *Stopwatch) Unpause() {
	sw.isPaused = false
}

// IsPaused reports whether the stopwatch is paused
func (sw *Stopwatch) IsPaused() bool {
	return sw.isPaused
}

// Reset zeroes the accumulated time. The pause state is preserved.
func (sw *Stopwatch) Reset() {
	sw.elapsed = 0
}

// saturatingAdd clamps the sum to [0, maxDuration]
// time.Duration is signed, so both overflow past the maximum and a
// negative result are representable; neither may escape into elapsed.
func saturatingAdd(a, b time.Duration) time.Duration {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return maxDuration
	case b < 0 && sum > a:
		return 0
	case sum < 0:
		return 0
	}
	return sum
}
