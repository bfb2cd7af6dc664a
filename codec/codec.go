// @focus: #persist { snapshot, json, yaml }
package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/frametime"
)

// DurationRecord is the serialized form of a duration: whole seconds
// plus the sub-second remainder in nanoseconds (always < 1e9)
type DurationRecord struct {
	Secs  int64  `json:"secs" yaml:"secs"`
	Nanos uint32 `json:"nanos" yaml:"nanos"`
}

// StopwatchRecord is the serialized form of a Stopwatch: exactly the
// elapsed duration and the paused flag, in that order
type StopwatchRecord struct {
	Elapsed  DurationRecord `json:"elapsed" yaml:"elapsed"`
	IsPaused bool           `json:"is_paused" yaml:"is_paused"`
}

// TimerRecord is the serialized form of a Timer
// The finished flag is persisted so a completed once-timer does not
// re-fire after decode; the per-tick completion count is transient and
// not persisted.
type TimerRecord struct {
	Stopwatch StopwatchRecord `json:"stopwatch" yaml:"stopwatch"`
	Duration  DurationRecord  `json:"duration" yaml:"duration"`
	Mode      string          `json:"mode" yaml:"mode"`
	Finished  bool            `json:"finished" yaml:"finished"`
}

// SnapshotDuration splits d into its record form
func SnapshotDuration(d time.Duration) DurationRecord {
	if d < 0 {
		d = 0
	}
	return DurationRecord{
		Secs:  int64(d / time.Second),
		Nanos: uint32(d % time.Second),
	}
}

// Duration reassembles the record, saturating at the representable
// range so a hand-edited record cannot smuggle in an overflow
func (r DurationRecord) Duration() time.Duration {
	const maxSecs = math.MaxInt64 / int64(time.Second)
	if r.Secs < 0 {
		return 0
	}
	if r.Secs > maxSecs {
		return time.Duration(math.MaxInt64)
	}
	d := time.Duration(r.Secs) * time.Second
	rem := time.Duration(math.MaxInt64) - d
	if n := time.Duration(r.Nanos); n <= rem {
		d += n
	} else {
		d = time.Duration(math.MaxInt64)
	}
	return d
}

// SnapshotStopwatch captures sw into its record form
func SnapshotStopwatch(sw frametime.Stopwatch) StopwatchRecord {
	return StopwatchRecord{
		Elapsed:  SnapshotDuration(sw.Elapsed()),
		IsPaused: sw.IsPaused(),
	}
}

// Stopwatch rebuilds a stopwatch equal to the snapshotted one
func (r StopwatchRecord) Stopwatch() frametime.Stopwatch {
	sw := frametime.NewStopwatch()
	sw.SetElapsed(r.Elapsed.Duration())
	if r.IsPaused {
		sw.Pause()
	}
	return sw
}

// SnapshotTimer captures t into its record form
func SnapshotTimer(t frametime.Timer) TimerRecord {
	return TimerRecord{
		Stopwatch: StopwatchRecord{
			Elapsed:  SnapshotDuration(t.Elapsed()),
			IsPaused: t.IsPaused(),
		},
		Duration: SnapshotDuration(t.Duration()),
		Mode:     t.Mode().String(),
		Finished: t.Finished(),
	}
}

// Timer rebuilds a timer from its record form
// A finished timer decodes as finished and does not report a fresh
// completion. An unknown mode string is an error.
func (r TimerRecord) Timer() (frametime.Timer, error) {
	var mode frametime.TimerMode
	switch r.Mode {
	case "once":
		mode = frametime.TimerOnce
	case "repeating":
		mode = frametime.TimerRepeating
	default:
		return frametime.Timer{}, fmt.Errorf("codec: unknown timer mode %q", r.Mode)
	}

	return frametime.RestoreTimer(
		r.Stopwatch.Elapsed.Duration(),
		r.Duration.Duration(),
		mode,
		r.Stopwatch.IsPaused,
		r.Finished,
	), nil
}

// MarshalStopwatchJSON encodes sw as a JSON record
func MarshalStopwatchJSON(sw frametime.Stopwatch) ([]byte, error) {
	return json.Marshal(SnapshotStopwatch(sw))
}

// UnmarshalStopwatchJSON decodes a JSON record into a stopwatch
func UnmarshalStopwatchJSON(data []byte) (frametime.Stopwatch, error) {
	var r StopwatchRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return frametime.Stopwatch{}, fmt.Errorf("codec: decode stopwatch: %w", err)
	}
	return r.Stopwatch(), nil
}

// MarshalStopwatchYAML encodes sw as a YAML record
func MarshalStopwatchYAML(sw frametime.Stopwatch) ([]byte, error) {
	return yaml.Marshal(SnapshotStopwatch(sw))
}

// UnmarshalStopwatchYAML decodes a YAML record into a stopwatch
func UnmarshalStopwatchYAML(data []byte) (frametime.Stopwatch, error) {
	var r StopwatchRecord
	if err := yaml.Unmarshal(data, &r); err != nil {
		return frametime.Stopwatch{}, fmt.Errorf("codec: decode stopwatch: %w", err)
	}
	return r.Stopwatch(), nil
}

// MarshalTimerJSON encodes t as a JSON record
func MarshalTimerJSON(t frametime.Timer) ([]byte, error) {
	return json.Marshal(SnapshotTimer(t))
}

// UnmarshalTimerJSON decodes a JSON record into a timer
func UnmarshalTimerJSON(data []byte) (frametime.Timer, error) {
	var r TimerRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return frametime.Timer{}, fmt.Errorf("codec: decode timer: %w", err)
	}
	return r.Timer()
}

// MarshalTimerYAML encodes t as a YAML record
func MarshalTimerYAML(t frametime.Timer) ([]byte, error) {
	return yaml.Marshal(SnapshotTimer(t))
}

// UnmarshalTimerYAML decodes a YAML record into a timer
func UnmarshalTimerYAML(data []byte) (frametime.Timer, error) {
	var r TimerRecord
	if err := yaml.Unmarshal(data, &r); err != nil {
		return frametime.Timer{}, fmt.Errorf("codec: decode timer: %w", err)
	}
	return r.Timer()
}
