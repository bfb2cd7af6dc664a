package frametime

import "github.com/lixenwraith/frametime/registry"

// Registration is metadata only; neither type depends on the registry
// for any of its operations.
func init() {
	registry.Register("frametime.Stopwatch", registry.Entry{
		New:   func() any { return NewStopwatch() },
		Clone: func(v any) any { return v.(Stopwatch) },
		Equal: func(a, b any) bool { return a.(Stopwatch) == b.(Stopwatch) },
	})
	registry.Register("frametime.Timer", registry.Entry{
		New:   func() any { return Timer{} },
		Clone: func(v any) any { return v.(Timer) },
		Equal: func(a, b any) bool { return a.(Timer) == b.(Timer) },
	})
}
