package registry

import "sync"

// Entry describes the introspection capabilities of a registered type
// All funcs operate on boxed values; capabilities are metadata only and
// carry no behavioral weight for the type itself.
type Entry struct {
	// New default-constructs a value of the type
	New func() any
	// Clone produces an independent copy of v
	Clone func(v any) any
	// Equal reports whether a and b hold equal values
	Equal func(a, b any) bool
}

var (
	typesMu sync.RWMutex
	types   = make(map[string]Entry)
)

// Register adds a type entry by name
func Register(name string, e Entry) {
	typesMu.Lock()
	defer typesMu.Unlock()
	types[name] = e
}

// Get retrieves a type entry by name
func Get(name string) (Entry, bool) {
	typesMu.RLock()
	defer typesMu.RUnlock()
	e, ok := types[name]
	return e, ok
}

// Names returns all registered type names
func Names() []string {
	typesMu.RLock()
	defer typesMu.RUnlock()
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	return names
}
