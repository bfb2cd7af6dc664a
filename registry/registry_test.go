package registry

import (
	"sort"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	Register("test.Counter", Entry{
		New:   func() any { return 0 },
		Clone: func(v any) any { return v.(int) },
		Equal: func(a, b any) bool { return a.(int) == b.(int) },
	})

	e, ok := Get("test.Counter")
	if !ok {
		t.Fatal("Expected test.Counter to be registered")
	}
	if got := e.New(); got != 0 {
		t.Errorf("Expected default value 0, got %v", got)
	}
	if !e.Equal(e.Clone(7), 7) {
		t.Error("Expected clone of 7 to equal 7")
	}

	if _, ok := Get("test.Missing"); ok {
		t.Error("Expected unregistered name to be absent")
	}
}

func TestRegisterOverwrites(t *testing.T) {
	Register("test.Replaced", Entry{New: func() any { return "old" }})
	Register("test.Replaced", Entry{New: func() any { return "new" }})

	e, _ := Get("test.Replaced")
	if got := e.New(); got != "new" {
		t.Errorf("Expected later registration to win, got %v", got)
	}
}

func TestNames(t *testing.T) {
	Register("test.A", Entry{})
	Register("test.B", Entry{})

	names := Names()
	sort.Strings(names)

	found := 0
	for _, n := range names {
		if n == "test.A" || n == "test.B" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("Expected both registered names present, found %d", found)
	}
}
