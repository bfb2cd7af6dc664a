package frametime

import (
	"testing"
	"time"

	"github.com/lixenwraith/frametime/registry"
)

func TestRegisteredCapabilities(t *testing.T) {
	tests := []struct {
		name string
	}{
		{"frametime.Stopwatch"},
		{"frametime.Timer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := registry.Get(tt.name)
			if !ok {
				t.Fatalf("Expected %s to be registered", tt.name)
			}
			if e.New == nil || e.Clone == nil || e.Equal == nil {
				t.Fatal("Expected all three capabilities to be present")
			}

			v := e.New()
			if !e.Equal(v, e.New()) {
				t.Error("Expected default-constructed values to be equal")
			}
			if !e.Equal(v, e.Clone(v)) {
				t.Error("Expected clone to equal its source")
			}
		})
	}
}

func TestRegisteredStopwatchCloneIsIndependent(t *testing.T) {
	e, ok := registry.Get("frametime.Stopwatch")
	if !ok {
		t.Fatal("Expected frametime.Stopwatch to be registered")
	}

	sw := NewStopwatch()
	sw.Tick(time.Second)

	clone := e.Clone(sw).(Stopwatch)
	clone.Tick(time.Second)

	if sw.Elapsed() != time.Second {
		t.Errorf("Expected original to stay at 1s, got %v", sw.Elapsed())
	}
	if clone.Elapsed() != 2*time.Second {
		t.Errorf("Expected clone to reach 2s, got %v", clone.Elapsed())
	}
	if e.Equal(sw, clone) {
		t.Error("Expected diverged clone to compare unequal")
	}
}
