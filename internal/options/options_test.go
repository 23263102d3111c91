package options

import (
	"testing"

	"github.com/san-kum/simopts/internal/geodetic"
)

func TestNewDefaults(t *testing.T) {
	o := New()

	if o.TimeStep() != RecommendedTimeStep {
		t.Errorf("TimeStep() = %v, want %v", o.TimeStep(), RecommendedTimeStep)
	}
	if o.GeodeticComputation() != geodetic.Default {
		t.Errorf("GeodeticComputation() = %v, want %v", o.GeodeticComputation(), geodetic.Default)
	}
	if o.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", o.ListenerCount())
	}
}

func TestResetRunDefaults(t *testing.T) {
	o := New()
	o.SetTimeStep(0.5)
	o.SetGeodeticComputation(geodetic.WGS84)

	var fields []Field
	o.Subscribe(func(c Change) { fields = append(fields, c.Field) })

	o.ResetRunDefaults()

	if o.TimeStep() != RecommendedTimeStep {
		t.Errorf("TimeStep() = %v, want %v", o.TimeStep(), RecommendedTimeStep)
	}
	if o.GeodeticComputation() != geodetic.Spherical {
		t.Errorf("GeodeticComputation() = %v, want spherical", o.GeodeticComputation())
	}
	if len(fields) != 2 || fields[0] != FieldTimeStep || fields[1] != FieldGeodeticComputation {
		t.Errorf("changes = %v, want [time_step geodetic_computation]", fields)
	}
}

func TestListenerSequence(t *testing.T) {
	o := New()
	o.AppendListener("a")
	o.AppendListener("b")
	o.AppendListener("a")

	if got := o.Listeners(); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "a" {
		t.Fatalf("Listeners() = %v, want [a b a]", got)
	}

	if !o.RemoveListenerAt(1) {
		t.Fatal("RemoveListenerAt(1) = false, want true")
	}
	if o.RemoveListenerAt(5) {
		t.Error("RemoveListenerAt(5) = true, want false")
	}
	if id, ok := o.ListenerAt(1); !ok || id != "a" {
		t.Errorf("ListenerAt(1) = %q, %v, want a, true", id, ok)
	}
	if _, ok := o.ListenerAt(-1); ok {
		t.Error("ListenerAt(-1) reported present")
	}
}

func TestListenersReturnsCopy(t *testing.T) {
	o := New()
	o.AppendListener("a")

	got := o.Listeners()
	got[0] = "mutated"

	if id, _ := o.ListenerAt(0); id != "a" {
		t.Errorf("ListenerAt(0) = %q after mutating copy, want a", id)
	}
}

func TestSubscribeCancel(t *testing.T) {
	o := New()
	count := 0
	cancel := o.Subscribe(func(Change) { count++ })

	o.SetTimeStep(0.02)
	cancel()
	o.SetTimeStep(0.03)

	if count != 1 {
		t.Errorf("notifications = %d, want 1", count)
	}
}

func TestSimulationSharesOptions(t *testing.T) {
	sim := NewSimulation("flight")
	sim.Options().SetTimeStep(0.002)

	if sim.Options().TimeStep() != 0.002 {
		t.Errorf("TimeStep() = %v, want 0.002", sim.Options().TimeStep())
	}

	wrapped := WithOptions("nil", nil)
	if wrapped.Options() == nil {
		t.Error("WithOptions(nil) returned nil options")
	}
}
