package chronon

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jcderner/chronon/engine"
)

func TestSimulationLifecycleThroughRunUntilEmpty(t *testing.T) {
	sim := New(DefaultConfig())
	if sim.State() != engine.Starting {
		t.Fatalf("initial state = %v, want Starting", sim.State())
	}

	var order []string
	err := sim.Init(func(q *engine.Queue) error {
		_, err := engine.NewEvent(q, 0, mustTime(10), func() { order = append(order, "a") })
		if err != nil {
			return err
		}
		_, err = engine.NewEvent(q, 0, mustTime(5), func() { order = append(order, "b") })
		return err
	})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := sim.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sim.State() != engine.Running {
		t.Fatalf("state = %v, want Running", sim.State())
	}

	if err := sim.RunUntilEmpty(); err != nil {
		t.Fatalf("RunUntilEmpty: %v", err)
	}
	if sim.State() != engine.Finished {
		t.Fatalf("state = %v, want Finished", sim.State())
	}
	if sim.Events() != 0 {
		t.Errorf("Events() = %d, want 0", sim.Events())
	}

	want := []string{"b", "a"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("dispatch order mismatch (-want +got):\n%s", diff)
	}
}

func TestSimulationStopRequestsFinishBeforeDraining(t *testing.T) {
	sim := New(DefaultConfig())
	fired := false
	err := sim.Init(func(q *engine.Queue) error {
		_, err := engine.NewEvent(q, 0, mustTime(10), func() { fired = true })
		return err
	})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := sim.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	sim.Stop()
	if err := sim.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if sim.State() != engine.Finished {
		t.Fatalf("state = %v, want Finished", sim.State())
	}
	if fired {
		t.Error("event must not fire once Stop pre-empts the next dispatch")
	}
}

func TestSimulationStepIsNoOpAfterFinished(t *testing.T) {
	sim := New(DefaultConfig())
	if err := sim.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := sim.RunUntilEmpty(); err != nil {
		t.Fatalf("RunUntilEmpty: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := sim.Step(); err != nil {
			t.Fatalf("Step %d after Finished: %v", i, err)
		}
	}
	if sim.State() != engine.Finished {
		t.Fatalf("state = %v, want Finished", sim.State())
	}
}

func mustTime(v float64) engine.Time {
	t, err := engine.NewTime(v)
	if err != nil {
		panic(err)
	}
	return t
}
