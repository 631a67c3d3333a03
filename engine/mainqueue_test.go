package engine

import "testing"

func must(_ *Event, err error) {
	if err != nil {
		panic(err)
	}
}

func TestDispatchOrderByDueTime(t *testing.T) {
	mq := NewMainQueue()
	q := mq.Queue()
	var order []string
	var clocks []float64

	record := func(name string) Body {
		return func() {
			order = append(order, name)
			clocks = append(clocks, mq.Clock().value())
		}
	}
	must(NewEvent(q, 0, timeFromRaw(10), record("E1")))
	must(NewEvent(q, 0, timeFromRaw(20), record("E2")))
	must(NewEvent(q, 0, timeFromRaw(15), record("E3")))

	for mq.Len() > 0 {
		if err := mq.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	wantOrder := []string{"E1", "E3", "E2"}
	if !equalStrings(order, wantOrder) {
		t.Errorf("order = %v, want %v", order, wantOrder)
	}
	wantClocks := []float64{10, 15, 20}
	if !equalFloats(clocks, wantClocks) {
		t.Errorf("clocks = %v, want %v", clocks, wantClocks)
	}
}

func TestSimultaneousEventsOrderedByPriorityThenFIFO(t *testing.T) {
	mq := NewMainQueue()
	q := mq.Queue()
	var order []string

	must(NewEvent(q, 0, timeFromRaw(10), func() { order = append(order, "A") }))
	must(NewEvent(q, 5, timeFromRaw(10), func() { order = append(order, "B") }))

	for mq.Len() > 0 {
		_ = mq.Step()
	}
	if !equalStrings(order, []string{"B", "A"}) {
		t.Errorf("order = %v, want [B A]", order)
	}
}

func TestPriorityPreemptionFromWithinBody(t *testing.T) {
	mq := NewMainQueue()
	q := mq.Queue()
	var order []string
	var bClock float64

	must(NewEvent(q, 0, timeFromRaw(10), func() {
		order = append(order, "A")
		must(NewEvent(q, 1, Zero, func() {
			order = append(order, "B")
			bClock = mq.Clock().value()
		}))
	}))
	must(NewEvent(q, 0, timeFromRaw(10), func() { order = append(order, "C") }))

	for mq.Len() > 0 {
		_ = mq.Step()
	}
	if !equalStrings(order, []string{"A", "B", "C"}) {
		t.Errorf("order = %v, want [A B C]", order)
	}
	if bClock != 10 {
		t.Errorf("B fired at clock %v, want 10", bClock)
	}
}

func TestOutOfEventsTerminatesCleanly(t *testing.T) {
	mq := NewMainQueue()
	q := mq.Queue()
	fired := 0
	for i := 0; i < 3; i++ {
		must(NewEvent(q, 0, timeFromRaw(float64(i+1)), func() { fired++ }))
	}
	steps := 0
	for {
		err := mq.Step()
		if err == ErrOutOfEvents {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		steps++
	}
	if steps != 3 {
		t.Errorf("steps = %d, want 3", steps)
	}
	if fired != 3 {
		t.Errorf("fired = %d, want 3", fired)
	}
}

func TestClockIsMonotoneNonDecreasing(t *testing.T) {
	mq := NewMainQueue()
	q := mq.Queue()
	must(NewEvent(q, 0, timeFromRaw(5), func() {}))
	must(NewEvent(q, 0, timeFromRaw(5), func() {}))
	must(NewEvent(q, 0, timeFromRaw(20), func() {}))

	last := mq.Clock()
	for mq.Len() > 0 {
		if err := mq.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
		if mq.Clock().Less(last) {
			t.Fatalf("clock went backwards: %v -> %v", last, mq.Clock())
		}
		last = mq.Clock()
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
