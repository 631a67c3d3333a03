package engine

import (
	"github.com/google/uuid"
)

// Body is the parameterless function a concrete event executes when
// dispatched. It may schedule, deschedule, suspend or resume any event on
// any queue, including queues other than its own owner.
type Body func()

// Event is the entity scheduled in a Queue. It carries priority, a time
// field whose interpretation depends on state (see the §3 table in
// state.go), a suspension counter, a reference to its owning queue and a
// state tag.
//
// A HierarchicalQueue is also an Event: its proxy view is represented by
// setting hierarchy on the Event that the queue publishes as its "as_event"
// capability (see hierarchy.go). That keeps the proxy-is-a-queue relation
// as composition, per DESIGN.md, rather than as inheritance.
type Event struct {
	id    uuid.UUID
	owner *Queue
	prio  int
	time  Time
	susp  Counter
	state stateKind
	stamp uint64
	heapIdx int
	body  Body

	// hierarchy is non-nil exactly when this Event is the proxy view of a
	// HierarchicalQueue; nil for ordinary leaf events.
	hierarchy *HierarchicalQueue

	// onSuspend/onResume let a proxy event (see hierarchy.go) piggyback
	// its own epoch bookkeeping onto the generic suspend/resume
	// mechanics below, without leaking hierarchy concerns into Suspend
	// and Resume's core logic.
	onSuspend func(parentClockAtSuspend Time) error
	onResume  func(parentClockAtResume Time) error
}

// NewEvent constructs a concrete event owned by owner, due dueOffset after
// owner's current clock, and immediately schedules it: concrete events are
// constructed by scheduling rather than created Descheduled.
func NewEvent(owner *Queue, priority int, dueOffset Time, body Body) (*Event, error) {
	if owner == nil {
		return nil, newInvalidArgument(keyEventNotSchedulable, "nil owner")
	}
	if body == nil {
		return nil, newInvalidArgument(keyEventNotSchedulable, "nil body")
	}
	e := &Event{
		id:    uuid.New(),
		owner: owner,
		prio:  priority,
		state: stateDescheduled,
		body:  body,
	}
	e.time = owner.Clock().Add(dueOffset)
	if err := owner.Schedule(e); err != nil {
		return nil, err
	}
	return e, nil
}

// ID returns the event's diagnostic correlation identifier. It plays no
// part in ordering or equality.
func (e *Event) ID() uuid.UUID { return e.id }

// Priority returns the event's priority; higher values win ties on due
// time.
func (e *Event) Priority() int { return e.prio }

// Owner returns the queue that currently holds (or last held, while
// Suspended) this event.
func (e *Event) Owner() *Queue { return e.owner }

// State reports the event's current state.
func (e *Event) State() string { return e.state.String() }

// TimeDue returns the event's due time as observed from its owner's clock,
// per the §3 table.
func (e *Event) TimeDue() Time {
	due, _ := timeDueRemaining(e.state, e.time, e.owner.Clock())
	return due
}

// TimeRemaining returns the time left until dispatch as observed from its
// owner's clock, per the §3 table.
func (e *Event) TimeRemaining() Time {
	_, remaining := timeDueRemaining(e.state, e.time, e.owner.Clock())
	return remaining
}

// ActualEvent recursively unwraps hierarchical-queue proxies to the
// concrete leaf event that will actually execute a body.
func (e *Event) ActualEvent() *Event {
	if e.hierarchy == nil {
		return e
	}
	head, ok := e.hierarchy.local.PeekNext()
	if !ok {
		return e
	}
	return head.ActualEvent()
}

// Suspend increments the suspension counter. It returns true when this
// call caused the Active→Suspended transition (the event left its owner's
// active set), false when it only deepened an already-Suspended counter.
func (e *Event) Suspend() (bool, error) {
	switch e.state {
	case stateActive:
		e.susp.Inc()
		clock := e.owner.Clock()
		residual := e.time.Sub(clock)
		if e.onSuspend != nil {
			if err := e.onSuspend(clock); err != nil {
				return false, err
			}
		}
		e.owner.remove(e)
		e.time = residual
		e.state = stateSuspended
		return true, nil
	case stateSuspended:
		e.susp.Inc()
		return false, nil
	default:
		return false, newContractViolation(keyEventNotSuspendable, e.state.String())
	}
}

// Resume decrements the suspension counter. It returns true when the
// counter returned to empty, causing the Suspended→Active transition (the
// event re-enters its owner's active set at its reconstructed absolute due
// time); false when the counter remains non-empty.
func (e *Event) Resume() (bool, error) {
	if e.state != stateSuspended {
		return false, newContractViolation(keyEventNotResumable, e.state.String())
	}
	if err := e.susp.Dec(); err != nil {
		return false, err
	}
	if !e.susp.Empty() {
		return false, nil
	}
	clock := e.owner.Clock()
	if e.onResume != nil {
		if err := e.onResume(clock); err != nil {
			return false, err
		}
	}
	e.time = clock.Add(e.time)
	e.state = stateActive
	e.owner.insert(e)
	return true, nil
}

// Deschedule explicitly cancels the event, leaving it Descheduled and
// re-schedulable. It is available regardless of whether the event is
// Active or Suspended: an Active event goes through its owner's heap, the
// same path Queue.Deschedule always used; a Suspended event already left
// that heap when it was suspended, so cancelling it is just dropping the
// suspension counter and retiring the state without ever resuming it.
func (e *Event) Deschedule() error {
	if e.state == stateSuspended {
		e.susp = Counter{}
		e.state = stateDescheduled
		return nil
	}
	return e.owner.Deschedule(e)
}

// IsSuspended reports whether the event is currently parked awaiting a
// balancing Resume.
func (e *Event) IsSuspended() bool { return e.state == stateSuspended }

// SuspendDepth exposes the current suspension nesting depth, mainly for
// tests and diagnostics.
func (e *Event) SuspendDepth() uint64 { return e.susp.Count() }
