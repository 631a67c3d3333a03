package engine

// stateKind is the closed set of event states, represented as a plain tag
// on Event rather than as shared flyweight state objects (see DESIGN.md).
// Dispatch on the state happens via the switch statements in this file and
// in Event's Suspend/Resume/TimeDue/TimeRemaining methods, not via virtual
// calls on a state object.
type stateKind int

const (
	stateDescheduled stateKind = iota
	stateActive
	stateSuspended
	stateDispatching
	stateDispatched
)

var stateNames = map[stateKind]string{
	stateDescheduled: "Descheduled",
	stateActive:      "Active",
	stateSuspended:   "Suspended",
	stateDispatching: "Dispatching",
	stateDispatched:  "Dispatched",
}

func (s stateKind) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// timeDueRemaining is a pure function of state, the event's time field and
// the owning queue's clock, returning (time_due, time_remaining). It
// replaces virtual dispatch on a shared state object with one switch over
// the tag.
func timeDueRemaining(state stateKind, timeField Time, parentClock Time) (due Time, remaining Time) {
	switch state {
	case stateDescheduled:
		return Infinity, Infinity
	case stateActive:
		return timeField, timeField.Sub(parentClock)
	case stateSuspended:
		return Infinity, timeField
	case stateDispatching, stateDispatched:
		return Zero, Zero
	default:
		return Infinity, Infinity
	}
}
