package engine

import "github.com/google/uuid"

// HierarchicalQueue is a queue that also presents as a single event in a
// parent queue: it proxies its locally-next active event into the parent,
// keeping the parent's view consistent as children are scheduled,
// descheduled, suspended and resumed. It is expressed as composition, an
// explicit {as_event, as_queue} capability pair, rather than as
// inheritance: local is the as_queue capability, proxy is the as_event
// capability.
type HierarchicalQueue struct {
	local  *Queue
	proxy  *Event
	parent *Queue

	// epoch is the affine offset between the parent's clock and this
	// queue's local clock: clock_local = clock_parent - epoch. It is a
	// plain scalar, not a Time, because intermediate bookkeeping values
	// can transiently be negative even though every clock_local it
	// eventually produces is non-negative.
	epoch float64

	// suspendedAt records the parent clock at the moment of the most
	// recent Active→Suspended transition, needed to compute the epoch
	// shift on resume (see handleResume).
	suspendedAt Time
}

// NewHierarchicalQueue creates a hierarchical queue anchored to parent at
// parent's current clock. It starts Descheduled (absent from parent) until
// its first child is scheduled.
func NewHierarchicalQueue(parent *Queue, priority int) (*HierarchicalQueue, error) {
	if parent == nil {
		return nil, newInvalidArgument(keyEventNotSchedulable, "nil parent")
	}
	h := &HierarchicalQueue{parent: parent}
	if err := checkNoCycle(parent, h); err != nil {
		return nil, err
	}
	h.epoch = parent.Clock().value()
	h.proxy = &Event{
		id:    uuid.New(),
		owner: parent,
		prio:  priority,
		state: stateDescheduled,
	}
	h.proxy.hierarchy = h
	h.proxy.onSuspend = h.handleSuspend
	h.proxy.onResume = h.handleResume
	h.local = newQueue("hierarchical", h.localNow)
	h.local.onHeadChange = h.handleHeadChange
	h.local.owningHierarchy = h
	return h, nil
}

// checkNoCycle rejects constructing a hierarchical queue whose own proxy
// would (directly or transitively) become its own ancestor. The only way
// that can happen is if parent's chain of owning hierarchical queues
// already contains a queue built from the same local queue, which cannot
// occur for a freshly constructed h; this guards future callers who might
// thread an existing queue's AsQueue() back in as someone's parent.
func checkNoCycle(parent *Queue, h *HierarchicalQueue) error {
	seen := map[*Queue]bool{}
	for q := parent; q != nil; {
		if seen[q] {
			return newInvalidArgument(keyQueueCycle, q.name)
		}
		seen[q] = true
		// Walk up through the proxy event that owns q, if any: q is
		// itself the local queue of some ancestor HierarchicalQueue.
		owner := q.owningHierarchy
		if owner == nil {
			break
		}
		q = owner.parent
	}
	return nil
}

func (h *HierarchicalQueue) localNow() Time {
	return timeFromRaw(h.parent.Clock().value() - h.epoch)
}

func (h *HierarchicalQueue) timeDueInParent(localHead *Event) Time {
	return timeFromRaw(localHead.time.value() + h.epoch)
}

// AsQueue exposes the as_queue capability: schedule child events on this.
func (h *HierarchicalQueue) AsQueue() *Queue { return h.local }

// AsEvent exposes the as_event capability: the proxy seen by the parent.
func (h *HierarchicalQueue) AsEvent() *Event { return h.proxy }

// Suspend suspends the whole hierarchical queue: while suspended, no child
// is reachable from the parent (and therefore never dispatched), no matter
// how far the parent's clock advances.
func (h *HierarchicalQueue) Suspend() (bool, error) { return h.proxy.Suspend() }

// Resume resumes a previously suspended hierarchical queue, re-anchoring
// its local clock so that every child's remaining time, as observed before
// suspension, is preserved relative to the resume instant.
func (h *HierarchicalQueue) Resume() (bool, error) { return h.proxy.Resume() }

// handleHeadChange is the single head-change observation standing in for
// separate on-schedule/on-deschedule hooks: whatever just happened to
// local (a child scheduled, descheduled, suspended, resumed or re-keyed),
// bring the proxy's presence and key in parent back in sync with local's
// current head.
func (h *HierarchicalQueue) handleHeadChange() {
	head, ok := h.local.PeekNext()
	if !ok {
		if h.proxy.state == stateActive {
			_ = h.parent.Deschedule(h.proxy)
		}
		return
	}
	due := h.timeDueInParent(head)
	switch h.proxy.state {
	case stateActive:
		_ = h.parent.requeue(h.proxy, due)
	case stateDescheduled:
		h.proxy.time = due
		_ = h.parent.Schedule(h.proxy)
	default:
		// Suspended (or mid-dispatch): a child scheduled now waits on this
		// queue and must not surface in parent until Resume reinstates the
		// proxy.
	}
}

// handleSuspend records the parent-clock instant at which this hierarchical
// queue left its parent's active set, so handleResume can compute how much
// parent-clock time passed while suspended.
func (h *HierarchicalQueue) handleSuspend(parentClockAtSuspend Time) error {
	h.suspendedAt = parentClockAtSuspend
	return nil
}

// handleResume re-anchors the local clock: epoch += (resume_instant -
// suspend_instant). This keeps every child's own absolute local due time
// untouched while making the translated parent-frame due time land
// exactly resume_instant + residual, which is what Event.Resume already
// reconstructs for the proxy itself.
func (h *HierarchicalQueue) handleResume(parentClockAtResume Time) error {
	if parentClockAtResume.Less(h.suspendedAt) {
		return newContractViolation(keyClockWentBackwards, h.local.name)
	}
	h.epoch += parentClockAtResume.value() - h.suspendedAt.value()
	return nil
}
