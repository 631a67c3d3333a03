package engine

import (
	"container/heap"

	"github.com/google/uuid"
)

// Queue is an abstract ordered set of Active events keyed by (time-due,
// priority, arrival stamp), a container/heap-backed EventQueue generalized
// with the hook protocol a HierarchicalQueue needs.
type Queue struct {
	id    uuid.UUID
	name  string
	items eventHeap
	seq   uint64
	now   func() Time

	// onHeadChange is invoked after any mutation that can change which
	// event is the head (Schedule, Deschedule, requeue). It is nil for
	// plain (non-hierarchical) queues.
	onHeadChange func()

	// owningHierarchy is non-nil when this Queue is the local (as_queue)
	// capability of a HierarchicalQueue; used only for cycle detection at
	// construction time.
	owningHierarchy *HierarchicalQueue
}

// newQueue builds a Queue whose current virtual time is supplied by now.
// The MainQueue supplies its own mutable clock; a HierarchicalQueue's local
// queue supplies parent-clock-minus-epoch (see hierarchy.go).
func newQueue(name string, now func() Time) *Queue {
	return newQueueWithCapacity(name, now, 0)
}

// newQueueWithCapacity is newQueue with a pre-allocation hint for the
// backing slice, so a caller who knows roughly how many events a queue
// will hold can avoid repeated slice growth.
func newQueueWithCapacity(name string, now func() Time, capacityHint int) *Queue {
	q := &Queue{id: uuid.New(), name: name, now: now, items: make(eventHeap, 0, capacityHint)}
	heap.Init(&q.items)
	return q
}

// Clock returns the queue's current virtual time.
func (q *Queue) Clock() Time { return q.now() }

// Len returns the number of Active events currently held.
func (q *Queue) Len() int { return q.items.Len() }

// PeekNext returns the event with the minimal (time-due, priority, stamp)
// key, or ok=false if the queue is empty. It performs no mutation.
func (q *Queue) PeekNext() (e *Event, ok bool) {
	if q.items.Len() == 0 {
		return nil, false
	}
	return q.items[0], true
}

// Schedule inserts e, which must be owned by q and currently Descheduled.
func (q *Queue) Schedule(e *Event) error {
	if e.owner != q {
		return newContractViolation(keyEventNotSchedulable, e.id.String())
	}
	if e.state != stateDescheduled {
		return newContractViolation(keyEventAlreadyQueued, e.id.String())
	}
	q.insert(e)
	e.state = stateActive
	return nil
}

// Deschedule explicitly removes e, which must be owned by q and currently
// Active, without marking it dispatched. It may be re-scheduled later.
func (q *Queue) Deschedule(e *Event) error {
	if e.owner != q || e.state != stateActive {
		return newContractViolation(keyEventNotDescheduled, e.id.String())
	}
	q.remove(e)
	e.state = stateDescheduled
	return nil
}

// insert pushes e onto the heap and stamps it with the next arrival
// sequence number, without touching e.state. Used both by Schedule and by
// Event.Resume, which transitions Suspended straight back into the active
// set.
func (q *Queue) insert(e *Event) {
	q.seq++
	e.stamp = q.seq
	heap.Push(&q.items, e)
	if q.onHeadChange != nil {
		q.onHeadChange()
	}
}

// remove pops e out of the heap without touching e.state. Used both by
// Deschedule and by Event.Suspend, which removes an Active event from its
// queue without marking it Descheduled.
func (q *Queue) remove(e *Event) {
	heap.Remove(&q.items, e.heapIdx)
	if q.onHeadChange != nil {
		q.onHeadChange()
	}
}

// requeue re-keys an already-Active event in place, used when a
// hierarchical queue's locally-next due time moves without the set of
// active events changing.
func (q *Queue) requeue(e *Event, newTime Time) error {
	if e.owner != q || e.state != stateActive {
		return newContractViolation(keyEventNotSchedulable, e.id.String())
	}
	e.time = newTime
	heap.Fix(&q.items, e.heapIdx)
	if q.onHeadChange != nil {
		q.onHeadChange()
	}
	return nil
}

// eventHeap is the container/heap backing store. Unlike a queue that only
// ever pops the head, this variant tracks each event's index so that
// suspend/resume and hierarchical re-keying can remove or fix an arbitrary
// element in O(log n), not just the head.
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if !h[i].time.Equal(h[j].time) {
		return h[i].time.Less(h[j].time)
	}
	if h[i].prio != h[j].prio {
		return h[i].prio > h[j].prio // higher priority wins
	}
	return h[i].stamp < h[j].stamp // FIFO tie-break
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIdx = i
	h[j].heapIdx = j
}

func (h *eventHeap) Push(x interface{}) {
	e := x.(*Event)
	e.heapIdx = len(*h)
	*h = append(*h, e)
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.heapIdx = -1
	*h = old[:n-1]
	return e
}
