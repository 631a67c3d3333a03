package engine

// MainQueue is the root of the queue hierarchy: a queue with no parent,
// whose clock is the simulation's virtual clock. Step unwraps hierarchical
// proxies to find the concrete event due next, advances the clock to its
// due time, and executes its body.
type MainQueue struct {
	root  *Queue
	clock Time
}

// NewMainQueue creates an empty main queue with its clock at Zero.
func NewMainQueue() *MainQueue {
	return NewMainQueueWithCapacity(0)
}

// NewMainQueueWithCapacity is NewMainQueue with a hint for how many
// top-level events/proxies the root queue should be able to hold without
// reallocating, generalizing a constructor's buffered-channel-size argument
// into a slice pre-allocation hint.
func NewMainQueueWithCapacity(capacityHint int) *MainQueue {
	mq := &MainQueue{clock: Zero}
	mq.root = newQueueWithCapacity("main", mq.Clock, capacityHint)
	return mq
}

// Clock returns the simulation's current virtual time.
func (mq *MainQueue) Clock() Time { return mq.clock }

// Queue returns the root queue handle that client code schedules top-level
// events and hierarchical queues onto.
func (mq *MainQueue) Queue() *Queue { return mq.root }

// Len reports how many top-level active events/proxies the main queue
// currently holds.
func (mq *MainQueue) Len() int { return mq.root.Len() }

// Step executes exactly one dispatch cycle:
//  1. If MainQueue is empty, it returns ErrOutOfEvents (caught internally by
//     the Simulation driver, never surfaced past it).
//  2. It peeks the head, without removing it yet.
//  3. It recursively unwraps any hierarchical-queue proxies to the concrete
//     leaf event that will actually run.
//  4. It advances the clock to that event's due time (monotonic:
//     non-decreasing, ties allowed for simultaneous events).
//  5. It marks the concrete event Dispatching, runs its body, then marks it
//     Dispatched.
//
// Descheduling the concrete event from its immediate owner cascades upward
// through every ancestor HierarchicalQueue's head-change hook
// automatically, eventually removing the top-level proxy from the main
// queue itself. See Queue.requeue/remove and
// HierarchicalQueue.handleHeadChange.
func (mq *MainQueue) Step() error {
	head, ok := mq.root.PeekNext()
	if !ok {
		return ErrOutOfEvents
	}
	concrete := head.ActualEvent()
	mq.clock = head.TimeDue()
	if err := concrete.owner.Deschedule(concrete); err != nil {
		return err
	}
	concrete.state = stateDispatching
	concrete.body()
	concrete.state = stateDispatched
	return nil
}
