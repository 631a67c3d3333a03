/*
Package chronon provides a discrete-event simulation (DES) kernel.

Events are scheduled as parameterless functions due at a virtual-time
offset from a queue's current clock. A Simulation owns a root queue (the
main queue) and dispatches events strictly in (due time, priority,
schedule order); event bodies may schedule, deschedule, suspend or resume
further events, including on queues other than their own.

Queues can be nested: a HierarchicalQueue is itself a queue and also
presents as a single event in its parent, proxying its locally-next active
event upward. Suspending a hierarchical queue removes its entire subtree
from its parent's view at once; resuming it re-anchors its local clock so
every child's remaining time is preserved relative to the resume instant.

The kernel is single-threaded and cooperative: exactly one event body runs
at a time, and the only suspension point is between Step calls. There is no
real-time pacing; Step and RunUntilEmpty advance the virtual clock only as
fast as the caller drives them.
*/
package chronon
