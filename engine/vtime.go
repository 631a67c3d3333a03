// Package engine implements the discrete-event simulation kernel: virtual
// time, the event state machine, priority-ordered queues, hierarchical
// queue proxying, the root dispatcher and the simulation life-cycle.
package engine

import (
	"fmt"
	"math"

	"github.com/jcderner/chronon/internal/i18n"
)

// Time is a non-negative virtual-time scalar with a distinguished positive
// infinity value. It is consumed as an opaque scalar with linear arithmetic;
// the engine never interprets it as wall-clock time.
type Time struct {
	v float64
}

// Zero is the virtual-time origin.
var Zero = Time{v: 0}

// Infinity is the distinguished +Inf sentinel used for Descheduled and
// Suspended due times.
var Infinity = Time{v: math.Inf(1)}

// NewTime constructs a Time from a non-negative scalar. A negative or NaN
// value is a contract violation and is fatal to the engine.
func NewTime(v float64) (Time, error) {
	if math.IsNaN(v) {
		return Time{}, newContractViolation(keyNegativeOrNaNTime, "NaN")
	}
	if v < 0 {
		return Time{}, newContractViolation(keyNegativeOrNaNTime, fmt.Sprintf("%v", v))
	}
	return Time{v: v}, nil
}

// timeFromRaw builds a Time from a value the engine has already proven
// non-negative through its own arithmetic (e.g. a due time composed from a
// non-negative clock and a non-negative offset). It skips validation and
// must never be used on a value that can be negative by construction.
func timeFromRaw(v float64) Time {
	return Time{v: v}
}

// IsInfinite reports whether t is the +Inf sentinel.
func (t Time) IsInfinite() bool {
	return math.IsInf(t.v, 1)
}

// value returns the underlying scalar for internal arithmetic that must
// escape the non-negative invariant (epoch bookkeeping in a hierarchical
// queue, see hierarchy.go).
func (t Time) value() float64 {
	return t.v
}

// Add returns t + d.
func (t Time) Add(d Time) Time {
	if t.IsInfinite() || d.IsInfinite() {
		return Infinity
	}
	return timeFromRaw(t.v + d.v)
}

// Sub returns t - d. Subtracting +Inf is unspecified by the engine's
// external contract and must never be requested of it; doing so anyway is
// a contract violation rather than a silently wrong answer.
func (t Time) Sub(d Time) Time {
	if d.IsInfinite() {
		panic(newContractViolation(keyNegativeOrNaNTime, "subtraction of +Inf"))
	}
	if t.IsInfinite() {
		return Infinity
	}
	return timeFromRaw(t.v - d.v)
}

// Less reports whether t occurs strictly before o.
func (t Time) Less(o Time) bool {
	return t.v < o.v
}

// Equal reports whether t and o denote the same instant.
func (t Time) Equal(o Time) bool {
	return t.v == o.v
}

// Min returns the earlier of a and b.
func Min(a, b Time) Time {
	if a.Less(b) {
		return a
	}
	return b
}

func (t Time) String() string {
	if t.IsInfinite() {
		return i18n.Format("infinitySymbol")
	}
	return fmt.Sprintf("%g", t.v)
}
