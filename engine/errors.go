package engine

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/jcderner/chronon/internal/i18n"
)

// Localization keys referenced by the engine's error paths.
const (
	keyEventNotResumable    = "eventNotResumable"
	keyEventNotSuspendable  = "eventNotSuspendable"
	keyOutOfEvents          = "outOfEvents"
	keyEventNotSchedulable  = "eventNotSchedulable"
	keyEventAlreadyQueued   = "eventAlreadyScheduled"
	keyEventNotDescheduled  = "eventNotDescheduled"
	keyCounterUnderflow     = "counterUnderflow"
	keyNegativeOrNaNTime    = "negativeOrNaNTime"
	keyQueueCycle           = "queueCycle"
	keyClockWentBackwards   = "clockWentBackwards"
	keyLifecycleTransition  = "lifecycleInvalidTransition"
)

// Kind is the abstract error taxonomy the engine reports through. It is
// never exposed as a Go error type name a caller would type-switch on;
// callers branch on it via the IsContractViolation/IsInvalidArgument
// helpers below.
type Kind int

const (
	// KindContractViolation means the event/queue state machine was
	// violated. Fatal to the engine; the originating component's state
	// remains observable but must not be driven further.
	KindContractViolation Kind = iota
	// KindInvalidArgument means a caller supplied a malformed constructor
	// argument (e.g. a nil owner or body). Surfaced to the caller.
	KindInvalidArgument
	// KindOutOfEvents is raised internally by MainQueue.Step when the main
	// queue is empty. A Simulation driving Step never surfaces it as an
	// error value; it translates it into a life-cycle transition instead.
	KindOutOfEvents
)

// EngineError is the concrete error type behind every Kind above.
type EngineError struct {
	Kind Kind
	Key  string
	msg  string
}

func (e *EngineError) Error() string {
	return e.msg
}

func newContractViolation(key string, args ...interface{}) error {
	return pkgerrors.WithStack(&EngineError{
		Kind: KindContractViolation,
		Key:  key,
		msg:  i18n.Format(key, args...),
	})
}

func newInvalidArgument(key string, args ...interface{}) error {
	return pkgerrors.WithStack(&EngineError{
		Kind: KindInvalidArgument,
		Key:  key,
		msg:  i18n.Format(key, args...),
	})
}

// ErrOutOfEvents is returned by MainQueue.Step when the main queue has
// nothing left to dispatch. Simulation.Step catches it and turns it into a
// life-cycle transition, so it never surfaces past the Simulation driver.
var ErrOutOfEvents = &EngineError{
	Kind: KindOutOfEvents,
	Key:  keyOutOfEvents,
	msg:  i18n.Format(keyOutOfEvents),
}

// IsContractViolation reports whether err (or something it wraps) is a
// ContractViolation.
func IsContractViolation(err error) bool {
	var ee *EngineError
	return stderrors.As(err, &ee) && ee.Kind == KindContractViolation
}

// IsInvalidArgument reports whether err (or something it wraps) is an
// InvalidArgument.
func IsInvalidArgument(err error) bool {
	var ee *EngineError
	return stderrors.As(err, &ee) && ee.Kind == KindInvalidArgument
}

// Cause unwraps err to the innermost error, the way pkg/errors' own
// callers do when they want the original EngineError out from under its
// stack trace.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
