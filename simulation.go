// Package chronon is the top-level facade over the engine package: it owns
// a main queue and the simulation's life-cycle, fronting the engine
// package the way a root package fronts its internal kernel.
package chronon

import (
	"log/slog"
	"sync"

	"github.com/jcderner/chronon/engine"
)

// Simulation is a process-wide construct owning its main queue and
// life-cycle state; external code holds a handle to it rather than
// reaching into package-level globals.
type Simulation struct {
	mu        sync.Mutex
	mq        *engine.MainQueue
	lifecycle *engine.Lifecycle
	logger    *slog.Logger
	stopReq   bool
}

// New builds a Simulation in the Starting life-cycle stage with an empty
// main queue.
func New(cfg Config) *Simulation {
	return &Simulation{
		mq:        engine.NewMainQueueWithCapacity(cfg.InitialQueueCapacity),
		lifecycle: engine.NewLifecycle(),
		logger:    cfg.logger(),
	}
}

// Queue returns the root queue handle client code schedules top-level
// events and hierarchical queues onto.
func (s *Simulation) Queue() *engine.Queue { return s.mq.Queue() }

// Clock returns the simulation's current virtual time.
func (s *Simulation) Clock() engine.Time { return s.mq.Clock() }

// State returns the current life-cycle stage.
func (s *Simulation) State() engine.LifecycleState { return s.lifecycle.State() }

// Events reports how many top-level active events/proxies remain on the
// main queue, for host-application observability.
func (s *Simulation) Events() int { return s.mq.Len() }

// Init seeds the simulation: an explicit construction step separate from
// New so callers can schedule an initial batch of events before the
// life-cycle leaves Starting.
func (s *Simulation) Init(seed func(q *engine.Queue) error) error {
	if seed == nil {
		return nil
	}
	return seed(s.mq.Queue())
}

// Start transitions Starting → Running. It must be called exactly once,
// after Init and before the first Step/RunUntilEmpty.
func (s *Simulation) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.lifecycle.ToRunning(); err != nil {
		return err
	}
	s.logger.Info("simulation started", slog.String("state", s.lifecycle.State().String()))
	return nil
}

// Stop requests a transition to Finishing at the next Step boundary. It is
// the engine's only user-facing stop control; there is deliberately no
// general Pause/Resume surface here, only suspend/resume of individual
// events and hierarchical queues, which live on engine.Event and
// engine.HierarchicalQueue.
func (s *Simulation) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopReq = true
}

// Step executes exactly one dispatch cycle. It returns nil on an ordinary
// dispatch, and also nil once the life-cycle has reached Finished (so a
// caller looping on Step sees no error at the point it should stop
// looping); it surfaces any contract violation the underlying dispatch
// raises. "Out of events" is caught internally and never surfaced to the
// caller: it drives the Running to Finishing to Finished transition
// instead.
func (s *Simulation) Step() error {
	s.mu.Lock()
	stopReq := s.stopReq
	s.mu.Unlock()

	if s.lifecycle.State() == engine.Finished {
		return nil
	}
	if stopReq && s.lifecycle.State() == engine.Running {
		if err := s.lifecycle.ToFinishing(); err != nil {
			return err
		}
		return s.lifecycle.ToFinished()
	}

	err := s.mq.Step()
	if err == nil {
		s.logger.Debug("dispatched event", slog.String("clock", s.mq.Clock().String()))
		return nil
	}
	if err == engine.ErrOutOfEvents {
		if err := s.lifecycle.ToFinishing(); err != nil {
			return err
		}
		return s.lifecycle.ToFinished()
	}
	s.logger.Error("event dispatch failed", slog.Any("error", err))
	return err
}

// RunUntilEmpty drives Step in a loop until the life-cycle reaches
// Finished or Step returns an error.
func (s *Simulation) RunUntilEmpty() error {
	for s.lifecycle.State() != engine.Finished {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}
