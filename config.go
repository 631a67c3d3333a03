package chronon

import (
	"log/slog"

	"github.com/jcderner/chronon/internal/obslog"
)

// Config configures a Simulation. There is deliberately no real-time
// pacing knob here (see DESIGN.md): the kernel advances its virtual clock
// only as fast as the caller drives Step, so only the queue's capacity
// hint and an injectable logger remain.
type Config struct {
	// InitialQueueCapacity hints how many top-level events/proxies the
	// main queue should be able to hold without reallocating.
	InitialQueueCapacity int

	// Logger receives structured diagnostics: one debug-level line per
	// dispatch, one error-level line per failed dispatch. Errors from
	// life-cycle transitions are returned without being logged. A nil
	// Logger falls back to obslog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns sensible defaults for a small simulation.
func DefaultConfig() Config {
	return Config{
		InitialQueueCapacity: 64,
		Logger:               obslog.Default(),
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return obslog.Default()
}
