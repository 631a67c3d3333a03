// Package obslog provides the structured diagnostic logger the engine
// writes through. It wraps log/slog with the same handler-building pattern
// owasp-amass-engine pulls in via github.com/samber/slog-common: a thin
// slog.Handler that normalizes attributes before handing them to a JSON
// encoder, rather than hand-rolling string formatting.
package obslog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	slogcommon "github.com/samber/slog-common"
)

// Option configures a Handler.
type Option struct {
	Level       slog.Leveler
	AddSource   bool
	ReplaceAttr func(groups []string, a slog.Attr) slog.Attr
	Writer      io.Writer
}

// Handler is a minimal slog.Handler that funnels every record's attributes
// through slog-common's shared normalization helpers before rendering them
// as JSON. It exists so the engine's contract-violation and dispatch
// diagnostics come out with consistent attribute shapes regardless of
// which part of the kernel logs them.
type Handler struct {
	option Option
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
	json   *slog.JSONHandler
}

// New builds a Handler writing to option.Writer (os.Stderr if unset) at
// option.Level (slog.LevelInfo if unset). A caller-supplied ReplaceAttr
// runs in addition to, not instead of, defaultReplaceAttr's error
// flattening: it sees each attribute after the default has handled it.
func New(option Option) *Handler {
	if option.Writer == nil {
		option.Writer = os.Stderr
	}
	if option.Level == nil {
		option.Level = slog.LevelInfo
	}
	if custom := option.ReplaceAttr; custom != nil {
		option.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			return custom(groups, defaultReplaceAttr(groups, a))
		}
	} else {
		option.ReplaceAttr = defaultReplaceAttr
	}
	h := &Handler{option: option, mu: &sync.Mutex{}}
	h.json = slog.NewJSONHandler(option.Writer, &slog.HandlerOptions{
		AddSource:   option.AddSource,
		Level:       option.Level,
		ReplaceAttr: option.ReplaceAttr,
	})
	return h
}

// Enabled reports whether a record at level should be processed.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.option.Level.Level()
}

// Handle normalizes the record's attributes (replacing/redacting per the
// configured ReplaceAttr, merging in attributes accumulated via WithAttrs)
// before delegating the actual encoding to the wrapped JSON handler.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	attrs := make([]slog.Attr, 0, record.NumAttrs()+len(h.attrs))
	attrs = append(attrs, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	if h.option.ReplaceAttr != nil {
		attrs = slogcommon.ReplaceAttrs(h.option.ReplaceAttr, h.groups, attrs)
	}
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	newRecord.AddAttrs(attrs...)
	return h.json.Handle(ctx, newRecord)
}

// WithAttrs returns a Handler that prepends attrs to every subsequent
// record, the way a per-queue or per-event child logger would.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cloned := *h
	cloned.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &cloned
}

// WithGroup returns a Handler that nests subsequent attributes under name.
func (h *Handler) WithGroup(name string) slog.Handler {
	cloned := *h
	cloned.groups = append(append([]string{}, h.groups...), name)
	cloned.json = h.json.WithGroup(name).(*slog.JSONHandler)
	return &cloned
}

// Default returns the package-level logger the engine falls back to when a
// Simulation is constructed without an explicit Config.Logger.
func Default() *slog.Logger {
	return slog.New(New(Option{}))
}

// defaultReplaceAttr flattens error-valued attributes down to their
// message text, so slog-common's normalization and any caller-supplied
// ReplaceAttr see a plain string attribute rather than an error value. The
// wrapped slog.JSONHandler also writes error values as their Error() text,
// so the rendered line carries the message either way.
func defaultReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if err, ok := a.Value.Any().(error); ok {
		return slog.String(a.Key, err.Error())
	}
	return a
}
