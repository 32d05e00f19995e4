package mold

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false for all
// levels so callers skip attribute formatting altogether.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(discardHandler{}))
}

// SetLogger installs the logger used by mold and its sub-packages.
// The analysis core is silent unless a host installs a logger here.
// Passing nil restores the silent default. Safe for concurrent use.
//
// Only [slog.LevelDebug] is used: validation summaries, proxy mesh
// sizes, worker counts. Failures are returned as errors, never logged.
//
//	mold.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	current.Store(l)
}

// Logger returns the logger installed with SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// Component returns Logger tagged with a component attribute. Sub-packages
// call it at use sites rather than caching the result, so a later
// SetLogger takes effect immediately.
func Component(name string) *slog.Logger {
	return current.Load().With(slog.String("component", name))
}
