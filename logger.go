// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package ocean

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record.
// Enabled reports false so callers skip formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() { logger.Store(slog.New(nopHandler{})) }

// SetLogger sets the logger used by ocean and its sub-packages.
// Logging is disabled by default; passing nil disables it again.
//
// Levels:
//   - slog.LevelDebug: per-rebuild statistics
//   - slog.LevelInfo: lifecycle (driver opened, surface init/shutdown)
//   - slog.LevelWarn: degradations (forced or skipped leaves)
//
// It is safe to call SetLogger concurrently with logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger { return logger.Load() }
