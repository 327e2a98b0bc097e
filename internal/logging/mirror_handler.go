package logging

import (
	"context"
	"log/slog"
)

// mirrorHandler writes every record to the log file and, when enabled for
// the record's level, echoes it to the verbose console.
type mirrorHandler struct {
	file    slog.Handler
	console slog.Handler
}

func (h mirrorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.file.Enabled(ctx, level) || h.console.Enabled(ctx, level)
}

func (h mirrorHandler) Handle(ctx context.Context, record slog.Record) error {
	var err error
	if h.file.Enabled(ctx, record.Level) {
		err = h.file.Handle(ctx, record.Clone())
	}
	if h.console.Enabled(ctx, record.Level) {
		if cerr := h.console.Handle(ctx, record); err == nil {
			err = cerr
		}
	}
	return err
}

func (h mirrorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return mirrorHandler{file: h.file.WithAttrs(attrs), console: h.console.WithAttrs(attrs)}
}

func (h mirrorHandler) WithGroup(name string) slog.Handler {
	return mirrorHandler{file: h.file.WithGroup(name), console: h.console.WithGroup(name)}
}
