package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// consoleHandler renders one header line per record,
//
//	2006-01-02 15:04:05 INFO [organizer] run 1a2b3c4d – moved file
//
// followed by one "    - key: value" line per attribute. Component and run
// ID are lifted into the header. Attributes bound with WithAttrs are
// rendered once, when bound.
type consoleHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	level     slog.Level
	addSource bool

	component string
	runID     string
	prefix    string // open groups, "a.b."
	bound     []byte
}

func newConsoleHandler(w io.Writer, level slog.Level, addSource bool) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, level: level, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	header := *h
	body := bytes.NewBuffer(append([]byte(nil), h.bound...))
	record.Attrs(func(attr slog.Attr) bool {
		header.appendAttr(body, h.prefix, attr)
		return true
	})

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	msg := strings.TrimSpace(record.Message)
	if msg == "" {
		msg = "(no message)"
	}

	var line bytes.Buffer
	line.Grow(96 + body.Len())
	line.WriteString(formatTimestamp(ts))
	line.WriteByte(' ')
	line.WriteString(levelLabel(record.Level))
	if header.component != "" {
		line.WriteString(" [" + header.component + "]")
	}
	if header.runID != "" {
		line.WriteString(" run " + shortRunID(header.runID))
	}
	line.WriteString(" – ")
	line.WriteString(msg)
	if src := record.Source(); h.addSource && src != nil {
		line.WriteString(" [" + filepath.Base(src.File) + ":" + strconv.Itoa(src.Line) + "]")
	}
	line.WriteByte('\n')
	line.Write(body.Bytes())

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(line.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	buf := bytes.NewBuffer(append([]byte(nil), h.bound...))
	for _, attr := range attrs {
		next.appendAttr(buf, h.prefix, attr)
	}
	next.bound = buf.Bytes()
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// appendAttr writes attr as a field line, or records it on h when it is a
// top-level component or run ID.
func (h *consoleHandler) appendAttr(buf *bytes.Buffer, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			h.appendAttr(buf, prefix, member)
		}
		return
	}
	if prefix == "" {
		switch attr.Key {
		case FieldComponent:
			h.component = attrString(attr.Value)
			return
		case FieldRunID:
			h.runID = attrString(attr.Value)
			return
		}
	}
	buf.WriteString("    - ")
	buf.WriteString(prefix)
	buf.WriteString(attr.Key)
	buf.WriteString(": ")
	buf.WriteString(formatValue(attr.Value))
	buf.WriteByte('\n')
}

// shortRunID keeps console headers narrow; the JSON handler carries the full ID.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
