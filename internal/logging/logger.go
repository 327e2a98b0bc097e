package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"orgdir/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	OutputPaths []string
	Development bool
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	handler, err := newHandler(opts)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

func newHandler(opts Options) (slog.Handler, error) {
	level := parseLevel(opts.Level)
	addSource := opts.Development || level <= slog.LevelDebug

	var build func(io.Writer) slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "console":
		build = func(w io.Writer) slog.Handler { return newConsoleHandler(w, level, addSource) }
	case "json":
		build = func(w io.Writer) slog.Handler { return newJSONHandler(w, level, addSource) }
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	w, err := openWriters(opts.OutputPaths)
	if err != nil {
		return nil, err
	}
	return build(w), nil
}

// NewFromConfig creates the CLI logger. Records at the configured level and
// format go to the log file under the state directory; with verbose set,
// debug output is mirrored to stderr in console format.
func NewFromConfig(cfg *config.Config, verbose bool) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", OutputPaths: []string{"stderr"}})
	}

	var file, console slog.Handler
	if cfg.Paths.StateDir != "" {
		h, err := newHandler(Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{cfg.LogPath()},
		})
		if err != nil {
			return nil, err
		}
		file = h
	}
	if verbose {
		console = newConsoleHandler(os.Stderr, slog.LevelDebug, true)
	}

	switch {
	case file != nil && console != nil:
		return slog.New(mirrorHandler{file: file, console: console}), nil
	case file != nil:
		return slog.New(file), nil
	case console != nil:
		return slog.New(console), nil
	default:
		return NewNop(), nil
	}
}

// newJSONHandler renames the standard keys to ts/level/msg and shortens the
// source to file:line.
func newJSONHandler(w io.Writer, level slog.Level, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return attr
			}
			switch attr.Key {
			case slog.TimeKey:
				return slog.String("ts", attr.Value.Time().UTC().Format(time.RFC3339))
			case slog.LevelKey:
				return slog.String("level", strings.ToLower(attr.Value.String()))
			case slog.MessageKey:
				attr.Key = "msg"
			case slog.SourceKey:
				if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
					attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
				}
			}
			return attr
		},
	})
}

func parseLevel(level string) slog.Level {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return parsed
}

// openWriters resolves "stdout", "stderr" and file paths into one writer.
// Files are opened for append, creating parent directories as needed.
func openWriters(outputPaths []string) (io.Writer, error) {
	seen := make(map[string]bool, len(outputPaths))
	var writers []io.Writer
	for _, path := range outputPaths {
		path = strings.TrimSpace(path)
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true

		switch path {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("create log dir: %w", err)
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
			if err != nil {
				return nil, fmt.Errorf("open log file %s: %w", path, err)
			}
			writers = append(writers, file)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stderr, nil
	case 1:
		return writers[0], nil
	default:
		return io.MultiWriter(writers...), nil
	}
}
