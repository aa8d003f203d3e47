package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Options configures the process-wide logger.
type Options struct {
	Level  slog.Level
	Format string    // "tint" (default) or "json"
	Writer io.Writer // defaults to os.Stderr

	// NoColor disables ANSI colour in tint output. Colour is also off
	// whenever Writer is not a terminal.
	NoColor bool
}

// DefaultOptions returns info-level coloured output on stderr.
func DefaultOptions() Options {
	return Options{
		Level:  slog.LevelInfo,
		Format: "tint",
		Writer: os.Stderr,
	}
}

// Init installs a handler built from opts as the slog default and returns
// the resulting logger.
func Init(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler
	switch opts.Format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level})
	default:
		handler = tint.NewHandler(w, &tint.Options{
			Level:      opts.Level,
			TimeFormat: "15:04:05",
			NoColor:    opts.NoColor || !isTerminal(w),
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// New returns a logger with a "component" attribute for module-scoped logging.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// ParseLevel maps debug, info, warn and error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", s)
}

// ParseFormat validates a --log-format value.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case "tint", "text", "":
		return "tint", nil
	case "json":
		return "json", nil
	}
	return "", fmt.Errorf("unknown log format %q (expected tint or json)", s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
