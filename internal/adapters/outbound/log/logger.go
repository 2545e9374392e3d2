package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependencies.
// A single slog handler backs both the structured *slog.Logger and the *log.Logger
// used for component lifecycle lines.
type InitLogger struct {
	Level  string `config:"LOG_LEVEL" default:"info"`
	Format string `config:"LOG_FORMAT" default:"text"`
	out    io.Writer
}

// Initialize registers the loggers in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	handler, err := newHandler(il.output(), il.Level, il.Format)
	if err != nil {
		return ctx, err
	}

	logger := slog.New(handler)
	depend.Register(logger)
	depend.Register(slog.NewLogLogger(handler, slog.LevelInfo))
	return ctx, nil
}

func (il InitLogger) output() io.Writer {
	if il.out != nil {
		return il.out
	}
	return os.Stdout
}

func newHandler(w io.Writer, level, format string) (slog.Handler, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text", "":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: expected text or json", format)
	}
}
