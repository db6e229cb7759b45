// Package logging builds the process slog.Logger and carries it through
// context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Handler formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options selects the handler and its level.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string

	// Format is FormatText or FormatJSON. Empty means text.
	Format string

	// Writer receives log records. Nil means os.Stderr.
	Writer io.Writer
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: invalid level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a logger tagged with a fresh run_id.
func New(opts Options) (*slog.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(w, hopts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, hopts)
	default:
		return nil, fmt.Errorf("logging: invalid format %q", opts.Format)
	}

	return slog.New(h).With("run_id", uuid.NewString()), nil
}

// key is unexported so no other package can collide with it.
type key struct{}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(key{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}
