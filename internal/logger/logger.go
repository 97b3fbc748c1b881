package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const eventIDKey ctxKey = "eventID"

// Init configures the default slog logger from the given config.
func Init(cfg Config) {
	InitWithWriter(cfg, os.Stdout)
}

// InitWithWriter configures the default slog logger writing to w.
// Split out from Init so tests can capture output.
func InitWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler.WithAttrs(cfg.BaseAttributes()))
	slog.SetDefault(logger)
}

// GenerateEventID creates a new UUID for tracing one gateway event or
// command invocation through the log stream.
func GenerateEventID() string {
	return uuid.NewString()
}

// WithEventID returns a new context carrying the event ID.
func WithEventID(ctx context.Context, eventID string) context.Context {
	return context.WithValue(ctx, eventIDKey, eventID)
}

// EventIDFromContext extracts the event ID from the context, if present.
func EventIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(eventIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the event_id attribute when
// present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := EventIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyEventID, id)
	}
	return slog.Default()
}
