package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// SetupPrettySlog returns a human-readable slog logger for local runs.
// Non-local environments use plain JSON handlers instead.
func SetupPrettySlog() *slog.Logger {
	return slog.New(newPrettyHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type prettyHandler struct {
	opts  *slog.HandlerOptions
	attrs []slog.Attr
	mu    *sync.Mutex
	out   io.Writer
}

func newPrettyHandler(out io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &prettyHandler{opts: opts, mu: &sync.Mutex{}, out: out}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()
		return true
	})

	var suffix string
	if len(fields) > 0 {
		b, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		suffix = " " + string(b)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s [%s] %s%s\n",
		r.Time.Format("15:04:05.000"), r.Level.String(), r.Message, suffix)
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &prettyHandler{opts: h.opts, attrs: merged, mu: h.mu, out: h.out}
}

func (h *prettyHandler) WithGroup(string) slog.Handler {
	return h
}
