package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

const (
	ansiReset  = "\033[0m"
	ansiGray   = "\033[90m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
)

// prettyHandler writes colourised key=value lines meant for terminals.
type prettyHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		h.write(&buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.write(&buf, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.write(&buf, slog.String(slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.write(&buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.write(&buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.write(&buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &next
}

func (h *prettyHandler) WithGroup(string) slog.Handler {
	next := *h

	return &next
}

func (h *prettyHandler) write(buf *bytes.Buffer, a slog.Attr) {
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(ansiGray + a.Key + ansiReset + "=")

	v := a.Value.Resolve()

	switch v.Kind() {
	case slog.KindGroup:
		buf.WriteByte('{')

		for i, ga := range v.Group() {
			if i > 0 {
				buf.WriteByte(' ')
			}

			buf.WriteString(ga.Key + "=" + ga.Value.String())
		}

		buf.WriteByte('}')

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64, slog.KindDuration:
		buf.WriteString(ansiYellow + v.String() + ansiReset)

	case slog.KindBool:
		color := ansiRed
		if v.Bool() {
			color = ansiGreen
		}

		buf.WriteString(color + strconv.FormatBool(v.Bool()) + ansiReset)

	case slog.KindString:
		s := v.String()
		if a.Key == slog.LevelKey {
			buf.WriteString(levelColor(s) + s + ansiReset)

			return
		}

		buf.WriteString(ansiCyan + s + ansiReset)

	default:
		buf.WriteString(ansiBlue + v.String() + ansiReset)
	}
}

func levelColor(level string) string {
	switch level {
	case "ERROR":
		return ansiRed
	case "WARN":
		return ansiYellow
	case "INFO":
		return ansiGreen
	default:
		return ansiBlue
	}
}
