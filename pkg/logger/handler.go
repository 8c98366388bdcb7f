package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	timestampLayout = "2006-01-02T15:04:05-07:00"
	lineCapacity    = 256
)

// output is shared by a handler and every handler derived from it through
// WithAttrs or WithGroup, so lines from scoped loggers never interleave.
type output struct {
	mu sync.Mutex
	w  io.Writer
}

// LineHandler is a slog.Handler writing one line per record:
//
//	2006-01-02T15:04:05-07:00 LEVEL message key=value key="quoted value"
type LineHandler struct {
	out    *output
	level  slog.Leveler
	prefix string // group path, "a.b." or empty
	attrs  []byte // pre-rendered attributes from WithAttrs
}

// NewFileHandler creates a handler appending to the file at path.
func NewFileHandler(path string, level Level) (*LineHandler, error) {
	//nolint:gosec // path is below the user's home directory
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermissions)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}

	return NewWriterHandler(file, level), nil
}

// NewWriterHandler creates a handler writing to w.
func NewWriterHandler(w io.Writer, level Level) *LineHandler {
	return &LineHandler{
		out:   &output{w: w},
		level: level.ToSlogLevel(),
	}
}

// Enabled implements slog.Handler.
func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	line := make([]byte, 0, lineCapacity)

	line = r.Time.Local().AppendFormat(line, timestampLayout)
	line = append(line, ' ')
	line = append(line, r.Level.String()...)
	line = append(line, ' ')
	line = append(line, r.Message...)
	line = append(line, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		line = appendAttr(line, h.prefix, a)

		return true
	})

	line = append(line, '\n')

	h.out.mu.Lock()
	defer h.out.mu.Unlock()

	if _, err := h.out.w.Write(line); err != nil {
		return errors.Wrap(err, "writing log entry")
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rendered := append([]byte(nil), h.attrs...)
	for _, a := range attrs {
		rendered = appendAttr(rendered, h.prefix, a)
	}

	clone := *h
	clone.attrs = rendered

	return &clone
}

// WithGroup implements slog.Handler.
func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

// Close closes the underlying writer if it is an io.Closer.
func (h *LineHandler) Close() error {
	h.out.mu.Lock()
	defer h.out.mu.Unlock()

	if closer, ok := h.out.w.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

// appendAttr renders " key=value". Group values are flattened into
// dotted keys.
func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, groupPrefix, ga)
		}

		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')

	return appendValue(buf, a.Value)
}

func appendValue(buf []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Local().AppendFormat(buf, timestampLayout)
	case slog.KindDuration:
		return append(buf, v.Duration().Round(time.Microsecond).String()...)
	case slog.KindString:
		return appendText(buf, v.String())
	default:
		if err, ok := v.Any().(error); ok {
			return appendText(buf, err.Error())
		}

		return appendText(buf, v.String())
	}
}

// appendText quotes s when it is empty or contains spaces, quotes or
// control characters.
func appendText(buf []byte, s string) []byte {
	if s == "" || strings.ContainsAny(s, " \t\r\n\"=") {
		return strconv.AppendQuote(buf, s)
	}

	return append(buf, s...)
}
