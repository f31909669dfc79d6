package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// hiddenConsoleKeys are context fields that stay in JSON output but would only
// add noise to every console line.
var hiddenConsoleKeys = map[string]struct{}{
	FieldRunID:  {},
	FieldTarget: {},
}

var levelColors = map[string]*color.Color{
	"ERROR": color.New(color.FgRed, color.Bold),
	"WARN":  color.New(color.FgYellow),
	"INFO":  color.New(color.FgCyan),
	"DEBUG": color.New(color.FgHiBlack),
}

type prettyHandler struct {
	mu        *sync.Mutex
	writer    io.Writer
	level     *slog.LevelVar
	attrs     []slog.Attr
	groups    []string
	addSource bool
	colorize  bool
}

func newPrettyHandler(w io.Writer, lvl *slog.LevelVar, addSource, colorize bool) slog.Handler {
	return &prettyHandler{mu: &sync.Mutex{}, writer: w, level: lvl, addSource: addSource, colorize: colorize}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.level.Level() {
		return nil
	}

	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	kvs := make([]kv, 0, record.NumAttrs()+len(h.attrs))
	flattenAttrs(&kvs, h.groups, h.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		flattenAttr(&kvs, h.groups, attr)
		return true
	})

	var component string
	filtered := make([]kv, 0, len(kvs))
	for _, kv := range kvs {
		if kv.key == FieldComponent {
			if component == "" {
				component = attrString(kv.value)
			}
			continue
		}
		if _, hidden := hiddenConsoleKeys[kv.key]; hidden {
			continue
		}
		filtered = append(filtered, kv)
	}
	filtered = dedupeKVsByKey(filtered)

	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}

	var buf bytes.Buffer
	buf.Grow(128 + len(filtered)*24)

	buf.WriteString(formatTimestamp(timestamp))
	buf.WriteString(" [")
	buf.WriteString(h.levelText(record.Level))
	buf.WriteString("] ")
	if component != "" {
		buf.WriteString(component)
		buf.WriteString(": ")
	}
	buf.WriteString(message)

	if h.addSource {
		if src := record.Source(); src != nil && src.File != "" {
			buf.WriteString(" [")
			buf.WriteString(filepath.Base(src.File))
			buf.WriteByte(':')
			buf.WriteString(strconv.Itoa(src.Line))
			buf.WriteByte(']')
		}
	}

	for _, kv := range filtered {
		buf.WriteByte(' ')
		buf.WriteString(kv.key)
		buf.WriteByte('=')
		buf.WriteString(formatValue(kv.value))
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *prettyHandler) levelText(level slog.Level) string {
	label := levelLabel(level)
	if !h.colorize {
		return label
	}
	c, ok := levelColors[label]
	if !ok {
		return label
	}
	c.EnableColor()
	return c.Sprint(label)
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *prettyHandler) clone() *prettyHandler {
	c := *h
	c.attrs = slices.Clone(h.attrs)
	c.groups = slices.Clone(h.groups)
	return &c
}

type kv struct {
	key   string
	value slog.Value
}

// dedupeKVsByKey keeps the first position of each key and the last value
// written to it, so a later With("source", ...) replaces an earlier one.
func dedupeKVsByKey(attrs []kv) []kv {
	index := make(map[string]int, len(attrs))
	out := attrs[:0:0]
	for _, attr := range attrs {
		if attr.key == "" {
			continue
		}
		if i, seen := index[attr.key]; seen {
			out[i].value = attr.value
			continue
		}
		index[attr.key] = len(out)
		out = append(out, attr)
	}
	return out
}

func flattenAttrs(dst *[]kv, prefix []string, attrs []slog.Attr) {
	for _, attr := range attrs {
		flattenAttr(dst, prefix, attr)
	}
}

// flattenAttr expands groups into dotted keys: group "copy" with attr "bytes"
// becomes copy.bytes.
func flattenAttr(dst *[]kv, prefix []string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	attr.Value = attr.Value.Resolve()
	path := prefix
	if attr.Key != "" {
		path = append(slices.Clip(prefix), attr.Key)
	}
	if attr.Value.Kind() == slog.KindGroup {
		flattenAttrs(dst, path, attr.Value.Group())
		return
	}
	*dst = append(*dst, kv{key: strings.Join(path, "."), value: attr.Value})
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
