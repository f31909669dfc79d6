package logging

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

func formatTimestamp(ts time.Time) string {
	return ts.In(time.Local).Format(timestampLayout)
}

// attrString renders v without quoting, for the component prefix.
func attrString(v slog.Value) string {
	return renderValue(v, false)
}

// formatValue renders v for a k=v pair, quoting text that would break the
// pair apart when read back.
func formatValue(v slog.Value) string {
	return renderValue(v, true)
}

func renderValue(v slog.Value, quote bool) string {
	v = v.Resolve()
	var s string
	switch v.Kind() {
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return formatTimestamp(v.Time())
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if quote && needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	return s == "" || strings.ContainsFunc(s, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"'
	})
}
