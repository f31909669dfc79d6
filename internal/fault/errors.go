package fault

import (
	"errors"
	"strings"
)

var (
	ErrInvalidTarget = errors.New("invalid target")
	ErrMoveFailure   = errors.New("move failure")
	ErrConfiguration = errors.New("configuration error")
	ErrLocked        = errors.New("target locked")
)

// Error records which component failed, during which operation, on which
// path. Both Kind and Err match through errors.Is.
type Error struct {
	Kind      error
	Component string
	Op        string
	Path      string
	Err       error
}

// Wrap tags err with kind. A nil kind means ErrMoveFailure, the failure
// mode of almost every organizer call site. err may be nil when the kind
// alone explains the failure.
func Wrap(kind error, component, op, path string, err error) error {
	if kind == nil {
		kind = ErrMoveFailure
	}
	return &Error{Kind: kind, Component: component, Op: op, Path: path, Err: err}
}

// Error renders "kind: component: op path: cause", dropping empty parts.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if c := strings.TrimSpace(e.Component); c != "" {
		b.WriteString(": ")
		b.WriteString(c)
	}
	if where := strings.TrimSpace(strings.TrimSpace(e.Op) + " " + strings.TrimSpace(e.Path)); where != "" {
		b.WriteString(": ")
		b.WriteString(where)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the sentinel err was tagged with, or nil when err carries
// none of them.
func KindOf(err error) error {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	for _, kind := range []error{ErrConfiguration, ErrInvalidTarget, ErrLocked, ErrMoveFailure} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// PathOf returns the path recorded on the outermost *Error in err's chain.
func PathOf(err error) string {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Path
	}
	return ""
}

// ExitCode maps a command error to a process exit status: 0 for success, 2
// for configuration problems, 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case KindOf(err) == ErrConfiguration:
		return 2
	default:
		return 1
	}
}
