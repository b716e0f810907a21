// Package serrors provides semantic errors: sentinel kinds describing what
// went wrong, plus a wrapper carrying a kind, an optional cause and an
// optional message. Callers classify failures at the boundary with errors.Is
// instead of inspecting error strings.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and match with errors.Is/As through the Error
// wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Default kinds cover the failure categories the tool surfaces. The top-level
// command maps each kind to a process exit code.
var (
	// ErrNotFound indicates a required path does not exist or is not a directory.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInvalidInput indicates the caller supplied unusable input, such as a
	// malformed glob pattern or a negative age threshold.
	ErrInvalidInput = NewKind("INVALID_INPUT")
	// ErrIO indicates a filesystem mutation failed, such as a file removal.
	ErrIO = NewKind("IO")
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped cause and an optional message. It fully supports errors.Is,
// errors.As and unwrapping.
//
// Matching semantics:
//   - errors.Is(err, target) matches if target matches either the kind
//     sentinel or the wrapped cause.
//   - errors.As(err, target) succeeds for either the kind sentinel or the
//     wrapped cause.
//
// Error string formatting:
//   - Both msg and cause set: "<msg>: <cause>"
//   - Only msg set: "<msg>"
//   - Only cause set: "<cause>"
//   - Neither set: the kind's name.
type Error struct {
	kind Kind  // semantic kind sentinel
	err  error // wrapped cause (optional)
	msg  string
}

// With constructs a new semantic error with the given kind and a
// human-readable message. Use Wrap to also attach a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wrapping the
// provided cause and attaching a message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind, without a message
// or concrete cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As to traverse
// the underlying chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the semantic kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the semantic kind sentinel or the
// wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
