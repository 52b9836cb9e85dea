package mustache

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// Errors returned by this package wrap one of these, so callers identify the
// kind of a failure with [errors.Is] even after the engine has wrapped it in
// [ErrParse].
var (
	ErrFileNotFound      = NewError("file not found")
	ErrReadTemplate      = NewError("failed to read template")
	ErrMismatchedSection = NewError("mismatched section")
	ErrUnclosedSection   = NewError("unclosed section")
	ErrInvalidModel      = NewError("invalid model")
	ErrMissingKey        = NewError("missing required key")
	ErrMaxDepthExceeded  = NewError("maximum partial depth exceeded")
	ErrParse             = NewError("parsing error")
	ErrWrongVariant      = NewError("wrong value variant")
	ErrDuplicateKey      = NewError("duplicate key")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// "<msg>: <err>", "<msg>" or "<err>", depending on which fields are set.
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error of the same kind. Errors derived from
// a sentinel with [Error.Wrap] or [Error.With] keep its message and so match
// it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg != "" && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// annotate adds attrs to err when it is an *Error.
func annotate(err error, attrs ...slog.Attr) error {
	if e, ok := err.(*Error); ok {
		return e.With(attrs...)
	}

	return err
}

// parseFailure wraps err in ErrParse unless it already is one.
func parseFailure(err error) error {
	if err == nil || errors.Is(err, ErrParse) {
		return err
	}

	return ErrParse.Wrap(err)
}
