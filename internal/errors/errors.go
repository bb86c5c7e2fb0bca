package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies failures that reach the command layer.
type Kind string

const (
	// KindInvalidRange marks a block whose end lies before its start or on another date.
	KindInvalidRange Kind = "INVALID_RANGE"
	// KindUnparseable marks a token (time, date, block, line) that could not be read.
	KindUnparseable Kind = "UNPARSEABLE"
	// KindInvalidCalendar marks a month or date that does not exist.
	KindInvalidCalendar Kind = "INVALID_CALENDAR"
	// KindState marks an operation that conflicts with the day's blocks,
	// e.g. punching in twice.
	KindState Kind = "STATE"
	// KindStorage marks a failure reading or writing the hours files.
	KindStorage Kind = "STORAGE"
)

// Error is a kinded error with an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so callers can compare against the
// sentinel values below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Cause == nil
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidRange    = &Error{Kind: KindInvalidRange}
	ErrUnparseable     = &Error{Kind: KindUnparseable}
	ErrInvalidCalendar = &Error{Kind: KindInvalidCalendar}
	ErrState           = &Error{Kind: KindState}
	ErrStorage         = &Error{Kind: KindStorage}
)

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InvalidRangef creates an invalid range error.
func InvalidRangef(format string, args ...any) *Error {
	return newf(KindInvalidRange, format, args...)
}

// Unparseablef creates an unparseable token error.
func Unparseablef(format string, args ...any) *Error {
	return newf(KindUnparseable, format, args...)
}

// InvalidCalendarf creates an invalid calendar value error.
func InvalidCalendarf(format string, args ...any) *Error {
	return newf(KindInvalidCalendar, format, args...)
}

// Statef creates a state conflict error.
func Statef(format string, args ...any) *Error {
	return newf(KindState, format, args...)
}

// Storage wraps an I/O failure.
func Storage(cause error, format string, args ...any) *Error {
	e := newf(KindStorage, format, args...)
	e.Cause = cause
	return e
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
