package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindConflict         ErrorKind = "CONFLICT"
	KindInvalidArgument  ErrorKind = "INVALID_ARGUMENT"
	KindInvalidState     ErrorKind = "INVALID_STATE"
	KindCapacityExceeded ErrorKind = "CAPACITY_EXCEEDED"
	KindValidation       ErrorKind = "VALIDATION_ERROR"
	KindInternal         ErrorKind = "INTERNAL"
)

// Error is the result type for every expected ledger failure. Fields is only
// set for KindValidation and maps field name to a human readable message.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%d field errors)", e.Kind, e.Message, len(e.Fields))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches on kind so callers can write errors.Is(err, domain.ErrNotFound).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

var (
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrConflict         = &Error{Kind: KindConflict}
	ErrInvalidArgument  = &Error{Kind: KindInvalidArgument}
	ErrInvalidState     = &Error{Kind: KindInvalidState}
	ErrCapacityExceeded = &Error{Kind: KindCapacityExceeded}
	ErrValidation       = &Error{Kind: KindValidation}
)

func newf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error { return newf(KindNotFound, format, args...) }

func Conflictf(format string, args ...any) error { return newf(KindConflict, format, args...) }

func InvalidArgumentf(format string, args ...any) error {
	return newf(KindInvalidArgument, format, args...)
}

func InvalidStatef(format string, args ...any) error {
	return newf(KindInvalidState, format, args...)
}

func CapacityExceededf(format string, args ...any) error {
	return newf(KindCapacityExceeded, format, args...)
}

func NewValidationError(fields map[string]string) error {
	return &Error{
		Kind:    KindValidation,
		Message: "input validation failed",
		Fields:  fields,
	}
}

// KindOf reports the kind of err. Anything that is not a *Error, such as a
// storage failure, is KindInternal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldErrors returns the field map of a validation error, or nil.
func FieldErrors(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
