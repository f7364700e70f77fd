// Package errors defines the structured failure type shared by the command
// engine and its callers. Identifiers are stable strings so hosts and tests
// can branch on them without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// Identifier is a stable machine-readable failure identifier.
type Identifier string

const (
	// ErrUnknown is reported for errors that carry no identifier of their own.
	ErrUnknown Identifier = "unknown"

	// ErrArgumentRequired means a declared positional argument had no
	// corresponding input token.
	ErrArgumentRequired Identifier = "argumentRequired"

	// ErrOptionRequired means an option without a default was absent from
	// input but required by the handler, or an option token was given with
	// no value.
	ErrOptionRequired Identifier = "optionRequired"

	// ErrExcessInput means tokens remained after all declared arguments and
	// options were consumed.
	ErrExcessInput Identifier = "excessInput"

	// ErrUnknownArgument means a handler asked for an argument name that was
	// never declared or populated.
	ErrUnknownArgument Identifier = "unknownArgument"

	// ErrCommandRequired means dispatch stopped at a group that has no
	// handler of its own.
	ErrCommandRequired Identifier = "commandRequired"
)

// Error is a structured failure with a stable identifier and a human-readable
// reason. Reason is what callers render; Identifier is for branching.
type Error struct {
	Identifier Identifier
	Reason     string
	Details    map[string]interface{}
	Wrapped    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Identifier, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Identifier, e.Reason)
}

// Unwrap implements the errors.Unwrap interface.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches errors by identifier.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Identifier == targetErr.Identifier
	}
	return false
}

// New creates an Error with the given identifier and reason.
func New(id Identifier, reason string) *Error {
	return &Error{
		Identifier: id,
		Reason:     reason,
		Details:    make(map[string]interface{}),
	}
}

// Newf creates an Error with a formatted reason.
func Newf(id Identifier, format string, args ...interface{}) *Error {
	return New(id, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. Returns nil when err is nil.
func Wrap(err error, id Identifier, reason string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Identifier: id,
		Reason:     reason,
		Details:    make(map[string]interface{}),
		Wrapped:    err,
	}
}

// Wrapf wraps an existing error with a formatted reason.
func Wrapf(err error, id Identifier, format string, args ...interface{}) *Error {
	return Wrap(err, id, fmt.Sprintf(format, args...))
}

// WithDetail attaches a detail to the error and returns it for chaining.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsIdentifier checks whether an error carries a specific identifier.
func IsIdentifier(err error, id Identifier) bool {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Identifier == id
	}
	return false
}

// GetIdentifier returns an error's identifier, or ErrUnknown for foreign
// errors.
func GetIdentifier(err error) Identifier {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Identifier
	}
	return ErrUnknown
}

// GetReason returns the reason of a structured error, or the plain Error()
// string for foreign errors.
func GetReason(err error) string {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Reason
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
