// Package errors mirrors the github.com/pkg/errors API and adds the coded errors returned by the decoding layer.
//
// Everything returned from here records a stack trace at the point of creation so a logged error can always be
// traced back, while still taking part in the standard library's Is / As / Unwrap chains.
package errors

import (
	stderrors "errors" //nolint: depguard

	"github.com/pkg/errors" //nolint: depguard
)

// New returns an error with the supplied message and a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Errorf formats according to a format specifier and returns an error carrying a stack trace.
func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Wrap annotates err with a message and a stack trace. If err is nil, Wrap returns nil.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message and a stack trace. If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace. If err is nil, WithStack returns nil.
//
// Coded errors are returned as is: they are values that the caller inspects with As, and the decoding layer
// creates a lot of them, so they do not pay for a stack each time.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(CdrsError); ok {
		return err
	}
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return errors.WithStack(err)
}

// Cause returns the innermost error that does not implement Cause.
func Cause(err error) error {
	return errors.Cause(err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target, and if so, sets target to that error value.
func As(err error, target interface{}) bool { return stderrors.As(err, target) }

type stackTracer interface {
	StackTrace() errors.StackTrace
}
