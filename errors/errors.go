package errors

import (
	stderrors "errors" //nolint: depguard
	"fmt"
)

type ErrorCode int

const (
	InternalError ErrorCode = iota
	InvalidConfiguration
	ColumnNotLocated
	TypeMismatch
	MalformedEncoding
	CompositeElementFailure
	AmbiguousColumn
	InvalidTypeExpression
)

func (c ErrorCode) String() string {
	switch c {
	case InternalError:
		return "InternalError"
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case ColumnNotLocated:
		return "ColumnNotLocated"
	case TypeMismatch:
		return "TypeMismatch"
	case MalformedEncoding:
		return "MalformedEncoding"
	case CompositeElementFailure:
		return "CompositeElementFailure"
	case AmbiguousColumn:
		return "AmbiguousColumn"
	case InvalidTypeExpression:
		return "InvalidTypeExpression"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

func NewInternalError(msg string) CdrsError {
	return NewCdrsErrorf(InternalError, "Internal error: %s", msg)
}

func NewInvalidConfigurationError(msg string) CdrsError {
	return NewCdrsErrorf(InvalidConfiguration, "Invalid configuration: %s", msg)
}

func NewColumnNotFoundError(name string) CdrsError {
	return NewCdrsErrorf(ColumnNotLocated, "No such column %q", name)
}

func NewIndexOutOfBoundsError(index int, count int) CdrsError {
	return NewCdrsErrorf(ColumnNotLocated, "Column index %d out of bounds, row has %d columns", index, count)
}

func NewAmbiguousColumnError(name string) CdrsError {
	return NewCdrsErrorf(AmbiguousColumn, "Column name %q occurs more than once", name)
}

// NewTypeMismatchError is returned when a column's wire type cannot be decoded into the requested Go type.
func NewTypeMismatchError(wireType fmt.Stringer, target string) CdrsError {
	return NewCdrsErrorf(TypeMismatch, "Cannot decode %s as %s", wireType, target)
}

func NewMalformedEncodingError(msgFormat string, args ...interface{}) CdrsError {
	return NewCdrsErrorf(MalformedEncoding, msgFormat, args...)
}

// NewCompositeElementError wraps the failure of one element of a list, set, map, udt or tuple. elem describes
// where the element sits, e.g. "list element 3" or "udt field zip".
func NewCompositeElementError(elem string, cause error) CdrsError {
	e := NewCdrsErrorf(CompositeElementFailure, "%s: %s", elem, describe(cause))
	e.cause = cause
	return e
}

func NewInvalidTypeExpressionError(expr string, cause error) CdrsError {
	e := NewCdrsErrorf(InvalidTypeExpression, "Invalid type expression %q: %v", expr, cause)
	e.cause = cause
	return e
}

func NewCdrsErrorf(errorCode ErrorCode, msgFormat string, args ...interface{}) CdrsError {
	return CdrsError{Code: errorCode, Msg: fmt.Sprintf(msgFormat, args...)}
}

func NewCdrsError(errorCode ErrorCode, msg string) CdrsError {
	return CdrsError{Code: errorCode, Msg: msg}
}

// CdrsError is the error returned to callers of the decoding layer. Code identifies the kind of failure and
// Column, when set, names the column of the row that failed.
type CdrsError struct {
	Code   ErrorCode
	Msg    string
	Column string
	cause  error
}

func (e CdrsError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("CDRS%04d - column %s: %s", e.Code, e.Column, e.Msg)
	}
	return fmt.Sprintf("CDRS%04d - %s", e.Code, e.Msg)
}

func (e CdrsError) Unwrap() error {
	return e.cause
}

// HasCode reports whether err, or any error in its chain, is a CdrsError with the given code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if cerr, ok := err.(CdrsError); ok && cerr.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// WithColumn attaches a column name to a CdrsError. Other errors are wrapped as InternalError so every error
// leaving a row accessor is coded.
func WithColumn(err error, column string) error {
	if err == nil {
		return nil
	}
	var cerr CdrsError
	if As(err, &cerr) {
		cerr.Column = column
		return cerr
	}
	e := NewInternalError(err.Error())
	e.Column = column
	e.cause = err
	return e
}

// describe renders the message of a coded error without its code prefix, so nested composite failures read as
// one sentence.
func describe(err error) string {
	if err == nil {
		return "<nil>"
	}
	var cerr CdrsError
	if As(err, &cerr) {
		return cerr.Msg
	}
	return err.Error()
}
