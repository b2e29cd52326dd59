package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	err := NewTypeMismatchError(stringer("varchar"), "int32")
	require.Equal(t, "CDRS0003 - Cannot decode varchar as int32", err.Error())
	err.Column = "name"
	require.Equal(t, "CDRS0003 - column name: Cannot decode varchar as int32", err.Error())
}

func TestCompositeElementError(t *testing.T) {
	inner := NewMalformedEncodingError("int needs exactly 4 bytes, got 1")
	outer := NewCompositeElementError("list element 2", inner)
	require.Equal(t, "CDRS0005 - list element 2: int needs exactly 4 bytes, got 1", outer.Error())
	require.True(t, HasCode(outer, CompositeElementFailure))
	require.True(t, HasCode(outer, MalformedEncoding))
	require.False(t, HasCode(outer, TypeMismatch))

	var cerr CdrsError
	require.True(t, As(outer, &cerr))
	require.Equal(t, CompositeElementFailure, cerr.Code)
}

func TestWithColumn(t *testing.T) {
	require.NoError(t, WithColumn(nil, "a"))

	err := WithColumn(Wrap(NewColumnNotFoundError("x"), "reading"), "a")
	cerr, ok := err.(CdrsError)
	require.True(t, ok)
	require.Equal(t, ColumnNotLocated, cerr.Code)
	require.Equal(t, "a", cerr.Column)

	err = WithColumn(fmt.Errorf("boom"), "b")
	require.True(t, HasCode(err, InternalError))
	require.Equal(t, "CDRS0000 - column b: Internal error: boom", err.Error())
}

func TestWithStackKeepsCodedErrors(t *testing.T) {
	cerr := NewAmbiguousColumnError("v")
	require.Equal(t, cerr, WithStack(cerr))
	require.Nil(t, WithStack(nil))
	wrapped := WithStack(fmt.Errorf("plain"))
	_, ok := wrapped.(stackTracer)
	require.True(t, ok)
}

func TestErrorCodeString(t *testing.T) {
	require.Equal(t, "MalformedEncoding", MalformedEncoding.String())
	require.Equal(t, "ErrorCode(99)", ErrorCode(99).String())
}

type stringer string

func (s stringer) String() string { return string(s) }
