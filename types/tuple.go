package types

import (
	"fmt"

	"github.com/dahankzter/cdrs/errors"
)

// Tuple is a decoded tuple value. Components may be null.
type Tuple struct {
	typ    ColTypeOption
	elems  []CBytes
	values []interface{}
}

func decodeTuple(typ ColTypeOption, b []byte) (*Tuple, error) {
	t := &Tuple{
		typ:    typ,
		elems:  make([]CBytes, len(typ.Tuple)),
		values: make([]interface{}, len(typ.Tuple)),
	}
	offset := 0
	for i, elemType := range typ.Tuple {
		var cb CBytes
		var err error
		cb, offset, err = ReadCBytes(b, offset)
		if err != nil {
			return nil, errors.NewMalformedEncodingError("tuple element %d of %d: %s", i, len(typ.Tuple), describe(err))
		}
		v, err := DecodeNatural(elemType, cb)
		if err != nil {
			return nil, errors.NewCompositeElementError(fmt.Sprintf("tuple element %d", i), err)
		}
		t.elems[i] = cb
		t.values[i] = v
	}
	if offset != len(b) {
		return nil, trailingBytesError(TupleType, len(b)-offset)
	}
	return t, nil
}

func (t *Tuple) Type() ColTypeOption {
	return t.typ
}

func (t *Tuple) Len() int {
	return len(t.elems)
}

// Values returns the components decoded into their natural Go types. Null components are nil.
func (t *Tuple) Values() []interface{} {
	res := make([]interface{}, len(t.values))
	copy(res, t.values)
	return res
}

// TupleElem decodes the component at position index into T. A null component returns false and no error.
func TupleElem[T Value](t *Tuple, index int) (T, bool, error) {
	if index < 0 || index >= len(t.elems) {
		var zero T
		return zero, false, errors.NewCdrsErrorf(errors.ColumnNotLocated, "tuple index %d out of bounds, tuple has %d elements",
			index, len(t.elems))
	}
	v, ok, err := Decode[T](t.typ.Tuple[index], t.elems[index])
	if err != nil {
		return v, false, wrapElementError(fmt.Sprintf("tuple element %d", index), err)
	}
	return v, ok, nil
}
