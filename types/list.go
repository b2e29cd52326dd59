package types

import (
	"fmt"

	"github.com/dahankzter/cdrs/errors"
)

// List is a decoded list or set. Every element has already been validated against the element type.
type List struct {
	typ    ColTypeOption
	elems  []CBytes
	values []interface{}
}

func decodeList(typ ColTypeOption, b []byte) (*List, error) {
	if typ.Elem == nil {
		return nil, errors.NewMalformedEncodingError("%s descriptor has no element type", typ.ID)
	}
	n, offset, err := readElementCount(typ.ID, b, 4)
	if err != nil {
		return nil, err
	}
	l := &List{
		typ:    typ,
		elems:  make([]CBytes, 0, n),
		values: make([]interface{}, 0, n),
	}
	for i := 0; i < n; i++ {
		var cb CBytes
		cb, offset, err = ReadCBytes(b, offset)
		if err != nil {
			return nil, errors.NewMalformedEncodingError("%s element %d: %s", typ.ID, i, describe(err))
		}
		if cb.IsNull() {
			return nil, errors.NewMalformedEncodingError("%s element %d is null", typ.ID, i)
		}
		v, err := DecodeNatural(*typ.Elem, cb)
		if err != nil {
			return nil, errors.NewCompositeElementError(fmt.Sprintf("%s element %d", typ.ID, i), err)
		}
		l.elems = append(l.elems, cb)
		l.values = append(l.values, v)
	}
	if offset != len(b) {
		return nil, trailingBytesError(typ.ID, len(b)-offset)
	}
	return l, nil
}

// Type returns the list or set descriptor the value was decoded with.
func (l *List) Type() ColTypeOption {
	return l.typ
}

func (l *List) ElemType() ColTypeOption {
	return *l.typ.Elem
}

func (l *List) Len() int {
	return len(l.elems)
}

// Values returns the elements decoded into their natural Go types.
func (l *List) Values() []interface{} {
	res := make([]interface{}, len(l.values))
	copy(res, l.values)
	return res
}

// ListElems decodes every element of l into T.
func ListElems[T Value](l *List) ([]T, error) {
	elemType := l.ElemType()
	dec, err := lookup[T](elemType)
	if err != nil {
		return nil, err
	}
	res := make([]T, len(l.elems))
	for i, cb := range l.elems {
		v, _, err := decodeWith[T](dec, elemType, cb)
		if err != nil {
			return nil, errors.NewCompositeElementError(fmt.Sprintf("%s element %d", l.typ.ID, i), err)
		}
		res[i] = v
	}
	return res, nil
}

// readElementCount reads the [int] element count that starts a collection and checks that the buffer can hold at
// least that many elements of minElemSize bytes each.
func readElementCount(typ ColType, b []byte, minElemSize int) (int, int, error) {
	if len(b) < 4 {
		return 0, 0, errors.NewMalformedEncodingError("%s needs 4 bytes for its element count, got %d", typ, len(b))
	}
	count, offset := ReadInt32FromBufferBE(b, 0)
	if count < 0 {
		return 0, 0, errors.NewMalformedEncodingError("%s has negative element count %d", typ, count)
	}
	n := int(count)
	if n > (len(b)-offset)/minElemSize {
		return 0, 0, errors.NewMalformedEncodingError("%s element count %d does not fit in %d bytes", typ, n, len(b)-offset)
	}
	return n, offset, nil
}

func trailingBytesError(typ ColType, n int) error {
	return errors.NewMalformedEncodingError("%s has %d trailing bytes", typ, n)
}

// wrapElementError gives an element failure its position. A TypeMismatch is about the requested Go type rather than
// the element bytes, so it is returned as is.
func wrapElementError(elem string, err error) error {
	var cerr errors.CdrsError
	if errors.As(err, &cerr) && cerr.Code == errors.TypeMismatch {
		return err
	}
	return errors.NewCompositeElementError(elem, err)
}

func describe(err error) string {
	var cerr errors.CdrsError
	if errors.As(err, &cerr) {
		return cerr.Msg
	}
	return err.Error()
}
