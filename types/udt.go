package types

import (
	"fmt"

	"github.com/dahankzter/cdrs/errors"
)

// UDT is a decoded user defined type value. Fields missing from the end of the value are null.
type UDT struct {
	typ    ColTypeOption
	fields []CBytes
	values []interface{}
}

func decodeUDT(typ ColTypeOption, b []byte) (*UDT, error) {
	if typ.UDT == nil {
		return nil, errors.NewMalformedEncodingError("udt descriptor has no fields")
	}
	info := typ.UDT
	u := &UDT{
		typ:    typ,
		fields: make([]CBytes, len(info.Fields)),
		values: make([]interface{}, len(info.Fields)),
	}
	offset := 0
	i := 0
	for ; offset < len(b); i++ {
		if i == len(info.Fields) {
			return nil, errors.NewMalformedEncodingError("udt %s has more values than its %d fields", info.Name, len(info.Fields))
		}
		var cb CBytes
		var err error
		cb, offset, err = ReadCBytes(b, offset)
		if err != nil {
			return nil, errors.NewMalformedEncodingError("udt field %s: %s", info.Fields[i].Name, describe(err))
		}
		v, err := DecodeNatural(info.Fields[i].Type, cb)
		if err != nil {
			return nil, errors.NewCompositeElementError(fmt.Sprintf("udt field %s", info.Fields[i].Name), err)
		}
		u.fields[i] = cb
		u.values[i] = v
	}
	for ; i < len(info.Fields); i++ {
		u.fields[i] = NullCBytes()
	}
	return u, nil
}

func (u *UDT) Type() ColTypeOption {
	return u.typ
}

func (u *UDT) Info() UDTInfo {
	return *u.typ.UDT
}

func (u *UDT) Len() int {
	return len(u.fields)
}

// Values returns the fields decoded into their natural Go types, in declaration order. Null fields are nil.
func (u *UDT) Values() []interface{} {
	res := make([]interface{}, len(u.values))
	copy(res, u.values)
	return res
}

func (u *UDT) fieldIndex(name string) int {
	for i, f := range u.typ.UDT.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// UDTFieldAs decodes the field called name into T. A null field returns false and no error.
func UDTFieldAs[T Value](u *UDT, name string) (T, bool, error) {
	i := u.fieldIndex(name)
	if i < 0 {
		var zero T
		return zero, false, errors.NewCdrsErrorf(errors.ColumnNotLocated, "udt %s has no field %q", u.typ.UDT.Name, name)
	}
	return udtField[T](u, i)
}

// UDTFieldByIndex decodes the field at position index into T.
func UDTFieldByIndex[T Value](u *UDT, index int) (T, bool, error) {
	if index < 0 || index >= len(u.fields) {
		var zero T
		return zero, false, errors.NewCdrsErrorf(errors.ColumnNotLocated, "udt field index %d out of bounds, udt has %d fields",
			index, len(u.fields))
	}
	return udtField[T](u, index)
}

func udtField[T Value](u *UDT, i int) (T, bool, error) {
	field := u.typ.UDT.Fields[i]
	v, ok, err := Decode[T](field.Type, u.fields[i])
	if err != nil {
		return v, false, wrapElementError(fmt.Sprintf("udt field %s", field.Name), err)
	}
	return v, ok, nil
}
