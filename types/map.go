package types

import (
	"fmt"

	"github.com/dahankzter/cdrs/errors"
)

// MapEntry is one key / value pair of a map decoded into natural Go types.
type MapEntry struct {
	Key   interface{}
	Value interface{}
}

// Pair is one typed key / value pair of a map.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Map is a decoded map. Entries keep the order they were sent in, which for a map column is key order.
type Map struct {
	typ     ColTypeOption
	keys    []CBytes
	vals    []CBytes
	entries []MapEntry
}

func decodeMap(typ ColTypeOption, b []byte) (*Map, error) {
	if typ.Key == nil || typ.Value == nil {
		return nil, errors.NewMalformedEncodingError("map descriptor has no key or value type")
	}
	n, offset, err := readElementCount(MapType, b, 8)
	if err != nil {
		return nil, err
	}
	m := &Map{
		typ:     typ,
		keys:    make([]CBytes, 0, n),
		vals:    make([]CBytes, 0, n),
		entries: make([]MapEntry, 0, n),
	}
	for i := 0; i < n; i++ {
		var k, v CBytes
		k, offset, err = ReadCBytes(b, offset)
		if err != nil {
			return nil, errors.NewMalformedEncodingError("map key %d: %s", i, describe(err))
		}
		v, offset, err = ReadCBytes(b, offset)
		if err != nil {
			return nil, errors.NewMalformedEncodingError("map value %d: %s", i, describe(err))
		}
		if k.IsNull() {
			return nil, errors.NewMalformedEncodingError("map key %d is null", i)
		}
		if v.IsNull() {
			return nil, errors.NewMalformedEncodingError("map value %d is null", i)
		}
		kv, err := DecodeNatural(*typ.Key, k)
		if err != nil {
			return nil, errors.NewCompositeElementError(fmt.Sprintf("map key %d", i), err)
		}
		vv, err := DecodeNatural(*typ.Value, v)
		if err != nil {
			return nil, errors.NewCompositeElementError(fmt.Sprintf("map value %d", i), err)
		}
		m.keys = append(m.keys, k)
		m.vals = append(m.vals, v)
		m.entries = append(m.entries, MapEntry{Key: kv, Value: vv})
	}
	if offset != len(b) {
		return nil, trailingBytesError(MapType, len(b)-offset)
	}
	return m, nil
}

func (m *Map) Type() ColTypeOption {
	return m.typ
}

func (m *Map) KeyType() ColTypeOption {
	return *m.typ.Key
}

func (m *Map) ValueType() ColTypeOption {
	return *m.typ.Value
}

func (m *Map) Len() int {
	return len(m.keys)
}

// Entries returns the entries decoded into their natural Go types, in wire order.
func (m *Map) Entries() []MapEntry {
	res := make([]MapEntry, len(m.entries))
	copy(res, m.entries)
	return res
}

// MapPairs decodes every entry of m into K and V, keeping wire order.
func MapPairs[K Value, V Value](m *Map) ([]Pair[K, V], error) {
	keys, vals, err := mapDecode[K, V](m)
	if err != nil {
		return nil, err
	}
	res := make([]Pair[K, V], len(keys))
	for i := range keys {
		res[i] = Pair[K, V]{Key: keys[i], Value: vals[i]}
	}
	return res, nil
}

// MapAs decodes m into a Go map. K and V must be types Decode supports; anything else fails with TypeMismatch.
func MapAs[K comparable, V any](m *Map) (map[K]V, error) {
	keys, vals, err := mapDecode[K, V](m)
	if err != nil {
		return nil, err
	}
	res := make(map[K]V, len(keys))
	for i, k := range keys {
		res[k] = vals[i]
	}
	return res, nil
}

func mapDecode[K any, V any](m *Map) ([]K, []V, error) {
	keyType, valType := m.KeyType(), m.ValueType()
	kdec, err := lookup[K](keyType)
	if err != nil {
		return nil, nil, err
	}
	vdec, err := lookup[V](valType)
	if err != nil {
		return nil, nil, err
	}
	keys := make([]K, len(m.keys))
	vals := make([]V, len(m.vals))
	for i := range m.keys {
		if keys[i], _, err = decodeWith[K](kdec, keyType, m.keys[i]); err != nil {
			return nil, nil, errors.NewCompositeElementError(fmt.Sprintf("map key %d", i), err)
		}
		if vals[i], _, err = decodeWith[V](vdec, valType, m.vals[i]); err != nil {
			return nil, nil, errors.NewCompositeElementError(fmt.Sprintf("map value %d", i), err)
		}
	}
	return keys, vals, nil
}
