package typestest

import (
	"math"
	"net/netip"
	"time"

	"github.com/dahankzter/cdrs/types"
	"github.com/google/uuid"
)

// Builders for wire bytes used by tests of the decoding layer. They live in a normal file rather than a _test.go
// one so tests in other packages can use them. Nothing outside tests should import this package.

func AppendUint16ToBufferBE(buffer []byte, v uint16) []byte {
	return append(buffer, byte(v>>8), byte(v))
}

func AppendUint32ToBufferBE(buffer []byte, v uint32) []byte {
	return append(buffer, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func AppendUint64ToBufferBE(buffer []byte, v uint64) []byte {
	return append(buffer, byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32), byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func Int64Bytes(v int64) []byte {
	return AppendUint64ToBufferBE(nil, uint64(v))
}

func Int32Bytes(v int32) []byte {
	return AppendUint32ToBufferBE(nil, uint32(v))
}

func Int16Bytes(v int16) []byte {
	return AppendUint16ToBufferBE(nil, uint16(v))
}

func Int8Bytes(v int8) []byte {
	return []byte{byte(v)}
}

func Float64Bytes(v float64) []byte {
	return AppendUint64ToBufferBE(nil, math.Float64bits(v))
}

func Float32Bytes(v float32) []byte {
	return AppendUint32ToBufferBE(nil, math.Float32bits(v))
}

func BoolBytes(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

func TimestampBytes(t time.Time) []byte {
	return Int64Bytes(t.UnixMilli())
}

func InetBytes(a netip.Addr) []byte {
	return a.AsSlice()
}

func UUIDBytes(u uuid.UUID) []byte {
	return u[:]
}

// Value wraps b as a present column.
func Value(b []byte) types.CBytes {
	return types.NewCBytes(b)
}

func Null() types.CBytes {
	return types.NullCBytes()
}

// AppendCBytes appends cb as a [bytes] value: an int length, -1 for null, then the bytes.
func AppendCBytes(buffer []byte, cb types.CBytes) []byte {
	if cb.IsNull() {
		return AppendUint32ToBufferBE(buffer, math.MaxUint32)
	}
	buffer = AppendUint32ToBufferBE(buffer, uint32(cb.Len()))
	return append(buffer, cb.Bytes()...)
}

// SequenceBytes encodes cbs back to back with no count, the layout of udt and tuple values.
func SequenceBytes(cbs ...types.CBytes) []byte {
	buffer := []byte{}
	for _, cb := range cbs {
		buffer = AppendCBytes(buffer, cb)
	}
	return buffer
}

// ListBytes encodes a list or set value.
func ListBytes(elems ...types.CBytes) []byte {
	buffer := AppendUint32ToBufferBE(nil, uint32(len(elems)))
	return append(buffer, SequenceBytes(elems...)...)
}

// MapBytes encodes a map value from alternating keys and values.
func MapBytes(keysAndValues ...types.CBytes) []byte {
	if len(keysAndValues)%2 != 0 {
		panic("keys and values must come in pairs")
	}
	buffer := AppendUint32ToBufferBE(nil, uint32(len(keysAndValues)/2))
	return append(buffer, SequenceBytes(keysAndValues...)...)
}

// ColSpecs builds column specs from alternating names and CQL type expressions.
func ColSpecs(namesAndTypes ...string) []types.ColSpec {
	if len(namesAndTypes)%2 != 0 {
		panic("names and types must come in pairs")
	}
	specs := make([]types.ColSpec, 0, len(namesAndTypes)/2)
	for i := 0; i < len(namesAndTypes); i += 2 {
		specs = append(specs, types.NewColSpec(namesAndTypes[i], types.MustParseColType(namesAndTypes[i+1])))
	}
	return specs
}
