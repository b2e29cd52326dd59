package types

import (
	"encoding/binary"
	"math"
)

// Readers for the big endian primitives of the native protocol. Callers check the buffer is long enough first.

var bigEndian = binary.BigEndian

func ReadUint16FromBufferBE(buffer []byte, offset int) (uint16, int) {
	return bigEndian.Uint16(buffer[offset:]), offset + 2
}

func ReadUint32FromBufferBE(buffer []byte, offset int) (uint32, int) {
	return bigEndian.Uint32(buffer[offset:]), offset + 4
}

func ReadUint64FromBufferBE(buffer []byte, offset int) (uint64, int) {
	return bigEndian.Uint64(buffer[offset:]), offset + 8
}

func ReadInt16FromBufferBE(buffer []byte, offset int) (int16, int) {
	u, off := ReadUint16FromBufferBE(buffer, offset)
	return int16(u), off
}

func ReadInt32FromBufferBE(buffer []byte, offset int) (int32, int) {
	u, off := ReadUint32FromBufferBE(buffer, offset)
	return int32(u), off
}

func ReadInt64FromBufferBE(buffer []byte, offset int) (int64, int) {
	u, off := ReadUint64FromBufferBE(buffer, offset)
	return int64(u), off
}

func ReadFloat64FromBufferBE(buffer []byte, offset int) (val float64, off int) {
	var u uint64
	u, offset = ReadUint64FromBufferBE(buffer, offset)
	val = math.Float64frombits(u)
	return val, offset
}

func ReadFloat32FromBufferBE(buffer []byte, offset int) (val float32, off int) {
	var u uint32
	u, offset = ReadUint32FromBufferBE(buffer, offset)
	val = math.Float32frombits(u)
	return val, offset
}
