package types

import (
	"github.com/dahankzter/cdrs/errors"
)

// CBytes is the raw payload of one column of one row. Absent (null) and present-but-empty are distinct states:
// a null column decodes to no value, an empty one is handed to the decoder like any other buffer.
type CBytes struct {
	bytes []byte
	null  bool
}

// NewCBytes wraps b as a present value. A nil slice is treated as empty, not null.
func NewCBytes(b []byte) CBytes {
	if b == nil {
		b = []byte{}
	}
	return CBytes{bytes: b}
}

func EmptyCBytes() CBytes {
	return CBytes{bytes: []byte{}}
}

func NullCBytes() CBytes {
	return CBytes{null: true}
}

func (c CBytes) IsNull() bool {
	return c.null
}

func (c CBytes) IsEmpty() bool {
	return !c.null && len(c.bytes) == 0
}

// Bytes returns the underlying buffer, nil for a null value. Callers must not modify it.
func (c CBytes) Bytes() []byte {
	if c.null {
		return nil
	}
	return c.bytes
}

func (c CBytes) Len() int {
	return len(c.bytes)
}

// ReadCBytes reads one [bytes] value starting at offset: a 4 byte signed big endian length followed by that many
// bytes. A negative length is null and zero is empty. It returns the value and the offset after it.
func ReadCBytes(buffer []byte, offset int) (CBytes, int, error) {
	if offset < 0 || len(buffer)-offset < 4 {
		return CBytes{}, 0, errors.NewMalformedEncodingError("need 4 bytes for a length prefix at offset %d, have %d",
			offset, remaining(buffer, offset))
	}
	l, offset := ReadInt32FromBufferBE(buffer, offset)
	if l < 0 {
		return NullCBytes(), offset, nil
	}
	n := int(l)
	if len(buffer)-offset < n {
		return CBytes{}, 0, errors.NewMalformedEncodingError("length prefix %d exceeds the %d remaining bytes",
			n, len(buffer)-offset)
	}
	return NewCBytes(buffer[offset : offset+n]), offset + n, nil
}

// ReadCBytesSequence reads [bytes] values until buffer is exhausted.
func ReadCBytesSequence(buffer []byte) ([]CBytes, error) {
	var res []CBytes
	offset := 0
	for offset < len(buffer) {
		var cb CBytes
		var err error
		cb, offset, err = ReadCBytes(buffer, offset)
		if err != nil {
			return nil, err
		}
		res = append(res, cb)
	}
	return res, nil
}

func remaining(buffer []byte, offset int) int {
	if offset < 0 || offset > len(buffer) {
		return 0
	}
	return len(buffer) - offset
}
