package types

import (
	"fmt"
	"math/big"
	"net/netip"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dahankzter/cdrs/errors"
	"github.com/google/uuid"
)

// Dates are sent as unsigned days with the epoch at 2^31.
const dateEpochDay = 1 << 31

// Decimals with a larger scale, in either direction, are rendered in exponent form.
const maxPlainDecimalScale = 1 << 12

func checkLen(typ ColType, b []byte, want int) error {
	if len(b) != want {
		return errors.NewMalformedEncodingError("%s needs exactly %d bytes, got %d", typ, want, len(b))
	}
	return nil
}

func DecodeVarchar(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.NewMalformedEncodingError("varchar is not valid UTF-8")
	}
	return string(b), nil
}

func DecodeAscii(b []byte) (string, error) {
	for i, c := range b {
		if c > 0x7F {
			return "", errors.NewMalformedEncodingError("ascii has non ascii byte 0x%02x at offset %d", c, i)
		}
	}
	return string(b), nil
}

func DecodeBoolean(b []byte) (bool, error) {
	if err := checkLen(Boolean, b, 1); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func DecodeBigint(b []byte) (int64, error) {
	if err := checkLen(Bigint, b, 8); err != nil {
		return 0, err
	}
	v, _ := ReadInt64FromBufferBE(b, 0)
	return v, nil
}

func DecodeInt(b []byte) (int32, error) {
	if err := checkLen(Int, b, 4); err != nil {
		return 0, err
	}
	v, _ := ReadInt32FromBufferBE(b, 0)
	return v, nil
}

func DecodeSmallint(b []byte) (int16, error) {
	if err := checkLen(Smallint, b, 2); err != nil {
		return 0, err
	}
	v, _ := ReadInt16FromBufferBE(b, 0)
	return v, nil
}

func DecodeTinyint(b []byte) (int8, error) {
	if err := checkLen(Tinyint, b, 1); err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func DecodeDouble(b []byte) (float64, error) {
	if err := checkLen(Double, b, 8); err != nil {
		return 0, err
	}
	v, _ := ReadFloat64FromBufferBE(b, 0)
	return v, nil
}

func DecodeFloat(b []byte) (float32, error) {
	if err := checkLen(Float, b, 4); err != nil {
		return 0, err
	}
	v, _ := ReadFloat32FromBufferBE(b, 0)
	return v, nil
}

func DecodeInet(b []byte) (netip.Addr, error) {
	switch len(b) {
	case 4:
		return netip.AddrFrom4([4]byte{b[0], b[1], b[2], b[3]}), nil
	case 16:
		var a [16]byte
		copy(a[:], b)
		return netip.AddrFrom16(a), nil
	default:
		return netip.Addr{}, errors.NewMalformedEncodingError("inet needs 4 or 16 bytes, got %d", len(b))
	}
}

func DecodeUuid(b []byte) (uuid.UUID, error) {
	if err := checkLen(Uuid, b, 16); err != nil {
		return uuid.UUID{}, err
	}
	u, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.UUID{}, errors.NewMalformedEncodingError("uuid: %v", err)
	}
	return u, nil
}

func DecodeTimeuuid(b []byte) (uuid.UUID, error) {
	if err := checkLen(Timeuuid, b, 16); err != nil {
		return uuid.UUID{}, err
	}
	u, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.UUID{}, errors.NewMalformedEncodingError("timeuuid: %v", err)
	}
	if u.Version() != 1 {
		return uuid.UUID{}, errors.NewMalformedEncodingError("timeuuid must be a version 1 uuid, got version %d", u.Version())
	}
	return u, nil
}

// DecodeTimestamp decodes milliseconds since the unix epoch. The result is in UTC.
func DecodeTimestamp(b []byte) (time.Time, error) {
	if err := checkLen(Timestamp, b, 8); err != nil {
		return time.Time{}, err
	}
	ms, _ := ReadInt64FromBufferBE(b, 0)
	return time.UnixMilli(ms).UTC(), nil
}

// DecodeTime decodes nanoseconds since midnight.
func DecodeTime(b []byte) (int64, error) {
	if err := checkLen(Time, b, 8); err != nil {
		return 0, err
	}
	v, _ := ReadInt64FromBufferBE(b, 0)
	if v < 0 || v >= int64(24*time.Hour) {
		return 0, errors.NewMalformedEncodingError("time %d is outside of a day", v)
	}
	return v, nil
}

func DecodeDate(b []byte) (time.Time, error) {
	if err := checkLen(Date, b, 4); err != nil {
		return time.Time{}, err
	}
	d, _ := ReadUint32FromBufferBE(b, 0)
	days := int64(d) - dateEpochDay
	return time.Unix(days*24*60*60, 0).UTC(), nil
}

// DecodeBlob returns a copy of b, so the value outlives the row buffer.
func DecodeBlob(b []byte) ([]byte, error) {
	res := make([]byte, len(b))
	copy(res, b)
	return res, nil
}

// DecodeVarint decodes a big endian two's complement integer of any width.
func DecodeVarint(b []byte) (*big.Int, error) {
	if len(b) == 0 {
		return nil, errors.NewMalformedEncodingError("varint needs at least 1 byte")
	}
	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(len(b))*8))
	}
	return v, nil
}

// DecodeDecimal decodes a 4 byte scale followed by a varint unscaled value. It is rendered in plain notation, or
// as <unscaled>E<-scale> when the scale is too large to write out.
func DecodeDecimal(b []byte) (string, error) {
	if len(b) < 5 {
		return "", errors.NewMalformedEncodingError("decimal needs at least 5 bytes, got %d", len(b))
	}
	scale, _ := ReadInt32FromBufferBE(b, 0)
	unscaled, err := DecodeVarint(b[4:])
	if err != nil {
		return "", err
	}
	if scale > maxPlainDecimalScale || scale < -maxPlainDecimalScale {
		return fmt.Sprintf("%sE%d", unscaled, -int64(scale)), nil
	}
	neg := unscaled.Sign() < 0
	digits := new(big.Int).Abs(unscaled).String()
	switch {
	case scale <= 0:
		digits += strings.Repeat("0", int(-scale))
	case int(scale) >= len(digits):
		digits = "0." + strings.Repeat("0", int(scale)-len(digits)) + digits
	default:
		digits = digits[:len(digits)-int(scale)] + "." + digits[len(digits)-int(scale):]
	}
	if neg {
		digits = "-" + digits
	}
	return digits, nil
}
