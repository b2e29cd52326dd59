package types_test

import (
	"math"
	"net/netip"
	"testing"
	"time"

	"github.com/dahankzter/cdrs/errors"
	"github.com/dahankzter/cdrs/types"
	"github.com/dahankzter/cdrs/types/typestest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func requireMalformed(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.HasCode(err, errors.MalformedEncoding), "expected MalformedEncoding, got %v", err)
}

func TestDecodeIntegers(t *testing.T) {
	v64, err := types.DecodeBigint(typestest.Int64Bytes(math.MinInt64))
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v64)

	v32, err := types.DecodeInt(typestest.Int32Bytes(-42))
	require.NoError(t, err)
	require.Equal(t, int32(-42), v32)

	v16, err := types.DecodeSmallint(typestest.Int16Bytes(math.MaxInt16))
	require.NoError(t, err)
	require.Equal(t, int16(math.MaxInt16), v16)

	v8, err := types.DecodeTinyint(typestest.Int8Bytes(-1))
	require.NoError(t, err)
	require.Equal(t, int8(-1), v8)
}

func TestDecodeIntegersWrongWidth(t *testing.T) {
	_, err := types.DecodeBigint(typestest.Int32Bytes(1))
	requireMalformed(t, err)
	_, err = types.DecodeInt([]byte{})
	requireMalformed(t, err)
	_, err = types.DecodeInt(typestest.Int64Bytes(1))
	requireMalformed(t, err)
	_, err = types.DecodeSmallint([]byte{1})
	requireMalformed(t, err)
	_, err = types.DecodeTinyint([]byte{1, 2})
	requireMalformed(t, err)
}

func TestDecodeFloats(t *testing.T) {
	d, err := types.DecodeDouble(typestest.Float64Bytes(-1234.5678))
	require.NoError(t, err)
	require.Equal(t, -1234.5678, d)

	f, err := types.DecodeFloat(typestest.Float32Bytes(float32(3.25)))
	require.NoError(t, err)
	require.Equal(t, float32(3.25), f)

	_, err = types.DecodeDouble(typestest.Float32Bytes(1))
	requireMalformed(t, err)
	_, err = types.DecodeFloat(typestest.Float64Bytes(1))
	requireMalformed(t, err)
}

func TestDecodeBoolean(t *testing.T) {
	b, err := types.DecodeBoolean([]byte{1})
	require.NoError(t, err)
	require.True(t, b)
	b, err = types.DecodeBoolean([]byte{0})
	require.NoError(t, err)
	require.False(t, b)
	_, err = types.DecodeBoolean([]byte{})
	requireMalformed(t, err)
}

func TestDecodeText(t *testing.T) {
	s, err := types.DecodeVarchar([]byte("⌘ alice"))
	require.NoError(t, err)
	require.Equal(t, "⌘ alice", s)

	s, err = types.DecodeVarchar([]byte{})
	require.NoError(t, err)
	require.Equal(t, "", s)

	_, err = types.DecodeVarchar([]byte{0xff, 0xfe})
	requireMalformed(t, err)

	s, err = types.DecodeAscii([]byte("plain"))
	require.NoError(t, err)
	require.Equal(t, "plain", s)

	_, err = types.DecodeAscii([]byte("⌘"))
	requireMalformed(t, err)
}

func TestDecodeInet(t *testing.T) {
	v4 := netip.MustParseAddr("10.0.0.1")
	a, err := types.DecodeInet(typestest.InetBytes(v4))
	require.NoError(t, err)
	require.Equal(t, v4, a)

	v6 := netip.MustParseAddr("2001:db8::1")
	a, err = types.DecodeInet(typestest.InetBytes(v6))
	require.NoError(t, err)
	require.Equal(t, v6, a)

	_, err = types.DecodeInet([]byte{1, 2, 3, 4, 5})
	requireMalformed(t, err)
}

func TestDecodeUuids(t *testing.T) {
	u := uuid.MustParse("3f2504e0-4f89-41d3-9a0c-0305e82c3301")
	got, err := types.DecodeUuid(typestest.UUIDBytes(u))
	require.NoError(t, err)
	require.Equal(t, u, got)

	_, err = types.DecodeUuid(typestest.UUIDBytes(u)[:15])
	requireMalformed(t, err)

	// a random uuid is version 4, not a timeuuid
	_, err = types.DecodeTimeuuid(typestest.UUIDBytes(u))
	requireMalformed(t, err)

	tu := uuid.MustParse("d9428888-122b-11e1-b85c-61cd3cbb3210")
	got, err = types.DecodeTimeuuid(typestest.UUIDBytes(tu))
	require.NoError(t, err)
	require.Equal(t, tu, got)
}

func TestDecodeTimestamp(t *testing.T) {
	ts := time.Date(2021, 6, 1, 12, 30, 45, int(123*time.Millisecond), time.UTC)
	got, err := types.DecodeTimestamp(typestest.TimestampBytes(ts))
	require.NoError(t, err)
	require.True(t, ts.Equal(got))
	require.Equal(t, time.UTC, got.Location())

	before := time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err = types.DecodeTimestamp(typestest.TimestampBytes(before))
	require.NoError(t, err)
	require.True(t, before.Equal(got))

	_, err = types.DecodeTimestamp(typestest.Int32Bytes(1))
	requireMalformed(t, err)
}

func TestDecodeDateAndTime(t *testing.T) {
	d, err := types.DecodeDate([]byte{0x80, 0, 0, 0})
	require.NoError(t, err)
	require.True(t, time.Unix(0, 0).Equal(d))

	d, err = types.DecodeDate([]byte{0x80, 0, 0, 1})
	require.NoError(t, err)
	require.True(t, time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC).Equal(d))

	d, err = types.DecodeDate([]byte{0x7f, 0xff, 0xff, 0xff})
	require.NoError(t, err)
	require.True(t, time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC).Equal(d))

	tod, err := types.DecodeTime(typestest.Int64Bytes(int64(90 * time.Minute)))
	require.NoError(t, err)
	require.Equal(t, int64(90*time.Minute), tod)

	_, err = types.DecodeTime(typestest.Int64Bytes(int64(24 * time.Hour)))
	requireMalformed(t, err)
	_, err = types.DecodeTime(typestest.Int64Bytes(-1))
	requireMalformed(t, err)
}

func TestDecodeVarint(t *testing.T) {
	cases := []struct {
		bytes    []byte
		expected string
	}{
		{[]byte{0x00}, "0"},
		{[]byte{0x7f}, "127"},
		{[]byte{0x00, 0x80}, "128"},
		{[]byte{0x80}, "-128"},
		{[]byte{0xff}, "-1"},
		{[]byte{0xff, 0x7f}, "-129"},
	}
	for _, c := range cases {
		v, err := types.DecodeVarint(c.bytes)
		require.NoError(t, err)
		require.Equal(t, c.expected, v.String())
	}
	_, err := types.DecodeVarint([]byte{})
	requireMalformed(t, err)
}

func TestDecodeDecimal(t *testing.T) {
	cases := []struct {
		scale    int32
		unscaled []byte
		expected string
	}{
		{2, []byte{0x30, 0x39}, "123.45"},
		{2, []byte{0xff}, "-0.01"},
		{0, []byte{0x00}, "0"},
		{-2, []byte{0x05}, "500"},
		{3, []byte{0x30, 0x39}, "12.345"},
		{5, []byte{0x30, 0x39}, "0.12345"},
		{5000, []byte{0x01}, "1E-5000"},
		{-5000, []byte{0xff}, "-1E5000"},
		{math.MaxInt32, []byte{0x30, 0x39}, "12345E-2147483647"},
		{math.MinInt32, []byte{0x07}, "7E2147483648"},
	}
	for _, c := range cases {
		b := append(typestest.Int32Bytes(c.scale), c.unscaled...)
		v, err := types.DecodeDecimal(b)
		require.NoError(t, err)
		require.Equal(t, c.expected, v)
	}
	_, err := types.DecodeDecimal(typestest.Int32Bytes(2))
	requireMalformed(t, err)
	_, err = types.DecodeDecimal([]byte{0, 0, 0})
	requireMalformed(t, err)
}

func TestDecodeBlobCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	b, err := types.DecodeBlob(src)
	require.NoError(t, err)
	src[0] = 9
	require.Equal(t, []byte{1, 2, 3}, b)
}
