package types

import (
	"fmt"
	"net/netip"
	"time"

	"github.com/dahankzter/cdrs/errors"
	"github.com/google/uuid"
)

// Value is the closed set of Go types a column can be decoded into.
type Value interface {
	string | bool | int64 | int32 | int16 | int8 | float64 | float32 |
		netip.Addr | uuid.UUID | time.Time | []byte |
		*List | *Map | *UDT | *Tuple
}

type target int

const (
	targetString target = iota
	targetBool
	targetInt64
	targetInt32
	targetInt16
	targetInt8
	targetFloat64
	targetFloat32
	targetInet
	targetUUID
	targetTimestamp
	targetBlob
	targetList
	targetMap
	targetUDT
	targetTuple
)

type decoderFunc func(typ ColTypeOption, b []byte) (interface{}, error)

// targetDecoder binds one Go target type to the wire types it accepts and the decoder for each.
type targetDecoder struct {
	name    string
	decoder map[ColType]decoderFunc
}

var decoders map[target]targetDecoder

// naturalDecoders decode each wire type into its default Go representation.
var naturalDecoders map[ColType]decoderFunc

func init() {
	varchar := scalar(DecodeVarchar)
	ascii := scalar(DecodeAscii)
	boolean := scalar(DecodeBoolean)
	bigint := scalar(DecodeBigint)
	timeOfDay := scalar(DecodeTime)
	integer := scalar(DecodeInt)
	smallint := scalar(DecodeSmallint)
	tinyint := scalar(DecodeTinyint)
	double := scalar(DecodeDouble)
	float := scalar(DecodeFloat)
	inet := scalar(DecodeInet)
	uid := scalar(DecodeUuid)
	timeuuid := scalar(DecodeTimeuuid)
	timestamp := scalar(DecodeTimestamp)
	blob := scalar(DecodeBlob)
	list := func(typ ColTypeOption, b []byte) (interface{}, error) { return decodeList(typ, b) }
	mp := func(typ ColTypeOption, b []byte) (interface{}, error) { return decodeMap(typ, b) }
	udt := func(typ ColTypeOption, b []byte) (interface{}, error) { return decodeUDT(typ, b) }
	tuple := func(typ ColTypeOption, b []byte) (interface{}, error) { return decodeTuple(typ, b) }

	decoders = map[target]targetDecoder{
		targetString:    {"string", map[ColType]decoderFunc{Varchar: varchar, Ascii: ascii}},
		targetBool:      {"bool", map[ColType]decoderFunc{Boolean: boolean}},
		targetInt64:     {"int64", map[ColType]decoderFunc{Bigint: bigint, Counter: bigint, Time: timeOfDay}},
		targetInt32:     {"int32", map[ColType]decoderFunc{Int: integer}},
		targetInt16:     {"int16", map[ColType]decoderFunc{Smallint: smallint}},
		targetInt8:      {"int8", map[ColType]decoderFunc{Tinyint: tinyint}},
		targetFloat64:   {"float64", map[ColType]decoderFunc{Double: double}},
		targetFloat32:   {"float32", map[ColType]decoderFunc{Float: float}},
		targetInet:      {"netip.Addr", map[ColType]decoderFunc{Inet: inet}},
		targetUUID:      {"uuid.UUID", map[ColType]decoderFunc{Uuid: uid, Timeuuid: timeuuid}},
		targetTimestamp: {"time.Time", map[ColType]decoderFunc{Timestamp: timestamp}},
		// Wire types without a typed target of their own are readable as raw bytes.
		targetBlob: {"[]byte", map[ColType]decoderFunc{Blob: blob, Custom: blob, Decimal: blob, Varint: blob, Date: blob}},
		targetList:  {"*types.List", map[ColType]decoderFunc{ListType: list, SetType: list}},
		targetMap:   {"*types.Map", map[ColType]decoderFunc{MapType: mp}},
		targetUDT:   {"*types.UDT", map[ColType]decoderFunc{UdtType: udt}},
		targetTuple: {"*types.Tuple", map[ColType]decoderFunc{TupleType: tuple}},
	}

	naturalDecoders = map[ColType]decoderFunc{
		Custom:    blob,
		Ascii:     ascii,
		Bigint:    bigint,
		Blob:      blob,
		Boolean:   boolean,
		Counter:   bigint,
		Decimal:   scalar(DecodeDecimal),
		Double:    double,
		Float:     float,
		Int:       integer,
		Timestamp: timestamp,
		Uuid:      uid,
		Varchar:   varchar,
		Varint:    scalar(DecodeVarint),
		Timeuuid:  timeuuid,
		Inet:      inet,
		Date:      scalar(DecodeDate),
		Time:      timeOfDay,
		Smallint:  smallint,
		Tinyint:   tinyint,
		ListType:  list,
		MapType:   mp,
		SetType:   list,
		UdtType:   udt,
		TupleType: tuple,
	}
}

func scalar[T any](f func(b []byte) (T, error)) decoderFunc {
	return func(_ ColTypeOption, b []byte) (interface{}, error) {
		return f(b)
	}
}

func targetOf(v interface{}) (target, bool) {
	switch v.(type) {
	case string:
		return targetString, true
	case bool:
		return targetBool, true
	case int64:
		return targetInt64, true
	case int32:
		return targetInt32, true
	case int16:
		return targetInt16, true
	case int8:
		return targetInt8, true
	case float64:
		return targetFloat64, true
	case float32:
		return targetFloat32, true
	case netip.Addr:
		return targetInet, true
	case uuid.UUID:
		return targetUUID, true
	case time.Time:
		return targetTimestamp, true
	case []byte:
		return targetBlob, true
	case *List:
		return targetList, true
	case *Map:
		return targetMap, true
	case *UDT:
		return targetUDT, true
	case *Tuple:
		return targetTuple, true
	default:
		return 0, false
	}
}

// lookup returns the decoder turning typ into T, or a TypeMismatch error when T cannot hold that wire type.
func lookup[T any](typ ColTypeOption) (decoderFunc, error) {
	var zero T
	t, ok := targetOf(zero)
	if !ok {
		return nil, errors.NewTypeMismatchError(typ, fmt.Sprintf("%T", zero))
	}
	td := decoders[t]
	dec, ok := td.decoder[typ.ID]
	if !ok {
		return nil, errors.NewTypeMismatchError(typ, td.name)
	}
	return dec, nil
}

func decodeWith[T any](dec decoderFunc, typ ColTypeOption, cb CBytes) (T, bool, error) {
	var zero T
	if cb.IsNull() {
		return zero, false, nil
	}
	v, err := dec(typ, cb.Bytes())
	if err != nil {
		return zero, false, err
	}
	return v.(T), true, nil
}

// Decode decodes cb, described by typ, into T. A null value returns false and no error whatever T is. A wire type
// T cannot hold fails with TypeMismatch and bytes that do not form a valid value fail with MalformedEncoding.
func Decode[T Value](typ ColTypeOption, cb CBytes) (T, bool, error) {
	return decode[T](typ, cb)
}

func decode[T any](typ ColTypeOption, cb CBytes) (T, bool, error) {
	var zero T
	if cb.IsNull() {
		return zero, false, nil
	}
	dec, err := lookup[T](typ)
	if err != nil {
		return zero, false, err
	}
	return decodeWith[T](dec, typ, cb)
}

// DecodeNatural decodes cb into the default Go type for its wire type: the typed targets of Decode, *big.Int for
// varint, a plain notation string for decimal and a UTC time.Time for date. A null value decodes to nil.
func DecodeNatural(typ ColTypeOption, cb CBytes) (interface{}, error) {
	if cb.IsNull() {
		return nil, nil
	}
	dec, ok := naturalDecoders[typ.ID]
	if !ok {
		return nil, errors.NewMalformedEncodingError("unknown wire type %s", typ.ID)
	}
	return dec(typ, cb.Bytes())
}

// Accepts reports whether a value of wire type typ can be decoded into T.
func Accepts[T Value](typ ColTypeOption) bool {
	_, err := lookup[T](typ)
	return err == nil
}
