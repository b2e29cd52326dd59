package types

import (
	"fmt"
	"strings"
)

// ColType is the option id the native protocol uses to tag how a column's bytes are encoded.
type ColType uint16

const (
	Custom    ColType = 0x0000
	Ascii     ColType = 0x0001
	Bigint    ColType = 0x0002
	Blob      ColType = 0x0003
	Boolean   ColType = 0x0004
	Counter   ColType = 0x0005
	Decimal   ColType = 0x0006
	Double    ColType = 0x0007
	Float     ColType = 0x0008
	Int       ColType = 0x0009
	Timestamp ColType = 0x000B
	Uuid      ColType = 0x000C
	Varchar   ColType = 0x000D
	Varint    ColType = 0x000E
	Timeuuid  ColType = 0x000F
	Inet      ColType = 0x0010
	Date      ColType = 0x0011
	Time      ColType = 0x0012
	Smallint  ColType = 0x0013
	Tinyint   ColType = 0x0014
	ListType  ColType = 0x0020
	MapType   ColType = 0x0021
	SetType   ColType = 0x0022
	UdtType   ColType = 0x0030
	TupleType ColType = 0x0031
)

var colTypeNames = map[ColType]string{
	Custom:    "custom",
	Ascii:     "ascii",
	Bigint:    "bigint",
	Blob:      "blob",
	Boolean:   "boolean",
	Counter:   "counter",
	Decimal:   "decimal",
	Double:    "double",
	Float:     "float",
	Int:       "int",
	Timestamp: "timestamp",
	Uuid:      "uuid",
	Varchar:   "varchar",
	Varint:    "varint",
	Timeuuid:  "timeuuid",
	Inet:      "inet",
	Date:      "date",
	Time:      "time",
	Smallint:  "smallint",
	Tinyint:   "tinyint",
	ListType:  "list",
	MapType:   "map",
	SetType:   "set",
	UdtType:   "udt",
	TupleType: "tuple",
}

func (c ColType) String() string {
	if name, ok := colTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%04x)", uint16(c))
}

// Valid reports whether c is one of the option ids defined by the protocol.
func (c ColType) Valid() bool {
	_, ok := colTypeNames[c]
	return ok
}

func (c ColType) IsCollection() bool {
	return c == ListType || c == SetType || c == MapType
}

// UDTField is one named, typed field of a user defined type.
type UDTField struct {
	Name string
	Type ColTypeOption
}

// UDTInfo describes a user defined type as sent in result metadata.
type UDTInfo struct {
	Keyspace string
	Name     string
	Fields   []UDTField
}

// ColTypeOption is a full type descriptor: the wire tag plus whatever nested descriptors the tag needs. Elem is
// set for lists and sets, Key and Value for maps, UDT for user defined types and Tuple for tuples.
type ColTypeOption struct {
	ID     ColType
	Custom string
	Elem   *ColTypeOption
	Key    *ColTypeOption
	Value  *ColTypeOption
	UDT    *UDTInfo
	Tuple  []ColTypeOption
}

func Simple(id ColType) ColTypeOption {
	return ColTypeOption{ID: id}
}

func CustomOf(className string) ColTypeOption {
	return ColTypeOption{ID: Custom, Custom: className}
}

func ListOf(elem ColTypeOption) ColTypeOption {
	return ColTypeOption{ID: ListType, Elem: &elem}
}

func SetOf(elem ColTypeOption) ColTypeOption {
	return ColTypeOption{ID: SetType, Elem: &elem}
}

func MapOf(key ColTypeOption, value ColTypeOption) ColTypeOption {
	return ColTypeOption{ID: MapType, Key: &key, Value: &value}
}

func TupleOf(elems ...ColTypeOption) ColTypeOption {
	return ColTypeOption{ID: TupleType, Tuple: elems}
}

func UDTOf(keyspace string, name string, fields ...UDTField) ColTypeOption {
	return ColTypeOption{ID: UdtType, UDT: &UDTInfo{Keyspace: keyspace, Name: name, Fields: fields}}
}

// Clone returns a deep copy of o that shares no nested descriptors with it.
func (o ColTypeOption) Clone() ColTypeOption {
	res := ColTypeOption{ID: o.ID, Custom: o.Custom}
	if o.Elem != nil {
		elem := o.Elem.Clone()
		res.Elem = &elem
	}
	if o.Key != nil {
		key := o.Key.Clone()
		res.Key = &key
	}
	if o.Value != nil {
		value := o.Value.Clone()
		res.Value = &value
	}
	if o.UDT != nil {
		info := UDTInfo{Keyspace: o.UDT.Keyspace, Name: o.UDT.Name}
		if o.UDT.Fields != nil {
			info.Fields = make([]UDTField, len(o.UDT.Fields))
			for i, f := range o.UDT.Fields {
				info.Fields[i] = UDTField{Name: f.Name, Type: f.Type.Clone()}
			}
		}
		res.UDT = &info
	}
	if o.Tuple != nil {
		res.Tuple = make([]ColTypeOption, len(o.Tuple))
		for i, t := range o.Tuple {
			res.Tuple[i] = t.Clone()
		}
	}
	return res
}

// String renders the descriptor in CQL syntax, e.g. map<varchar, list<int>>.
func (o ColTypeOption) String() string {
	switch o.ID {
	case Custom:
		if o.Custom != "" {
			return fmt.Sprintf("custom<%s>", o.Custom)
		}
		return o.ID.String()
	case ListType, SetType:
		if o.Elem == nil {
			return o.ID.String()
		}
		return fmt.Sprintf("%s<%s>", o.ID, o.Elem)
	case MapType:
		if o.Key == nil || o.Value == nil {
			return o.ID.String()
		}
		return fmt.Sprintf("map<%s, %s>", o.Key, o.Value)
	case TupleType:
		parts := make([]string, len(o.Tuple))
		for i, t := range o.Tuple {
			parts[i] = t.String()
		}
		return fmt.Sprintf("tuple<%s>", strings.Join(parts, ", "))
	case UdtType:
		if o.UDT == nil {
			return o.ID.String()
		}
		parts := make([]string, len(o.UDT.Fields))
		for i, f := range o.UDT.Fields {
			parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Type)
		}
		name := o.UDT.Name
		if o.UDT.Keyspace != "" {
			name = o.UDT.Keyspace + "." + name
		}
		return fmt.Sprintf("%s<%s>", name, strings.Join(parts, ", "))
	default:
		return o.ID.String()
	}
}

// ColSpec describes one column of a result set. Keyspace and Table are only set when the server sends them.
type ColSpec struct {
	Keyspace string
	Table    string
	Name     string
	Type     ColTypeOption
}

func NewColSpec(name string, typ ColTypeOption) ColSpec {
	return ColSpec{Name: name, Type: typ}
}

// Clone returns a copy of s with a deep copy of its type.
func (s ColSpec) Clone() ColSpec {
	s.Type = s.Type.Clone()
	return s
}

func (s ColSpec) String() string {
	return fmt.Sprintf("%s %s", s.Name, s.Type)
}
