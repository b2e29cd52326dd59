package types

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer/stateful"
	"github.com/dahankzter/cdrs/errors"
)

var (
	typeLexer = stateful.MustSimple([]stateful.Rule{
		{Name: `Ident`, Pattern: `[a-zA-Z_][a-zA-Z_0-9]*`, Action: nil},
		{Name: `Punct`, Pattern: `[<>,.:]`, Action: nil},
		{Name: `Whitespace`, Pattern: `\s+`, Action: nil},
	})
	typeParser = participle.MustBuild(&typeExpr{},
		participle.Lexer(typeLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

// typeExpr is a CQL type as written in a schema, e.g. map<text, frozen<list<int>>>. A dotted name with named
// parameters, such as ks.address<street: text>, is a user defined type.
type typeExpr struct {
	Name   []string     `parser:"@Ident ( \".\" @Ident )*"`
	Params []*typeParam `parser:"( \"<\" @@ ( \",\" @@ )* \">\" )?"`
}

type typeParam struct {
	Field string    `parser:"( @Ident \":\" )?"`
	Type  *typeExpr `parser:"@@"`
}

var simpleTypes = map[string]ColType{
	"ascii":     Ascii,
	"bigint":    Bigint,
	"blob":      Blob,
	"boolean":   Boolean,
	"counter":   Counter,
	"custom":    Custom,
	"decimal":   Decimal,
	"double":    Double,
	"float":     Float,
	"int":       Int,
	"timestamp": Timestamp,
	"uuid":      Uuid,
	"text":      Varchar,
	"varchar":   Varchar,
	"varint":    Varint,
	"timeuuid":  Timeuuid,
	"inet":      Inet,
	"date":      Date,
	"time":      Time,
	"smallint":  Smallint,
	"tinyint":   Tinyint,
}

// ParseColType parses a CQL type expression into a type descriptor. Keywords are case insensitive.
func ParseColType(expr string) (ColTypeOption, error) {
	te := &typeExpr{}
	if err := typeParser.ParseString("", expr, te); err != nil {
		return ColTypeOption{}, errors.NewInvalidTypeExpressionError(expr, err)
	}
	opt, err := te.toOption()
	if err != nil {
		return ColTypeOption{}, errors.NewInvalidTypeExpressionError(expr, err)
	}
	return opt, nil
}

// MustParseColType is like ParseColType but panics on error. Intended for fixed schemas in tests and tools.
func MustParseColType(expr string) ColTypeOption {
	opt, err := ParseColType(expr)
	if err != nil {
		panic(err)
	}
	return opt
}

func (e *typeExpr) toOption() (ColTypeOption, error) {
	name := strings.Join(e.Name, ".")
	keyword := strings.ToLower(name)
	if id, ok := simpleTypes[keyword]; ok {
		if len(e.Params) != 0 {
			return ColTypeOption{}, errors.Errorf("%s takes no type parameters", keyword)
		}
		return Simple(id), nil
	}
	switch keyword {
	case "frozen":
		params, err := e.unnamedParams(keyword, 1)
		if err != nil {
			return ColTypeOption{}, err
		}
		return params[0], nil
	case "list", "set":
		params, err := e.unnamedParams(keyword, 1)
		if err != nil {
			return ColTypeOption{}, err
		}
		if keyword == "list" {
			return ListOf(params[0]), nil
		}
		return SetOf(params[0]), nil
	case "map":
		params, err := e.unnamedParams(keyword, 2)
		if err != nil {
			return ColTypeOption{}, err
		}
		return MapOf(params[0], params[1]), nil
	case "tuple":
		params, err := e.unnamedParams(keyword, -1)
		if err != nil {
			return ColTypeOption{}, err
		}
		return TupleOf(params...), nil
	}
	return e.toUDT(name)
}

// unnamedParams converts the type parameters, checking there are want of them. want < 0 means at least one.
func (e *typeExpr) unnamedParams(keyword string, want int) ([]ColTypeOption, error) {
	if want >= 0 && len(e.Params) != want {
		return nil, errors.Errorf("%s takes %d type parameters, got %d", keyword, want, len(e.Params))
	}
	if len(e.Params) == 0 {
		return nil, errors.Errorf("%s needs at least one type parameter", keyword)
	}
	res := make([]ColTypeOption, len(e.Params))
	for i, p := range e.Params {
		if p.Field != "" {
			return nil, errors.Errorf("%s parameters cannot be named", keyword)
		}
		opt, err := p.Type.toOption()
		if err != nil {
			return nil, err
		}
		res[i] = opt
	}
	return res, nil
}

func (e *typeExpr) toUDT(name string) (ColTypeOption, error) {
	if len(e.Params) == 0 {
		return ColTypeOption{}, errors.Errorf("unknown type %s", name)
	}
	if len(e.Name) > 2 {
		return ColTypeOption{}, errors.Errorf("udt name %s has more than a keyspace and a name", name)
	}
	fields := make([]UDTField, len(e.Params))
	for i, p := range e.Params {
		if p.Field == "" {
			return ColTypeOption{}, errors.Errorf("field %d of udt %s has no name", i, name)
		}
		opt, err := p.Type.toOption()
		if err != nil {
			return ColTypeOption{}, err
		}
		fields[i] = UDTField{Name: p.Field, Type: opt}
	}
	if len(e.Name) == 2 {
		return UDTOf(e.Name[0], e.Name[1], fields...), nil
	}
	return UDTOf("", e.Name[0], fields...), nil
}
