package types_test

import (
	"testing"

	"github.com/dahankzter/cdrs/errors"
	"github.com/dahankzter/cdrs/types"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleTypes(t *testing.T) {
	cases := map[string]types.ColType{
		"int":       types.Int,
		"INT":       types.Int,
		"text":      types.Varchar,
		"varchar":   types.Varchar,
		"ascii":     types.Ascii,
		"bigint":    types.Bigint,
		"Boolean":   types.Boolean,
		"timestamp": types.Timestamp,
		"timeuuid":  types.Timeuuid,
		"inet":      types.Inet,
		"tinyint":   types.Tinyint,
		"smallint":  types.Smallint,
	}
	for expr, expected := range cases {
		opt, err := types.ParseColType(expr)
		require.NoError(t, err, expr)
		require.Equal(t, types.Simple(expected), opt, expr)
	}
}

func TestParseCollections(t *testing.T) {
	opt, err := types.ParseColType("map<text, frozen<list<int>>>")
	require.NoError(t, err)
	require.Equal(t, types.MapOf(types.Simple(types.Varchar), types.ListOf(types.Simple(types.Int))), opt)
	require.Equal(t, "map<varchar, list<int>>", opt.String())

	opt, err = types.ParseColType("set< uuid >")
	require.NoError(t, err)
	require.Equal(t, types.SetOf(types.Simple(types.Uuid)), opt)

	opt, err = types.ParseColType("tuple<int, text, double>")
	require.NoError(t, err)
	require.Equal(t, types.TupleOf(types.Simple(types.Int), types.Simple(types.Varchar), types.Simple(types.Double)), opt)
	require.Equal(t, "tuple<int, varchar, double>", opt.String())
}

func TestParseUDT(t *testing.T) {
	opt, err := types.ParseColType("ks.address<street: text, zip: int>")
	require.NoError(t, err)
	expected := types.UDTOf("ks", "address",
		types.UDTField{Name: "street", Type: types.Simple(types.Varchar)},
		types.UDTField{Name: "zip", Type: types.Simple(types.Int)},
	)
	require.Equal(t, expected, opt)
	require.Equal(t, "ks.address<street: varchar, zip: int>", opt.String())

	roundTrip, err := types.ParseColType(opt.String())
	require.NoError(t, err)
	require.Equal(t, opt, roundTrip)

	opt, err = types.ParseColType("point<x: double, y: double>")
	require.NoError(t, err)
	require.Equal(t, "", opt.UDT.Keyspace)
	require.Equal(t, "point", opt.UDT.Name)
}

func TestParseInvalid(t *testing.T) {
	invalid := []string{
		"",
		"nosuchtype",
		"int<text>",
		"list<int, int>",
		"map<text>",
		"list<a: int>",
		"tuple<>",
		"point<x: int, double>",
		"a.b.c<x: int>",
		"list<int",
	}
	for _, expr := range invalid {
		_, err := types.ParseColType(expr)
		require.Error(t, err, expr)
		require.True(t, errors.HasCode(err, errors.InvalidTypeExpression), expr)
	}
}

func TestMustParseColTypePanics(t *testing.T) {
	require.Panics(t, func() {
		types.MustParseColType("list<")
	})
}

func TestCloneIsDeep(t *testing.T) {
	orig := types.MustParseColType("map<text, frozen<ks.point<x: int, tags: set<text>>>>")
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.Key.ID = types.Int
	clone.Value.UDT.Name = "other"
	clone.Value.UDT.Fields[1].Type.Elem.ID = types.Int
	require.Equal(t, "map<varchar, ks.point<x: int, tags: set<varchar>>>", orig.String())

	tuple := types.TupleOf(types.Simple(types.Int), types.ListOf(types.Simple(types.Blob)))
	tc := tuple.Clone()
	tc.Tuple[1].Elem.ID = types.Int
	require.Equal(t, "tuple<int, list<blob>>", tuple.String())
}
