package inspect

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/repr"
	"github.com/dahankzter/cdrs/errors"
	"github.com/dahankzter/cdrs/rows"
	"github.com/dahankzter/cdrs/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type Format string

const (
	FormatTable Format = "table"
	FormatRepr  Format = "repr"
	FormatJSON  Format = "json"
)

// Cell is one decoded column of a row. Err holds the failure when the column could not be decoded, in which case
// Value is nil.
type Cell struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
	Err   string      `json:"error,omitempty"`
}

type mapEntry struct {
	Key   interface{} `json:"key"`
	Value interface{} `json:"value"`
}

// Cells decodes every column of row into its natural Go value, with composites flattened into slices and maps.
// A column that fails does not stop the others from being decoded.
func Cells(row *rows.Row) []Cell {
	specs := row.Metadata().Specs()
	res := make([]Cell, 0, len(specs))
	for i, spec := range specs {
		cell := Cell{Name: spec.Name, Type: spec.Type.String()}
		_, cb, ok := row.ColumnByIndex(i)
		if !ok {
			cell.Err = errors.NewIndexOutOfBoundsError(i, row.Len()).Error()
			res = append(res, cell)
			continue
		}
		v, err := types.DecodeNatural(spec.Type, cb)
		if err != nil {
			cell.Err = errors.WithColumn(err, spec.Name).Error()
		} else {
			cell.Value = plain(v)
		}
		res = append(res, cell)
	}
	return res
}

func plain(v interface{}) interface{} {
	switch tv := v.(type) {
	case *types.List:
		return plainAll(tv.Values())
	case *types.Tuple:
		return plainAll(tv.Values())
	case *types.Map:
		entries := tv.Entries()
		res := make([]mapEntry, len(entries))
		for i, e := range entries {
			res[i] = mapEntry{Key: plain(e.Key), Value: plain(e.Value)}
		}
		return res
	case *types.UDT:
		fields := tv.Info().Fields
		values := tv.Values()
		res := make(map[string]interface{}, len(fields))
		for i, f := range fields {
			if i < len(values) {
				res[f.Name] = plain(values[i])
			} else {
				res[f.Name] = nil
			}
		}
		return res
	default:
		return v
	}
}

func plainAll(vals []interface{}) []interface{} {
	res := make([]interface{}, len(vals))
	for i, v := range vals {
		res[i] = plain(v)
	}
	return res
}

// Render writes the decoded rows to w in the given format.
func Render(w io.Writer, rs []*rows.Row, format Format) error {
	switch format {
	case FormatTable, "":
		return renderTable(w, rs)
	case FormatRepr:
		return renderRepr(w, rs)
	case FormatJSON:
		return renderJSON(w, rs)
	default:
		return errors.NewInvalidConfigurationError(fmt.Sprintf("unknown output format %q", format))
	}
}

func renderTable(w io.Writer, rs []*rows.Row) error {
	t := table.NewWriter()
	if len(rs) > 0 {
		var header table.Row
		for _, spec := range rs[0].Metadata().Specs() {
			header = append(header, fmt.Sprintf("%s %s", spec.Name, spec.Type))
		}
		t.AppendHeader(header)
	}
	for _, row := range rs {
		var tr table.Row
		for _, cell := range Cells(row) {
			if cell.Err != "" {
				tr = append(tr, "!"+cell.Err)
			} else {
				tr = append(tr, display(cell.Value, false))
			}
		}
		t.AppendRow(tr)
	}
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false
	_, err := io.WriteString(w, t.Render()+"\n")
	return errors.WithStack(err)
}

// display renders a plain value in CQL literal style. Strings are quoted only inside collections.
func display(v interface{}, nested bool) string {
	switch tv := v.(type) {
	case nil:
		return "null"
	case string:
		if nested {
			return fmt.Sprintf("%q", tv)
		}
		return tv
	case []byte:
		return "0x" + hex.EncodeToString(tv)
	case time.Time:
		return tv.Format(time.RFC3339Nano)
	case []interface{}:
		parts := make([]string, len(tv))
		for i, e := range tv {
			parts[i] = display(e, true)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []mapEntry:
		parts := make([]string, len(tv))
		for i, e := range tv {
			parts[i] = display(e.Key, true) + ": " + display(e.Value, true)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case map[string]interface{}:
		return display(sortedEntries(tv), true)
	default:
		return fmt.Sprint(tv)
	}
}

func sortedEntries(m map[string]interface{}) []mapEntry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := make([]mapEntry, len(keys))
	for i, k := range keys {
		res[i] = mapEntry{Key: k, Value: m[k]}
	}
	return res
}

func renderRepr(w io.Writer, rs []*rows.Row) error {
	p := repr.New(w, repr.Indent("  "), repr.IgnoreGoStringer())
	for _, row := range rs {
		p.Println(Cells(row))
	}
	return nil
}

func renderJSON(w io.Writer, rs []*rows.Row) error {
	out := make([][]Cell, len(rs))
	for i, row := range rs {
		out[i] = Cells(row)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.WithStack(enc.Encode(out))
}
