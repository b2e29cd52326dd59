// Package inspect loads rows result bodies written as commented JSON and renders their decoded rows. It backs the
// cdrsdump tool and is handy for building fixtures in tests.
package inspect

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"os"

	"github.com/dahankzter/cdrs/conf"
	"github.com/dahankzter/cdrs/errors"
	"github.com/dahankzter/cdrs/metrics"
	"github.com/dahankzter/cdrs/rows"
	"github.com/dahankzter/cdrs/types"
	log "github.com/sirupsen/logrus"
	"muzzammil.xyz/jsonc"
)

// ColumnDef is one column of a body file. Type is a CQL type expression such as map<text, int>.
type ColumnDef struct {
	Keyspace string `json:"keyspace,omitempty"`
	Table    string `json:"table,omitempty"`
	Name     string `json:"name"`
	Type     string `json:"type"`
}

// BodyFile is the on disk form of a rows body. Each cell is the hex encoding of the value bytes, "" for an empty
// value and null for a null one.
type BodyFile struct {
	Columns []ColumnDef `json:"columns"`
	Rows    [][]*string `json:"rows"`
}

// LoadBodyFile reads a body file from path. See LoadBody.
func LoadBodyFile(path string, cfg *conf.Config, factory metrics.Factory) (rows.Body, error) {
	f, err := os.Open(path)
	if err != nil {
		return rows.Body{}, errors.WithStack(err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("failed to close %s: %v", path, err)
		}
	}()
	return LoadBody(f, cfg, factory)
}

// LoadBody parses a body file, which may contain comments, into a rows body whose metadata is built with cfg and
// factory.
func LoadBody(r io.Reader, cfg *conf.Config, factory metrics.Factory) (rows.Body, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return rows.Body{}, errors.WithStack(err)
	}
	// We use jsonc as it supports comments in JSON
	b = jsonc.ToJSON(b)
	bf := BodyFile{}
	if err := json.Unmarshal(b, &bf); err != nil {
		return rows.Body{}, errors.WithStack(err)
	}
	return bf.ToBody(cfg, factory)
}

func (bf *BodyFile) ToBody(cfg *conf.Config, factory metrics.Factory) (rows.Body, error) {
	specs := make([]types.ColSpec, len(bf.Columns))
	for i, col := range bf.Columns {
		if col.Name == "" {
			return rows.Body{}, errors.NewMalformedEncodingError("column %d has no name", i)
		}
		typ, err := types.ParseColType(col.Type)
		if err != nil {
			return rows.Body{}, err
		}
		specs[i] = types.ColSpec{Keyspace: col.Keyspace, Table: col.Table, Name: col.Name, Type: typ}
	}
	meta, err := rows.NewMetadata(cfg, specs, factory)
	if err != nil {
		return rows.Body{}, err
	}
	raw := make([][]types.CBytes, len(bf.Rows))
	for i, cells := range bf.Rows {
		if len(cells) != len(specs) {
			return rows.Body{}, errors.NewMalformedEncodingError("row %d has %d values, expected %d", i, len(cells), len(specs))
		}
		raw[i] = make([]types.CBytes, len(cells))
		for j, cell := range cells {
			cb, err := cellBytes(cell)
			if err != nil {
				return rows.Body{}, errors.WithColumn(errors.NewMalformedEncodingError("row %d: %v", i, err), specs[j].Name)
			}
			raw[i][j] = cb
		}
	}
	log.Debugf("loaded body with %d columns and %d rows", len(specs), len(raw))
	return rows.Body{Metadata: meta, Rows: raw}, nil
}

func cellBytes(cell *string) (types.CBytes, error) {
	if cell == nil {
		return types.NullCBytes(), nil
	}
	b, err := hex.DecodeString(*cell)
	if err != nil {
		return types.CBytes{}, err
	}
	return types.NewCBytes(b), nil
}
