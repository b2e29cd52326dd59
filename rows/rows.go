package rows

import (
	"github.com/dahankzter/cdrs/types"
	log "github.com/sirupsen/logrus"
)

// Body is the already parsed body of a rows result: the shared metadata and, for each row, its raw column values.
// Metadata must not be nil. Every raw row has exactly one value per column of the metadata.
type Body struct {
	Metadata *Metadata
	Rows     [][]types.CBytes
}

// Row is one row of a result set. It is immutable after construction and safe for concurrent use.
type Row struct {
	meta *Metadata
	cols []types.CBytes
}

func NewRow(meta *Metadata, cols []types.CBytes) *Row {
	return &Row{meta: meta, cols: cols}
}

// FromBody creates one Row per raw row of body. All rows share body.Metadata. A body without metadata yields
// no rows.
func FromBody(body Body) []*Row {
	if body.Metadata == nil {
		log.Warnf("rows body without metadata, dropping %d rows", len(body.Rows))
		return nil
	}
	res := make([]*Row, len(body.Rows))
	for i, cols := range body.Rows {
		res[i] = NewRow(body.Metadata, cols)
		body.Metadata.rowsBuilt.Inc()
	}
	log.Debugf("built %d rows of %d columns", len(res), body.Metadata.ColumnCount())
	return res
}

// Rows holds the rows of one result set.
type Rows struct {
	meta *Metadata
	rows []*Row
}

func NewRows(meta *Metadata, raw [][]types.CBytes) *Rows {
	return &Rows{meta: meta, rows: FromBody(Body{Metadata: meta, Rows: raw})}
}

func (r *Rows) Metadata() *Metadata {
	return r.meta
}

func (r *Rows) RowCount() int {
	return len(r.rows)
}

func (r *Rows) GetRow(rowIndex int) *Row {
	return r.rows[rowIndex]
}

func (r *Row) Metadata() *Metadata {
	return r.meta
}

func (r *Row) Len() int {
	return len(r.cols)
}

// IsNull reports whether the column at index is null. An index out of range is not null.
func (r *Row) IsNull(index int) bool {
	if index < 0 || index >= len(r.cols) {
		return false
	}
	return r.cols[index].IsNull()
}

// ColumnByName returns a copy of the spec and the raw value of the first column called name. Names match exactly.
func (r *Row) ColumnByName(name string) (types.ColSpec, types.CBytes, bool) {
	for i, spec := range r.meta.specs {
		if spec.Name == name {
			return r.ColumnByIndex(i)
		}
	}
	return types.ColSpec{}, types.CBytes{}, false
}

// ColumnByIndex returns a copy of the spec and the raw value of the column at index.
func (r *Row) ColumnByIndex(index int) (types.ColSpec, types.CBytes, bool) {
	spec, cb, ok := r.column(index)
	if !ok {
		return types.ColSpec{}, types.CBytes{}, false
	}
	return spec.Clone(), cb, true
}

// column returns the shared spec of the column at index. Callers must not modify it.
func (r *Row) column(index int) (types.ColSpec, types.CBytes, bool) {
	if index < 0 || index >= len(r.meta.specs) || index >= len(r.cols) {
		return types.ColSpec{}, types.CBytes{}, false
	}
	return r.meta.specs[index], r.cols[index], true
}

// Values decodes every column into its natural Go type, nil for null columns.
func (r *Row) Values() ([]interface{}, error) {
	res := make([]interface{}, len(r.cols))
	for i := range r.cols {
		spec, cb, ok := r.column(i)
		if !ok {
			break
		}
		v, err := types.DecodeNatural(spec.Type, cb)
		if err != nil {
			return nil, errorAt(err, spec.Name)
		}
		res[i] = v
	}
	return res, nil
}
