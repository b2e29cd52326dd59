package rows

import (
	"github.com/dahankzter/cdrs/conf"
	"github.com/dahankzter/cdrs/errors"
	"github.com/dahankzter/cdrs/metrics"
	"github.com/dahankzter/cdrs/types"
	log "github.com/sirupsen/logrus"
)

// Metadata is the column schema of one result set. It is created once and shared, never copied, by every Row of
// that result set. It is immutable after construction and safe for concurrent use.
type Metadata struct {
	specs      []types.ColSpec
	duplicates map[string]struct{}
	policy     conf.DuplicateColumnPolicy

	rowsBuilt    metrics.Counter
	decodes      metrics.Counter
	decodeErrors metrics.CounterVec
}

// NewMetadata creates the metadata for a result set with the given columns. factory may be nil, in which case
// nothing is counted.
func NewMetadata(cfg *conf.Config, specs []types.ColSpec, factory metrics.Factory) (*Metadata, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if factory == nil {
		factory = metrics.NoopFactory{}
	}
	rowsBuilt, err := factory.CreateCounter("rows_built_total", "Number of rows built from result bodies")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	decodes, err := factory.CreateCounter("column_decodes_total", "Number of typed column reads")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	decodeErrors, err := factory.CreateCounterVec("column_decode_errors_total", "Number of failed typed column reads", "code")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newMetadata(cfg.DuplicateColumns, specs, rowsBuilt, decodes, decodeErrors), nil
}

func newMetadata(policy conf.DuplicateColumnPolicy, specs []types.ColSpec, rowsBuilt metrics.Counter,
	decodes metrics.Counter, decodeErrors metrics.CounterVec) *Metadata {
	m := &Metadata{
		specs:        make([]types.ColSpec, len(specs)),
		duplicates:   map[string]struct{}{},
		policy:       policy,
		rowsBuilt:    rowsBuilt,
		decodes:      decodes,
		decodeErrors: decodeErrors,
	}
	for i, spec := range specs {
		m.specs[i] = spec.Clone()
	}
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if _, ok := seen[spec.Name]; ok {
			m.duplicates[spec.Name] = struct{}{}
			log.Debugf("result metadata has duplicate column name %q, policy %s", spec.Name, m.policy)
		}
		seen[spec.Name] = struct{}{}
	}
	return m
}

// NewDefaultMetadata creates metadata with the default configuration and no metrics.
func NewDefaultMetadata(specs []types.ColSpec) *Metadata {
	return newMetadata(conf.NewDefaultConfig().DuplicateColumns, specs, metrics.NoopCounter{}, metrics.NoopCounter{},
		metrics.NoopCounterVec{})
}

func (m *Metadata) ColumnCount() int {
	return len(m.specs)
}

// Spec returns a deep copy of the spec of the column at index.
func (m *Metadata) Spec(index int) (types.ColSpec, bool) {
	if index < 0 || index >= len(m.specs) {
		return types.ColSpec{}, false
	}
	return m.specs[index].Clone(), true
}

// Specs returns a deep copy of the column specs in column order.
func (m *Metadata) Specs() []types.ColSpec {
	res := make([]types.ColSpec, len(m.specs))
	for i, spec := range m.specs {
		res[i] = spec.Clone()
	}
	return res
}

// IndexOf returns the position of the first column called name, matched exactly. Under the error policy a
// duplicated name fails with AmbiguousColumn. An unknown name fails with ColumnNotLocated.
func (m *Metadata) IndexOf(name string) (int, error) {
	if _, dup := m.duplicates[name]; dup && m.policy == conf.DuplicateColumnsError {
		return -1, errors.NewAmbiguousColumnError(name)
	}
	for i, spec := range m.specs {
		if spec.Name == name {
			return i, nil
		}
	}
	return -1, errors.NewColumnNotFoundError(name)
}

func (m *Metadata) observe(err error) {
	m.decodes.Inc()
	if err == nil {
		return
	}
	var cerr errors.CdrsError
	code := errors.InternalError
	if errors.As(err, &cerr) {
		code = cerr.Code
	}
	m.decodeErrors.WithLabelValues(code.String()).Inc()
}
