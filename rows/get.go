package rows

import (
	"github.com/dahankzter/cdrs/errors"
	"github.com/dahankzter/cdrs/types"
	log "github.com/sirupsen/logrus"
)

// GetByName decodes the column called name into T.
//
// It returns the value and true on success, and false with no error when the column is null, whatever T is. An
// unknown name fails with ColumnNotLocated, a wire type T cannot hold with TypeMismatch and bytes that do not form
// a valid T with MalformedEncoding or, for list, map, udt and tuple columns, CompositeElementFailure.
func GetByName[T types.Value](r *Row, name string) (T, bool, error) {
	index, err := r.meta.IndexOf(name)
	if err != nil {
		var zero T
		r.meta.observe(err)
		return zero, false, err
	}
	return get[T](r, index)
}

// GetByIndex decodes the column at position index into T. An index out of range fails with ColumnNotLocated,
// otherwise it behaves as GetByName.
func GetByIndex[T types.Value](r *Row, index int) (T, bool, error) {
	if index < 0 || index >= r.Len() || index >= r.meta.ColumnCount() {
		var zero T
		err := errors.NewIndexOutOfBoundsError(index, r.Len())
		r.meta.observe(err)
		return zero, false, err
	}
	return get[T](r, index)
}

func get[T types.Value](r *Row, index int) (T, bool, error) {
	spec, cb, ok := r.column(index)
	if !ok {
		var zero T
		err := errors.NewIndexOutOfBoundsError(index, r.Len())
		r.meta.observe(err)
		return zero, false, err
	}
	v, present, err := types.Decode[T](spec.Type, cb)
	r.meta.observe(err)
	if err != nil {
		return v, false, errorAt(err, spec.Name)
	}
	return v, present, nil
}

func errorAt(err error, column string) error {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("failed to decode column %s: %v", column, err)
	}
	return errors.WithColumn(err, column)
}
