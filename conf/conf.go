package conf

import (
	"fmt"
	"regexp"

	"github.com/dahankzter/cdrs/errors"
)

type DuplicateColumnPolicy string

const (
	// DuplicateColumnsFirst resolves a duplicated column name to its first occurrence.
	DuplicateColumnsFirst DuplicateColumnPolicy = "first"
	// DuplicateColumnsError fails lookups by a duplicated column name with an AmbiguousColumn error.
	DuplicateColumnsError DuplicateColumnPolicy = "error"

	DefaultMetricsNamespace = "cdrs"
)

var metricNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config controls how result rows are decoded. It is shared by every row of a result set.
type Config struct {
	DuplicateColumns DuplicateColumnPolicy `json:"duplicate_columns,omitempty" help:"How to resolve lookups of duplicated column names" enum:"first,error" default:"first"`
	MetricsNamespace string                `json:"metrics_namespace,omitempty" help:"Namespace for decode metrics" default:"cdrs"`
}

func (c *Config) Validate() error {
	switch c.DuplicateColumns {
	case DuplicateColumnsFirst, DuplicateColumnsError:
	default:
		return errors.NewInvalidConfigurationError(fmt.Sprintf("DuplicateColumns must be one of %q or %q",
			DuplicateColumnsFirst, DuplicateColumnsError))
	}
	if !metricNameRe.MatchString(c.MetricsNamespace) {
		return errors.NewInvalidConfigurationError("MetricsNamespace must be a valid metric name")
	}
	return nil
}

func NewDefaultConfig() *Config {
	return &Config{
		DuplicateColumns: DuplicateColumnsFirst,
		MetricsNamespace: DefaultMetricsNamespace,
	}
}
