package metrics

type Counter interface {
	Inc()
}

// CounterVec is a family of counters partitioned by label values.
type CounterVec interface {
	WithLabelValues(lvs ...string) Counter
}

type Factory interface {
	CreateCounter(name string, description string) (Counter, error)

	CreateCounterVec(name string, description string, labelNames ...string) (CounterVec, error)
}

// NoopFactory creates counters that discard every increment. It is used when the caller does not export metrics.
type NoopFactory struct{}

var _ Factory = NoopFactory{}

func (NoopFactory) CreateCounter(string, string) (Counter, error) {
	return NoopCounter{}, nil
}

func (NoopFactory) CreateCounterVec(string, string, ...string) (CounterVec, error) {
	return NoopCounterVec{}, nil
}

type NoopCounter struct{}

func (NoopCounter) Inc() {}

type NoopCounterVec struct{}

func (NoopCounterVec) WithLabelValues(...string) Counter { return NoopCounter{} }
