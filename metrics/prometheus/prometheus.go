package prometheus

import (
	"github.com/dahankzter/cdrs/errors"
	"github.com/dahankzter/cdrs/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Factory registers counters with a caller supplied registerer. Serving them is left to the caller.
type Factory struct {
	namespace  string
	registerer prometheus.Registerer
}

func NewFactory(namespace string, registerer prometheus.Registerer) metrics.Factory {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &Factory{namespace: namespace, registerer: registerer}
}

func (f *Factory) CreateCounter(name string, description string) (metrics.Counter, error) {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: f.namespace,
		Name:      name,
		Help:      description,
	})
	if err := f.registerer.Register(counter); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, errors.WithStack(err)
		}
		existing, ok := are.ExistingCollector.(prometheus.Counter)
		if !ok {
			return nil, errors.Errorf("collector %s already registered with a different type", name)
		}
		counter = existing
	}
	return &Counter{pCounter: counter}, nil
}

func (f *Factory) CreateCounterVec(name string, description string, labelNames ...string) (metrics.CounterVec, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: f.namespace,
		Name:      name,
		Help:      description,
	}, labelNames)
	if err := f.registerer.Register(vec); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, errors.WithStack(err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, errors.Errorf("collector %s already registered with a different type", name)
		}
		vec = existing
	}
	return &CounterVec{pVec: vec}, nil
}

type Counter struct {
	pCounter prometheus.Counter
}

func (c *Counter) Inc() {
	c.pCounter.Inc()
}

type CounterVec struct {
	pVec *prometheus.CounterVec
}

func (c *CounterVec) WithLabelValues(lvs ...string) metrics.Counter {
	return &Counter{pCounter: c.pVec.WithLabelValues(lvs...)}
}
