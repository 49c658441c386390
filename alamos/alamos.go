// Package alamos collects measurements from instrumented components. An
// Experiment forms a tree of sub experiments, each holding named metrics.
// A nil Experiment disables collection entirely, so instrumented code can
// record unconditionally.
package alamos

type Experiment interface {
	Sub(string) Experiment
	AddMetric(entry)
	Metrics() map[string]entry
	Report() map[string]interface{}
}

type entry interface {
	Key() string
	Value() interface{}
}

type experiment struct {
	key      string
	children map[string]Experiment
	metrics  map[string]entry
}

func New(key string) Experiment {
	return &experiment{
		key:      key,
		children: make(map[string]Experiment),
		metrics:  make(map[string]entry),
	}
}

func (e *experiment) Sub(key string) Experiment {
	sub := New(key)
	e.children[key] = sub
	return sub
}

func (e *experiment) AddMetric(m entry) {
	e.metrics[m.Key()] = m
}

func (e *experiment) Metrics() map[string]entry {
	return e.metrics
}

func (e *experiment) Report() map[string]interface{} {
	r := make(map[string]interface{}, len(e.metrics)+len(e.children))
	for k, m := range e.metrics {
		r[k] = m.Value()
	}
	for k, c := range e.children {
		r[k] = c.Report()
	}
	return r
}

// Sub returns a child of exp, or nil when exp is nil.
func Sub(exp Experiment, key string) Experiment {
	if exp == nil {
		return nil
	}
	return exp.Sub(key)
}
