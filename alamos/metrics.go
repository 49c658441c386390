package alamos

import "time"

type Metric[T any] interface {
	entry
	Record(T)
	Values() []T
	Count() int
}

type base struct {
	k string
}

func (b base) Key() string { return b.k }

// |||||| GAUGE ||||||

type gauge[T Numeric] struct {
	base
	count int
	total T
}

// NewGauge returns a metric reporting the running average of the values it
// receives. A nil experiment yields a no-op metric.
func NewGauge[T Numeric](exp Experiment, key string) Metric[T] {
	if exp == nil {
		return empty[T]{base: base{k: key}}
	}
	m := &gauge[T]{base: base{k: key}}
	exp.AddMetric(m)
	return m
}

func (g *gauge[T]) Record(v T) {
	g.count++
	g.total += v
}

func (g *gauge[T]) Count() int { return g.count }

func (g *gauge[T]) Values() []T {
	if g.count == 0 {
		return nil
	}
	return []T{g.total / T(g.count)}
}

func (g *gauge[T]) Value() interface{} { return g.Values() }

// |||||| SERIES ||||||

type series[T any] struct {
	base
	values []T
}

// NewSeries returns a metric retaining every recorded value. A nil
// experiment yields a no-op metric.
func NewSeries[T any](exp Experiment, key string) Metric[T] {
	if exp == nil {
		return empty[T]{base: base{k: key}}
	}
	m := &series[T]{base: base{k: key}}
	exp.AddMetric(m)
	return m
}

func (s *series[T]) Record(v T) { s.values = append(s.values, v) }

func (s *series[T]) Count() int { return len(s.values) }

func (s *series[T]) Values() []T { return s.values }

func (s *series[T]) Value() interface{} { return s.values }

// |||||| EMPTY ||||||

type empty[T any] struct {
	base
}

func (empty[T]) Record(T) {}

func (empty[T]) Count() int { return 0 }

func (empty[T]) Values() []T { return nil }

func (empty[T]) Value() interface{} { return nil }

type Numeric interface {
	float64 | float32 | int64 | int32 | int16 | int8 | uint64 | uint32 | uint16 | uint8 | int | time.Duration
}
