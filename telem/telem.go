// Package telem provides unit-tagged scalar quantities for telemetry
// style time arithmetic. Quantities pair a magnitude with a unit, and all
// cross-unit arithmetic goes through an explicit Rescale.
package telem

import "fmt"

// |||||| DIMENSION ||||||

type Dimension uint8

const (
	Dimensionless Dimension = iota
	TimeDimension
	RateDimension
)

// |||||| UNIT ||||||

type Unit struct {
	Symbol string
	Dim    Dimension
	// Scale is the magnitude of one unit expressed in the base unit of its
	// dimension (seconds for time, hertz for rates).
	Scale float64
}

var (
	Second      = Unit{Symbol: "s", Dim: TimeDimension, Scale: 1}
	Millisecond = Unit{Symbol: "ms", Dim: TimeDimension, Scale: 1e-3}
	Microsecond = Unit{Symbol: "us", Dim: TimeDimension, Scale: 1e-6}
	Hertz       = Unit{Symbol: "Hz", Dim: RateDimension, Scale: 1}
	Kilohertz   = Unit{Symbol: "kHz", Dim: RateDimension, Scale: 1e3}
)

var intervals = map[Unit]Unit{
	Hertz:     Second,
	Kilohertz: Millisecond,
}

// Interval returns the reciprocal time unit of a rate unit.
func (u Unit) Interval() Unit {
	if iu, ok := intervals[u]; ok {
		return iu
	}
	return Unit{Symbol: "1/" + u.Symbol, Dim: TimeDimension, Scale: 1 / u.Scale}
}

func (u Unit) String() string { return u.Symbol }

// |||||| DIMENSION ERROR ||||||

type DimensionError struct {
	From, To Unit
}

func (e DimensionError) Error() string {
	return fmt.Sprintf("telem - cannot rescale %v to %v: dimension mismatch", e.From, e.To)
}

// |||||| TIME ||||||

type Time struct {
	Value float64
	Unit  Unit
}

func Seconds(v float64) Time { return Time{Value: v, Unit: Second} }

func Milliseconds(v float64) Time { return Time{Value: v, Unit: Millisecond} }

func Microseconds(v float64) Time { return Time{Value: v, Unit: Microsecond} }

// Rescale converts t to the target unit. It fails when the target unit
// belongs to a different dimension.
func (t Time) Rescale(u Unit) (Time, error) {
	if t.Unit.Dim != u.Dim {
		return Time{}, DimensionError{From: t.Unit, To: u}
	}
	return Time{Value: t.Value * t.Unit.Scale / u.Scale, Unit: u}, nil
}

// Add returns t + o in t's unit.
func (t Time) Add(o Time) (Time, error) {
	ro, err := o.Rescale(t.Unit)
	if err != nil {
		return Time{}, err
	}
	return Time{Value: t.Value + ro.Value, Unit: t.Unit}, nil
}

// Sub returns t - o in t's unit.
func (t Time) Sub(o Time) (Time, error) {
	ro, err := o.Rescale(t.Unit)
	if err != nil {
		return Time{}, err
	}
	return Time{Value: t.Value - ro.Value, Unit: t.Unit}, nil
}

func (t Time) String() string { return fmt.Sprintf("%g %v", t.Value, t.Unit) }

// |||||| RATE ||||||

type Rate struct {
	Value float64
	Unit  Unit
}

func Hz(v float64) Rate { return Rate{Value: v, Unit: Hertz} }

// Interval returns the mean inter-event interval of the rate, expressed in
// the rate unit's reciprocal time unit.
func (r Rate) Interval() Time {
	return Time{Value: 1 / r.Value, Unit: r.Unit.Interval()}
}

// Count returns the dimensionless number of events expected over span.
func (r Rate) Count(span Time) (float64, error) {
	s, err := span.Rescale(r.Unit.Interval())
	if err != nil {
		return 0, err
	}
	return r.Value * s.Value, nil
}

func (r Rate) String() string { return fmt.Sprintf("%g %v", r.Value, r.Unit) }

// |||||| RANGE ||||||

type Range struct {
	Start Time
	Stop  Time
}

// Span returns the width of the range in the stop unit.
func (r Range) Span() (Time, error) {
	return r.Stop.Sub(r.Start)
}

func (r Range) IsZero() bool { return r == Range{} }
