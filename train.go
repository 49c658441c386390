package stgen

import (
	"stgen/pk"
	"stgen/telem"
)

// SpikeTrain holds the spike times of one generated realization along
// with the window it was generated over. Times are magnitudes in Unit,
// non-decreasing, all within [Start, Stop).
type SpikeTrain struct {
	PK    pk.PK
	Start telem.Time
	Stop  telem.Time
	Unit  telem.Unit
	times []float64
}

func newSpikeTrain(times []float64, window telem.Range) *SpikeTrain {
	return &SpikeTrain{
		PK:    pk.New(),
		Start: window.Start,
		Stop:  window.Stop,
		Unit:  window.Stop.Unit,
		times: times,
	}
}

func (s *SpikeTrain) Len() int { return len(s.times) }

// Array returns a copy of the raw spike time magnitudes in the train's
// unit.
func (s *SpikeTrain) Array() []float64 {
	out := make([]float64, len(s.times))
	copy(out, s.times)
	return out
}

// At returns the i-th spike time as a unit-tagged quantity.
func (s *SpikeTrain) At(i int) telem.Time {
	return telem.Time{Value: s.times[i], Unit: s.Unit}
}

// Times returns the spike times as unit-tagged quantities.
func (s *SpikeTrain) Times() []telem.Time {
	out := make([]telem.Time, len(s.times))
	for i, v := range s.times {
		out[i] = telem.Time{Value: v, Unit: s.Unit}
	}
	return out
}

// ISIs returns the consecutive inter-spike gaps in the train's unit.
func (s *SpikeTrain) ISIs() []float64 {
	if len(s.times) < 2 {
		return nil
	}
	out := make([]float64, len(s.times)-1)
	for i := 1; i < len(s.times); i++ {
		out[i-1] = s.times[i] - s.times[i-1]
	}
	return out
}

func (s *SpikeTrain) Range() telem.Range {
	return telem.Range{Start: s.Start, Stop: s.Stop}
}
