package stgen

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"stgen/alamos"
	"stgen/dist"
	"stgen/telem"
	"stgen/util/errutil"
)

// Sample realizes a renewal process over the configured window. gen draws
// i.i.d. intervals in the reciprocal unit of mean; the returned spike
// times are magnitudes in the window's stop unit, restricted to
// [start, stop). The raw sequence is what SpikeTrain wraps.
func Sample(gen dist.Sampler, mean telem.Rate, opts ...Option) ([]float64, error) {
	return sample(gen, mean, newOptions(opts...))
}

func sample(gen dist.Sampler, mean telem.Rate, o *options) ([]float64, error) {
	var (
		span   telem.Time
		start  telem.Time
		factor telem.Time
		n      float64
		c      = errutil.NewCatch()
	)
	c.Exec(func() (err error) {
		span, err = o.window.Span()
		return err
	})
	c.Exec(func() (err error) {
		n, err = mean.Count(span)
		return err
	})
	c.Exec(func() (err error) {
		start, err = o.window.Start.Rescale(o.window.Stop.Unit)
		return err
	})
	c.Exec(func() (err error) {
		// One native interval unit expressed in the window unit.
		factor, err = telem.Time{Value: 1, Unit: mean.Unit.Interval()}.Rescale(o.window.Stop.Unit)
		return err
	})
	if err := c.Error(); err != nil {
		return nil, err
	}

	size := bufferSize(n)
	if size <= 4 {
		return nil, newSimpleError(ErrContract, fmt.Sprintf(
			"stgen - interval buffer of %d for %v over %v is degenerate", size, mean, o.window,
		))
	}
	alamos.NewGauge[int](o.exp, "sampler.buffer.size").Record(size)
	o.logger.Debug("stgen - sized interval buffer",
		zap.Int("size", size),
		zap.Float64("expected", n),
	)

	d := alamos.NewGaugeDuration(o.exp, "sampler.draw.dur")
	d.Start()
	isi := gen.Draw(size)
	d.Stop()

	f := factor.Value
	stop := o.window.Stop.Value
	spikes := make([]float64, size)
	t := start.Value
	for i, v := range isi {
		t += v * f
		spikes[i] = t
	}

	if i := sort.SearchFloat64s(spikes, stop); i < len(spikes) {
		return spikes[:i], nil
	}

	// Interval buffer underrun: the bulk draw fell short of the window
	// end. Extend one interval at a time, appending a spike only while it
	// is still strictly inside the window.
	ext := alamos.NewSeries[float64](o.exp, "sampler.extension")
	tLast := spikes[len(spikes)-1] + gen.Rand()*f
	for tLast < stop {
		spikes = append(spikes, tLast)
		ext.Record(tLast)
		tLast += gen.Rand() * f
	}
	o.logger.Debug("stgen - interval buffer underrun",
		zap.Int("extended", len(spikes)-size),
		zap.Int("total", len(spikes)),
	)
	return spikes, nil
}

// bufferSize estimates the sample count needed to cover an expected spike
// count of n: a 3-sigma margin over the estimate, with a floor that keeps
// low-rate windows from drawing pathologically small buffers. Degenerate
// estimates (NaN from a negative n) collapse to 0 and fail the size
// contract in the caller.
func bufferSize(n float64) int {
	size := math.Ceil(n + 3*math.Sqrt(n))
	if size < 100 {
		size = math.Min(5+math.Ceil(2*n), 100)
	}
	if math.IsNaN(size) {
		return 0
	}
	return int(size)
}
