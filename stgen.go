// Package stgen generates random spike trains: realizations of renewal
// point processes whose inter-spike intervals are drawn independently
// from a fixed distribution. Poisson (exponential interval) and gamma
// interval processes are supported over a bounded, half-open time window.
package stgen

import (
	"golang.org/x/exp/rand"

	"stgen/dist"
	"stgen/telem"
)

// |||||| FAMILY ||||||

//go:generate stringer --type=Family --output=family_string.go
type Family byte

const (
	// PoissonFamily draws exponentially distributed intervals from a
	// single rate parameter.
	PoissonFamily Family = iota
	// GammaFamily draws gamma distributed intervals from a shape and a
	// rate parameter. The mean event rate is rate/shape.
	GammaFamily
)

type familyParams struct {
	shape float64
	rate  telem.Rate
}

// canonical maps each family's user-facing parameters to the interval
// sampler and mean event rate consumed by Sample. Intervals are produced
// in the reciprocal unit of the rate parameter.
var canonical = map[Family]func(p familyParams, src rand.Source) (dist.Sampler, telem.Rate){
	PoissonFamily: func(p familyParams, src rand.Source) (dist.Sampler, telem.Rate) {
		return dist.NewExponential(1/p.rate.Value, src), p.rate
	},
	GammaFamily: func(p familyParams, src rand.Source) (dist.Sampler, telem.Rate) {
		mean := telem.Rate{Value: p.rate.Value / p.shape, Unit: p.rate.Unit}
		return dist.NewGamma(p.shape, 1/p.rate.Value, src), mean
	},
}

// |||||| PROCESSES ||||||

// HomogeneousPoissonProcess generates a spike train realizing a Poisson
// process with the given rate. The window defaults to 0-1000 ms and can
// be overridden with WithWindow.
//
//	train, err := stgen.HomogeneousPoissonProcess(
//		telem.Hz(50),
//		stgen.WithWindow(telem.Milliseconds(0), telem.Milliseconds(1000)),
//	)
func HomogeneousPoissonProcess(rate telem.Rate, opts ...Option) (*SpikeTrain, error) {
	return generate(PoissonFamily, familyParams{rate: rate}, opts...)
}

// HomogeneousGammaProcess generates a spike train whose inter-spike
// intervals follow a gamma distribution with the given shape and rate.
func HomogeneousGammaProcess(shape float64, rate telem.Rate, opts ...Option) (*SpikeTrain, error) {
	return generate(GammaFamily, familyParams{shape: shape, rate: rate}, opts...)
}

func generate(f Family, p familyParams, opts ...Option) (*SpikeTrain, error) {
	o := newOptions(opts...)
	gen, mean := canonical[f](p, o.src)
	spikes, err := sample(gen, mean, o)
	if err != nil {
		return nil, err
	}
	return newSpikeTrain(spikes, o.window), nil
}
