// Package dist provides the interval sampling primitives backing renewal
// process generation.
package dist

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws independent, identically distributed inter-spike
// intervals. Values are non-negative, in the distribution's native unit.
// Rand is compatible with gonum's distuv single-draw interface.
type Sampler interface {
	Rand() float64
	Draw(n int) []float64
}

// |||||| EXPONENTIAL ||||||

type Exponential struct {
	dist distuv.Exponential
}

// NewExponential returns a sampler of exponentially distributed intervals
// with the given mean. A nil src falls back to the shared global source.
func NewExponential(mean float64, src rand.Source) Exponential {
	return Exponential{dist: distuv.Exponential{Rate: 1 / mean, Src: src}}
}

func (e Exponential) Rand() float64 { return e.dist.Rand() }

func (e Exponential) Draw(n int) []float64 { return draw(e.dist, n) }

// |||||| GAMMA ||||||

type Gamma struct {
	dist distuv.Gamma
}

// NewGamma returns a sampler of gamma distributed intervals with the given
// shape and scale. Parameter validity is left to distuv.
func NewGamma(shape, scale float64, src rand.Source) Gamma {
	return Gamma{dist: distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: src}}
}

func (g Gamma) Rand() float64 { return g.dist.Rand() }

func (g Gamma) Draw(n int) []float64 { return draw(g.dist, n) }

func draw(d interface{ Rand() float64 }, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = d.Rand()
	}
	return s
}
