package stgen

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"stgen/alamos"
	"stgen/telem"
)

type Option func(*options)

type options struct {
	window telem.Range
	src    rand.Source
	exp    alamos.Experiment
	logger *zap.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	mergeDefaultOptions(o)
	return o
}

func mergeDefaultOptions(o *options) {
	if o.window.IsZero() {
		o.window = telem.Range{Start: telem.Milliseconds(0), Stop: telem.Milliseconds(1000)}
	}

	// || SOURCE ||

	if o.src == nil {
		o.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	// || LOGGER ||

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
}

// WithWindow sets the half-open generation window [start, stop). Spike
// times are produced in stop's unit. The caller must keep start < stop.
func WithWindow(start, stop telem.Time) Option {
	return func(o *options) {
		o.window = telem.Range{Start: start, Stop: stop}
	}
}

// WithSource sets the random source backing the interval draws. Sources
// are not synchronized; each concurrent caller should supply its own.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithExperiment(exp alamos.Experiment) Option {
	return func(o *options) {
		o.exp = alamos.Sub(exp, "stgen")
	}
}
