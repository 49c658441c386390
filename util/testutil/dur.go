package testutil

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega/gmeasure"
)

// RunDurationExp samples f n times and attaches the measured durations to
// the current spec report as a gmeasure experiment.
func RunDurationExp(name string, n int, f func()) {
	exp := gmeasure.NewExperiment(name)
	ginkgo.AddReportEntry(exp.Name, exp)
	exp.Sample(func(int) {
		exp.MeasureDuration(name, f, gmeasure.Precision(time.Microsecond))
	}, gmeasure.SamplingConfig{N: n})
}
