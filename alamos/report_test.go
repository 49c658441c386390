package alamos_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"stgen/alamos"
)

var _ = Describe("Report", func() {
	It("Should report metrics from the experiment tree", func() {
		exp := alamos.New("exp")
		g := alamos.NewGauge[int](exp, "gauge")
		g.Record(1)
		sub := alamos.Sub(exp, "sub")
		s := alamos.NewSeries[float64](sub, "series")
		s.Record(3.2)
		r := exp.Report()
		Expect(r["gauge"]).To(Equal([]int{1}))
		Expect(r["sub"]).To(HaveKeyWithValue("series", []float64{3.2}))
		_, err := json.Marshal(r)
		Expect(err).ToNot(HaveOccurred())
	})
})
