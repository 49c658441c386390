package telem_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"stgen/telem"
)

var _ = Describe("Time", func() {
	It("Should rescale between time units", func() {
		t, err := telem.Seconds(1.5).Rescale(telem.Millisecond)
		Expect(err).ToNot(HaveOccurred())
		Expect(t.Unit).To(Equal(telem.Millisecond))
		Expect(t.Value).To(BeNumerically("~", 1500, 1e-9))
	})
	It("Should reject rescaling across dimensions", func() {
		_, err := telem.Seconds(1).Rescale(telem.Hertz)
		Expect(err).To(HaveOccurred())
		Expect(err).To(BeAssignableToTypeOf(telem.DimensionError{}))
	})
	It("Should subtract in the receiver's unit", func() {
		span, err := telem.Milliseconds(1500).Sub(telem.Seconds(1))
		Expect(err).ToNot(HaveOccurred())
		Expect(span.Unit).To(Equal(telem.Millisecond))
		Expect(span.Value).To(BeNumerically("~", 500, 1e-9))
	})
	It("Should add in the receiver's unit", func() {
		t, err := telem.Seconds(1).Add(telem.Milliseconds(250))
		Expect(err).ToNot(HaveOccurred())
		Expect(t.Value).To(BeNumerically("~", 1.25, 1e-12))
	})
	It("Should propagate dimension mismatches through arithmetic", func() {
		_, err := telem.Seconds(1).Add(telem.Time{Value: 1, Unit: telem.Hertz})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Rate", func() {
	It("Should invert into its mean interval", func() {
		Expect(telem.Hz(50).Interval()).To(Equal(telem.Time{Value: 0.02, Unit: telem.Second}))
	})
	It("Should compute the expected count over a span", func() {
		n, err := telem.Hz(50).Count(telem.Milliseconds(1000))
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(BeNumerically("~", 50, 1e-9))
	})
	It("Should surface the span's dimension mismatch", func() {
		_, err := telem.Hz(50).Count(telem.Time{Value: 1, Unit: telem.Kilohertz})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Unit", func() {
	It("Should map rate units to their reciprocal time units", func() {
		Expect(telem.Hertz.Interval()).To(Equal(telem.Second))
		Expect(telem.Kilohertz.Interval()).To(Equal(telem.Millisecond))
	})
})

var _ = Describe("Range", func() {
	It("Should span in the stop unit", func() {
		span, err := telem.Range{
			Start: telem.Milliseconds(100),
			Stop:  telem.Milliseconds(350),
		}.Span()
		Expect(err).ToNot(HaveOccurred())
		Expect(span).To(Equal(telem.Milliseconds(250)))
	})
})
