package stgen_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/exp/rand"

	"stgen"
	"stgen/telem"
)

var _ = Describe("SpikeTrain", func() {
	var train *stgen.SpikeTrain
	BeforeEach(func() {
		var err error
		train, err = stgen.HomogeneousPoissonProcess(
			telem.Hz(50),
			stgen.WithWindow(telem.Milliseconds(0), telem.Milliseconds(1000)),
			stgen.WithSource(rand.NewSource(42)),
		)
		Expect(err).ToNot(HaveOccurred())
	})
	It("Should expose the same values through Array and Times", func() {
		s := train.Array()
		ts := train.Times()
		Expect(ts).To(HaveLen(len(s)))
		for i, v := range s {
			Expect(ts[i]).To(Equal(telem.Milliseconds(v)))
			Expect(train.At(i)).To(Equal(ts[i]))
		}
	})
	It("Should copy the underlying sequence on Array", func() {
		s := train.Array()
		Expect(s).ToNot(BeEmpty())
		s[0] = -1
		Expect(train.Array()[0]).ToNot(Equal(-1.0))
	})
	It("Should report gaps consistent with the times", func() {
		s := train.Array()
		gaps := train.ISIs()
		Expect(gaps).To(HaveLen(len(s) - 1))
		for i, g := range gaps {
			Expect(g).To(Equal(s[i+1] - s[i]))
		}
	})
	It("Should carry the generation window", func() {
		Expect(train.Range()).To(Equal(telem.Range{
			Start: telem.Milliseconds(0),
			Stop:  telem.Milliseconds(1000),
		}))
	})
	It("Should assign a distinct identity per train", func() {
		other, err := stgen.HomogeneousPoissonProcess(telem.Hz(50))
		Expect(err).ToNot(HaveOccurred())
		Expect(train.PK).ToNot(Equal(other.PK))
		Expect(train.PK.String()).To(HaveLen(36))
	})
})
