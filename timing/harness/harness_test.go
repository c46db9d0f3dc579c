package harness_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hybrid32/timing/harness"
	"github.com/sarchlab/hybrid32/timing/pipeline"
)

var _ = Describe("Harness", func() {
	It("should complete a single queued request", func() {
		h := harness.New("Adder")
		h.Adder.Enqueue(harness.Request{A: 0xFFFFFFFF, B: 0x00000001})

		Expect(h.Run()).To(Succeed())

		responses := h.Adder.Responses()
		Expect(responses).To(HaveLen(1))
		Expect(responses[0].Sum).To(Equal(uint32(0x00000000)))
		Expect(responses[0].Cout).To(BeTrue())
	})

	It("should complete queued requests in submission order", func() {
		h := harness.New("Adder")
		h.Adder.Enqueue(harness.Request{A: 1, B: 2})
		h.Adder.Enqueue(harness.Request{A: 0x00FFFFFF, B: 0x00000001})
		h.Adder.Enqueue(harness.Request{A: 0, B: 0, Cin: true})

		Expect(h.Run()).To(Succeed())

		responses := h.Adder.Responses()
		Expect(responses).To(HaveLen(3))
		Expect(responses[0].Sum).To(Equal(uint32(3)))
		Expect(responses[1].Sum).To(Equal(uint32(0x01000000)))
		Expect(responses[2].Sum).To(Equal(uint32(1)))
	})

	It("should honor the pipeline configuration", func() {
		h := harness.New("Adder", pipeline.WithLSBCarryIn(false))
		h.Adder.Enqueue(harness.Request{A: 0, B: 0, Cin: true})

		Expect(h.Run()).To(Succeed())

		responses := h.Adder.Responses()
		Expect(responses).To(HaveLen(1))
		Expect(responses[0].Sum).To(Equal(uint32(0)))
		Expect(responses[0].Cout).To(BeFalse())
	})
})
