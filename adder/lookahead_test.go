package adder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hybrid32/adder"
)

var _ = Describe("CLA2", func() {
	It("should match ripple-carry with a zero carry-in for all inputs", func() {
		for a := uint32(0); a < 4; a++ {
			for b := uint32(0); b < 4; b++ {
				sum, cout := adder.CLA2(a, b)
				refSum, refCout := adder.RippleCarry(a, b, 2, 0)
				Expect(sum).To(Equal(refSum))
				Expect(cout).To(Equal(refCout))
			}
		}
	})
})

var _ = Describe("CLA2WithCarry", func() {
	It("should match ripple-carry for all inputs and both carries", func() {
		for a := uint32(0); a < 4; a++ {
			for b := uint32(0); b < 4; b++ {
				for cin := uint32(0); cin < 2; cin++ {
					sum, cout := adder.CLA2WithCarry(a, b, cin)
					refSum, refCout := adder.RippleCarry(a, b, 2, cin)
					Expect(sum).To(Equal(refSum))
					Expect(cout).To(Equal(refCout))
				}
			}
		}
	})
})

var _ = Describe("CLA4", func() {
	It("should match ripple-carry exhaustively", func() {
		for a := uint32(0); a < 16; a++ {
			for b := uint32(0); b < 16; b++ {
				for cin := uint32(0); cin < 2; cin++ {
					sum, cout := adder.CLA4(a, b, cin)
					refSum, refCout := adder.RippleCarry(a, b, 4, cin)
					Expect(sum).To(Equal(refSum))
					Expect(cout).To(Equal(refCout))
				}
			}
		}
	})
})

var _ = Describe("CLA8", func() {
	It("should match ripple-carry with a zero carry-in exhaustively", func() {
		for a := uint32(0); a < 256; a++ {
			for b := uint32(0); b < 256; b++ {
				sum, cout := adder.CLA8(a, b)
				refSum, refCout := adder.RippleCarry(a, b, 8, 0)
				Expect(sum).To(Equal(refSum))
				Expect(cout).To(Equal(refCout))
			}
		}
	})
})

var _ = Describe("CLA24", func() {
	// The hierarchy is a latency optimization, never an approximation:
	// its output must be bit-identical to a plain 24-bit ripple chain.
	checkAgainstRipple := func(a, b, cin uint32, lsbHasCin bool) {
		sum, cout := adder.CLA24(a, b, cin, lsbHasCin)
		refSum, refCout := adder.RippleCarry(a, b, 24, cin)
		Expect(sum).To(Equal(refSum))
		Expect(cout).To(Equal(refCout))
	}

	It("should match ripple-carry-24 on structured vectors", func() {
		vectors := []uint32{
			0x000000, 0x000001, 0x800000, 0xFFFFFF,
			0x555555, 0xAAAAAA, 0x0000FF, 0x00FF00,
			0xFF0000, 0x7FFFFF, 0x123456, 0xFEDCBA,
		}
		for _, a := range vectors {
			for _, b := range vectors {
				for cin := uint32(0); cin < 2; cin++ {
					checkAgainstRipple(a, b, cin, true)
				}
			}
		}
	})

	It("should chain a carry across every sub-block boundary", func() {
		// 0xFFFFFF + 1 ripples through the 8, 4, 4, 4, 2 and 2 bit blocks.
		sum, cout := adder.CLA24(0xFFFFFF, 0x000001, 0, true)
		Expect(sum).To(Equal(uint32(0x000000)))
		Expect(cout).To(Equal(uint32(1)))
	})

	It("should consume the external carry-in when lsbHasCin is true", func() {
		sum, cout := adder.CLA24(0xFFFFFF, 0x000000, 1, true)
		Expect(sum).To(Equal(uint32(0x000000)))
		Expect(cout).To(Equal(uint32(1)))
	})

	It("should drop the external carry-in when lsbHasCin is false", func() {
		// The lowest slice has no carry-in input in this configuration,
		// so the addition behaves as if cin were zero.
		sum, cout := adder.CLA24(0xFFFFFF, 0x000000, 1, false)
		Expect(sum).To(Equal(uint32(0xFFFFFF)))
		Expect(cout).To(Equal(uint32(0)))
	})

	It("should match ripple-carry-24 with lsbHasCin false and zero carry", func() {
		vectors := []uint32{0x000000, 0xFFFFFF, 0x00FF01, 0xA5A5A5, 0x5A5A5A}
		for _, a := range vectors {
			for _, b := range vectors {
				checkAgainstRipple(a, b, 0, false)
			}
		}
	})
})
