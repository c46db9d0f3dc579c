package adder

// The lookahead blocks compute every internal carry directly from the
// per-bit generate/propagate terms instead of rippling: carry into bit i is
//
//	c_i = g_{i-1} | p_{i-1}&g_{i-2} | ... | p_{i-1}&...&p_0&cin
//
// so the carry depth is one product-of-sums level regardless of block width.

// CLA2 adds two 2-bit values with no external carry-in. This is the variant
// used when a pair sits at the bottom of a chain that never receives a carry;
// it behaves as if the incoming carry were zero.
func CLA2(a, b uint32) (sum, cout uint32) {
	a &= 0x3
	b &= 0x3
	g := a & b
	p := a ^ b
	g0, g1 := g&1, (g>>1)&1
	p0, p1 := p&1, (p>>1)&1

	c1 := g0
	c2 := g1 | p1&g0

	sum = p0 | (p1^c1)<<1
	return sum, c2
}

// CLA2WithCarry adds two 2-bit values with an external 1-bit carry-in.
func CLA2WithCarry(a, b, cin uint32) (sum, cout uint32) {
	a &= 0x3
	b &= 0x3
	cin &= 1
	g := a & b
	p := a ^ b
	g0, g1 := g&1, (g>>1)&1
	p0, p1 := p&1, (p>>1)&1

	c1 := g0 | p0&cin
	c2 := g1 | p1&g0 | p1&p0&cin

	sum = (p0 ^ cin) | (p1^c1)<<1
	return sum, c2
}

// CLA4 adds two 4-bit values with an external 1-bit carry-in, producing all
// four internal carries in explicit sum-of-products form.
func CLA4(a, b, cin uint32) (sum, cout uint32) {
	a &= 0xF
	b &= 0xF
	cin &= 1
	g := a & b
	p := a ^ b
	g0, g1, g2, g3 := g&1, (g>>1)&1, (g>>2)&1, (g>>3)&1
	p0, p1, p2, p3 := p&1, (p>>1)&1, (p>>2)&1, (p>>3)&1

	c1 := g0 | p0&cin
	c2 := g1 | p1&g0 | p1&p0&cin
	c3 := g2 | p2&g1 | p2&p1&g0 | p2&p1&p0&cin
	c4 := g3 | p3&g2 | p3&p2&g1 | p3&p2&p1&g0 | p3&p2&p1&p0&cin

	sum = (p0 ^ cin) | (p1^c1)<<1 | (p2^c2)<<2 | (p3^c3)<<3
	return sum, c4
}

// CLA8 adds two 8-bit values as two chained CLA4 blocks. It has no carry-in
// input at all: the low CLA4 always sees a zero carry. CLA24 uses this block
// for its lowest slice when the external carry-in is not routed in.
func CLA8(a, b uint32) (sum, cout uint32) {
	lo, c4 := CLA4(a, b, 0)
	hi, c8 := CLA4(a>>4, b>>4, c4)
	return lo | hi<<4, c8
}

// CLA24 adds the low 24 bits of a and b, composed as 8+4+4+4+2+2-bit
// sub-blocks in ascending bit order, each block's carry-out chained into the
// next block's carry-in.
//
// The leading 8-bit slice depends on lsbHasCin: when true it is two chained
// CLA4 blocks and the first consumes the external carry-in directly; when
// false it is a CLA8, which has no carry-in input, so cin is silently dropped.
// Callers in that configuration must guarantee cin is zero (see Add32).
func CLA24(a, b, cin uint32, lsbHasCin bool) (sum, cout uint32) {
	var s8, c8 uint32
	if lsbHasCin {
		lo, c4 := CLA4(a, b, cin)
		hi, c := CLA4(a>>4, b>>4, c4)
		s8, c8 = lo|hi<<4, c
	} else {
		s8, c8 = CLA8(a, b)
	}

	s12, c12 := CLA4(a>>8, b>>8, c8)
	s16, c16 := CLA4(a>>12, b>>12, c12)
	s20, c20 := CLA4(a>>16, b>>16, c16)
	s22, c22 := CLA2WithCarry(a>>20, b>>20, c20)
	s24, c24 := CLA2WithCarry(a>>22, b>>22, c22)

	sum = s8 | s12<<8 | s16<<12 | s20<<16 | s22<<20 | s24<<22
	return sum, c24
}
