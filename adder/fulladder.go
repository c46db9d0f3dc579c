// Package adder implements the combinational network of a 32-bit hybrid
// carry-lookahead / carry-select adder. Every block is a pure function over
// bit vectors packed into uint32 values; the low `width` bits of each
// argument are the operand, everything above is ignored.
package adder

// HalfAdd returns the sum and carry of two 1-bit values.
// The carry is the generate term g = a AND b; the sum is the propagate
// term p = a XOR b. Every lookahead block below is built on these two terms.
func HalfAdd(a, b uint32) (sum, carry uint32) {
	a &= 1
	b &= 1
	return a ^ b, a & b
}

// FullAdd returns the sum and carry-out of two 1-bit values plus a carry-in.
//
//	sum  = a XOR b XOR cin
//	cout = (a AND b) OR ((a XOR b) AND cin) = g OR (p AND cin)
func FullAdd(a, b, cin uint32) (sum, cout uint32) {
	a &= 1
	b &= 1
	cin &= 1
	p := a ^ b
	g := a & b
	return p ^ cin, g | p&cin
}
