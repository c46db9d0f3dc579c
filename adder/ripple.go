package adder

// RippleCarry adds the low `width` bits of a and b with a 1-bit carry-in by
// chaining FullAdd stages, carry[i+1] = FullAdd(a[i], b[i], carry[i]).cout.
// Worst-case carry latency grows linearly with width, which is exactly what
// the carry-select block exists to route around for the upper slice. Kept as
// the reference adder for the equivalence tests and as the two speculative
// legs of CarrySelect8.
func RippleCarry(a, b uint32, width int, cin uint32) (sum, cout uint32) {
	carry := cin & 1
	for i := 0; i < width; i++ {
		s, c := FullAdd(a>>i, b>>i, carry)
		sum |= s << i
		carry = c
	}
	return sum, carry
}
