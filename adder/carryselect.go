package adder

// CarrySelect8 adds two 8-bit values, selecting between two speculative
// ripple-carry results. Both legs are computed unconditionally, one assuming
// a zero carry-in and one assuming a one; sel (the carry arriving from the
// lower block) picks the correct pair. Only the final 1-bit selection depends
// on the lower block's carry, so the upper slice's internal carry chain never
// waits for it.
func CarrySelect8(a, b, sel uint32) (sum, cout uint32) {
	sum0, cout0 := RippleCarry(a, b, 8, 0)
	sum1, cout1 := RippleCarry(a, b, 8, 1)
	if sel&1 != 0 {
		return sum1, cout1
	}
	return sum0, cout0
}
