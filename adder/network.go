package adder

// Geometry of the fixed 32-bit decomposition: the low LookaheadWidth bits go
// through CLA24, the remaining SelectWidth bits through CarrySelect8.
const (
	Width          = 32
	LookaheadWidth = 24
	SelectWidth    = 8
)

// Add32 evaluates the full combinational path: CLA24 produces the lower sum
// and the block carry, the block carry selects the pre-computed upper sum in
// CarrySelect8. Results wrap modulo 2^32 with cout carrying the dropped bit.
//
// When lsbHasCin is false the external carry-in is not routed anywhere and a
// non-zero cin is silently ignored; correct results in that configuration
// require cin == 0.
func Add32(a, b, cin uint32, lsbHasCin bool) (sum, cout uint32) {
	lo, cK := CLA24(a, b, cin, lsbHasCin)
	hi, cN := CarrySelect8(a>>LookaheadWidth, b>>LookaheadWidth, cK)
	return lo | hi<<LookaheadWidth, cN
}
