package pipeline

// InputRegister is the stage-1 register bank. It captures the operands and
// carry-in on the edge where start is high and holds them otherwise.
type InputRegister struct {
	// A and B are the latched 32-bit operands.
	A uint32
	B uint32

	// Cin is the latched carry-in.
	Cin bool
}

// Clear resets the register to the post-reset state.
func (r *InputRegister) Clear() {
	r.A = 0
	r.B = 0
	r.Cin = false
}

// OutputRegister is the stage-2 register bank. Sum and Cout latch the
// combinational result on every edge; Done and startD implement the
// handshake delay line.
type OutputRegister struct {
	// Sum is the registered 32-bit result, valid while Done is high.
	Sum uint32

	// Cout is the registered carry-out, valid while Done is high.
	Cout bool

	// Done is high for exactly one cycle, two edges after the capture edge.
	Done bool

	// startD is the delayed start flag feeding Done.
	startD bool
}

// Clear resets the register to the post-reset state.
func (r *OutputRegister) Clear() {
	r.Sum = 0
	r.Cout = false
	r.Done = false
	r.startD = false
}
