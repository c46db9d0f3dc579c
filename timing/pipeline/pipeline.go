// Package pipeline provides the 2-stage registered model of the hybrid
// adder for cycle-accurate timing simulation.
package pipeline

import (
	"github.com/sarchlab/hybrid32/adder"
	"github.com/sarchlab/hybrid32/timing/params"
)

// Inputs is the boundary signal group sampled on one clock edge. The clock
// itself is the Tick call.
type Inputs struct {
	// Reset is the synchronous active-high reset. It dominates every other
	// transition while asserted.
	Reset bool

	// Start requests capture of A, B and Cin on this edge.
	Start bool

	// A and B are the 32-bit operands.
	A uint32
	B uint32

	// Cin is the carry-in.
	Cin bool
}

// Statistics holds pipeline activity counters.
type Statistics struct {
	// Cycles is the total number of edges ticked.
	Cycles uint64
	// Starts is the number of capture edges seen.
	Starts uint64
	// Results is the number of cycles Done was asserted.
	Results uint64
	// Resets is the number of reset edges seen.
	Resets uint64
}

// Option is a functional option for configuring the Pipeline.
type Option func(*Pipeline)

// WithLSBCarryIn selects the structure of the lookahead hierarchy's lowest
// 8-bit slice. With enabled=false the slice has no carry-in input and the
// external Cin is silently dropped; see the package-level contract on Tick.
func WithLSBCarryIn(enabled bool) Option {
	return func(p *Pipeline) {
		p.lsbHasCin = enabled
	}
}

// Pipeline models the two pipeline stages and the start/done handshake.
//
// Stage 1 captures operands on a start edge. The combinational network
// (CLA24 feeding CarrySelect8) is re-evaluated from the captured registers
// every cycle. Stage 2 latches the combinational result unconditionally on
// every edge and delays start by two flops to produce done, so done is high
// exactly two edges after the capture edge and the registered result is
// stale on any cycle where done is low.
//
// There is no back-pressure: a second start before the previous done
// overwrites the input registers and silently corrupts the in-flight result,
// exactly as the hardware would. Callers that want a safe request/response
// surface should use timing/core.
type Pipeline struct {
	in  InputRegister
	out OutputRegister

	lsbHasCin bool

	stats Statistics
}

// New creates a Pipeline in the post-reset state.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		lsbHasCin: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// NewFromParams creates a Pipeline from a geometry description, rejecting
// any decomposition the fixed 24+8 structure does not support.
func NewFromParams(pr params.Params) (*Pipeline, error) {
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	return New(WithLSBCarryIn(pr.LSBHasCin)), nil
}

// Tick advances the model by one clock edge.
//
// All registers latch from their pre-edge values, so the order below is the
// hardware's simultaneous update: stage 2 latches the combinational result
// of the operands captured on a previous edge, then stage 1 captures new
// operands for the next evaluation.
//
// When the pipeline was built with WithLSBCarryIn(false), the carry network
// has nowhere to route Cin and a non-zero Cin is dropped, not added. Correct
// results in that configuration require Cin to be false.
func (p *Pipeline) Tick(in Inputs) {
	p.stats.Cycles++

	if in.Reset {
		p.in.Clear()
		p.out.Clear()
		p.stats.Resets++
		return
	}

	// Stage 2: result capture and handshake, from pre-edge stage-1 state.
	sum, cout := adder.Add32(p.in.A, p.in.B, boolToBit(p.in.Cin), p.lsbHasCin)
	p.out.Sum = sum
	p.out.Cout = cout != 0
	p.out.Done = p.out.startD
	p.out.startD = in.Start

	if p.out.Done {
		p.stats.Results++
	}

	// Stage 1: operand capture. Registers hold unless start is high.
	if in.Start {
		p.in.A = in.A
		p.in.B = in.B
		p.in.Cin = in.Cin
		p.stats.Starts++
	}
}

// Sum returns the registered result. Valid only while Done is high; on other
// cycles it holds whatever stage 2 last latched.
func (p *Pipeline) Sum() uint32 {
	return p.out.Sum
}

// Cout returns the registered carry-out. Valid only while Done is high.
func (p *Pipeline) Cout() bool {
	return p.out.Cout
}

// Done reports whether the registered result corresponds to the operands
// captured two edges ago.
func (p *Pipeline) Done() bool {
	return p.out.Done
}

// LSBHasCin reports the configured structure of the lowest lookahead slice.
func (p *Pipeline) LSBHasCin() bool {
	return p.lsbHasCin
}

// InputReg returns the stage-1 register bank, for tracing.
func (p *Pipeline) InputReg() InputRegister {
	return p.in
}

// Stats returns pipeline activity counters.
func (p *Pipeline) Stats() Statistics {
	return p.stats
}

func boolToBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
