// Package core wraps the pipeline model in an explicit request/response
// surface. The hardware never enforces its start/done contract; this wrapper
// does, by driving the handshake internally.
package core

import (
	"github.com/sarchlab/hybrid32/timing/params"
	"github.com/sarchlab/hybrid32/timing/pipeline"
)

// Stats holds activity counters for the core.
type Stats struct {
	// Cycles is the total number of edges ticked.
	Cycles uint64
	// Requests is the number of completed add transactions.
	Requests uint64
}

// Core drives one add transaction at a time through the pipeline. It owns
// the start/done protocol, so callers cannot overlap requests by accident.
type Core struct {
	// Pipeline is the underlying 2-stage registered model.
	Pipeline *pipeline.Pipeline

	requests uint64
}

// New creates a Core around a fresh pipeline.
func New(opts ...pipeline.Option) *Core {
	return &Core{
		Pipeline: pipeline.New(opts...),
	}
}

// NewFromParams creates a Core from a geometry description.
func NewFromParams(pr params.Params) (*Core, error) {
	p, err := pipeline.NewFromParams(pr)
	if err != nil {
		return nil, err
	}
	return &Core{Pipeline: p}, nil
}

// Add runs one transaction: it pulses start with the given operands, then
// ticks until done and returns the registered result. The latency is exactly
// two cycles by construction.
//
// When the core was built with LSBHasCin disabled, cin is not routed into
// the carry network and must be false for the result to be correct; a true
// cin is dropped, not added (preserved hardware behavior).
func (c *Core) Add(a, b uint32, cin bool) (sum uint32, cout bool) {
	c.Pipeline.Tick(pipeline.Inputs{Start: true, A: a, B: b, Cin: cin})
	for !c.Pipeline.Done() {
		c.Pipeline.Tick(pipeline.Inputs{})
	}
	c.requests++
	return c.Pipeline.Sum(), c.Pipeline.Cout()
}

// Reset holds synchronous reset for one edge, clearing all registers.
func (c *Core) Reset() {
	c.Pipeline.Tick(pipeline.Inputs{Reset: true})
}

// Tick exposes the raw cycle-stepping primitive for callers that drive the
// handshake themselves. Such callers must not re-assert start before done.
func (c *Core) Tick(in pipeline.Inputs) {
	c.Pipeline.Tick(in)
}

// Stats returns activity counters for the core.
func (c *Core) Stats() Stats {
	return Stats{
		Cycles:   c.Pipeline.Stats().Cycles,
		Requests: c.requests,
	}
}
