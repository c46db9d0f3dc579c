// Package harness runs the adder pipeline under the Akita event-driven
// simulation framework. One engine tick drives one clock edge, so the
// component can sit alongside other Akita components in a larger simulation.
package harness

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/hybrid32/timing/pipeline"
)

// Request is one add transaction.
type Request struct {
	A   uint32
	B   uint32
	Cin bool
}

// Response is the completed result of a Request, in submission order.
type Response struct {
	Sum  uint32
	Cout bool
}

// Comp is a ticking component that feeds queued requests through the
// pipeline, honoring the start/done handshake with one transaction in
// flight at a time.
type Comp struct {
	*sim.TickingComponent

	pipe      *pipeline.Pipeline
	pending   []Request
	responses []Response
	busy      bool
}

// NewComp creates the component and registers it with the engine.
func NewComp(
	name string,
	engine sim.Engine,
	freq sim.Freq,
	opts ...pipeline.Option,
) *Comp {
	c := &Comp{
		pipe: pipeline.New(opts...),
	}
	c.TickingComponent = sim.NewTickingComponent(name, engine, freq, c)
	return c
}

// Enqueue queues a request and schedules the component to tick.
func (c *Comp) Enqueue(req Request) {
	c.pending = append(c.pending, req)
	c.TickLater()
}

// Responses returns the completed results in submission order.
func (c *Comp) Responses() []Response {
	return c.responses
}

// Tick advances the pipeline by one clock edge. It returns false once the
// queue is drained and nothing is in flight, which stops the tick events.
func (c *Comp) Tick() bool {
	if !c.busy {
		if len(c.pending) == 0 {
			return false
		}
		req := c.pending[0]
		c.pending = c.pending[1:]
		c.pipe.Tick(pipeline.Inputs{Start: true, A: req.A, B: req.B, Cin: req.Cin})
		c.busy = true
		return true
	}

	c.pipe.Tick(pipeline.Inputs{})
	if c.pipe.Done() {
		c.responses = append(c.responses, Response{
			Sum:  c.pipe.Sum(),
			Cout: c.pipe.Cout(),
		})
		c.busy = false
	}
	return true
}

// Harness bundles a serial engine with a single adder component.
type Harness struct {
	Engine sim.Engine
	Adder  *Comp
}

// New creates a harness with a 1 GHz adder component on a serial engine.
func New(name string, opts ...pipeline.Option) *Harness {
	engine := sim.NewSerialEngine()
	return &Harness{
		Engine: engine,
		Adder:  NewComp(name, engine, 1*sim.GHz, opts...),
	}
}

// Run drives the engine until all queued requests have completed.
func (h *Harness) Run() error {
	return h.Engine.Run()
}
