// Package main provides the hybrid32 command line interface.
// It runs add transactions through the cycle-accurate pipeline model.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sarchlab/hybrid32/timing/core"
	"github.com/sarchlab/hybrid32/timing/params"
	"github.com/sarchlab/hybrid32/timing/pipeline"
)

var (
	aFlag      = flag.String("a", "0", "Operand A (accepts 0x prefix)")
	bFlag      = flag.String("b", "0", "Operand B (accepts 0x prefix)")
	cinFlag    = flag.Bool("cin", false, "Carry-in")
	paramsPath = flag.String("params", "", "Path to geometry JSON file")
	trace      = flag.Bool("trace", false, "Trace register state per cycle")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	logger := newLogger(*verbose || *trace)

	a, err := parseOperand(*aFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid operand A")
	}
	b, err := parseOperand(*bFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid operand B")
	}

	p := params.Default()
	if *paramsPath != "" {
		loaded, err := params.Load(*paramsPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load params")
		}
		p = *loaded
	}

	c, err := core.NewFromParams(p)
	if err != nil {
		logger.Fatal().Err(err).Msg("unsupported geometry")
	}

	if !p.LSBHasCin && *cinFlag {
		logger.Warn().Msg("lsb_has_cin is false: carry-in is not routed and will be dropped")
	}

	var sum uint32
	var cout bool
	if *trace {
		sum, cout = runTraced(c, logger, a, b, *cinFlag)
	} else {
		sum, cout = c.Add(a, b, *cinFlag)
	}

	stats := c.Pipeline.Stats()
	logger.Info().
		Str("a", fmt.Sprintf("0x%08X", a)).
		Str("b", fmt.Sprintf("0x%08X", b)).
		Bool("cin", *cinFlag).
		Str("sum", fmt.Sprintf("0x%08X", sum)).
		Bool("cout", cout).
		Uint64("cycles", stats.Cycles).
		Msg("add complete")

	fmt.Printf("0x%08X + 0x%08X + %d = 0x%08X carry %d\n",
		a, b, bit(*cinFlag), sum, bit(cout))
}

// runTraced drives the handshake one edge at a time, logging register state.
func runTraced(c *core.Core, logger zerolog.Logger, a, b uint32, cin bool) (uint32, bool) {
	c.Tick(pipeline.Inputs{Start: true, A: a, B: b, Cin: cin})
	traceCycle(c, logger)
	for !c.Pipeline.Done() {
		c.Tick(pipeline.Inputs{})
		traceCycle(c, logger)
	}
	return c.Pipeline.Sum(), c.Pipeline.Cout()
}

func traceCycle(c *core.Core, logger zerolog.Logger) {
	in := c.Pipeline.InputReg()
	logger.Debug().
		Uint64("cycle", c.Pipeline.Stats().Cycles).
		Str("a_r", fmt.Sprintf("0x%08X", in.A)).
		Str("b_r", fmt.Sprintf("0x%08X", in.B)).
		Bool("cin_r", in.Cin).
		Str("sum", fmt.Sprintf("0x%08X", c.Pipeline.Sum())).
		Bool("cout", c.Pipeline.Cout()).
		Bool("done", c.Pipeline.Done()).
		Msg("tick")
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func parseOperand(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
