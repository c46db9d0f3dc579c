// Package params holds the build-time geometry of the hybrid adder.
// The decomposition is fixed by the carry network structure; Validate rejects
// anything the 8-4-4-4-2-2 / 24+8 hierarchy cannot support.
package params

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/hybrid32/adder"
)

// Params holds the adder geometry and configuration switches.
// These correspond to elaboration-time parameters, not runtime inputs.
type Params struct {
	// Width is the total operand width in bits. Fixed at 32 by the
	// 24+8 decomposition.
	Width int `json:"width"`

	// LookaheadWidth is the width of the lower carry-lookahead slice.
	// Fixed at 24.
	LookaheadWidth int `json:"lookahead_width"`

	// SelectWidth is the width of the upper carry-select slice.
	// Fixed at 8.
	SelectWidth int `json:"select_width"`

	// LSBHasCin selects the structure of the lookahead hierarchy's lowest
	// 8-bit slice. When true the slice is two chained CLA4 blocks and the
	// external carry-in is consumed directly. When false the slice is a
	// CLA8 with no carry-in input at all, and the external carry-in is
	// silently dropped; callers must then keep Cin at zero.
	LSBHasCin bool `json:"lsb_has_cin"`
}

// Default returns the only supported geometry with carry-in accepted.
func Default() Params {
	return Params{
		Width:          adder.Width,
		LookaheadWidth: adder.LookaheadWidth,
		SelectWidth:    adder.SelectWidth,
		LSBHasCin:      true,
	}
}

// Load reads Params from a JSON file. Missing fields keep their defaults.
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}

	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse params: %w", err)
	}

	return &p, nil
}

// Save writes Params to a JSON file.
func (p Params) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize params: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write params file: %w", err)
	}

	return nil
}

// Validate checks the geometry against the fixed carry network structure.
// Any other decomposition is a construction-time contract violation.
func (p Params) Validate() error {
	if p.Width != adder.Width {
		return fmt.Errorf("width must be %d, got %d", adder.Width, p.Width)
	}
	if p.LookaheadWidth != adder.LookaheadWidth {
		return fmt.Errorf("lookahead_width must be %d, got %d", adder.LookaheadWidth, p.LookaheadWidth)
	}
	if p.SelectWidth != adder.SelectWidth {
		return fmt.Errorf("select_width must be %d, got %d", adder.SelectWidth, p.SelectWidth)
	}
	return nil
}
