// Package main provides the entry point for hybrid32.
// hybrid32 is a cycle-accurate model of a 32-bit hybrid carry-lookahead /
// carry-select adder.
//
// For the full CLI, use: go run ./cmd/hybrid32
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("hybrid32 - hybrid CLA/carry-select adder model")
	fmt.Println("")
	fmt.Println("Usage: hybrid32 [options]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -a, -b     Operands (accepts 0x prefix)")
	fmt.Println("  -cin       Carry-in")
	fmt.Println("  -params    Path to geometry JSON file")
	fmt.Println("  -trace     Trace register state per cycle")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/hybrid32' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/hybrid32' instead.")
	}
}
