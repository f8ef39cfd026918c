package main

import (
	"fmt"
	"io"
	"os"
)

// Each demo covers one of the basic building blocks: bindings, numeric types,
// composite literals and the three shapes of the for loop.
//
// Run:
//
//	go run .
func main() {
	w := os.Stdout

	section(w, "Variables — constants, mutation, shadowing")
	demoVariables(w)

	section(w, "Data types — floats, arithmetic, tuples, arrays")
	demoDataTypes(w)

	section(w, "Control flow — if, if as an expression")
	demoControlFlow(w)

	section(w, "Loops — labeled break, condition loop, range, reverse range")
	demoLoops(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
