package main

import (
	"fmt"
	"io"
	"os"
)

// Go has no sum types. Each demo shows one way to model a closed set of
// alternatives: typed iota constants for plain tags, sealed interfaces for
// variants with data, a visitor when the compiler must check that every
// variant is handled, and a generic Option for present-or-absent values.
//
// Run:
//
//	go run .
func main() {
	w := os.Stdout

	section(w, "Unit variants — iota constants, a struct carrying the kind")
	demoKinds(w)

	section(w, "Variants with data — sealed interfaces and type switches")
	demoVariants(w)

	section(w, "Exhaustive matching — visitor, switch with fail-fast default")
	demoMatching(w)

	section(w, "Option[T] — Some, None, Map, Match")
	demoOption(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
