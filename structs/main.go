package main

import (
	"fmt"
	"io"
	"os"
)

// Structs with named fields, copying a struct with a few fields changed, and
// named types that share a layout but not an identity.
//
// Run:
//
//	go run .
func main() {
	w := os.Stdout

	section(w, "Named fields — literal, assignment, constructor")
	demoNamedFields(w)

	section(w, "Copy with overrides — value copy, functional options")
	demoUpdate(w)

	section(w, "Positional types — Color vs Point")
	demoPositional(w)

	section(w, "Struct tags — YAML rendering")
	if err := demoTags(w); err != nil {
		fmt.Fprintln(os.Stderr, "tags:", err)
		os.Exit(1)
	}
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
