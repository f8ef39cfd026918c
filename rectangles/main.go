package main

import (
	"fmt"
	"io"
	"os"
)

// The same computation written four ways, from loose parameters to a method,
// followed by the ways Go can print a struct for debugging.
//
// Run:
//
//	go run .
func main() {
	w := os.Stdout

	section(w, "Area — parameters, pair, struct pointer, method")
	demoArea(w)

	section(w, "Methods — CanHold, Square constructor")
	demoMethods(w)

	section(w, "Debug printing — %v, %+v, pretty, dbg")
	demoDebug(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
