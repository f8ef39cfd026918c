package main

import (
	"fmt"
	"io"
	"os"
)

// The three containers every program leans on: slices, strings and maps.
//
// Run:
//
//	go run .
func main() {
	w := os.Stdout

	section(w, "Slices — create, append, index, safe get, mutate in place")
	demoSlices(w)

	section(w, "Strings — builders, conversion, concatenation, bytes vs runes")
	demoStrings(w)

	section(w, "Maps — insert, lookup, update from the old value")
	demoMaps(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
