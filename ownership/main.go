package main

import (
	"fmt"
	"io"
	"os"
)

// Go has a garbage collector and no borrow checker: any number of pointers
// can alias the same value and nothing stops two of them writing at once.
// These demos model single ownership explicitly with Text, an owned buffer
// that checks moves and borrows at runtime.
//
// Run:
//
//	go run .
func main() {
	w := os.Stdout

	section(w, "Owned buffers — append, clone, move")
	demoOwnedText(w)

	section(w, "Functions — ownership in, ownership out, copies")
	demoFunctions(w)

	section(w, "Borrowing — shared readers, exclusive writer")
	demoBorrowing(w)

	section(w, "Slices of strings — firstWord")
	demoFirstWord(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
