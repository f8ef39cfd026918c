package main

import (
	"fmt"
	"io"
)

// Constants are evaluated at compile time and can use constant expressions.
const threeHoursInSeconds uint32 = 60 * 60 * 3

// shadow re-declares x in a nested block with :=.
//
// Go does not allow redeclaring a name in the same block, so every shadow opens
// a new one. The inner binding is a different variable: once the block closes,
// the outer x is visible again, untouched.
func shadow(w io.Writer) (inner, outer int) {
	x := 5
	{
		x := x + 1
		{
			x := x * 2
			fmt.Fprintf(w, "  The value of x is: %d\n", x)
			inner = x
		}
		fmt.Fprintf(w, "  The value of x is: %d\n", x)
		outer = x
	}
	return inner, outer
}

func demoVariables(w io.Writer) {
	fmt.Fprintf(w, "  The value of THREE_HOURS_IN_SECONDS is: %d\n", threeHoursInSeconds)

	// Every var is mutable in Go; there is no `mut` keyword.
	x := 5
	fmt.Fprintf(w, "  The value of x is: %d\n", x)
	x = 6
	fmt.Fprintf(w, "  The value of x is: %d\n", x)

	fmt.Fprintln(w, "\n  Shadowing:")
	shadow(w) // go vet's shadow analyzer flags this; legal, but easy to misread
}
