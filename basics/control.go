package main

import (
	"fmt"
	"io"
)

// pick stands in for an if-expression. Go has no ternary operator, so the
// value is assigned from both branches of a plain if.
func pick(condition bool) int {
	number := 6
	if condition {
		number = 5
	}
	return number
}

func demoControlFlow(w io.Writer) {
	a := filled()
	if a[0] < 5 {
		fmt.Fprintln(w, "  condition was true")
	} else {
		fmt.Fprintln(w, "  condition was false")
	}

	fmt.Fprintf(w, "  The value of number is: %d\n", pick(true))
}
