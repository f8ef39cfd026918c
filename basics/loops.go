package main

import (
	"fmt"
	"io"
	"slices"
)

// Go has a single loop keyword. for {} is the infinite loop, for cond {} is
// the while loop and for range walks collections, integers and iterators.

// countUp breaks out of the outer loop from inside the inner one through a
// label. The inner loop alone stops at remaining == 9; once count reaches 2
// the labeled break ends both loops before count is incremented again.
func countUp(w io.Writer) int {
	count := 0
countingUp:
	for {
		fmt.Fprintf(w, "  count = %d\n", count)
		remaining := 10

		for {
			fmt.Fprintf(w, "  remaining = %d\n", remaining)
			if remaining == 9 {
				break
			}
			if count == 2 {
				break countingUp
			}
			remaining--
		}

		count++
	}
	fmt.Fprintf(w, "  End count = %d\n", count)
	return count
}

func liftoff(w io.Writer) {
	number := 3
	for number != 0 {
		fmt.Fprintf(w, "  %d!\n", number)
		number--
	}
	fmt.Fprintln(w, "  LIFTOFF!!!")
}

func forEach(w io.Writer) {
	a := [...]int{10, 20, 30, 40, 50}
	for _, element := range a {
		fmt.Fprintf(w, "  the value is: %d\n", element)
	}
}

// countdown walks the half-open range [lo, hi) from the top down.
func countdown(w io.Writer, lo, hi int) []int {
	r := make([]int, 0, max(hi-lo, 0))
	for i := lo; i < hi; i++ {
		r = append(r, i)
	}

	var seen []int
	for _, number := range slices.Backward(r) {
		fmt.Fprintf(w, "  %d!\n", number)
		seen = append(seen, number)
	}
	return seen
}

func demoLoops(w io.Writer) {
	fmt.Fprintln(w, "  Labeled break:")
	countUp(w)

	fmt.Fprintln(w, "\n  Condition loop:")
	liftoff(w)

	fmt.Fprintln(w, "\n  Range over an array:")
	forEach(w)

	fmt.Fprintln(w, "\n  Reverse range:")
	countdown(w, 1, 4)
}
