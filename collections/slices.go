package main

import (
	"fmt"
	"io"
)

// get is the safe accessor: the comma-ok pair reports whether i is in range
// instead of panicking. Direct indexing v[i] with i out of range is a
// runtime panic that stops the program.
func get[T any](v []T, i int) (T, bool) {
	if i < 0 || i >= len(v) {
		var zero T
		return zero, false
	}
	return v[i], true
}

// addInPlace writes through the index, so the caller's backing array changes.
func addInPlace(v []int32, n int32) {
	for i := range v {
		v[i] += n
	}
}

// addToCopies is the range gotcha: x is a copy of each element and the
// assignment is lost.
func addToCopies(v []int32, n int32) {
	for _, x := range v {
		x += n
		_ = x
	}
}

func printS(w io.Writer, label string, s []int32) {
	fmt.Fprintf(w, "  %-18s %v  len=%d cap=%d\n", label+":", s, len(s), cap(s))
}

func demoSlices(w io.Writer) {
	// ── Creation ──────────────────────────────────────────────────────────────
	var empty []int32 // nil slice: ready for append, no allocation yet
	printS(w, "var empty", empty)

	mutable := make([]int32, 0)
	for _, n := range []int32{5, 6, 7, 8} {
		prev := cap(mutable)
		mutable = append(mutable, n)
		if cap(mutable) != prev {
			fmt.Fprintf(w, "  append(%d) grew cap %d → %d\n", n, prev, cap(mutable))
		}
	}
	printS(w, "mutable", mutable)

	// ── Indexing ──────────────────────────────────────────────────────────────
	v := []int32{1, 2, 3, 4, 5}
	third := v[2]
	fmt.Fprintf(w, "  The third element is %d\n", third)

	if third, ok := get(v, 2); ok {
		fmt.Fprintf(w, "  The third element is %d\n", third)
	} else {
		fmt.Fprintln(w, "  There is no third element.")
	}

	if _, ok := get(v, 100); !ok {
		fmt.Fprintln(w, "  There is no element at index 100.")
	}
	// v[100] would panic: index out of range [100] with length 5

	// ── Mutation through iteration ────────────────────────────────────────────
	m := []int32{100, 32, 57}
	addToCopies(m, 50)
	printS(w, "range copies", m)
	addInPlace(m, 50)
	printS(w, "range indices", m)
}
