package main

import (
	"fmt"
	"io"
)

// arithmetic holds the results of the basic operators so tests can check them
// without parsing output.
type arithmetic struct {
	Sum        int
	Difference float64
	Product    int
	Quotient   float64
	Truncated  int
	Remainder  int
}

func computeArithmetic() arithmetic {
	return arithmetic{
		Sum:        5 + 10,
		Difference: 95.5 - 4.3,
		Product:    4 * 30,
		Quotient:   56.7 / 32.2,
		Truncated:  -5 / 3, // integer division truncates toward zero → -1
		Remainder:  43 % 5,
	}
}

// tuple has no direct Go counterpart. Multiple return values cover the
// "return several things" case and destructure at the call site.
func tuple() (int32, float64, uint8) {
	return 500, 6.4, 1
}

func demoDataTypes(w io.Writer) {
	x := 2.0 // float64 is the default for untyped float constants
	fmt.Fprintf(w, "  The value of x float is: %v\n", x)
	var y float32 = 3.0
	fmt.Fprintf(w, "  The value of x float is: %v\n", y)

	a := computeArithmetic()
	fmt.Fprintf(w, "  The value of sum is: %d\n", a.Sum)
	fmt.Fprintf(w, "  The value of difference is: %v\n", a.Difference)
	fmt.Fprintf(w, "  The value of product is: %d\n", a.Product)
	fmt.Fprintf(w, "  The value of quotient is: %v\n", a.Quotient)
	fmt.Fprintf(w, "  The value of truncated is: %d\n", a.Truncated)
	fmt.Fprintf(w, "  The value of remainder is: %d\n", a.Remainder)

	// ── Tuples ────────────────────────────────────────────────────────────────
	_, ty, _ := tuple()
	fmt.Fprintf(w, "  The value of y is: %v\n", ty)

	// An anonymous struct is the closest thing to a tuple value.
	tup := struct {
		A int32
		B float64
		C uint8
	}{500, 6.4, 1}
	fmt.Fprintf(w, "  The value of tup is: %d\n", tup.C)

	// ── Arrays ────────────────────────────────────────────────────────────────
	// The length is part of the type: [5]uint8 and [6]uint8 are different types.
	arr := [5]uint8{1, 2, 3, 4, 5}
	months := [...]string{"January", "February", "March", "April", "May", "June", "July"}
	fmt.Fprintf(w, "  The value of a is: %d\n", arr[0])
	fmt.Fprintf(w, "  The value of months is: %s\n", months[0])

	fmt.Fprintf(w, "  The value of a is: %d\n", filled()[0])
}

// filled builds [3, 3, 3, 3, 3]. Go has no repeat-literal syntax for arrays.
func filled() [5]int {
	var a [5]int
	for i := range a {
		a[i] = 3
	}
	return a
}
