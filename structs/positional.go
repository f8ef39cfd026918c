package main

import (
	"fmt"
	"io"
)

// Color and Point have the same underlying type but are distinct named
// types. Assigning one to the other needs an explicit conversion:
//
//	var p Point = black         // compile error
//	var p Point = Point(black)  // fine, and obviously deliberate
type (
	Color [3]int32
	Point [3]int32
)

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c[0], c[1], c[2])
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p[0], p[1], p[2])
}

func demoPositional(w io.Writer) {
	black := Color{0, 0, 0}
	origin := Point{0, 0, 0}
	fmt.Fprintf(w, "  black = %s, origin = %s\n", black, origin)

	// Positional access is by index.
	red := Color{255, 0, 0}
	fmt.Fprintf(w, "  red channel of %s is %d\n", red, red[0])

	fmt.Fprintf(w, "  types: %T vs %T\n", black, origin)
	fmt.Fprintf(w, "  converted: %s\n", Point(red))
}
