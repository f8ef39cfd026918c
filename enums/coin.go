package main

import (
	"fmt"
	"io"
)

type Coin int

const (
	Penny Coin = iota
	Nickel
	Dime
	Quarter
)

func (c Coin) String() string {
	switch c {
	case Penny:
		return "Penny"
	case Nickel:
		return "Nickel"
	case Dime:
		return "Dime"
	case Quarter:
		return "Quarter"
	default:
		return fmt.Sprintf("Coin(%d)", int(c))
	}
}

// valueInCents panics on a value outside the declared constants. An int
// based enum cannot stop Coin(42) from being written, so the switch checks.
func valueInCents(coin Coin) uint8 {
	switch coin {
	case Penny:
		return 1
	case Nickel:
		return 5
	case Dime:
		return 10
	case Quarter:
		return 25
	default:
		panic(fmt.Errorf("valueInCents %v: %w", coin, ErrUnknownVariant))
	}
}

func demoMatching(w io.Writer) {
	m := Write("hello")
	fmt.Fprintf(w, "  call: %s\n", Call(m))

	for _, msg := range []Message{Quit{}, Move{X: 1, Y: 2}, Write("hi"), ChangeColor{0, 160, 255}} {
		fmt.Fprintf(w, "  %s\n", Call(msg))
	}

	for _, c := range []Coin{Penny, Nickel, Dime, Quarter} {
		fmt.Fprintf(w, "  %v is worth %d cents\n", c, valueInCents(c))
	}
}
