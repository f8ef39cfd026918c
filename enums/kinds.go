package main

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownVariant is the panic raised by a switch that was handed a value
// outside its closed set. With sealed types only a nil or an out-of-range
// constant can get there.
var ErrUnknownVariant = errors.New("unknown variant")

type IPAddrKind int

const (
	V4 IPAddrKind = iota
	V6
)

func (k IPAddrKind) String() string {
	switch k {
	case V4:
		return "V4"
	case V6:
		return "V6"
	default:
		return fmt.Sprintf("IPAddrKind(%d)", int(k))
	}
}

// IPAddr pairs a kind with its address text. Nothing ties the two together:
// a V6 kind with "127.0.0.1" is representable. The variant types in
// variants.go close that gap.
type IPAddr struct {
	Kind    IPAddrKind
	Address string
}

func route(w io.Writer, kind IPAddrKind) {
	fmt.Fprintf(w, "  print the enum value %v\n", kind)
}

func demoKinds(w io.Writer) {
	four := V4
	six := V6
	route(w, four)
	route(w, six)

	home := IPAddr{Kind: V4, Address: "127.0.0.1"}
	loopback := IPAddr{Kind: V6, Address: "::1"}
	fmt.Fprintf(w, "  print the enum value %+v\n", home)
	fmt.Fprintf(w, "  print the enum value %+v\n", loopback)
}
