package main

import (
	"fmt"
	"io"
)

// IPAddr1 carries the address text inside each variant.
//
// The unexported method seals the interface: no type outside this package
// can implement it, so the set of variants is closed.
type IPAddr1 interface {
	fmt.Stringer
	ipAddr1()
}

type (
	IPv4Addr string
	IPv6Addr string
)

func (IPv4Addr) ipAddr1() {}
func (IPv6Addr) ipAddr1() {}

func (a IPv4Addr) String() string { return fmt.Sprintf("V4(%q)", string(a)) }
func (a IPv6Addr) String() string { return fmt.Sprintf("V6(%q)", string(a)) }

// address unwraps the text carried by either variant.
func address(a IPAddr1) (IPAddrKind, string) {
	switch a := a.(type) {
	case IPv4Addr:
		return V4, string(a)
	case IPv6Addr:
		return V6, string(a)
	default:
		panic(fmt.Errorf("address %T: %w", a, ErrUnknownVariant))
	}
}

// IPAddr2 lets each variant carry a different payload shape: four octets
// for V4, text for V6.
type IPAddr2 interface {
	fmt.Stringer
	ipAddr2()
}

type (
	IPv4Octets [4]uint8
	IPv6Text   string
)

func (IPv4Octets) ipAddr2() {}
func (IPv6Text) ipAddr2()   {}

func (a IPv4Octets) String() string {
	return fmt.Sprintf("V4(%d, %d, %d, %d)", a[0], a[1], a[2], a[3])
}

func (a IPv6Text) String() string { return fmt.Sprintf("V6(%q)", string(a)) }

// kindOf switches over the closed set. The default branch is unreachable for
// well-formed values and panics rather than returning a made-up kind.
func kindOf(a IPAddr2) IPAddrKind {
	switch a.(type) {
	case IPv4Octets:
		return V4
	case IPv6Text:
		return V6
	default:
		panic(fmt.Errorf("kindOf %T: %w", a, ErrUnknownVariant))
	}
}

func demoVariants(w io.Writer) {
	var home1 IPAddr1 = IPv4Addr("127.0.0.1")
	var loopback1 IPAddr1 = IPv6Addr("::1")
	for _, a := range []IPAddr1{home1, loopback1} {
		kind, text := address(a)
		fmt.Fprintf(w, "  print the enum value %v (kind %v, address %s)\n", a, kind, text)
	}

	var home2 IPAddr2 = IPv4Octets{127, 0, 0, 1}
	var loopback2 IPAddr2 = IPv6Text("::1")
	fmt.Fprintf(w, "  print the enum value %v (kind %v)\n", home2, kindOf(home2))
	fmt.Fprintf(w, "  print the enum value %v (kind %v)\n", loopback2, kindOf(loopback2))
}
