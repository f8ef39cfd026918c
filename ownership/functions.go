package main

import (
	"fmt"
	"io"
)

// takesOwnership receives a moved Text and drops it before returning.
// The caller writes takesOwnership(s.Move()), which makes the transfer
// visible at the call site and leaves s invalid.
func takesOwnership(w io.Writer, someString *Text) {
	defer someString.Drop()
	fmt.Fprintf(w, "  %s\n", someString)
}

// makesCopy receives an int32 by value. The caller keeps its own copy; fixed
// size values live in the stack frame and are duplicated on every call.
func makesCopy(w io.Writer, someInteger int32) {
	fmt.Fprintf(w, "  %d\n", someInteger)
}

// givesOwnership creates a Text and hands ownership to the caller.
func givesOwnership() *Text {
	return NewText("yours")
}

func takesAndGivesBack(aString *Text) *Text {
	return aString.Move()
}

// calculateLength takes ownership and hands it back together with the
// length, the long way around a borrow. s is invalid once it returns.
func calculateLength(s *Text) (*Text, int) {
	length := s.Len()
	return s.Move(), length
}

// calculateLengthMut writes through the exclusive borrow.
func calculateLengthMut(s *MutRef) int {
	s.PushStr(", world!")
	return s.Len()
}

// recoverErr runs f and returns the error it panicked with, if any.
func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = fmt.Errorf("%v", r)
			}
			err = e
		}
	}()
	f()
	return nil
}

func demoOwnedText(w io.Writer) {
	s := NewText("hello")
	s.PushStr(", world!")
	fmt.Fprintf(w, "  %s\n", s)

	s1 := NewText("hello")
	s2 := s1.Clone()
	fmt.Fprintf(w, "  s1 = %s, s2 = %s\n", s1, s2)

	moved := NewText("hello")
	taken := moved.Move()
	fmt.Fprintf(w, "  after move: taken = %s, moved valid = %v\n", taken, moved.Valid())
	err := recoverErr(func() { _ = moved.Len() })
	fmt.Fprintf(w, "  using moved: %v\n", err)
}

func demoFunctions(w io.Writer) {
	s := NewText("hello")
	takesOwnership(w, s.Move())
	fmt.Fprintf(w, "  s valid after takesOwnership: %v\n", s.Valid())

	x := int32(5)
	makesCopy(w, x)
	fmt.Fprintf(w, "  x still usable after makesCopy: %d\n", x)

	s1 := givesOwnership()
	s2 := NewText("hello")
	s3 := takesAndGivesBack(s2)
	fmt.Fprintf(w, "  s1 = %s, s3 = %s, s2 valid = %v\n", s1, s3, s2.Valid())

	s4 := NewText("hello")
	s5, n := calculateLength(s4.Move())
	fmt.Fprintf(w, "  The length of '%s' is %d.\n", s5, n)
}
