package main

import (
	"fmt"
	"io"
)

func demoBorrowing(w io.Writer) {
	s1 := NewText("hello")

	var len1 int
	s1.WithMut(func(m *MutRef) {
		len1 = calculateLengthMut(m)
	})
	fmt.Fprintf(w, "  The length of '%s' is %d.\n", s1, len1)

	// Any number of readers at once.
	r1 := s1.Borrow()
	r2 := s1.Borrow()
	fmt.Fprintf(w, "  %s and %s\n", r1, r2)

	// A writer while readers are alive is refused.
	if _, err := s1.TryBorrowMut(); err != nil {
		fmt.Fprintf(w, "  borrow_mut with readers alive: %v\n", err)
	}

	// r1 and r2 are not used after this point.
	r1.Release()
	r2.Release()

	r3 := s1.BorrowMut()
	fmt.Fprintf(w, "  %s\n", r3)

	if _, err := s1.TryBorrow(); err != nil {
		fmt.Fprintf(w, "  borrow with a writer alive: %v\n", err)
	}
	r3.Release()
}
