package main

import (
	"fmt"
	"io"
	"strings"
)

// concat joins s1, s2 and s3 with dashes. The builder owns the only mutable
// buffer; the inputs are read and never modified.
func concat(s1, s2, s3 string) string {
	var b strings.Builder
	b.Grow(len(s1) + len(s2) + len(s3) + 2)
	b.WriteString(s1)
	b.WriteByte('-')
	b.WriteString(s2)
	b.WriteByte('-')
	b.WriteString(s3)
	return b.String()
}

func demoStrings(w io.Writer) {
	// ── Construction ──────────────────────────────────────────────────────────
	var b strings.Builder // zero value is an empty, usable buffer
	fmt.Fprintf(w, "  empty builder: %q len=%d\n", b.String(), b.Len())

	data := "initial contents"
	b.WriteString(data)
	fmt.Fprintf(w, "  from literal: %s\n", b.String())

	// []byte(s) copies: the bytes are now a separate, mutable buffer.
	buf := []byte(data)
	buf[0] = 'I'
	fmt.Fprintf(w, "  from bytes: %s (data is still %q)\n", buf, data)

	// ── Concatenation ─────────────────────────────────────────────────────────
	s1, s2, s3 := "tic", "tac", "toe"
	s := s1 + "-" + s2 + "-" + s3
	fmt.Fprintf(w, "  + operator: %s\n", s)
	fmt.Fprintf(w, "  Sprintf:    %s\n", fmt.Sprintf("%s-%s-%s", s1, s2, s3))
	fmt.Fprintf(w, "  builder:    %s\n", concat(s1, s2, s3))
	fmt.Fprintf(w, "  Join:       %s\n", strings.Join([]string{s1, s2, s3}, "-"))

	// Add moves the left buffer into the result; s2 and s3 are only read.
	left := NewBuffer(s1)
	joined := left.Add("-").Add(s2).Add("-").Add(s3)
	fmt.Fprintf(w, "  Add:        %s (left valid = %v, s2 = %s)\n", joined, left.Valid(), s2)

	// ── Bytes vs runes ────────────────────────────────────────────────────────
	hello := "Здравствуйте"
	fmt.Fprintf(w, "  %s: len=%d bytes, %d runes\n", hello, len(hello), len([]rune(hello)))
	for i, r := range "Зд" {
		fmt.Fprintf(w, "  byte offset %d → %c\n", i, r)
	}
}
