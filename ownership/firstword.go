package main

import (
	"fmt"
	"io"
)

// firstWord returns the prefix of s up to the first space, or all of s when
// there is none. The result is a substring: it shares s's bytes, no copy.
func firstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i]
		}
	}
	return s
}

func demoFirstWord(w io.Writer) {
	s := NewText("hello world")

	s.WithRef(func(r *Ref) {
		word := firstWord(r.String())
		fmt.Fprintf(w, "  the first word is: %s\n", word)
	})

	fmt.Fprintf(w, "  the first word of %q is: %s\n", "hello", firstWord("hello"))
}
