package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// wordCount counts whitespace separated words. Reading a missing key yields
// the zero value, so counts[word]++ needs no existence check.
func wordCount(text string) map[string]int {
	counts := make(map[string]int)
	for _, word := range strings.Fields(text) {
		counts[word]++
	}
	return counts
}

func demoMaps(w io.Writer) {
	scores := map[string]int{}
	scores["Blue"] = 10
	scores["Yellow"] = 50

	if score, ok := scores["Blue"]; ok {
		fmt.Fprintf(w, "  Blue: %d\n", score)
	}
	if _, ok := scores["Red"]; !ok {
		fmt.Fprintln(w, "  Red: no score")
	}

	// Overwrite, then insert only when absent.
	scores["Blue"] = 25
	if _, ok := scores["Yellow"]; !ok {
		scores["Yellow"] = 50
	}

	// Map iteration order is randomized; sort keys for stable output.
	for _, k := range slices.Sorted(maps.Keys(scores)) {
		fmt.Fprintf(w, "  %s: %d\n", k, scores[k])
	}

	counts := wordCount("hello world wonderful world")
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(w, "  %s → %d\n", k, counts[k])
	}
}
