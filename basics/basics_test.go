package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(buf *bytes.Buffer) []string {
	var out []string
	for _, l := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		out = append(out, strings.TrimSpace(l))
	}
	return out
}

// ── Shadowing ────────────────────────────────────────────────────────────────

// TestShadowing checks that the inner shadow does not leak into the outer scope.
func TestShadowing(t *testing.T) {
	var buf bytes.Buffer
	inner, outer := shadow(&buf)

	assert.Equal(t, 12, inner)
	assert.Equal(t, 6, outer)
	assert.Equal(t, []string{
		"The value of x is: 12",
		"The value of x is: 6",
	}, lines(&buf))
}

// ── Arithmetic ───────────────────────────────────────────────────────────────

func TestArithmetic(t *testing.T) {
	a := computeArithmetic()

	assert.Equal(t, 15, a.Sum)
	assert.InDelta(t, 91.2, a.Difference, 1e-9)
	assert.Equal(t, 120, a.Product)
	assert.InDelta(t, 1.7608695652173911, a.Quotient, 1e-12)
	assert.Equal(t, -1, a.Truncated, "integer division truncates toward zero")
	assert.Equal(t, 3, a.Remainder)
}

func TestTupleAndArrays(t *testing.T) {
	x, y, z := tuple()
	assert.Equal(t, int32(500), x)
	assert.Equal(t, 6.4, y)
	assert.Equal(t, uint8(1), z)

	assert.Equal(t, [5]int{3, 3, 3, 3, 3}, filled())
	assert.Equal(t, 5, pick(true))
	assert.Equal(t, 6, pick(false))
}

// ── Loops ────────────────────────────────────────────────────────────────────

// TestLabeledBreak verifies the inner loop ends the outer one once count is 2.
func TestLabeledBreak(t *testing.T) {
	var buf bytes.Buffer
	got := countUp(&buf)

	require.Equal(t, 2, got)
	assert.Equal(t, []string{
		"count = 0",
		"remaining = 10",
		"remaining = 9",
		"count = 1",
		"remaining = 10",
		"remaining = 9",
		"count = 2",
		"remaining = 10",
		"End count = 2",
	}, lines(&buf))
}

func TestLiftoff(t *testing.T) {
	var buf bytes.Buffer
	liftoff(&buf)
	assert.Equal(t, []string{"3!", "2!", "1!", "LIFTOFF!!!"}, lines(&buf))
}

func TestForEach(t *testing.T) {
	var buf bytes.Buffer
	forEach(&buf)
	assert.Equal(t, []string{
		"the value is: 10",
		"the value is: 20",
		"the value is: 30",
		"the value is: 40",
		"the value is: 50",
	}, lines(&buf))
}

// TestCountdown checks the reverse walk excludes the upper bound.
func TestCountdown(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, countdown(io.Discard, 1, 4))
	assert.Empty(t, countdown(io.Discard, 4, 4))
}

// ── Whole program ────────────────────────────────────────────────────────────

// TestDemosDeterministic runs every demo twice and expects identical output.
func TestDemosDeterministic(t *testing.T) {
	run := func() string {
		var buf bytes.Buffer
		demoVariables(&buf)
		demoDataTypes(&buf)
		demoControlFlow(&buf)
		demoLoops(&buf)
		return buf.String()
	}

	first := run()
	assert.Equal(t, first, run())
	assert.Contains(t, first, "The value of THREE_HOURS_IN_SECONDS is: 10800")
	assert.Contains(t, first, "The value of difference is: 91.2")
	assert.Contains(t, first, "condition was true")
}
