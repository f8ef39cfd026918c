package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
)

// TestAreaForms checks all four area computations agree with the product.
func TestAreaForms(t *testing.T) {
	dims := [][2]uint32{{30, 50}, {1, 1}, {7, 3}, {20, 20}}

	for _, d := range dims {
		w, h := d[0], d[1]
		rect := Rectangle{Width: w, Height: h}
		want := w * h

		assert.Equal(t, want, area(w, h))
		assert.Equal(t, want, areaPair(d))
		assert.Equal(t, want, areaOf(&rect))
		assert.Equal(t, want, rect.Area())
	}
}

func TestCanHold(t *testing.T) {
	rect1 := Rectangle{Width: 30, Height: 50}

	cases := []struct {
		name  string
		other Rectangle
		want  bool
	}{
		{"smaller on both axes", Rectangle{Width: 10, Height: 40}, true},
		{"wider", Rectangle{Width: 60, Height: 45}, false},
		{"equal width", Rectangle{Width: 30, Height: 10}, false},
		{"equal", rect1, false},
		// Smaller area, still does not fit.
		{"long and thin", Rectangle{Width: 1, Height: 60}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rect1.CanHold(tc.other))
		})
	}
}

func TestSquare(t *testing.T) {
	sq := Square(20)
	assert.Equal(t, Rectangle{Width: 20, Height: 20}, sq)
	assert.Equal(t, uint32(400), sq.Area())
}

// TestDebugRendersAllFields checks every debug form names both fields.
func TestDebugRendersAllFields(t *testing.T) {
	var buf bytes.Buffer
	demoDebug(&buf)
	out := buf.String()

	assert.Contains(t, out, "rect1 is {30 50} without field names")
	assert.Contains(t, out, "rect1 is {Width:30 Height:50} with field names")
	assert.Contains(t, out, "main.Rectangle{Width:0x1e, Height:0x32}")

	assert.Contains(t, out, "with format")

	pp := fmt.Sprintf("%# v", pretty.Formatter(Rectangle{Width: 30, Height: 50}))
	assert.Contains(t, pp, "Width:")
	assert.Contains(t, pp, "Height:")
}

// TestDbgReportsCallSite redirects the debug logger and checks file:line.
func TestDbgReportsCallSite(t *testing.T) {
	var buf bytes.Buffer
	dbgLog.SetOutput(&buf)
	t.Cleanup(func() { dbgLog.SetOutput(os.Stderr) })

	r := dbg(Rectangle{Width: 3, Height: 4})

	assert.Equal(t, Rectangle{Width: 3, Height: 4}, r)
	assert.Contains(t, buf.String(), "rectangles_test.go:")
	assert.Contains(t, buf.String(), "{Width:3 Height:4}")
}

func TestMethodsOutput(t *testing.T) {
	var buf bytes.Buffer
	demoArea(&buf)
	demoMethods(&buf)

	assert.Equal(t, 4, strings.Count(buf.String(), "is 1500 square pixels"))
	assert.Contains(t, buf.String(), "Can rect1 hold rect2? true")
	assert.Contains(t, buf.String(), "Can rect1 hold rect3? false")
	assert.Contains(t, buf.String(), "square area of rect4 400")
}
