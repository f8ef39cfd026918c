package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"
)

// dbgLog reports the caller's file:line, the way a debug macro would.
var dbgLog = log.New(os.Stderr, "[dbg] ", log.Lshortfile)

// dbg prints v with its call site to stderr and returns it unchanged, so it
// can wrap an expression in place.
func dbg[T any](v T) T {
	_ = dbgLog.Output(2, fmt.Sprintf("%+v", v))
	return v
}

func demoArea(w io.Writer) {
	width1, height1 := uint32(30), uint32(50)
	fmt.Fprintf(w, "  The area of the rectangle is %d square pixels.\n", area(width1, height1))

	rect1 := [2]uint32{30, 50}
	fmt.Fprintf(w, "  The area of the rectangle is %d square pixels using tuple.\n", areaPair(rect1))

	rect := Rectangle{Width: 30, Height: 50}
	fmt.Fprintf(w, "  The area of the rectangle is %d square pixels using struct.\n", areaOf(&rect))
	fmt.Fprintf(w, "  The area of the rectangle is %d square pixels using method.\n", rect.Area())
}

func demoMethods(w io.Writer) {
	rect1 := Rectangle{Width: 30, Height: 50}
	rect2 := Rectangle{Width: 10, Height: 40}
	rect3 := Rectangle{Width: 60, Height: 45}

	fmt.Fprintf(w, "  Can rect1 hold rect2? %v\n", rect1.CanHold(rect2))
	fmt.Fprintf(w, "  Can rect1 hold rect3? %v\n", rect1.CanHold(rect3))

	rect4 := Square(20)
	fmt.Fprintf(w, "  square area of rect4 %d\n", rect4.Area())
}

func demoDebug(w io.Writer) {
	rect1 := Rectangle{Width: 30, Height: 50}

	fmt.Fprintf(w, "  rect1 is %v without field names\n", rect1)
	fmt.Fprintf(w, "  rect1 is %+v with field names\n", rect1)
	fmt.Fprintf(w, "  rect1 is %#v as Go syntax\n", rect1)
	fmt.Fprintf(w, "  rect1 is %# v with format\n", pretty.Formatter(rect1))

	dbg(&rect1)
}
