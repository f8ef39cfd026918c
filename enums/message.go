package main

import "fmt"

// MessageVisitor has one method per Message variant. A type that leaves one
// out does not satisfy the interface, so forgetting a case is a compile
// error rather than a silent no-op.
type MessageVisitor interface {
	VisitQuit()
	VisitMove(x, y int32)
	VisitWrite(text string)
	VisitChangeColor(r, g, b int32)
}

// Message variants: no payload, named fields, a single value and three
// positional values.
type Message interface {
	Accept(v MessageVisitor)
}

type (
	Quit        struct{}
	Move        struct{ X, Y int32 }
	Write       string
	ChangeColor [3]int32
)

func (Quit) Accept(v MessageVisitor)          { v.VisitQuit() }
func (m Move) Accept(v MessageVisitor)        { v.VisitMove(m.X, m.Y) }
func (m Write) Accept(v MessageVisitor)       { v.VisitWrite(string(m)) }
func (m ChangeColor) Accept(v MessageVisitor) { v.VisitChangeColor(m[0], m[1], m[2]) }

type describer struct{ out string }

func (d *describer) VisitQuit()             { d.out = "Quit" }
func (d *describer) VisitMove(x, y int32)   { d.out = fmt.Sprintf("Move { x: %d, y: %d }", x, y) }
func (d *describer) VisitWrite(text string) { d.out = fmt.Sprintf("Write(%q)", text) }
func (d *describer) VisitChangeColor(r, g, b int32) {
	d.out = fmt.Sprintf("ChangeColor(%d, %d, %d)", r, g, b)
}

// Call describes what handling m would do.
func Call(m Message) string {
	var d describer
	m.Accept(&d)
	return d.out
}
