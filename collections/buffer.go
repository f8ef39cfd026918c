package main

import (
	"errors"
	"fmt"
)

var ErrMoved = errors.New("value used after move")

// Buffer is an owned, growable text buffer. Add consumes its receiver: the
// bytes move into the returned Buffer and the old handle panics on any use.
// The right operand is a plain string and is only read.
type Buffer struct {
	buf   []byte
	moved bool
}

func NewBuffer(s string) *Buffer {
	return &Buffer{buf: []byte(s)}
}

func (b *Buffer) Valid() bool { return !b.moved }

func (b *Buffer) mustOwn(op string) {
	if b.moved {
		panic(fmt.Errorf("%s: %w", op, ErrMoved))
	}
}

// Add appends rhs and returns the new owner of the bytes. The append reuses
// b's storage when capacity allows; nothing is copied from the left side.
func (b *Buffer) Add(rhs string) *Buffer {
	b.mustOwn("add")
	n := &Buffer{buf: append(b.buf, rhs...)}
	b.buf = nil
	b.moved = true
	return n
}

func (b *Buffer) Len() int {
	b.mustOwn("len")
	return len(b.buf)
}

func (b *Buffer) String() string {
	b.mustOwn("string")
	return string(b.buf)
}
