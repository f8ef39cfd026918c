package main

import (
	"errors"
	"fmt"
)

var (
	ErrMoved           = errors.New("value used after move")
	ErrAlreadyBorrowed = errors.New("already borrowed")
	ErrReleased        = errors.New("borrow used after release")
)

// Text is a growable byte buffer owned by exactly one handle.
//
// Move hands the bytes to a new handle and invalidates the old one; Clone
// copies them so both stay valid. Borrow and BorrowMut hand out views that
// follow the aliasing rule: many readers or one writer, never both. Every
// violation panics with an error wrapping one of the sentinels above.
//
// A Text is not safe for concurrent use.
type Text struct {
	buf     []byte
	moved   bool
	readers int
	writer  bool
}

func NewText(s string) *Text {
	return &Text{buf: []byte(s)}
}

// Valid reports whether t still owns its bytes.
func (t *Text) Valid() bool { return !t.moved }

func (t *Text) mustOwn(op string) {
	if t.moved {
		panic(fmt.Errorf("%s: %w", op, ErrMoved))
	}
}

// mustRead fails when a writer is active; readers may coexist.
func (t *Text) mustRead(op string) {
	t.mustOwn(op)
	if t.writer {
		panic(fmt.Errorf("%s: %w as mutable", op, ErrAlreadyBorrowed))
	}
}

// mustWrite fails when any borrow is active.
func (t *Text) mustWrite(op string) {
	t.mustOwn(op)
	if err := t.exclusive(); err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}
}

func (t *Text) exclusive() error {
	switch {
	case t.writer:
		return fmt.Errorf("%w as mutable", ErrAlreadyBorrowed)
	case t.readers > 0:
		return fmt.Errorf("%w as immutable (%d readers)", ErrAlreadyBorrowed, t.readers)
	}
	return nil
}

func (t *Text) PushStr(s string) {
	t.mustWrite("push_str")
	t.buf = append(t.buf, s...)
}

func (t *Text) Len() int {
	t.mustRead("len")
	return len(t.buf)
}

func (t *Text) String() string {
	t.mustRead("string")
	return string(t.buf)
}

// Clone deep-copies the bytes. The result shares nothing with t.
func (t *Text) Clone() *Text {
	t.mustRead("clone")
	return &Text{buf: append([]byte(nil), t.buf...)}
}

// Move transfers the bytes to a new handle. t is unusable afterwards.
// Moving a borrowed value is rejected: the borrows would dangle.
func (t *Text) Move() *Text {
	t.mustWrite("move")
	n := &Text{buf: t.buf}
	t.buf = nil
	t.moved = true
	return n
}

// Drop releases the bytes, like a value going out of scope.
func (t *Text) Drop() {
	t.mustWrite("drop")
	t.buf = nil
	t.moved = true
}

// ── Borrows ──────────────────────────────────────────────────────────────────

// Ref is a read-only view of a Text.
type Ref struct {
	t        *Text
	released bool
}

func (t *Text) TryBorrow() (*Ref, error) {
	t.mustOwn("borrow")
	if t.writer {
		return nil, fmt.Errorf("borrow: %w as mutable", ErrAlreadyBorrowed)
	}
	t.readers++
	return &Ref{t: t}, nil
}

func (t *Text) Borrow() *Ref {
	r, err := t.TryBorrow()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Ref) String() string {
	r.mustLive()
	return string(r.t.buf)
}

func (r *Ref) Len() int {
	r.mustLive()
	return len(r.t.buf)
}

func (r *Ref) mustLive() {
	if r.released {
		panic(ErrReleased)
	}
}

// Release ends the borrow. Releasing twice is a no-op.
func (r *Ref) Release() {
	if r.released {
		return
	}
	r.released = true
	r.t.readers--
}

// MutRef is the single writable view of a Text.
type MutRef struct {
	t        *Text
	released bool
}

func (t *Text) TryBorrowMut() (*MutRef, error) {
	t.mustOwn("borrow_mut")
	if err := t.exclusive(); err != nil {
		return nil, fmt.Errorf("borrow_mut: %w", err)
	}
	t.writer = true
	return &MutRef{t: t}, nil
}

func (t *Text) BorrowMut() *MutRef {
	m, err := t.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return m
}

func (m *MutRef) PushStr(s string) {
	m.mustLive()
	m.t.buf = append(m.t.buf, s...)
}

func (m *MutRef) String() string {
	m.mustLive()
	return string(m.t.buf)
}

func (m *MutRef) Len() int {
	m.mustLive()
	return len(m.t.buf)
}

func (m *MutRef) mustLive() {
	if m.released {
		panic(ErrReleased)
	}
}

func (m *MutRef) Release() {
	if m.released {
		return
	}
	m.released = true
	m.t.writer = false
}

// WithRef runs f with a shared borrow that ends when f returns.
func (t *Text) WithRef(f func(*Ref)) {
	r := t.Borrow()
	defer r.Release()
	f(r)
}

// WithMut runs f with the exclusive borrow that ends when f returns.
func (t *Text) WithMut(f func(*MutRef)) {
	m := t.BorrowMut()
	defer m.Release()
	f(m)
}
