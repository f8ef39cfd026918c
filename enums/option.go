package main

import (
	"fmt"
	"io"
)

// Option holds a value of type T or nothing. The zero value is None.
//
// The payload is unexported: the only ways to read it are Get, which returns
// a comma-ok pair, and Match, which requires a handler for both cases.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

func None[T any]() Option[T] { return Option[T]{} }

func (o Option[T]) IsSome() bool { return o.ok }

func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Match calls some with the value when present and none otherwise.
func Match[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.ok {
		return some(o.value)
	}
	return none()
}

// Map applies f to a present value. None maps to None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	return Match(o,
		func(v T) Option[U] { return Some(f(v)) },
		None[U],
	)
}

func plusOne(x Option[int32]) Option[int32] {
	return Map(x, func(i int32) int32 { return i + 1 })
}

func demoOption(w io.Writer) {
	someNumber := Some[int32](5)
	someChar := Some('e')
	absentNumber := None[int32]()

	fmt.Fprintf(w, "  some_number = %v\n", someNumber)
	fmt.Fprintf(w, "  some_char = %v\n", Map(someChar, func(r rune) string { return string(r) }))
	fmt.Fprintf(w, "  absent_number = %v\n", absentNumber)

	fmt.Fprintf(w, "  plusOne(%v) = %v\n", someNumber, plusOne(someNumber))
	fmt.Fprintf(w, "  plusOne(%v) = %v\n", absentNumber, plusOne(absentNumber))

	for _, o := range []Option[int32]{someNumber, absentNumber} {
		msg := Match(o,
			func(v int32) string { return fmt.Sprintf("got %d", v) },
			func() string { return "got nothing" },
		)
		fmt.Fprintf(w, "  match %v: %s\n", o, msg)
	}
}
