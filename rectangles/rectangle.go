package main

// Rectangle is a plain value type. Methods use value receivers because
// nothing mutates it and copying two uint32s is free.
type Rectangle struct {
	Width  uint32
	Height uint32
}

// Square is the Go spelling of an associated constructor: a package-level
// function returning the type.
func Square(size uint32) Rectangle {
	return Rectangle{Width: size, Height: size}
}

func (r Rectangle) Area() uint32 {
	return r.Width * r.Height
}

// CanHold reports whether other fits strictly inside r on both axes.
// Area is irrelevant: a long thin rectangle does not fit in a square of
// larger area.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

func area(width, height uint32) uint32 {
	return width * height
}

// areaPair takes the dimensions as a positional pair.
func areaPair(dimensions [2]uint32) uint32 {
	return dimensions[0] * dimensions[1]
}

// areaOf borrows the rectangle through a pointer instead of copying it.
func areaOf(rectangle *Rectangle) uint32 {
	return rectangle.Width * rectangle.Height
}
