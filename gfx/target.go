package gfx

import (
	"image"
	"iter"
	"slices"
)

// Pixel is one colored point in a target's coordinate space.
type Pixel struct {
	Point image.Point
	Color BinaryColor
}

// DrawTarget is a surface that accepts pixel writes.
//
// DrawIter consumes pixels in order and returns the first error of the
// underlying surface. How a target treats points outside Bounds is up to the
// target.
type DrawTarget interface {
	DrawIter(pixels iter.Seq[Pixel]) error
	Bounds() image.Rectangle
}

// Pixels returns a sequence over ps.
func Pixels(ps ...Pixel) iter.Seq[Pixel] {
	return slices.Values(ps)
}
