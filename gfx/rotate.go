package gfx

import (
	"image"
	"iter"
)

// RotatePoint maps logical point p onto a surface of width w mounted a
// quarter turn away: (x, y) becomes (w - y, x).
func RotatePoint(p image.Point, w int) image.Point {
	return image.Point{X: w - p.Y, Y: p.X}
}

// RotateRect returns r with its width and height swapped. The origin is kept.
func RotateRect(r image.Rectangle) image.Rectangle {
	return image.Rectangle{
		Min: r.Min,
		Max: r.Min.Add(image.Point{X: r.Dy(), Y: r.Dx()}),
	}
}

// Rotated presents a DrawTarget turned by 90 degrees. It owns no pixels:
// every write is mapped through RotatePoint while the parent consumes it.
type Rotated[T DrawTarget] struct {
	parent T
}

// NewRotated wraps parent.
func NewRotated[T DrawTarget](parent T) *Rotated[T] {
	return &Rotated[T]{parent: parent}
}

// Parent returns the wrapped target.
func (r *Rotated[T]) Parent() T {
	return r.parent
}

// Bounds returns the parent's bounds with width and height swapped.
func (r *Rotated[T]) Bounds() image.Rectangle {
	return RotateRect(r.parent.Bounds())
}

// DrawIter forwards pixels to the parent in a single call, rotating each one
// as it is pulled. The parent's error is returned as is.
func (r *Rotated[T]) DrawIter(pixels iter.Seq[Pixel]) error {
	w := r.parent.Bounds().Dx()
	return r.parent.DrawIter(func(yield func(Pixel) bool) {
		for p := range pixels {
			if !yield(Pixel{Point: RotatePoint(p.Point, w), Color: p.Color}) {
				return
			}
		}
	})
}
