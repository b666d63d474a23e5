package gfx

import (
	"errors"
	"fmt"
	"image"
	"iter"
)

// ErrImageSize is returned when raw image data does not hold a whole number
// of rows for its width.
var ErrImageSize = errors.New("gfx: image data does not match its width")

// ImageRaw is a bit-packed monochrome image.
//
// Rows are padded to whole bytes and the most significant bit of each byte is
// the leftmost pixel. A set bit is On.
type ImageRaw struct {
	data  []byte
	width int
}

// NewImageRaw returns an image of the given width over data. The height
// follows from the length of data.
func NewImageRaw(data []byte, width int) ImageRaw {
	return ImageRaw{data: data, width: width}
}

// Stride returns the number of bytes per row.
func (img ImageRaw) Stride() int {
	return (img.width + 7) / 8
}

// Width returns the width in pixels.
func (img ImageRaw) Width() int {
	return img.width
}

// Height returns the number of complete rows.
func (img ImageRaw) Height() int {
	if img.width <= 0 {
		return 0
	}
	return len(img.data) / img.Stride()
}

// Bounds returns the image bounds anchored at the origin.
func (img ImageRaw) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width(), img.Height())
}

// Validate reports whether data and width agree.
func (img ImageRaw) Validate() error {
	if img.width <= 0 || len(img.data) == 0 || len(img.data)%img.Stride() != 0 {
		return fmt.Errorf("%w: %d bytes at width %d", ErrImageSize, len(img.data), img.width)
	}
	return nil
}

// ColorAt returns the color of the pixel at (x, y). Points outside the image
// are Off.
func (img ImageRaw) ColorAt(x, y int) BinaryColor {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return Off
	}
	b := img.data[y*img.Stride()+x/8]
	return BinaryColor(b&(0x80>>uint(x%8)) != 0)
}

// Pixels returns every pixel of the image, row by row, translated so the top
// left corner lands on at.
func (img ImageRaw) Pixels(at image.Point) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		h := img.Height()
		for y := 0; y < h; y++ {
			for x := 0; x < img.width; x++ {
				p := Pixel{Point: at.Add(image.Point{X: x, Y: y}), Color: img.ColorAt(x, y)}
				if !yield(p) {
					return
				}
			}
		}
	}
}

// DrawImage draws img with its top left corner at at.
func DrawImage(t DrawTarget, img ImageRaw, at image.Point) error {
	if err := img.Validate(); err != nil {
		return err
	}
	return t.DrawIter(img.Pixels(at))
}
