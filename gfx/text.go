package gfx

import (
	"errors"
	"image"
	"image/color"
	"iter"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// ErrNoFont is returned by DrawText when the style has no font.
var ErrNoFont = errors.New("gfx: text style has no font")

// TextStyle selects the font and ink used to draw text. Only set glyph bits
// are drawn; the background is left untouched.
type TextStyle struct {
	Font  tinyfont.Fonter
	Color BinaryColor
}

// DrawText draws s with the left end of its baseline at at.
func DrawText(t DrawTarget, s string, at image.Point, style TextStyle) error {
	if style.Font == nil {
		return ErrNoFont
	}
	return t.DrawIter(TextPixels(s, at, style))
}

// TextPixels returns the pixels tinyfont produces for s. Glyphs are
// rasterised while the sequence is consumed.
func TextPixels(s string, at image.Point, style TextStyle) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		if style.Font == nil || s == "" {
			return
		}
		sink := &pixelSink{yield: yield, color: style.Color}
		tinyfont.WriteLine(sink, style.Font, int16(at.X), int16(at.Y), s, style.Color.toRGBA())
	}
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(f tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}

var _ drivers.Displayer = (*pixelSink)(nil)

// pixelSink is the drivers.Displayer tinyfont draws into. Each SetPixel is
// handed to the consumer of the sequence.
type pixelSink struct {
	yield   func(Pixel) bool
	color   BinaryColor
	stopped bool
}

func (s *pixelSink) Size() (x, y int16) {
	return math.MaxInt16, math.MaxInt16
}

func (s *pixelSink) SetPixel(x, y int16, _ color.RGBA) {
	if s.stopped {
		return
	}
	if !s.yield(Pixel{Point: image.Point{X: int(x), Y: int(y)}, Color: s.color}) {
		s.stopped = true
	}
}

func (s *pixelSink) Display() error {
	return nil
}
