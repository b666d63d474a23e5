package gfx

import "image/color"

// BinaryColor is the color of one pixel on a monochrome panel.
//
// On is paper (white on a memory LCD), Off is ink.
type BinaryColor bool

const (
	Off BinaryColor = false
	On  BinaryColor = true
)

// RGBA implements color.Color.
func (c BinaryColor) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// Invert returns the opposite color.
func (c BinaryColor) Invert() BinaryColor {
	return !c
}

func (c BinaryColor) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// toRGBA returns the 8-bit color tinyfont draws with.
func (c BinaryColor) toRGBA() color.RGBA {
	if c {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	return color.RGBA{A: 0xFF}
}

// toBinary converts any color.Color to BinaryColor by thresholding its luma.
func toBinary(c color.Color) color.Color {
	if b, ok := c.(BinaryColor); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return BinaryColor(y >= 0x8000)
}

// BinaryModel converts colors to BinaryColor.
var BinaryModel = color.ModelFunc(toBinary)
