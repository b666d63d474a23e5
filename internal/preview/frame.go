// Package preview shows what the simulated panel displays: PNG files, a
// terminal view and a desktop window. Frames are shown upright, the way the
// panel reads once mounted.
package preview

import (
	"image"

	"github.com/nicekb/niceview/gfx"
	"github.com/nicekb/niceview/sharpmem/image1bit"
)

// Upright returns the panel memory rotated into the orientation the screens
// draw in: a 160x68 panel gives a 68x160 image. Paper is white, ink black.
func Upright(panel *image1bit.HorizontalMSB) *image.Gray {
	b := panel.Bounds()
	out := image.NewGray(gfx.RotateRect(image.Rect(0, 0, b.Dx(), b.Dy())))
	w := b.Dx()
	for y := 0; y < out.Rect.Dy(); y++ {
		for x := 0; x < out.Rect.Dx(); x++ {
			p := gfx.RotatePoint(image.Pt(x, y), w).Add(b.Min)
			v := uint8(0xFF)
			if p.In(b) && panel.BitAt(p.X, p.Y) == image1bit.Off {
				v = 0x00
			}
			out.Pix[y*out.Stride+x] = v
		}
	}
	return out
}
