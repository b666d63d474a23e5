// Package gfx is the small drawing layer shared by the screens and the panel
// drivers.
//
// A DrawTarget accepts a lazily produced sequence of pixels and reports its
// bounds. Glyph bitmaps (ImageRaw) and text (DrawText, rasterised by tinyfont)
// are expressed as pixel sequences, so drawing never allocates an
// intermediate pixel list.
//
// Rotated wraps a target that is physically mounted a quarter turn away from
// the orientation the layout is written in:
//
//	panel, _ := sharpmem.NewSPI(port, cs, nil) // 160x68
//	display := gfx.NewRotated(panel)            // 68x160
//	gfx.DrawText(display, "NAV", image.Pt(6, 70), style)
package gfx
