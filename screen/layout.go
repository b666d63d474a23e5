package screen

import (
	"image"

	"github.com/nicekb/niceview/gfx"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/freesans"
)

// Anchors in the rotated 68x160 canvas. Glyph anchors are top left corners,
// text anchors are the left end of the baseline.
var (
	usbAnchor     = image.Pt(2, 10)
	bleAnchor     = image.Pt(2, 2)
	profileAnchor = image.Pt(22, 27)
	layerAnchor   = image.Pt(6, 70)
	batteryAnchor = image.Pt(32, 32)
)

var (
	profileStyle = gfx.TextStyle{Font: &freemono.Bold9pt7b, Color: gfx.Off}
	layerStyle   = gfx.TextStyle{Font: &freesans.Bold9pt7b, Color: gfx.Off}
	batteryStyle = gfx.TextStyle{Font: &freemono.Regular9pt7b, Color: gfx.Off}
	logStyle     = gfx.TextStyle{Font: &tinyfont.Picopixel, Color: gfx.Off}
)

const (
	// LogLineHeight is the y advance of the log font.
	LogLineHeight = 7
	// LogLines is the number of log lines that fit the 160 pixel canvas.
	LogLines = 22
	// LogColumns is the longest log line in bytes.
	LogColumns = 16

	logMarginX = 2
)
