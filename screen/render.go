package screen

import (
	"fmt"
	"image"
	"strconv"

	"github.com/nicekb/niceview/event"
	"github.com/nicekb/niceview/gfx"
)

// LayerName returns the label of a layer, or "" for layers without one.
func LayerName(layer uint8) string {
	switch layer {
	case 0:
		return "TEXTE"
	case 1:
		return "NAV"
	case 2:
		return "PROG"
	case 3:
		return "PERI"
	default:
		return ""
	}
}

// ProfileDigit returns the one-based label of a Bluetooth profile, or "?"
// outside the three profiles.
func ProfileDigit(profile uint8) string {
	switch profile {
	case 0:
		return "1"
	case 1:
		return "2"
	case 2:
		return "3"
	default:
		return "?"
	}
}

func bleGlyph(s event.BleStatus) gfx.ImageRaw {
	switch s {
	case event.BleAdvertising:
		return bleAdvertisingGlyph
	case event.BleConnected:
		return bleConnectedGlyph
	default:
		return bleNoneGlyph
	}
}

// renderStatus redraws the whole status layout for s into d and flushes p.
// d is p seen through the rotation.
func renderStatus(p Panel, d gfx.DrawTarget, s State) error {
	p.ClearBuffer()

	if s.ConnectionType.Wireless() {
		if err := gfx.DrawImage(d, bleGlyph(s.BleState), bleAnchor); err != nil {
			return fmt.Errorf("screen: draw bluetooth glyph: %w", err)
		}
		if err := drawText(d, ProfileDigit(s.BleProfile), profileAnchor, profileStyle); err != nil {
			return fmt.Errorf("screen: draw profile: %w", err)
		}
	} else {
		if err := gfx.DrawImage(d, usbGlyph, usbAnchor); err != nil {
			return fmt.Errorf("screen: draw usb glyph: %w", err)
		}
	}

	if err := drawText(d, LayerName(s.Layer), layerAnchor, layerStyle); err != nil {
		return fmt.Errorf("screen: draw layer: %w", err)
	}
	if err := drawText(d, strconv.Itoa(int(s.BatteryPercent)), batteryAnchor, batteryStyle); err != nil {
		return fmt.Errorf("screen: draw battery: %w", err)
	}

	if err := p.FlushBuffer(); err != nil {
		return fmt.Errorf("screen: flush: %w", err)
	}
	return nil
}

// renderLog redraws every occupied slot of h into d, newest at the top, and
// flushes p.
func renderLog(p Panel, d gfx.DrawTarget, h *History) error {
	p.ClearBuffer()

	for i, line := range h.All() {
		at := image.Pt(logMarginX, (i+1)*LogLineHeight)
		if err := drawText(d, line, at, logStyle); err != nil {
			return fmt.Errorf("screen: draw log line %d: %w", i, err)
		}
	}

	if err := p.FlushBuffer(); err != nil {
		return fmt.Errorf("screen: flush: %w", err)
	}
	return nil
}

// drawText draws nothing for an empty label.
func drawText(d gfx.DrawTarget, s string, at image.Point, style gfx.TextStyle) error {
	if s == "" {
		return nil
	}
	return gfx.DrawText(d, s, at, style)
}
