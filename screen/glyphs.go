package screen

import "github.com/nicekb/niceview/gfx"

// Connection glyphs, drawn at their anchors in layout.go. A set bit is paper,
// a clear bit is ink.
var (
	// Bluetooth, no link.
	bleNoneGlyph = gfx.NewImageRaw([]byte{
		0b11111111, 0b01111111, 0b11_000000,
		0b11111111, 0b00111111, 0b11_000000,
		0b11111111, 0b00011111, 0b11_000000,
		0b11111111, 0b00001111, 0b11_000000,
		0b11111111, 0b00000111, 0b11_000000,
		0b11111111, 0b00100011, 0b11_000000,
		0b00111111, 0b00110001, 0b11_000000,
		0b00011111, 0b00111000, 0b11_000000,
		0b10001111, 0b00111100, 0b01_000000,
		0b11000111, 0b00111000, 0b11_000000,
		0b11100011, 0b10110001, 0b11_000000,
		0b11110001, 0b11100011, 0b11_000000,
		0b11111000, 0b11100111, 0b11_000000,
		0b11111100, 0b01111111, 0b11_000000,
		0b11111110, 0b00111111, 0b11_000000,
		0b11111110, 0b00011111, 0b11_000000,
		0b11111100, 0b00001111, 0b11_000000,
		0b11111000, 0b00000111, 0b11_000000,
		0b11110001, 0b00100011, 0b11_000000,
		0b11100011, 0b00110001, 0b11_000000,
		0b11000111, 0b00111000, 0b11_000000,
		0b11001111, 0b00111100, 0b01_000000,
		0b11111111, 0b00111000, 0b00_000000,
		0b11111111, 0b00110001, 0b11_000000,
		0b11111111, 0b00100011, 0b11_000000,
		0b11111111, 0b00000111, 0b11_000000,
		0b11111111, 0b00001111, 0b11_000000,
		0b11111111, 0b00011111, 0b11_000000,
		0b11111111, 0b00111111, 0b11_000000,
		0b11111111, 0b01111111, 0b11_000000,
	}, 18)

	// Bluetooth, advertising.
	bleAdvertisingGlyph = gfx.NewImageRaw([]byte{
		0b11111111, 0b01111111, 0b11_000000,
		0b11111111, 0b00111111, 0b11_000000,
		0b11111111, 0b00011111, 0b11_000000,
		0b11111111, 0b00001111, 0b11_000000,
		0b11111111, 0b00000111, 0b11_000000,
		0b11111111, 0b00100011, 0b11_000000,
		0b11111111, 0b00110001, 0b11_000000,
		0b11111111, 0b00111000, 0b11_000000,
		0b11001111, 0b00111100, 0b11_000000,
		0b11000111, 0b00111000, 0b11_000000,
		0b11100011, 0b00110001, 0b11_000000,
		0b11110001, 0b00100011, 0b11_000000,
		0b11111000, 0b00000111, 0b11_000000,
		0b11111100, 0b00001111, 0b11_000000,
		0b11111110, 0b00011111, 0b11_000000,
		0b11111110, 0b00011111, 0b11_000000,
		0b11111100, 0b00001111, 0b11_000000,
		0b11111000, 0b00000111, 0b11_000000,
		0b11110001, 0b00100011, 0b11_000000,
		0b11100011, 0b00110001, 0b11_000000,
		0b11000111, 0b00111000, 0b11_000000,
		0b11001111, 0b00111100, 0b11_000000,
		0b11111111, 0b00111000, 0b11_000000,
		0b11111111, 0b00110001, 0b11_000000,
		0b11111111, 0b00100011, 0b11_000000,
		0b11111111, 0b00000111, 0b11_000000,
		0b11111111, 0b00001111, 0b11_000000,
		0b11111111, 0b00011111, 0b11_000000,
		0b11111111, 0b00111111, 0b11_000000,
		0b11111111, 0b01111111, 0b11_000000,
	}, 18)

	// Bluetooth, connected.
	bleConnectedGlyph = gfx.NewImageRaw([]byte{
		0b11111111, 0b01111111, 0b11_000000,
		0b11111111, 0b00111111, 0b11_000000,
		0b11111111, 0b00011111, 0b11_000000,
		0b11111111, 0b00001111, 0b11_000000,
		0b11111111, 0b00000111, 0b11_000000,
		0b11111111, 0b00100011, 0b11_000000,
		0b11111111, 0b00110001, 0b11_000000,
		0b11111111, 0b00111000, 0b11_000000,
		0b11001111, 0b00111100, 0b11_000000,
		0b11000111, 0b00111000, 0b11_000000,
		0b11100011, 0b00110001, 0b11_000000,
		0b11110001, 0b00100011, 0b11_000000,
		0b10011000, 0b00000110, 0b01_000000,
		0b00111100, 0b00001111, 0b00_000000,
		0b01100110, 0b00011001, 0b10_000000,
		0b01100110, 0b00011001, 0b10_000000,
		0b00111100, 0b00001111, 0b00_000000,
		0b10011000, 0b00000110, 0b01_000000,
		0b11110001, 0b00100011, 0b11_000000,
		0b11100011, 0b00110001, 0b11_000000,
		0b11000111, 0b00111000, 0b11_000000,
		0b11001111, 0b00111100, 0b11_000000,
		0b11111111, 0b00111000, 0b11_000000,
		0b11111111, 0b00110001, 0b11_000000,
		0b11111111, 0b00100011, 0b11_000000,
		0b11111111, 0b00000111, 0b11_000000,
		0b11111111, 0b00001111, 0b11_000000,
		0b11111111, 0b00011111, 0b11_000000,
		0b11111111, 0b00111111, 0b11_000000,
		0b11111111, 0b01111111, 0b11_000000,
	}, 18)

	// USB plug.
	usbGlyph = gfx.NewImageRaw([]byte{
		0b11111111, 0b11111001, 0b11111111, 0b111_00000,
		0b11111111, 0b11000000, 0b11111111, 0b111_00000,
		0b11111111, 0b10011001, 0b11111111, 0b111_00000,
		0b10001111, 0b00111111, 0b11111111, 0b011_00000,
		0b00000110, 0b01111111, 0b11111111, 0b001_00000,
		0b00000000, 0b00000000, 0b00000000, 0b000_00000,
		0b00000111, 0b11110011, 0b11111111, 0b001_00000,
		0b10001111, 0b11111001, 0b11111111, 0b011_00000,
		0b11111111, 0b11111100, 0b11111111, 0b111_00000,
		0b11111111, 0b11111110, 0b01100011, 0b111_00000,
		0b11111111, 0b11111111, 0b00000011, 0b111_00000,
		0b11111111, 0b11111111, 0b11000011, 0b111_00000,
	}, 27)
)
