// Package sharpmem controls a Sharp memory LCD via SPI.
//
// Sharp memory LCDs (LS011B7DH03, LS013B7DH03, LS027B7DH01, ...) are
// reflective 1-bit panels that keep the picture in in-pixel memory. The host
// only sends lines that changed, and the panel holds the image without being
// refreshed. This driver implements the display.Drawer interface from
// periph.io and the gfx.DrawTarget interface used by the screens in this
// module.
//
// # Display Characteristics
//
// - 1 bit per pixel, white (On) or black (Off)
// - Line-addressed writes: any set of lines can be sent in one transfer
// - Write-only SPI, LSB-first command bytes, active-high chip select
// - VCOM polarity must alternate; the driver flips it on every transfer
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VIN         → 3.3V
//	SCLK        → SPI Clock (SCLK)
//	SI          → SPI Data (MOSI)
//	SCS         → GPIO (chip select, active high)
//	DISP        → Optional: GPIO to enable the panel
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"github.com/nicekb/niceview/sharpmem"
//		"github.com/nicekb/niceview/sharpmem/image1bit"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		csPin := gpioreg.ByName("GPIO8")
//
//		dev, _ := sharpmem.NewSPI(spiBus, csPin, &sharpmem.Opts{W: 160, H: 68})
//		defer dev.Halt()
//
//		img := image1bit.NewHorizontalMSB(dev.Bounds())
//		img.Fill(image1bit.On)
//		for x := 0; x < 160; x++ {
//			img.SetBit(x, 34, image1bit.Off)
//		}
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Drawing Modes
//
// ## Buffered Updates
//
// Compose into the frame buffer with DrawIter (or Set), then transfer the
// lines that changed:
//
//	dev.ClearBuffer()
//	gfx.DrawText(dev, "42", image.Pt(4, 20), style)
//	dev.FlushBuffer()
//
// ## Image Updates
//
// Draw copies an image.Image into the frame buffer and flushes it:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// # Display Resolution
//
//	Opts{W: 160, H: 68}  // LS011B7DH03 (nice!view)
//	Opts{W: 128, H: 128} // LS013B7DH03
//	Opts{W: 400, H: 240} // LS027B7DH01
//
// Width must be a multiple of 8 and ≤400. Height must be ≤240.
package sharpmem
