// Package sharpmem controls a Sharp memory LCD via SPI.
//
// Sharp memory LCDs keep one bit per pixel in the panel itself and accept
// whole lines over a write-only SPI link, so only lines that changed since the
// last transfer need to be sent.
//
// See the package documentation for how to use this package.
package sharpmem

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"iter"
	"math/bits"

	"github.com/nicekb/niceview/gfx"
	"github.com/nicekb/niceview/sharpmem/image1bit"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Mode bits of the first byte of every transfer. The panel reads them LSB
// first.
const (
	modeWrite = 0x01
	modeVCOM  = 0x02
	modeClear = 0x04
)

var errHalted = errors.New("sharpmem: halted")

// Opts is the configuration for the Sharp memory LCD.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 160, must be a multiple of 8 and ≤400)
	H int // Height (default: 68, must be ≤240)

	// Optional DISP pin; driven high on start-up and low on Halt.
	DISP gpio.PinOut

	// SPI clock (default: 2MHz)
	Frequency physic.Frequency
}

// Dev is the device handle for the Sharp memory LCD.
type Dev struct {
	// Communication
	c    spi.Conn    // SPI connection
	cs   gpio.PinOut // Chip select, active high
	disp gpio.PinOut // Display enable (optional)

	// Display geometry
	rect image.Rectangle

	// Pixel buffers
	buffer *image1bit.HorizontalMSB // Frame being composed
	shown  []byte                   // Frame last transferred to the panel

	// Scratch space reused between flushes
	dirty []int
	tx    []byte

	// State
	vcom   bool
	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// NewSPI creates a new Sharp memory LCD connected via SPI.
//
// The SPI port is configured for Mode0 with chip select handled by the
// driver, since the panel expects it active high. The cs GPIO pin must be
// provided.
//
// opts can be nil to use defaults (160x68, LS011B7DH03).
func NewSPI(p spi.Port, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{W: 160, H: 68}
	}

	if opts.W <= 0 || opts.W%8 != 0 || opts.W > 400 {
		return nil, errors.New("sharpmem: width must be a multiple of 8 between 8 and 400")
	}
	if opts.H <= 0 || opts.H > 240 {
		return nil, errors.New("sharpmem: height must be between 1 and 240")
	}
	if cs == nil {
		return nil, errors.New("sharpmem: chip select pin is required")
	}

	f := opts.Frequency
	if f == 0 {
		f = 2 * physic.MegaHertz
	}

	// Establish SPI connection
	c, err := p.Connect(f, spi.Mode0|spi.NoCS, 8)
	if err != nil {
		return nil, fmt.Errorf("sharpmem: %w", err)
	}

	rect := image.Rect(0, 0, opts.W, opts.H)
	d := &Dev{
		c:      c,
		cs:     cs,
		disp:   opts.DISP,
		rect:   rect,
		buffer: image1bit.NewHorizontalMSB(rect),
		shown:  make([]byte, opts.W/8*opts.H),
	}

	// Initialize the display
	if err := d.init(); err != nil {
		return nil, err
	}

	return d, nil
}

// init idles the bus, enables the panel and clears it.
func (d *Dev) init() error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("sharpmem: failed to pull CS low: %w", err)
	}
	if d.disp != nil {
		if err := d.disp.Out(gpio.High); err != nil {
			return fmt.Errorf("sharpmem: failed to pull DISP high: %w", err)
		}
	}
	return d.Clear()
}

// mode returns the wire form of a mode byte, carrying the current VCOM level
// and flipping it for the next transfer.
func (d *Dev) mode(m byte) byte {
	if d.vcom {
		m |= modeVCOM
	}
	d.vcom = !d.vcom
	return bits.Reverse8(m)
}

// send frames one transfer with chip select.
func (d *Dev) send(frame []byte) error {
	if err := d.cs.Out(gpio.High); err != nil {
		return fmt.Errorf("sharpmem: failed to pull CS high: %w", err)
	}
	err := d.c.Tx(frame, nil)
	if lerr := d.cs.Out(gpio.Low); err == nil && lerr != nil {
		err = fmt.Errorf("sharpmem: failed to pull CS low: %w", lerr)
	}
	return err
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// At returns the color of the pixel at (x, y) in the frame being composed.
func (d *Dev) At(x, y int) color.Color {
	return d.buffer.BitAt(x, y)
}

// Set sets the pixel at (x, y) in the frame being composed.
func (d *Dev) Set(x, y int, c color.Color) {
	d.buffer.Set(x, y, c)
}

// DrawIter writes pixels into the frame being composed. Pixels outside the
// display are ignored. Nothing is transferred until FlushBuffer.
func (d *Dev) DrawIter(pixels iter.Seq[gfx.Pixel]) error {
	if d.halted {
		return errHalted
	}
	for p := range pixels {
		d.buffer.SetBit(p.Point.X, p.Point.Y, image1bit.Bit(p.Color))
	}
	return nil
}

// Draw draws an image onto the display and transfers the lines that changed.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	draw.Draw(d.buffer, dst, src, sp, draw.Src)
	return d.FlushBuffer()
}

// ClearBuffer sets every pixel of the frame being composed to white without
// touching the panel.
func (d *Dev) ClearBuffer() {
	d.buffer.Fill(image1bit.On)
}

// Clear clears the panel and the frame buffer.
func (d *Dev) Clear() error {
	if d.halted {
		return errHalted
	}
	if err := d.send([]byte{d.mode(modeClear), 0x00}); err != nil {
		return err
	}
	d.buffer.Fill(image1bit.On)
	for i := range d.shown {
		d.shown[i] = 0xFF
	}
	return nil
}

// FlushBuffer transfers every line of the frame buffer that changed since the
// last transfer, in a single multi-line write. It does nothing when no line
// changed.
func (d *Dev) FlushBuffer() error {
	if d.halted {
		return errHalted
	}

	rows := d.dirtyRows()
	if len(rows) == 0 {
		return nil
	}

	stride := d.buffer.Stride
	frame := d.tx[:0]
	frame = append(frame, d.mode(modeWrite))
	for _, y := range rows {
		frame = append(frame, bits.Reverse8(byte(y+1))) // Line addresses start at 1
		frame = append(frame, d.buffer.Row(y)...)
		frame = append(frame, 0x00)
	}
	frame = append(frame, 0x00)
	d.tx = frame

	if err := d.send(frame); err != nil {
		return err
	}

	for _, y := range rows {
		copy(d.shown[y*stride:(y+1)*stride], d.buffer.Row(y))
	}
	return nil
}

// dirtyRows returns the rows whose content differs from the last transferred
// frame, top to bottom.
func (d *Dev) dirtyRows() []int {
	stride := d.buffer.Stride
	rows := d.dirty[:0]
	for y := 0; y < d.rect.Dy(); y++ {
		start := y * stride
		if !bytes.Equal(d.shown[start:start+stride], d.buffer.Pix[start:start+stride]) {
			rows = append(rows, y)
		}
	}
	d.dirty = rows
	return rows
}

// Halt clears the panel and disables it.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.Clear()
	d.halted = true
	if d.disp != nil {
		if derr := d.disp.Out(gpio.Low); err == nil && derr != nil {
			err = fmt.Errorf("sharpmem: failed to pull DISP low: %w", derr)
		}
	}
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("sharpmem.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
