// Package lcdsim emulates a Sharp memory LCD at the SPI level.
//
// LCD implements spi.Port and spi.Conn from periph.io. It decodes the bytes
// the sharpmem driver shifts out (clear, multi-line write, VCOM) into an
// image, so the whole display path can run and be inspected on a host.
package lcdsim

import (
	"errors"
	"fmt"
	"image"
	"math/bits"
	"sync"

	"github.com/nicekb/niceview/sharpmem/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

const (
	modeWrite = 0x01
	modeVCOM  = 0x02
	modeClear = 0x04
)

// ErrChipSelect is returned for a transfer while the chip select pin is low.
var ErrChipSelect = errors.New("lcdsim: transfer with chip select inactive")

// Stats counts what the emulated panel received.
type Stats struct {
	Transfers    int // Transfers accepted
	Clears       int // Clear commands
	LinesWritten int // Lines written, summed over all transfers
	VCOMFlips    int // Changes of VCOM polarity between transfers
}

// LCD is an emulated panel. The zero value is not usable; use New.
type LCD struct {
	// CS is the chip select pin to hand to the driver.
	CS *gpiotest.Pin

	mu       sync.Mutex
	img      *image1bit.HorizontalMSB
	freq     physic.Frequency
	mode     spi.Mode
	stats    Stats
	vcom     bool
	seen     bool
	onUpdate func()
}

var (
	_ spi.Port = (*LCD)(nil)
	_ spi.Conn = (*LCD)(nil)
)

// New returns a w x h panel, all white.
func New(w, h int) *LCD {
	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, w, h))
	img.Fill(image1bit.On)
	return &LCD{
		CS:  &gpiotest.Pin{N: "SCS", Num: 6},
		img: img,
	}
}

// OnUpdate registers f to be called after every accepted transfer. f runs on
// the caller of Tx, without the LCD's lock held.
func (l *LCD) OnUpdate(f func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onUpdate = f
}

// Snapshot returns a copy of the panel memory.
func (l *LCD) Snapshot() *image1bit.HorizontalMSB {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.img.Clone()
}

// Stats returns the transfer counters.
func (l *LCD) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Frequency returns the clock the driver connected with.
func (l *LCD) Frequency() physic.Frequency {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.freq
}

func (l *LCD) String() string {
	return fmt.Sprintf("lcdsim.LCD{%dx%d}", l.img.Rect.Dx(), l.img.Rect.Dy())
}

// Connect implements spi.Port.
func (l *LCD) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if bits != 8 {
		return nil, fmt.Errorf("lcdsim: unsupported word size %d", bits)
	}
	if mode&^(spi.NoCS) != spi.Mode0 {
		return nil, fmt.Errorf("lcdsim: unsupported mode %#x", int(mode))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.freq = f
	l.mode = mode
	return l, nil
}

// LimitSpeed implements spi.Port.
func (l *LCD) LimitSpeed(f physic.Frequency) error {
	return nil
}

// Duplex implements conn.Conn. The panel has no data output.
func (l *LCD) Duplex() conn.Duplex {
	return conn.Half
}

// TxPackets implements spi.Conn.
func (l *LCD) TxPackets(p []spi.Packet) error {
	for i := range p {
		if err := l.Tx(p[i].W, p[i].R); err != nil {
			return err
		}
	}
	return nil
}

// Tx implements conn.Conn. w is one complete command as sent by the driver.
func (l *LCD) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errors.New("lcdsim: panel is write-only")
	}
	if l.CS.Read() != gpio.High {
		return ErrChipSelect
	}
	if len(w) == 0 {
		return nil
	}

	l.mu.Lock()
	err := l.decode(w)
	f := l.onUpdate
	l.mu.Unlock()

	if err != nil {
		return err
	}
	if f != nil {
		f()
	}
	return nil
}

// decode applies one command. l.mu must be held.
func (l *LCD) decode(w []byte) error {
	mode := bits.Reverse8(w[0])
	vcom := mode&modeVCOM != 0
	if l.seen && vcom != l.vcom {
		l.stats.VCOMFlips++
	}
	l.vcom, l.seen = vcom, true

	switch {
	case mode&modeClear != 0:
		l.img.Fill(image1bit.On)
		l.stats.Clears++
	case mode&modeWrite != 0:
		n, err := l.writeLines(w[1:])
		if err != nil {
			return err
		}
		l.stats.LinesWritten += n
	}
	l.stats.Transfers++
	return nil
}

// writeLines decodes "addr data... 0x00" groups followed by a final 0x00.
func (l *LCD) writeLines(b []byte) (int, error) {
	stride := l.img.Stride
	h := l.img.Rect.Dy()
	n := 0
	for len(b) > 1 {
		if len(b) < stride+2 {
			return n, fmt.Errorf("lcdsim: truncated line after %d lines", n)
		}
		addr := int(bits.Reverse8(b[0]))
		if addr < 1 || addr > h {
			return n, fmt.Errorf("lcdsim: line address %d out of range", addr)
		}
		copy(l.img.Row(addr-1), b[1:1+stride])
		if b[1+stride] != 0x00 {
			return n, fmt.Errorf("lcdsim: line %d: missing trailer", addr)
		}
		b = b[stride+2:]
		n++
	}
	if len(b) != 1 || b[0] != 0x00 {
		return n, errors.New("lcdsim: missing final trailer")
	}
	return n, nil
}
