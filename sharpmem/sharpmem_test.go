package sharpmem

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math/bits"
	"testing"

	"github.com/nicekb/niceview/gfx"
	"github.com/nicekb/niceview/internal/lcdsim"
	"github.com/nicekb/niceview/sharpmem/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// recordPort is a spi.Port that keeps a copy of every transfer.
type recordPort struct {
	frames [][]byte
	mode   spi.Mode
	freq   physic.Frequency
	err    error
}

func (r *recordPort) String() string                      { return "record" }
func (r *recordPort) LimitSpeed(f physic.Frequency) error { return nil }
func (r *recordPort) Duplex() conn.Duplex                 { return conn.Half }
func (r *recordPort) TxPackets(p []spi.Packet) error      { return errors.New("not used") }
func (r *recordPort) Connect(f physic.Frequency, m spi.Mode, b int) (spi.Conn, error) {
	r.freq, r.mode = f, m
	return r, nil
}

func (r *recordPort) Tx(w, _ []byte) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, bytes.Clone(w))
	return nil
}

func newTestDev(t *testing.T, w, h int) (*Dev, *lcdsim.LCD) {
	t.Helper()
	lcd := lcdsim.New(w, h)
	dev, err := NewSPI(lcd, lcd.CS, &Opts{W: w, H: h})
	if err != nil {
		t.Fatalf("NewSPI() error = %v", err)
	}
	return dev, lcd
}

func TestOptsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Opts
		wantErr bool
	}{
		{"nil options (uses defaults)", nil, false},
		{"valid 160x68", &Opts{W: 160, H: 68}, false},
		{"valid 400x240", &Opts{W: 400, H: 240}, false},
		{"valid 8x1 (minimum)", &Opts{W: 8, H: 1}, false},
		{"width not multiple of 8", &Opts{W: 150, H: 68}, true},
		{"width zero", &Opts{W: 0, H: 68}, true},
		{"width > 400", &Opts{W: 408, H: 68}, true},
		{"height zero", &Opts{W: 160, H: 0}, true},
		{"height > 240", &Opts{W: 160, H: 241}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lcd := lcdsim.New(400, 240)
			_, err := NewSPI(lcd, lcd.CS, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSPI() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSPIRequiresChipSelect(t *testing.T) {
	if _, err := NewSPI(&recordPort{}, nil, nil); err == nil {
		t.Error("NewSPI() with nil cs should fail")
	}
}

func TestNewSPIConnectsAndClears(t *testing.T) {
	p := &recordPort{}
	cs := &gpiotest.Pin{N: "SCS"}
	disp := &gpiotest.Pin{N: "DISP"}

	dev, err := NewSPI(p, cs, &Opts{W: 160, H: 68, DISP: disp})
	if err != nil {
		t.Fatalf("NewSPI() error = %v", err)
	}

	if p.mode != spi.Mode0|spi.NoCS {
		t.Errorf("mode = %#x, want Mode0|NoCS", int(p.mode))
	}
	if p.freq != 2*physic.MegaHertz {
		t.Errorf("frequency = %s, want 2MHz", p.freq)
	}
	if disp.Read() != gpio.High {
		t.Error("DISP should be high after start-up")
	}
	if cs.Read() != gpio.Low {
		t.Error("CS should idle low")
	}
	want := [][]byte{{bits.Reverse8(modeClear), 0x00}}
	if len(p.frames) != 1 || !bytes.Equal(p.frames[0], want[0]) {
		t.Errorf("frames = % X, want % X", p.frames, want)
	}
	if got := dev.At(0, 0); got != image1bit.On {
		t.Errorf("At(0, 0) = %v after clear, want On", got)
	}
}

func TestDevBounds(t *testing.T) {
	dev := &Dev{
		rect: image.Rect(0, 0, 160, 68),
	}
	want := image.Rect(0, 0, 160, 68)
	if got := dev.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestDevColorModel(t *testing.T) {
	dev := &Dev{}
	if dev.ColorModel() != image1bit.BitModel {
		t.Error("ColorModel() did not return BitModel")
	}
}

func TestDevString(t *testing.T) {
	dev := &Dev{
		rect: image.Rect(0, 0, 160, 68),
	}
	want := "sharpmem.Dev{160x68}"
	if got := dev.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFlushBufferWireFormat(t *testing.T) {
	p := &recordPort{}
	dev, err := NewSPI(p, &gpiotest.Pin{N: "SCS"}, &Opts{W: 16, H: 2})
	if err != nil {
		t.Fatalf("NewSPI() error = %v", err)
	}

	dev.Set(0, 1, color.Black)
	if err := dev.FlushBuffer(); err != nil {
		t.Fatalf("FlushBuffer() error = %v", err)
	}

	// Second transfer carries VCOM; line 2 is the only dirty line.
	want := []byte{
		bits.Reverse8(modeWrite | modeVCOM),
		bits.Reverse8(2), 0x7F, 0xFF, 0x00,
		0x00,
	}
	if len(p.frames) != 2 {
		t.Fatalf("got %d transfers, want 2", len(p.frames))
	}
	if !bytes.Equal(p.frames[1], want) {
		t.Errorf("write frame = % X, want % X", p.frames[1], want)
	}
}

func TestFlushBufferOnlyDirtyLines(t *testing.T) {
	dev, lcd := newTestDev(t, 160, 68)

	dev.Set(3, 5, image1bit.Off)
	dev.Set(100, 10, image1bit.Off)
	if err := dev.FlushBuffer(); err != nil {
		t.Fatalf("FlushBuffer() error = %v", err)
	}
	st := lcd.Stats()
	if st.LinesWritten != 2 {
		t.Errorf("LinesWritten = %d, want 2", st.LinesWritten)
	}

	// Nothing changed: no transfer at all.
	if err := dev.FlushBuffer(); err != nil {
		t.Fatalf("FlushBuffer() error = %v", err)
	}
	if got := lcd.Stats().Transfers; got != st.Transfers {
		t.Errorf("Transfers = %d after clean flush, want %d", got, st.Transfers)
	}

	// Redrawing the same picture from a cleared buffer is also clean.
	dev.ClearBuffer()
	dev.Set(3, 5, image1bit.Off)
	dev.Set(100, 10, image1bit.Off)
	if err := dev.FlushBuffer(); err != nil {
		t.Fatalf("FlushBuffer() error = %v", err)
	}
	if got := lcd.Stats().Transfers; got != st.Transfers {
		t.Errorf("Transfers = %d after identical redraw, want %d", got, st.Transfers)
	}

	if !lcd.Snapshot().Equal(dev.buffer) {
		t.Error("panel memory does not match frame buffer")
	}
}

func TestVCOMAlternates(t *testing.T) {
	dev, lcd := newTestDev(t, 16, 4)
	for y := 0; y < 4; y++ {
		dev.Set(0, y, image1bit.Off)
		if err := dev.FlushBuffer(); err != nil {
			t.Fatalf("FlushBuffer() error = %v", err)
		}
	}
	st := lcd.Stats()
	if st.VCOMFlips != st.Transfers-1 {
		t.Errorf("VCOMFlips = %d over %d transfers, want %d", st.VCOMFlips, st.Transfers, st.Transfers-1)
	}
}

func TestFlushBufferTxError(t *testing.T) {
	p := &recordPort{}
	dev, err := NewSPI(p, &gpiotest.Pin{N: "SCS"}, &Opts{W: 16, H: 2})
	if err != nil {
		t.Fatalf("NewSPI() error = %v", err)
	}

	boom := errors.New("bus fault")
	p.err = boom
	dev.Set(0, 0, image1bit.Off)
	if err := dev.FlushBuffer(); !errors.Is(err, boom) {
		t.Fatalf("FlushBuffer() error = %v, want %v", err, boom)
	}

	// The failed line is still dirty and goes out with the next flush.
	p.err = nil
	if err := dev.FlushBuffer(); err != nil {
		t.Fatalf("FlushBuffer() error = %v", err)
	}
	last := p.frames[len(p.frames)-1]
	if last[1] != bits.Reverse8(1) {
		t.Errorf("retried line address = 0x%02X, want line 1", last[1])
	}
}

func TestDrawIter(t *testing.T) {
	dev, _ := newTestDev(t, 16, 4)

	err := dev.DrawIter(gfx.Pixels(
		gfx.Pixel{Point: image.Pt(1, 1), Color: gfx.Off},
		gfx.Pixel{Point: image.Pt(16, 0), Color: gfx.Off}, // ignored
		gfx.Pixel{Point: image.Pt(-1, 2), Color: gfx.Off}, // ignored
		gfx.Pixel{Point: image.Pt(15, 3), Color: gfx.Off},
	))
	if err != nil {
		t.Fatalf("DrawIter() error = %v", err)
	}
	off := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 16; x++ {
			if dev.At(x, y) == image1bit.Off {
				off++
			}
		}
	}
	if off != 2 {
		t.Errorf("%d pixels drawn, want 2", off)
	}
}

func TestRotatedTextReachesPanel(t *testing.T) {
	dev, lcd := newTestDev(t, 160, 68)
	rotated := gfx.NewRotated(dev)

	if got := rotated.Bounds(); got != image.Rect(0, 0, 68, 160) {
		t.Fatalf("rotated Bounds() = %v", got)
	}
	img := gfx.NewImageRaw([]byte{0x00, 0x00}, 8)
	if err := gfx.DrawImage(rotated, img, image.Pt(4, 4)); err != nil {
		t.Fatalf("DrawImage() error = %v", err)
	}
	if err := dev.FlushBuffer(); err != nil {
		t.Fatalf("FlushBuffer() error = %v", err)
	}

	// Logical (4..11, 4..5) lands on physical x = 160-y, y = x.
	snap := lcd.Snapshot()
	for y := 4; y < 12; y++ {
		for _, x := range []int{155, 156} {
			if snap.BitAt(x, y) != image1bit.Off {
				t.Errorf("panel pixel (%d, %d) = On, want Off", x, y)
			}
		}
	}
	if st := lcd.Stats(); st.LinesWritten != 8 {
		t.Errorf("LinesWritten = %d, want 8", st.LinesWritten)
	}
}

func TestDraw(t *testing.T) {
	dev, lcd := newTestDev(t, 16, 4)

	src := image.NewUniform(color.Black)
	if err := dev.Draw(image.Rect(0, 2, 8, 10), src, image.Point{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	snap := lcd.Snapshot()
	if snap.Row(1)[0] != 0xFF || snap.Row(2)[0] != 0x00 || snap.Row(3)[1] != 0xFF {
		t.Errorf("panel rows = % X", snap.Pix)
	}

	if err := dev.Draw(image.Rect(20, 20, 30, 30), src, image.Point{}); err != nil {
		t.Errorf("Draw() outside display error = %v", err)
	}
}

func TestDevHalt(t *testing.T) {
	lcd := lcdsim.New(160, 68)
	disp := &gpiotest.Pin{N: "DISP"}
	dev, err := NewSPI(lcd, lcd.CS, &Opts{W: 160, H: 68, DISP: disp})
	if err != nil {
		t.Fatalf("NewSPI() error = %v", err)
	}

	if dev.halted {
		t.Error("device should not be halted initially")
	}
	if err := dev.Halt(); err != nil {
		t.Fatalf("Halt() error = %v", err)
	}
	if disp.Read() != gpio.Low {
		t.Error("DISP should be low after Halt")
	}
	if got := lcd.Stats().Clears; got != 2 {
		t.Errorf("Clears = %d, want 2 (start-up and halt)", got)
	}

	if err := dev.DrawIter(gfx.Pixels(gfx.Pixel{})); err == nil {
		t.Error("DrawIter should fail when halted")
	}
	if err := dev.FlushBuffer(); err == nil {
		t.Error("FlushBuffer should fail when halted")
	}
	if err := dev.Clear(); err == nil {
		t.Error("Clear should fail when halted")
	}
	if err := dev.Draw(dev.Bounds(), image.NewUniform(color.Black), image.Point{}); err == nil {
		t.Error("Draw should fail when halted")
	}
	if err := dev.Halt(); err != nil {
		t.Errorf("second Halt() error = %v", err)
	}
}
