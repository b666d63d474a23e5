//go:build cgo

package preview

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/nicekb/niceview/internal/lcdsim"
)

// RunWindow shows lcd in a desktop window, magnified scale times, and
// publishes key events to pub. It blocks until the window closes.
func RunWindow(lcd *lcdsim.LCD, pub Publisher, scale int) error {
	g := &game{lcd: lcd, pub: pub, keys: NewKeys()}
	b := Upright(lcd.Snapshot()).Bounds()

	ebiten.SetWindowTitle("nicesim")
	ebiten.SetWindowSize(b.Dx()*max(scale, 1), b.Dy()*max(scale, 1))
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type game struct {
	lcd  *lcdsim.LCD
	pub  Publisher
	keys *Keys

	rgba  *image.RGBA
	frame *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r == 'q' {
			return ebiten.Termination
		}
		ev, ok := g.keys.Event(string(r))
		if !ok {
			continue
		}
		if err := g.pub.Publish(ev); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	gray := Upright(g.lcd.Snapshot())
	b := gray.Bounds()
	if g.rgba == nil || g.rgba.Bounds() != b {
		g.rgba = image.NewRGBA(b)
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}

	dst := g.rgba.Pix
	for i, v := range gray.Pix {
		j := i * 4
		dst[j+0] = v
		dst[j+1] = v
		dst[j+2] = v
		dst[j+3] = 0xFF
	}

	g.frame.WritePixels(dst)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.lcd.Snapshot().Bounds()
	return b.Dy(), b.Dx()
}
