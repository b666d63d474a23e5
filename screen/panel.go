package screen

import (
	"github.com/nicekb/niceview/gfx"
	"github.com/nicekb/niceview/sharpmem"
)

// Panel is a framebuffered display in its physical orientation.
type Panel interface {
	gfx.DrawTarget
	// ClearBuffer fills the framebuffer with paper without touching the
	// panel.
	ClearBuffer()
	// FlushBuffer sends the lines that changed since the last flush.
	FlushBuffer() error
}

// ClearPanel is a Panel that can also clear the glass directly.
type ClearPanel interface {
	Panel
	Clear() error
}

var _ ClearPanel = (*sharpmem.Dev)(nil)
