package screen

import (
	"fmt"

	"github.com/nicekb/niceview/controller"
)

// NewBlank clears p, glass and framebuffer, and returns a controller that
// drains src without drawing. Peripheral halves use it to keep their panel
// blank.
func NewBlank(p ClearPanel, src controller.Source) (*controller.Empty, error) {
	if err := p.Clear(); err != nil {
		return nil, fmt.Errorf("screen: clear: %w", err)
	}
	p.ClearBuffer()
	if err := p.FlushBuffer(); err != nil {
		return nil, fmt.Errorf("screen: flush: %w", err)
	}
	return controller.NewEmpty(src), nil
}
