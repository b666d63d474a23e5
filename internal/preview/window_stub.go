//go:build !cgo

package preview

import (
	"errors"

	"github.com/nicekb/niceview/internal/lcdsim"
)

// RunWindow needs cgo.
func RunWindow(_ *lcdsim.LCD, _ Publisher, _ int) error {
	return errors.New("preview: window mode requires cgo (build/run with CGO_ENABLED=1)")
}
