package screen

import (
	"context"

	"github.com/nicekb/niceview/controller"
	"github.com/nicekb/niceview/event"
	"github.com/nicekb/niceview/gfx"
)

// State is what the status screen shows. The zero value is the start-up
// state: USB, layer 0, no battery reading.
type State struct {
	Layer          uint8
	BleProfile     uint8
	BleState       event.BleStatus
	ConnectionType event.ConnectionType
	BatteryPercent uint8
	Charging       bool
}

// Apply returns the state after ev and whether it differs from s. Events
// the status screen does not show leave the state unchanged.
func (s State) Apply(ev event.Event) (State, bool) {
	next := s
	switch ev := ev.(type) {
	case event.Layer:
		next.Layer = uint8(ev)
	case event.Battery:
		next.BatteryPercent = uint8(ev)
	case event.BleState:
		next.BleProfile = ev.Profile
		next.BleState = ev.State
	case event.BleProfile:
		next.BleProfile = uint8(ev)
	case event.ChargingState:
		next.Charging = bool(ev)
	case event.ConnectionType:
		next.ConnectionType = ev
	default:
		return s, false
	}
	return next, next != s
}

// Status is the status screen controller.
type Status struct {
	src     controller.Source
	panel   Panel
	display *gfx.Rotated[Panel]
	state   State
}

var _ controller.Controller = (*Status)(nil)

// NewStatus returns a status screen drawing on p and reading events from
// src. Nothing is drawn until the first change or a call to Render.
func NewStatus(p Panel, src controller.Source) *Status {
	return &Status{
		src:     src,
		panel:   p,
		display: gfx.NewRotated(p),
	}
}

// State returns the state last drawn.
func (s *Status) State() State {
	return s.state
}

// NextMessage waits for the next event.
func (s *Status) NextMessage(ctx context.Context) (event.Event, error) {
	return s.src.Next(ctx)
}

// ProcessEvent applies ev and redraws the screen if the state changed.
func (s *Status) ProcessEvent(ev event.Event) error {
	next, changed := s.state.Apply(ev)
	if !changed {
		return nil
	}
	s.state = next
	return s.Render()
}

// Render redraws the current state.
func (s *Status) Render() error {
	return renderStatus(s.panel, s.display, s.state)
}
