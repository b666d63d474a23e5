// Package script turns YAML event scripts into controller events and plays
// them onto a bus.
//
// A script is a list of steps:
//
//	script:
//	  - event: connection
//	    value: 1
//	  - event: ble_state
//	    profile: 0
//	    state: advertising
//	  - delay_ms: 500
//	  - event: battery
//	    value: 42
package script

import (
	"context"
	"fmt"
	"time"

	"github.com/nicekb/niceview/event"
)

// Step is one scripted event, optionally preceded by a pause. A step with no
// event only waits.
type Step struct {
	Event   string `yaml:"event,omitempty"`
	Value   *int   `yaml:"value,omitempty"`
	On      *bool  `yaml:"on,omitempty"`
	Profile *int   `yaml:"profile,omitempty"`
	State   string `yaml:"state,omitempty"`
	ID      int    `yaml:"id,omitempty"`
	Row     int    `yaml:"row,omitempty"`
	Col     int    `yaml:"col,omitempty"`
	DelayMs int    `yaml:"delay_ms,omitempty"`
}

// Event names accepted in Step.Event.
const (
	Layer           = "layer"
	Battery         = "battery"
	Charging        = "charging"
	Connection      = "connection"
	BleState        = "ble_state"
	BleProfile      = "ble_profile"
	SplitPeripheral = "split_peripheral"
	SplitCentral    = "split_central"
	Sleep           = "sleep"
	ClearPeer       = "clear_peer"
	Key             = "key"
	Modifier        = "modifier"
	WPM             = "wpm"
	LedIndicator    = "led_indicator"
)

// Publisher accepts events. *event.Bus is a Publisher.
type Publisher interface {
	Publish(ev event.Event) error
}

var _ Publisher = (*event.Bus)(nil)

// ToEvent returns the event the step publishes, or nil for a pause.
func (s Step) ToEvent() (event.Event, error) {
	switch s.Event {
	case "":
		if s.DelayMs <= 0 {
			return nil, fmt.Errorf("script: step has neither event nor delay_ms")
		}
		return nil, nil
	case Layer:
		v, err := s.value(0, 255)
		return event.Layer(v), err
	case Battery:
		v, err := s.value(0, 100)
		return event.Battery(v), err
	case Charging:
		on, err := s.on()
		return event.ChargingState(on), err
	case Connection:
		v, err := s.value(0, 255)
		return event.ConnectionType(v), err
	case BleState:
		p, err := s.profile()
		if err != nil {
			return nil, err
		}
		st, err := parseBleStatus(s.State)
		if err != nil {
			return nil, err
		}
		return event.BleState{Profile: p, State: st}, nil
	case BleProfile:
		p, err := s.profile()
		return event.BleProfile(p), err
	case SplitPeripheral:
		on, err := s.on()
		return event.SplitPeripheral{ID: s.ID, Connected: on}, err
	case SplitCentral:
		on, err := s.on()
		return event.SplitCentral(on), err
	case Sleep:
		on, err := s.on()
		return event.Sleep(on), err
	case ClearPeer:
		return event.ClearPeer{}, nil
	case Key:
		if s.Row < 0 || s.Row > 255 || s.Col < 0 || s.Col > 255 {
			return nil, fmt.Errorf("script: %s: row and col must be between 0 and 255", s.Event)
		}
		on, err := s.on()
		return event.Key{Row: uint8(s.Row), Col: uint8(s.Col), Pressed: on}, err
	case Modifier:
		v, err := s.value(0, 255)
		return event.Modifier(v), err
	case WPM:
		v, err := s.value(0, 65535)
		return event.WPM(v), err
	case LedIndicator:
		v, err := s.value(0, 255)
		return event.LedIndicator(v), err
	default:
		return nil, fmt.Errorf("script: unknown event %q", s.Event)
	}
}

func (s Step) value(lo, hi int) (int, error) {
	if s.Value == nil {
		return 0, fmt.Errorf("script: %s: value is required", s.Event)
	}
	if v := *s.Value; v < lo || v > hi {
		return 0, fmt.Errorf("script: %s: value %d out of range %d..%d", s.Event, v, lo, hi)
	}
	return *s.Value, nil
}

func (s Step) on() (bool, error) {
	if s.On == nil {
		return false, fmt.Errorf("script: %s: on is required", s.Event)
	}
	return *s.On, nil
}

func (s Step) profile() (uint8, error) {
	if s.Profile == nil {
		return 0, fmt.Errorf("script: %s: profile is required", s.Event)
	}
	if p := *s.Profile; p < 0 || p > 255 {
		return 0, fmt.Errorf("script: %s: profile %d out of range 0..255", s.Event, p)
	}
	return uint8(*s.Profile), nil
}

func parseBleStatus(s string) (event.BleStatus, error) {
	switch s {
	case "none", "":
		return event.BleNone, nil
	case "advertising":
		return event.BleAdvertising, nil
	case "connected":
		return event.BleConnected, nil
	default:
		return 0, fmt.Errorf("script: unknown ble state %q", s)
	}
}

// Validate checks every step.
func Validate(steps []Step) error {
	for i, s := range steps {
		if s.DelayMs < 0 {
			return fmt.Errorf("step %d: delay_ms must not be negative", i)
		}
		if _, err := s.ToEvent(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Play publishes the steps in order, waiting delay_ms before each one. It
// stops at the first invalid step, publish error or when ctx is done.
func Play(ctx context.Context, pub Publisher, steps []Step) error {
	for i, s := range steps {
		ev, err := s.ToEvent()
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if s.DelayMs > 0 {
			if err := sleep(ctx, time.Duration(s.DelayMs)*time.Millisecond); err != nil {
				return err
			}
		}
		if ev == nil {
			continue
		}
		if err := pub.Publish(ev); err != nil {
			return fmt.Errorf("step %d: publish %T: %w", i, ev, err)
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
