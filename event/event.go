// Package event defines the controller events a keyboard publishes and the
// broadcast Bus that fans them out to every subscribed controller.
package event

import "fmt"

// Event is one controller event. The set of events is closed; screens switch
// on the concrete type and ignore the ones they do not display.
type Event interface {
	isEvent()
}

// BleStatus is the phase of the active Bluetooth profile.
type BleStatus uint8

const (
	BleNone BleStatus = iota
	BleAdvertising
	BleConnected
)

func (s BleStatus) String() string {
	switch s {
	case BleNone:
		return "none"
	case BleAdvertising:
		return "advertising"
	case BleConnected:
		return "connected"
	default:
		return fmt.Sprintf("BleStatus(%d)", uint8(s))
	}
}

// Transport kinds carried by ConnectionType. Any value other than
// ConnectionUSB is a wireless transport.
const (
	ConnectionUSB ConnectionType = 0
	ConnectionBLE ConnectionType = 1
)

type (
	// Layer is the index of the active keymap layer.
	Layer uint8

	// Battery is the battery charge in percent.
	Battery uint8

	// ChargingState reports whether the battery is charging.
	ChargingState bool

	// ConnectionType is the active transport.
	ConnectionType uint8

	// BleState reports the phase of a Bluetooth profile.
	BleState struct {
		Profile uint8
		State   BleStatus
	}

	// BleProfile is the index of the selected Bluetooth profile.
	BleProfile uint8

	// SplitPeripheral reports the link to a peripheral half, seen from the
	// central.
	SplitPeripheral struct {
		ID        int
		Connected bool
	}

	// SplitCentral reports the link to the central half, seen from a
	// peripheral.
	SplitCentral bool

	// Sleep reports whether the keyboard entered or left sleep.
	Sleep bool

	// ClearPeer is published when the bonded peers were erased.
	ClearPeer struct{}

	// Key is a key switch transition.
	Key struct {
		Row, Col uint8
		Pressed  bool
	}

	// Modifier is the bit set of held modifiers.
	Modifier uint8

	// WPM is the current typing speed in words per minute.
	WPM uint16

	// LedIndicator is the host LED bit set (num lock, caps lock, ...).
	LedIndicator uint8
)

func (Layer) isEvent()           {}
func (Battery) isEvent()         {}
func (ChargingState) isEvent()   {}
func (ConnectionType) isEvent()  {}
func (BleState) isEvent()        {}
func (BleProfile) isEvent()      {}
func (SplitPeripheral) isEvent() {}
func (SplitCentral) isEvent()    {}
func (Sleep) isEvent()           {}
func (ClearPeer) isEvent()       {}
func (Key) isEvent()             {}
func (Modifier) isEvent()        {}
func (WPM) isEvent()             {}
func (LedIndicator) isEvent()    {}

// Wireless reports whether t is a wireless transport.
func (t ConnectionType) Wireless() bool {
	return t != ConnectionUSB
}
