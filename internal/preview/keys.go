package preview

import "github.com/nicekb/niceview/event"

// KeyHelp describes the bindings of Keys.
const KeyHelp = "0-9 layer  +/- battery  c charge  u usb/ble  p profile  b ble phase  l split  s sleep  x clear peer  k key  q quit"

// Keys turns single key presses into events, tracking the keyboard state
// they imply so toggles and cycles have something to toggle.
type Keys struct {
	battery  int
	charging bool
	wireless bool
	profile  uint8
	phase    event.BleStatus
	split    bool
	sleep    bool
}

// NewKeys returns keys starting from the screens' start-up state.
func NewKeys() *Keys {
	return &Keys{}
}

// Event returns the event bound to key, as reported by bubbletea's
// KeyMsg.String, and false for unbound keys.
func (k *Keys) Event(key string) (event.Event, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return event.Layer(key[0] - '0'), true
	}

	switch key {
	case "+", "=":
		k.battery = min(k.battery+5, 100)
		return event.Battery(k.battery), true
	case "-":
		k.battery = max(k.battery-5, 0)
		return event.Battery(k.battery), true
	case "c":
		k.charging = !k.charging
		return event.ChargingState(k.charging), true
	case "u":
		k.wireless = !k.wireless
		if k.wireless {
			return event.ConnectionBLE, true
		}
		return event.ConnectionUSB, true
	case "p":
		k.profile = (k.profile + 1) % 3
		return event.BleProfile(k.profile), true
	case "b":
		k.phase = (k.phase + 1) % 3
		return event.BleState{Profile: k.profile, State: k.phase}, true
	case "l":
		k.split = !k.split
		return event.SplitPeripheral{ID: 0, Connected: k.split}, true
	case "s":
		k.sleep = !k.sleep
		return event.Sleep(k.sleep), true
	case "x":
		return event.ClearPeer{}, true
	case "k":
		return event.Key{Row: 0, Col: 0, Pressed: true}, true
	default:
		return nil, false
	}
}
