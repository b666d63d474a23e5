package script

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nicekb/niceview/event"
	"gopkg.in/yaml.v3"
)

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func TestStepToEvent(t *testing.T) {
	tests := []struct {
		name    string
		step    Step
		want    event.Event
		wantErr bool
	}{
		{"layer", Step{Event: Layer, Value: intp(2)}, event.Layer(2), false},
		{"layer out of range", Step{Event: Layer, Value: intp(256)}, nil, true},
		{"battery", Step{Event: Battery, Value: intp(42)}, event.Battery(42), false},
		{"battery over 100", Step{Event: Battery, Value: intp(101)}, nil, true},
		{"battery missing value", Step{Event: Battery}, nil, true},
		{"charging", Step{Event: Charging, On: boolp(true)}, event.ChargingState(true), false},
		{"charging missing on", Step{Event: Charging}, nil, true},
		{"connection usb", Step{Event: Connection, Value: intp(0)}, event.ConnectionType(0), false},
		{"connection ble", Step{Event: Connection, Value: intp(1)}, event.ConnectionType(1), false},
		{"ble state", Step{Event: BleState, Profile: intp(1), State: "connected"}, event.BleState{Profile: 1, State: event.BleConnected}, false},
		{"ble state default none", Step{Event: BleState, Profile: intp(0)}, event.BleState{}, false},
		{"ble state bad phase", Step{Event: BleState, Profile: intp(0), State: "pairing"}, nil, true},
		{"ble state missing profile", Step{Event: BleState, State: "advertising"}, nil, true},
		{"ble profile", Step{Event: BleProfile, Profile: intp(2)}, event.BleProfile(2), false},
		{"ble profile negative", Step{Event: BleProfile, Profile: intp(-1)}, nil, true},
		{"split peripheral", Step{Event: SplitPeripheral, ID: 1, On: boolp(true)}, event.SplitPeripheral{ID: 1, Connected: true}, false},
		{"split central", Step{Event: SplitCentral, On: boolp(false)}, event.SplitCentral(false), false},
		{"sleep", Step{Event: Sleep, On: boolp(true)}, event.Sleep(true), false},
		{"clear peer", Step{Event: ClearPeer}, event.ClearPeer{}, false},
		{"key", Step{Event: Key, Row: 2, Col: 5, On: boolp(true)}, event.Key{Row: 2, Col: 5, Pressed: true}, false},
		{"key bad row", Step{Event: Key, Row: 300, On: boolp(true)}, nil, true},
		{"modifier", Step{Event: Modifier, Value: intp(0x22)}, event.Modifier(0x22), false},
		{"wpm", Step{Event: WPM, Value: intp(120)}, event.WPM(120), false},
		{"led", Step{Event: LedIndicator, Value: intp(2)}, event.LedIndicator(2), false},
		{"pause", Step{DelayMs: 10}, nil, false},
		{"empty step", Step{}, nil, true},
		{"unknown event", Step{Event: "reboot"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.step.ToEvent()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ToEvent() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestStepsFromYAML(t *testing.T) {
	const doc = `
- event: connection
  value: 1
- event: ble_state
  profile: 0
  state: advertising
- delay_ms: 5
- event: battery
  value: 42
- event: split_peripheral
  id: 1
  on: true
`
	var steps []Step
	if err := yaml.Unmarshal([]byte(doc), &steps); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if err := Validate(steps); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := []event.Event{
		event.ConnectionType(1),
		event.BleState{Profile: 0, State: event.BleAdvertising},
		nil,
		event.Battery(42),
		event.SplitPeripheral{ID: 1, Connected: true},
	}
	if len(steps) != len(want) {
		t.Fatalf("decoded %d steps, want %d", len(steps), len(want))
	}
	for i, s := range steps {
		got, err := s.ToEvent()
		if err != nil {
			t.Fatalf("step %d: ToEvent() error = %v", i, err)
		}
		if got != want[i] {
			t.Errorf("step %d = %#v, want %#v", i, got, want[i])
		}
	}
	if steps[2].DelayMs != 5 {
		t.Errorf("step 2 delay = %d, want 5", steps[2].DelayMs)
	}
}

func TestValidateReportsStep(t *testing.T) {
	steps := []Step{
		{Event: Layer, Value: intp(1)},
		{Event: "reboot"},
	}
	err := Validate(steps)
	if err == nil || !strings.HasPrefix(err.Error(), "step 1:") {
		t.Errorf("Validate() error = %v, want it to name step 1", err)
	}

	if err := Validate([]Step{{Event: ClearPeer, DelayMs: -1}}); err == nil {
		t.Error("Validate() accepted a negative delay")
	}
}

type recordingPublisher struct {
	events []event.Event
	err    error
}

func (p *recordingPublisher) Publish(ev event.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}

func TestPlay(t *testing.T) {
	pub := &recordingPublisher{}
	steps := []Step{
		{Event: Layer, Value: intp(1)},
		{DelayMs: 1},
		{Event: Sleep, On: boolp(true), DelayMs: 1},
	}
	if err := Play(context.Background(), pub, steps); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	want := []event.Event{event.Layer(1), event.Sleep(true)}
	if len(pub.events) != len(want) {
		t.Fatalf("published %v, want %v", pub.events, want)
	}
	for i := range want {
		if pub.events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, pub.events[i], want[i])
		}
	}
}

func TestPlayOntoBus(t *testing.T) {
	bus := event.NewBus(4, 1)
	sub, err := bus.Subscribe()
	if err != nil {
		t.Fatal(err)
	}
	if err := Play(context.Background(), bus, []Step{{Event: Battery, Value: intp(7)}}); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	got, err := sub.Next(context.Background())
	if err != nil || got != event.Battery(7) {
		t.Errorf("Next() = %v, %v; want %v", got, err, event.Battery(7))
	}
}

func TestPlayErrors(t *testing.T) {
	boom := errors.New("bus closed")
	if err := Play(context.Background(), &recordingPublisher{err: boom}, []Step{{Event: ClearPeer}}); !errors.Is(err, boom) {
		t.Errorf("Play() error = %v, want %v", err, boom)
	}

	pub := &recordingPublisher{}
	err := Play(context.Background(), pub, []Step{{Event: ClearPeer}, {Event: "reboot"}, {Event: ClearPeer}})
	if err == nil {
		t.Error("Play() accepted an unknown event")
	}
	if len(pub.events) != 1 {
		t.Errorf("published %d events before the bad step, want 1", len(pub.events))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := Play(ctx, pub, []Step{{DelayMs: 10_000}}); !errors.Is(err, context.Canceled) {
		t.Errorf("Play() error = %v, want %v", err, context.Canceled)
	}
	if time.Since(start) > time.Second {
		t.Error("Play() waited despite a cancelled context")
	}
}
