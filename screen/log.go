package screen

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/nicekb/niceview/controller"
	"github.com/nicekb/niceview/event"
	"github.com/nicekb/niceview/gfx"
)

// ErrCapacity is returned by FormatEvent when a line does not fit the log
// width.
var ErrCapacity = errors.New("screen: log line too long")

type slot struct {
	line string
	ok   bool
}

// History is a fixed number of log lines, newest first.
type History struct {
	slots []slot
}

// NewHistory returns an empty history of n lines.
func NewHistory(n int) *History {
	return &History{slots: make([]slot, max(n, 1))}
}

// Push stores line at the top, moving every older line down one slot. The
// oldest line falls off once the history is full.
func (h *History) Push(line string) {
	copy(h.slots[1:], h.slots[:len(h.slots)-1])
	h.slots[0] = slot{line: line, ok: true}
}

// Cap returns the number of slots.
func (h *History) Cap() int {
	return len(h.slots)
}

// Len returns the number of occupied slots.
func (h *History) Len() int {
	n := 0
	for _, s := range h.slots {
		if s.ok {
			n++
		}
	}
	return n
}

// At returns the line in slot i, and false if the slot is empty.
func (h *History) At(i int) (string, bool) {
	if i < 0 || i >= len(h.slots) {
		return "", false
	}
	return h.slots[i].line, h.slots[i].ok
}

// All yields the occupied slots with their index, newest first.
func (h *History) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, s := range h.slots {
			if !s.ok {
				continue
			}
			if !yield(i, s.line) {
				return
			}
		}
	}
}

// Lines returns the occupied slots, newest first.
func (h *History) Lines() []string {
	lines := make([]string, 0, len(h.slots))
	for _, line := range h.All() {
		lines = append(lines, line)
	}
	return lines
}

// FormatEvent returns the log line for ev. ok is false for events the log
// does not record.
func FormatEvent(ev event.Event) (line string, ok bool, err error) {
	return formatEvent(ev, LogColumns)
}

func formatEvent(ev event.Event, columns int) (string, bool, error) {
	var line string
	switch ev := ev.(type) {
	case event.Battery:
		line = "bat" + strconv.Itoa(int(ev))
	case event.ChargingState:
		line = "charge " + yesNo(bool(ev))
	case event.Layer:
		line = logLayerName(uint8(ev))
	case event.ConnectionType:
		if ev.Wireless() {
			line = "conn BLE"
		} else {
			line = "conn USB"
		}
	case event.SplitPeripheral:
		line = "peri " + yesNo(ev.Connected)
	case event.SplitCentral:
		line = "peri " + yesNo(bool(ev))
	case event.Sleep:
		line = "dodo " + yesNo(bool(ev))
	case event.BleState:
		line = profilePrefix(ev.Profile) + bleStatusWord(ev.State)
	case event.BleProfile:
		line = profilePrefix(uint8(ev))
	case event.ClearPeer:
		line = "clear peer"
	default:
		return "", false, nil
	}

	if len(line) > columns {
		return "", false, fmt.Errorf("%w: %q is %d bytes, limit %d", ErrCapacity, line, len(line), columns)
	}
	return line, true, nil
}

func yesNo(b bool) string {
	if b {
		return "oui"
	}
	return "non"
}

func logLayerName(layer uint8) string {
	switch layer {
	case 0:
		return "layer base"
	case 1:
		return "layer nav"
	case 2:
		return "layer prog"
	case 3:
		return "layer peri"
	default:
		return ""
	}
}

// profilePrefix names profiles by their zero-based index.
func profilePrefix(profile uint8) string {
	if profile > 2 {
		return ""
	}
	return "prof " + strconv.Itoa(int(profile)) + " "
}

func bleStatusWord(s event.BleStatus) string {
	switch s {
	case event.BleAdvertising:
		return "advr"
	case event.BleConnected:
		return "conn"
	default:
		return "none"
	}
}

// Log is the event log screen controller.
type Log struct {
	src     controller.Source
	panel   Panel
	display *gfx.Rotated[Panel]
	history *History
	columns int
}

var _ controller.Controller = (*Log)(nil)

// NewLog returns a log screen drawing on p and reading events from src.
func NewLog(p Panel, src controller.Source) *Log {
	return &Log{
		src:     src,
		panel:   p,
		display: gfx.NewRotated(p),
		history: NewHistory(LogLines),
		columns: LogColumns,
	}
}

// History returns the lines on screen.
func (l *Log) History() *History {
	return l.history
}

// NextMessage waits for the next event.
func (l *Log) NextMessage(ctx context.Context) (event.Event, error) {
	return l.src.Next(ctx)
}

// ProcessEvent logs ev and redraws the screen. Events without a log line
// are ignored, and so are lines that do not fit.
func (l *Log) ProcessEvent(ev event.Event) error {
	line, ok, err := formatEvent(ev, l.columns)
	if errors.Is(err, ErrCapacity) {
		return nil
	}
	if err != nil || !ok {
		return err
	}
	l.history.Push(line)
	return l.Render()
}

// Render redraws the history.
func (l *Log) Render() error {
	return renderLog(l.panel, l.display, l.history)
}
