// Package controller runs screens against an event source.
//
// A Controller is driven by its host: Run asks it for the next event, hands
// the event back for processing, and only then asks again. A controller never
// sees two events at once and owns whatever it draws on.
package controller

import (
	"context"
	"fmt"

	"github.com/nicekb/niceview/event"
)

// Source produces events one at a time. *event.Subscriber is a Source.
type Source interface {
	Next(ctx context.Context) (event.Event, error)
}

var _ Source = (*event.Subscriber)(nil)

// Controller is a task driven by Run.
type Controller interface {
	// NextMessage blocks until the next event is available.
	NextMessage(ctx context.Context) (event.Event, error)
	// ProcessEvent handles one event to completion. A non-nil error stops
	// Run.
	ProcessEvent(ev event.Event) error
}

// Run processes events from c until NextMessage or ProcessEvent fails and
// returns that error. Errors from NextMessage, including ctx errors and
// event.ErrClosed, are returned unwrapped.
func Run(ctx context.Context, c Controller) error {
	for {
		ev, err := c.NextMessage(ctx)
		if err != nil {
			return err
		}
		if err := c.ProcessEvent(ev); err != nil {
			return fmt.Errorf("controller: process %T: %w", ev, err)
		}
	}
}

// Empty consumes events and ignores them.
type Empty struct {
	src Source
}

// NewEmpty returns a controller that drains src.
func NewEmpty(src Source) *Empty {
	return &Empty{src: src}
}

// NextMessage returns the next event of the source.
func (e *Empty) NextMessage(ctx context.Context) (event.Event, error) {
	return e.src.Next(ctx)
}

// ProcessEvent does nothing.
func (e *Empty) ProcessEvent(event.Event) error {
	return nil
}
