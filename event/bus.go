package event

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
)

var (
	// ErrTooManySubscribers is returned by Subscribe when the bus already has
	// its maximum number of subscribers.
	ErrTooManySubscribers = errors.New("event: too many subscribers")

	// ErrClosed is returned once a subscription or its bus is closed and every
	// pending event has been read.
	ErrClosed = errors.New("event: closed")
)

// Bus broadcasts events to every subscriber. Each subscriber has its own
// bounded queue; a subscriber that falls behind loses its oldest events,
// never the publisher's time.
type Bus struct {
	mu     sync.Mutex
	depth  int
	limit  int
	subs   []*Subscriber
	closed bool
}

// NewBus returns a bus whose subscribers queue up to depth events each. At
// most maxSubscribers subscriptions may be open at once. Values below 1 are
// treated as 1.
func NewBus(depth, maxSubscribers int) *Bus {
	return &Bus{
		depth: max(depth, 1),
		limit: max(maxSubscribers, 1),
	}
}

// Subscribe opens a subscription that receives every event published from
// now on.
func (b *Bus) Subscribe() (*Subscriber, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}
	if len(b.subs) >= b.limit {
		return nil, ErrTooManySubscribers
	}
	s := &Subscriber{
		bus:  b,
		ch:   make(chan Event, b.depth),
		done: make(chan struct{}),
	}
	b.subs = append(b.subs, s)
	return s, nil
}

// Publish delivers ev to every subscriber without blocking. When a
// subscriber's queue is full its oldest event is dropped and counted in
// Lagged.
func (b *Bus) Publish(ev Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	for _, s := range b.subs {
		s.push(ev)
	}
	return nil
}

// Close closes every subscription. Subscribers still read the events queued
// before Close, then get ErrClosed.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, s := range b.subs {
		s.closeOnce.Do(func() { close(s.done) })
	}
	b.subs = nil
}

// Subscribers returns the number of open subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Subscriber is one subscription to a Bus.
type Subscriber struct {
	bus       *Bus
	ch        chan Event
	done      chan struct{}
	closeOnce sync.Once
	lagged    atomic.Uint64
}

// push is called with the bus lock held, so it is the only sender on s.ch.
func (s *Subscriber) push(ev Event) {
	select {
	case s.ch <- ev:
		return
	default:
	}
	// Full: make room by dropping the oldest event. The consumer may have
	// drained the queue meanwhile, in which case nothing is lost.
	select {
	case <-s.ch:
		s.lagged.Add(1)
	default:
	}
	select {
	case s.ch <- ev:
	default:
		s.lagged.Add(1)
	}
}

// Next returns the next event, blocking until one is published, the
// subscription is closed or ctx is done.
func (s *Subscriber) Next(ctx context.Context) (Event, error) {
	select {
	case ev := <-s.ch:
		return ev, nil
	default:
	}

	select {
	case ev := <-s.ch:
		return ev, nil
	case <-s.done:
		select {
		case ev := <-s.ch:
			return ev, nil
		default:
			return nil, ErrClosed
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Lagged returns how many events this subscriber lost because its queue was
// full.
func (s *Subscriber) Lagged() uint64 {
	return s.lagged.Load()
}

// Close ends the subscription and frees its slot on the bus.
func (s *Subscriber) Close() {
	b := s.bus
	b.mu.Lock()
	defer b.mu.Unlock()

	if i := slices.Index(b.subs, s); i >= 0 {
		b.subs = slices.Delete(b.subs, i, i+1)
	}
	s.closeOnce.Do(func() { close(s.done) })
}
