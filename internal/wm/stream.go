package wm

import (
	"context"
	"fmt"
	"sync"

	"go.i3wm.org/i3/v4"
)

// eventSource is the part of *i3.EventReceiver the stream uses.
type eventSource interface {
	Next() bool
	Event() i3.Event
	Close() error
}

// i3Stream pumps events from the receiver into a bounded channel so that events
// arriving during a tree fetch queue up instead of being lost. Only the pump
// goroutine touches the receiver.
type i3Stream struct {
	src    eventSource
	events chan FocusEvent
	done   chan struct{}
	once   sync.Once
	err    error
}

func newI3Stream(src eventSource, buffer int) *i3Stream {
	s := &i3Stream{
		src:    src,
		events: make(chan FocusEvent, buffer),
		done:   make(chan struct{}),
	}
	go s.pump()
	return s
}

func (s *i3Stream) pump() {
	defer close(s.events)
	defer func() { s.err = s.src.Close() }()

	for s.src.Next() {
		select {
		case <-s.done:
			return
		default:
		}

		ev, ok := s.src.Event().(*i3.WindowEvent)
		if !ok {
			continue
		}
		fe := FocusEvent{Change: ev.Change, Container: convertNode(&ev.Container)}
		select {
		case s.events <- fe:
		case <-s.done:
			return
		}
	}
}

func (s *i3Stream) Next(ctx context.Context) (FocusEvent, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			if s.err != nil {
				return FocusEvent{}, fmt.Errorf("%w: %w", ErrStreamClosed, s.err)
			}
			return FocusEvent{}, ErrStreamClosed
		}
		return ev, nil
	case <-ctx.Done():
		return FocusEvent{}, ctx.Err()
	}
}

// Close stops delivery. The receiver itself is closed by the pump once its
// pending Next returns, which may be at the next event or when the process exits.
func (s *i3Stream) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}
