package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jotter/pkg/core"
)

type storeSource struct {
	events <-chan core.Event
	only   map[core.EventType]bool
	out    chan lifecycle.Event
}

// NewSource adapts the channel returned by core.Store.Watch into a
// lifecycle.Source. When types are given, only those event types are forwarded.
func NewSource(events <-chan core.Event, types ...core.EventType) lifecycle.Source {
	var only map[core.EventType]bool
	if len(types) > 0 {
		only = make(map[core.EventType]bool, len(types))
		for _, t := range types {
			only[t] = true
		}
	}
	return &storeSource{
		events: events,
		only:   only,
		out:    make(chan lifecycle.Event),
	}
}

func (s *storeSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start runs the forwarder under lifecycle.Go. Events() is closed once ctx is
// done or the store ends the subscription.
func (s *storeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			var e core.Event
			var ok bool
			select {
			case <-ctx.Done():
				return nil
			case e, ok = <-s.events:
				if !ok {
					return nil
				}
			}
			if s.only != nil && !s.only[e.Type] {
				continue
			}
			select {
			case s.out <- e:
			case <-ctx.Done():
				return nil
			}
		}
	})
	return nil
}
