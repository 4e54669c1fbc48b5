// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import (
	"fmt"
	"sync/atomic"
)

// Bus is the engine's event bus: synchronous, ordered by registration,
// and tolerant of re-entrant publishing up to a recursion depth cap.
// Grounded on the toolkit's events/bus.go, trimmed to the fixed event
// catalog this engine uses (see doc.go) — no reflection-based handler
// dispatch is needed because Handler has one concrete signature.
type Bus struct {
	handlers map[Type][]subscription
	nextID   int
	depth    int32
	maxDepth int32
}

type subscription struct {
	id      string
	handler Handler
	filter  Filter
}

// DefaultMaxDepth is the recursion depth cap that detects a runaway
// event cascade and fails with SubscriberFault rather than recursing
// forever.
const DefaultMaxDepth = 64

// NewBus creates a Bus with the default recursion depth cap.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		maxDepth: DefaultMaxDepth,
	}
}

// Subscribe registers handler for events of type t. Returns a subscription
// ID usable with Unsubscribe.
func (b *Bus) Subscribe(t Type, handler Handler) string {
	return b.SubscribeWithFilter(t, handler, nil)
}

// SubscribeWithFilter registers handler for events of type t that also
// satisfy filter. A nil filter matches every event of that type.
func (b *Bus) SubscribeWithFilter(t Type, handler Handler, filter Filter) string {
	b.nextID++
	id := fmt.Sprintf("sub-%d", b.nextID)
	b.handlers[t] = append(b.handlers[t], subscription{id: id, handler: handler, filter: filter})
	return id
}

// Unsubscribe removes a subscription by ID. Returns false if the ID is not
// currently registered (already removed, or never existed) — callers that
// unsubscribe defensively during cleanup don't need to treat that as an
// error: detaching twice must never add a dangling subscription or error.
func (b *Bus) Unsubscribe(id string) bool {
	for t, subs := range b.handlers {
		for i, s := range subs {
			if s.id == id {
				b.handlers[t] = append(subs[:i], subs[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Publish delivers event to every subscriber of its type, in registration
// order, blocking until all have returned. Handlers may publish further
// events during their own execution; those are fully delivered,
// depth-first, before this call returns.
//
// A handler returning an error aborts the remainder of this publication
// (including any not-yet-called handlers) with SubscriberFault; exceeding
// the recursion depth cap does the same.
func (b *Bus) Publish(event Event) error {
	depth := atomic.AddInt32(&b.depth, 1)
	defer atomic.AddInt32(&b.depth, -1)

	if depth > b.maxDepth {
		return &SubscriberFault{
			EventType: event.EventType(),
			Err:       fmt.Errorf("event cascade depth exceeded: max=%d", b.maxDepth),
		}
	}

	// Snapshot: a handler may Subscribe/Unsubscribe during this publish
	// (e.g. a skill detaching itself on death mid-event); iterate over a
	// copy so that mutation doesn't skip or double-call a subscriber.
	subs := make([]subscription, len(b.handlers[event.EventType()]))
	copy(subs, b.handlers[event.EventType()])

	for _, s := range subs {
		if s.filter != nil && !s.filter(event) {
			continue
		}
		if err := s.handler(event); err != nil {
			return &SubscriberFault{EventType: event.EventType(), SubID: s.id, Err: err}
		}
	}
	return nil
}

// PublishDeferred publishes event, then publishes every event queued by
// its handlers via a Deferred the caller collects out-of-band. Most
// resolvers just call Publish; PublishDeferred exists for the rare
// handler that wants its follow-up fully isolated from the triggering
// publication (see deferred.go).
func (b *Bus) PublishDeferred(event Event, deferred *Deferred) error {
	if err := b.Publish(event); err != nil {
		return err
	}
	if deferred == nil {
		return nil
	}
	for _, e := range deferred.Publishes {
		if err := b.Publish(e); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes all subscriptions. Useful for tests.
func (b *Bus) Clear() {
	b.handlers = make(map[Type][]subscription)
}

// Depth returns the current publish recursion depth, for diagnostics.
func (b *Bus) Depth() int32 {
	return atomic.LoadInt32(&b.depth)
}
