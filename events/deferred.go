// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

// Deferred represents publications to perform only after the current
// publication's handlers have all returned. Kept from the toolkit's
// events/deferred.go: a handler that needs to publish another event is
// free to do so directly, since re-entrant publishing is allowed, but a
// handler that wants its follow-up event to be fully isolated from the
// in-flight one has the option without the Bus needing new API surface.
type Deferred struct {
	Publishes []Event
}

// NewDeferred creates an empty Deferred batch.
func NewDeferred() *Deferred {
	return &Deferred{}
}

// Publish queues an event to publish once the current publication
// completes.
func (d *Deferred) Publish(events ...Event) *Deferred {
	d.Publishes = append(d.Publishes, events...)
	return d
}
