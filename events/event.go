// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

// Type identifies an event's place in the catalog. Unlike the toolkit's
// generic events package, which routes by an open-ended core.Ref so
// that any rulebook can register its own event types, this engine's
// catalog is closed and small — PhaseStart, CardMoved, BeforeDamage, and
// so on are fixed and never extended by content packs. A plain string
// enum is the right weight for a closed catalog; a Ref registry would
// be generality nothing in this engine uses.
type Type string

// Event is anything that can be published on the Bus. Concrete event
// types live in package gameevents, which depends on both events and
// model; this package stays free of any domain dependency.
type Event interface {
	// EventType returns the catalog entry this event belongs to.
	EventType() Type
}

// Handler processes one event. A Handler that returns a non-nil error
// aborts the current publication with SubscriberFault: the engine
// treats subscriber failure as a hard bug, not a recoverable condition.
type Handler func(Event) error

// Filter narrows a subscription to a subset of events of its Type. Filters
// exist so two subscribers to the same Type (e.g. two skills both
// watching CardMoved) can each see only the slice relevant to their owner
// without re-checking it inside every handler body.
type Filter func(Event) bool
