package skill

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
)

// Type tags how a skill is triggered.
type Type int

const (
	// Locked skills are always on while their owner is alive — they
	// have no attach-time subscription of their own; their effect is
	// exposed purely as a capability interface queried by rules.
	Locked Type = iota
	// Trigger skills subscribe to events on attach.
	Trigger
	// Active skills appear as player-chosen actions (C8).
	Active
)

func (t Type) String() string {
	switch t {
	case Locked:
		return "Locked"
	case Trigger:
		return "Trigger"
	case Active:
		return "Active"
	default:
		return "Type(?)"
	}
}

// Capability is a bitset tagging what a skill instance can do. It is
// advisory metadata for introspection — the actual dispatch uses the
// typed capability interfaces below via type assertion, not this
// bitset.
type Capability int

const None Capability = 0

const (
	InitiatesChoices Capability = 1 << iota
	IntervenesResolution
	ModifiesRules
)

// Instance is one attached skill — a hero-loaded or equipment-granted
// capability set bound to an owner seat. Each optional capability
// interface below (TargetFilter, DistanceModifier, ...) may additionally
// be implemented by a concrete Instance; the manager and rule services
// discover them via type assertion, never a type switch over skill
// identity.
type Instance interface {
	// ID is the skill's registry key.
	ID() string
	// DisplayName is a human-readable name.
	DisplayName() string
	// Type reports how this skill activates.
	Type() Type
	// Capabilities reports this instance's advisory capability bitset.
	Capabilities() Capability
	// Owner is the seat this instance is bound to.
	Owner() model.Seat

	// Attach subscribes this instance to bus for the lifetime of its
	// attachment (Trigger skills) and records whatever it needs to
	// detach cleanly later. Locked/Active skills with no subscriptions
	// may no-op.
	Attach(bus *events.Bus, game *model.Game) error
	// Detach unsubscribes everything Attach registered. Must be
	// idempotent: detaching twice must not error or double-unsubscribe.
	Detach(bus *events.Bus) error
}

// SelfPredicate is implemented by a skill whose activity depends on more
// than "owner alive".
type SelfPredicate interface {
	// Active reports whether this instance currently applies.
	Active(game *model.Game) bool
}
