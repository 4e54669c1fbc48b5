package skill

import "github.com/threekingdoms/engine/model"

// The interfaces below are the engine's optional capability set. An
// Instance may implement any number of them; rules/resolve packages
// discover them with a type assertion against the manager's live skill
// list, never against a skill's concrete type or ID — polymorphism
// through composed interfaces, not an inheritance hierarchy.

// TargetFilter excludes a candidate seat from the legal targets of a
// card subtype under some predicate (e.g. Empty City excluding its owner
// from Slash/Duel targeting while their hand is empty).
type TargetFilter interface {
	// ExcludeAsTarget reports whether candidate must be excluded as a
	// target of subtype, from owner's perspective.
	ExcludeAsTarget(game *model.Game, owner model.Seat, subtype model.Subtype, candidate model.Seat) bool
}

// DistanceModifier revises the seat-distance rule service computes for
// an attacker/defender pair, from this skill's owner's side of it.
type DistanceModifier interface {
	// ModifyDistance returns the revised distance, given base and
	// whether owner is the attacker in this pair.
	ModifyDistance(game *model.Game, owner, other model.Seat, base int, ownerIsAttacker bool) int
}

// MaxSlashPerTurnModifier revises the default max-slashes-per-turn limit
// (e.g. a Roar-style effect raising it to an effectively unlimited
// value).
type MaxSlashPerTurnModifier interface {
	ModifyMaxSlashPerTurn(game *model.Game, owner model.Seat, base int) int
}

// SlashResponseModifier returns extra response-window flags once a
// Slash's targets are known (e.g. "target cannot use Dodge").
type SlashResponseModifier interface {
	// SlashResponseFlags returns flag key/value pairs merged into the
	// resolution context's intermediate results, keyed by a
	// SlashCannotUseDodge_<cardId>_<targetSeat>-style convention.
	SlashResponseFlags(game *model.Game, user, target model.Seat, card model.CardID) map[string]bool
}

// DamageModifier returns a signed delta on a pending damage amount.
// Implementations must be commutative with other modifiers' outputs or
// use saturation (max/min) to stay order-independent.
type DamageModifier interface {
	ModifyDamage(game *model.Game, source, target model.Seat, base int) (delta int, ok bool)
}

// RecoverAmountModifier returns a signed delta on a pending recover
// amount, analogous to DamageModifier.
type RecoverAmountModifier interface {
	ModifyRecoverAmount(game *model.Game, target model.Seat, base int) (delta int, ok bool)
}

// CardConversion recasts a physical hand card into a virtual card of a
// different subtype for one resolution frame. Returns ok=false if this
// skill's conversion does not apply to physical under current game state
// (e.g. a Jijiu-style skill refusing on the owner's own turn).
type CardConversion interface {
	Convert(game *model.Game, owner model.Seat, physical *model.Card) (virtual *model.Virtual, ok bool)
}

// ResponseAssistance enumerates assistant seats that may additionally be
// asked to respond on a beneficiary's behalf (e.g. Hujia- or
// Jijiang-style skills), queried in the order returned.
type ResponseAssistance interface {
	Assistants(game *model.Game, beneficiary model.Seat) []model.Seat
}

// PhaseLimitedAction exposes a skill as an Active action available at
// most once per usage window.
type PhaseLimitedAction interface {
	// ActionID is the stable action identifier action.Query surfaces.
	ActionID() string
	// Available reports whether this action can currently be offered
	// (phase-legal and not already used this window).
	Available(game *model.Game, owner model.Seat) bool
}

// DrawPhaseReplacement substitutes for the default draw-two (e.g. a
// Tuxi-style skill).
type DrawPhaseReplacement interface {
	// Offer reports whether owner may replace their draw this phase.
	Offer(game *model.Game, owner model.Seat) bool
}

// EquipmentRemovedListener is notified when a piece of equipment this
// skill cares about leaves the owner's equip zone — e.g. a skill granted
// by equipment that needs to react to its own removal.
type EquipmentRemovedListener interface {
	OnEquipmentRemoved(game *model.Game, owner model.Seat, card *model.Card) error
}
