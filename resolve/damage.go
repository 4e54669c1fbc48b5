package resolve

import (
	"context"

	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
)

// DamageResolver applies Base damage (modified by any BeforeDamage
// subscriber) from Source to Target, and pushes a DyingResolver if
// Target's health falls to or below zero. Reason is a free-form tag
// (e.g. "Slash", "Duel") carried on BeforeDamage/AfterDamage so a
// subscriber can condition on cause.
type DamageResolver struct {
	Source model.Seat
	Target model.Seat
	Base   int
	Reason string
}

// Name implements Resolver.
func (r *DamageResolver) Name() string { return "Damage" }

// Resolve implements Resolver.
func (r *DamageResolver) Resolve(ctx context.Context, rc *Context) Outcome {
	target := rc.Game.PlayerBySeat(r.Target)
	if target == nil || !target.Alive {
		return Success()
	}

	before := &gameevents.BeforeDamage{Source: r.Source, Target: r.Target, Base: r.Base, Reason: r.Reason}
	if err := rc.Bus.Publish(before); err != nil {
		return FromError(err)
	}

	amount := r.Base + before.Modifiers.Total()
	if amount < 0 {
		amount = 0
	}

	target.Health -= amount
	if err := rc.Bus.Publish(gameevents.HpLost{Target: r.Target, Amount: amount}); err != nil {
		return FromError(err)
	}
	if err := rc.Bus.Publish(gameevents.AfterDamage{Source: r.Source, Target: r.Target, Amount: amount, Reason: r.Reason}); err != nil {
		return FromError(err)
	}

	if target.Health <= 0 {
		rc.Stack.Push(&DyingResolver{Target: r.Target})
	}
	return Success()
}
