package resolve

import (
	"context"

	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/rules"
)

// DuelResolver alternates SlashAgainstDuel response windows between
// Target and User, starting with Target — the duel-target responds
// first, not the user who played the card, a common source-vs-target
// attribution mistake to avoid. Whoever first fails to submit a Slash
// takes 1 damage from the other.
type DuelResolver struct {
	User   model.Seat
	Target model.Seat
	Card   model.CardID
}

// Name implements Resolver.
func (r *DuelResolver) Name() string { return "Duel" }

// Resolve implements Resolver.
func (r *DuelResolver) Resolve(ctx context.Context, rc *Context) Outcome {
	current, other := r.Target, r.User
	for {
		window := &ResponseWindowResolver{Responder: current, Type: rules.SlashAgainstDuel}
		if outcome := window.Resolve(ctx, rc); !outcome.Ok {
			return outcome
		}
		if window.Outcome != ResponseSuccess {
			rc.Stack.Push(&DamageResolver{Source: other, Target: current, Base: 1, Reason: "Duel"})
			return Success()
		}
		current, other = other, current
	}
}
