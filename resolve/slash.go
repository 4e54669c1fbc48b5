package resolve

import (
	"context"
	"fmt"

	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/rules"
	"github.com/threekingdoms/engine/skill"
)

// SlashResolver opens a JinkAgainstSlash response window against each
// target in turn, pushing a DamageResolver for any target who does not
// dodge. Before opening any window it folds every owner skill's
// SlashResponseModifier flags into the context's intermediate results,
// so a flag like "target cannot use Dodge" set for this specific
// card/target pair is visible when this resolver checks it.
type SlashResolver struct {
	User    model.Seat
	Card    model.CardID
	Targets []model.Seat
}

// Name implements Resolver.
func (r *SlashResolver) Name() string { return "Slash" }

// Resolve implements Resolver.
func (r *SlashResolver) Resolve(ctx context.Context, rc *Context) Outcome {
	for _, target := range r.Targets {
		r.applyResponseFlags(rc, target)
	}

	for _, target := range r.Targets {
		if dodged, ok := rc.Intermediate(slashCannotDodgeKey(r.Card, target)); ok && dodged.(bool) {
			rc.Stack.Push(&DamageResolver{Source: r.User, Target: target, Base: 1, Reason: "Slash"})
			continue
		}

		window := &ResponseWindowResolver{Responder: target, Type: rules.JinkAgainstSlash}
		if outcome := window.Resolve(ctx, rc); !outcome.Ok {
			return outcome
		}
		if window.Outcome != ResponseSuccess {
			rc.Stack.Push(&DamageResolver{Source: r.User, Target: target, Base: 1, Reason: "Slash"})
		}
	}
	return Success()
}

func (r *SlashResolver) applyResponseFlags(rc *Context, target model.Seat) {
	for _, inst := range rc.Skills.GetActiveSkills(rc.Game, r.User) {
		mod, ok := inst.(skill.SlashResponseModifier)
		if !ok {
			continue
		}
		for key, value := range mod.SlashResponseFlags(rc.Game, r.User, target, r.Card) {
			rc.SetIntermediate(key, value)
		}
	}
}

func slashCannotDodgeKey(card model.CardID, target model.Seat) string {
	return fmt.Sprintf("SlashCannotUseDodge_%d_%d", card, target)
}
