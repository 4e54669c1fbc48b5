package resolve

import (
	"context"

	"github.com/threekingdoms/engine/equip"
	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
)

// UseCardResolver validates and plays one card: it determines the
// card's effective subtype (honoring a live CardConversion override),
// checks phase/usage legality, moves the physical card out of the
// user's zone (to the discard pile, or to the target's judgement zone
// for a delayed trick), publishes CardUsed, and pushes the
// subtype-specific resolver that carries out the effect.
type UseCardResolver struct {
	User    model.Seat
	Card    model.CardID
	Virtual *model.Virtual
	Targets []model.Seat
}

// Name implements Resolver.
func (r *UseCardResolver) Name() string { return "UseCard" }

// Resolve implements Resolver.
func (r *UseCardResolver) Resolve(ctx context.Context, rc *Context) Outcome {
	user := rc.Game.PlayerBySeat(r.User)
	if user == nil || !user.Alive {
		return Failure(gameerr.CodeInvalidState, "card user is not alive", nil)
	}

	card, ok := rc.Game.Cards[r.Card]
	if !ok {
		return Failure(gameerr.CodeInvalidState, "used card has no definition", map[string]any{"card_id": r.Card})
	}
	if !user.Hand.Contains(r.Card) && !user.Equip.Contains(r.Card) {
		return Failure(gameerr.CodeInvalidState, "used card not in user's hand or equip zone", map[string]any{"card_id": r.Card})
	}

	subtype := card.Subtype
	if r.Virtual != nil {
		subtype = r.Virtual.Subtype
	}

	decision := rc.Rules.Usage.Usage(rc.Game, r.User, subtype, usageCount(user, subtype, rc.Game.Turn))
	if !decision.Allowed {
		return Failure(gameerr.CodeUsageLimitExceeded, decision.Reason, nil)
	}

	switch {
	case subtype == model.SubtypeLebusishu:
		if len(r.Targets) != 1 {
			return Failure(gameerr.CodeInvalidTarget, "lebusishu requires exactly one target", nil)
		}
		target := rc.Game.PlayerBySeat(r.Targets[0])
		if target == nil {
			return Failure(gameerr.CodeInvalidTarget, "lebusishu target has no player", nil)
		}
		src := user.Hand
		if user.Equip.Contains(r.Card) {
			src = user.Equip
		}
		if err := rc.Move.PlaceDelayedTrick(src, target, r.Card); err != nil {
			return FromError(err)
		}
	case equip.Slots[subtype]:
		if err := rc.Equip.Equip(rc.Game, user, user.Hand, rc.Game.Discard, r.Card); err != nil {
			return FromError(err)
		}
	default:
		if err := rc.Move.DiscardFromHand(user, rc.Game.Discard, []model.CardID{r.Card}); err != nil {
			return FromError(err)
		}
	}

	incrementUsage(user, subtype, rc.Game.Turn)

	if err := rc.Bus.Publish(gameevents.CardUsed{User: r.User, Card: r.Card, Subtype: subtype, Targets: r.Targets}); err != nil {
		return FromError(err)
	}

	if next, ok := r.dispatch(subtype); ok {
		rc.Stack.Push(next)
	}
	return Success()
}

func (r *UseCardResolver) dispatch(subtype model.Subtype) (Resolver, bool) {
	switch subtype {
	case model.SubtypeSlash:
		return &SlashResolver{User: r.User, Card: r.Card, Targets: r.Targets}, true
	case model.SubtypePeach:
		target := r.User
		if len(r.Targets) == 1 {
			target = r.Targets[0]
		}
		return &PeachResolver{User: r.User, Target: target, Card: r.Card}, true
	case model.SubtypeDuel:
		if len(r.Targets) != 1 {
			return nil, false
		}
		return &DuelResolver{User: r.User, Target: r.Targets[0], Card: r.Card}, true
	case model.SubtypeGuoheChaiqiao:
		if len(r.Targets) != 1 {
			return nil, false
		}
		return &GuoheChaiqiaoResolver{User: r.User, Target: r.Targets[0], Card: r.Card}, true
	case model.SubtypeShunshouQianyang:
		if len(r.Targets) != 1 {
			return nil, false
		}
		return &ShunshouResolver{User: r.User, Target: r.Targets[0], Card: r.Card}, true
	default:
		return nil, false
	}
}
