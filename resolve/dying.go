package resolve

import (
	"context"

	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/rules"
)

// DyingResolver asks, in turn, every other alive player starting at
// Target's left neighbour, then Target itself, for a PeachForDying
// response — each accepted response raises Target's health by one —
// stopping as soon as health rises above zero. If no one rescues
// Target, it dies: Alive is cleared and every card in its zones moves
// to the shared discard pile.
type DyingResolver struct {
	Target model.Seat
}

// Name implements Resolver.
func (r *DyingResolver) Name() string { return "Dying" }

// Resolve implements Resolver.
func (r *DyingResolver) Resolve(ctx context.Context, rc *Context) Outcome {
	target := rc.Game.PlayerBySeat(r.Target)
	if target == nil {
		return Success()
	}

	if err := rc.Bus.Publish(gameevents.DyingEntered{Target: r.Target}); err != nil {
		return FromError(err)
	}

	for _, seat := range seatOrderFrom(rc.Game, r.Target) {
		if target.Health > 0 {
			break
		}
		window := &ResponseWindowResolver{Responder: seat, Type: rules.PeachForDying}
		if outcome := window.Resolve(ctx, rc); !outcome.Ok {
			return outcome
		}
		if window.Outcome == ResponseSuccess {
			if err := applyRecover(rc, target, 1); err != nil {
				return FromError(err)
			}
		}
	}

	rescued := target.Health > 0
	if !rescued {
		target.Alive = false
		if err := r.sendAllToDiscard(rc, target); err != nil {
			return FromError(err)
		}
	}
	return r.finish(rc, rescued)
}

func (r *DyingResolver) sendAllToDiscard(rc *Context, target *model.Player) error {
	for _, zone := range []*model.Zone{target.Hand, target.Equip, target.Judgement} {
		cards := zone.Cards()
		if len(cards) == 0 {
			continue
		}
		req := move.Request{Src: zone, Dst: rc.Game.Discard, Cards: cards, Reason: model.ReasonDeath, Ordering: model.ToTop}
		if err := rc.Move.Move(req); err != nil {
			return err
		}
	}
	return nil
}

func (r *DyingResolver) finish(rc *Context, rescued bool) Outcome {
	if err := rc.Bus.Publish(gameevents.DyingResolved{Target: r.Target, Rescued: rescued}); err != nil {
		return FromError(err)
	}
	return Success()
}
