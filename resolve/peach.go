package resolve

import (
	"context"

	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/model"
)

// PeachResolver restores one health point to Target (modified by any
// BeforeRecover subscriber, capped at max health).
type PeachResolver struct {
	User   model.Seat
	Target model.Seat
	Card   model.CardID
}

// Name implements Resolver.
func (r *PeachResolver) Name() string { return "Peach" }

// Resolve implements Resolver.
func (r *PeachResolver) Resolve(ctx context.Context, rc *Context) Outcome {
	target := rc.Game.PlayerBySeat(r.Target)
	if target == nil || !target.Alive {
		return Failure(gameerr.CodeInvalidTarget, "peach target is not alive", nil)
	}
	if err := applyRecover(rc, target, 1); err != nil {
		return FromError(err)
	}
	return Success()
}
