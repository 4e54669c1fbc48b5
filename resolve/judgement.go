package resolve

import (
	"context"

	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/judge"
	"github.com/threekingdoms/engine/model"
)

// JudgementResolver is a thin wrapper delegating entirely to
// judge.Service: draw into the subject's judgement zone, apply Rule,
// publish JudgementRequested/JudgementCompleted, and discard the card
// unless a subscriber already claimed it out of the judgement zone.
type JudgementResolver struct {
	Subject model.Seat
	Rule    judge.Rule
	// Trick is the delayed-trick card this judgement resolves for (e.g.
	// a Lebusishu sitting in the judgement zone), or model.NoCard for a
	// judgement not tied to one.
	Trick model.CardID
}

// Name implements Resolver.
func (r *JudgementResolver) Name() string { return "Judgement" }

// Resolve implements Resolver.
func (r *JudgementResolver) Resolve(ctx context.Context, rc *Context) Outcome {
	subject := rc.Game.PlayerBySeat(r.Subject)
	if subject == nil {
		return Failure(gameerr.CodeInvalidState, "judgement subject has no player", nil)
	}
	if _, err := rc.Judgement.Judge(ctx, subject, rc.Game.Draw, rc.Game.Discard, r.Rule, r.Trick); err != nil {
		return FromError(err)
	}
	return Success()
}
