package resolve

import (
	"context"

	"github.com/threekingdoms/engine/choice"
	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
)

// pickFromTarget asks user to choose one card out of target's hand,
// equip, and judgement zones, and returns which zone it came from. A
// nil zone with no error means the user declined.
func pickFromTarget(ctx context.Context, rc *Context, user, target model.Seat, windowID string) (model.CardID, *model.Zone, error) {
	player := rc.Game.PlayerBySeat(target)
	if player == nil {
		return 0, nil, gameerr.InvalidTarget("target seat has no player")
	}

	var candidates []model.CardID
	candidates = append(candidates, player.Hand.Cards()...)
	candidates = append(candidates, player.Equip.Cards()...)
	candidates = append(candidates, player.Judgement.Cards()...)
	if len(candidates) == 0 {
		return 0, nil, nil
	}

	result, err := rc.RequestChoice(ctx, choice.Request{
		PlayerSeat:       user,
		ChoiceType:       choice.SelectCards,
		AllowedCards:     candidates,
		Min:              1,
		Max:              1,
		ResponseWindowID: windowID,
	})
	if err != nil {
		return 0, nil, err
	}
	if result.Passed() || len(result.SelectedCardIDs) == 0 {
		return 0, nil, nil
	}

	picked := result.SelectedCardIDs[0]
	switch {
	case player.Hand.Contains(picked):
		return picked, player.Hand, nil
	case player.Equip.Contains(picked):
		return picked, player.Equip, nil
	case player.Judgement.Contains(picked):
		return picked, player.Judgement, nil
	default:
		return 0, nil, gameerr.InvalidTarget("selected card not in any of target's zones", gameerr.WithMeta("card_id", picked))
	}
}

// GuoheChaiqiaoResolver takes one card of User's choosing from Target's
// hand, equip, or judgement zone and discards it.
type GuoheChaiqiaoResolver struct {
	User   model.Seat
	Target model.Seat
	Card   model.CardID
}

// Name implements Resolver.
func (r *GuoheChaiqiaoResolver) Name() string { return "GuoheChaiqiao" }

// Resolve implements Resolver.
func (r *GuoheChaiqiaoResolver) Resolve(ctx context.Context, rc *Context) Outcome {
	picked, zone, err := pickFromTarget(ctx, rc, r.User, r.Target, "GuoheChaiqiao")
	if err != nil {
		return FromError(err)
	}
	if zone == nil {
		return Success()
	}
	req := move.Request{Src: zone, Dst: rc.Game.Discard, Cards: []model.CardID{picked}, Reason: model.ReasonDiscard, Ordering: model.ToTop}
	if err := rc.Move.Move(req); err != nil {
		return FromError(err)
	}
	return Success()
}

// ShunshouResolver takes one card of User's choosing from Target's
// hand, equip, or judgement zone into User's hand.
type ShunshouResolver struct {
	User   model.Seat
	Target model.Seat
	Card   model.CardID
}

// Name implements Resolver.
func (r *ShunshouResolver) Name() string { return "Shunshoushanyang" }

// Resolve implements Resolver.
func (r *ShunshouResolver) Resolve(ctx context.Context, rc *Context) Outcome {
	picked, zone, err := pickFromTarget(ctx, rc, r.User, r.Target, "Shunshoushanyang")
	if err != nil {
		return FromError(err)
	}
	if zone == nil {
		return Success()
	}
	user := rc.Game.PlayerBySeat(r.User)
	if user == nil {
		return Failure(gameerr.CodeInvalidState, "shunshou user has no player", nil)
	}
	req := move.Request{Src: zone, Dst: user.Hand, Cards: []model.CardID{picked}, Reason: model.ReasonObtain, Ordering: model.ToTop}
	if err := rc.Move.Move(req); err != nil {
		return FromError(err)
	}
	return Success()
}
