package phase

import (
	"context"
	"fmt"

	"github.com/threekingdoms/engine/choice"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/resolve"
)

// skipFlag names the Game.Flags key that, set true, skips phase entirely
// for the current round (e.g. a Lebusishu judgement success setting
// "skip_Play" on its subject).
func skipFlag(phase model.Phase) string {
	return fmt.Sprintf("skip_%s", phase)
}

func (c *Controller) skipped(game *model.Game, phase model.Phase) bool {
	v, ok := game.Flag(skipFlag(phase))
	if !ok {
		return false
	}
	skip, _ := v.(bool)
	return skip
}

func (c *Controller) enterPhase(game *model.Game, phase model.Phase) error {
	game.CurrentPhase = phase
	return c.Bus.Publish(gameevents.PhaseStart{Phase: phase, Turn: game.Turn})
}

func (c *Controller) leavePhase(game *model.Game, phase model.Phase) error {
	game.ClearFlag(skipFlag(phase))
	return c.Bus.Publish(gameevents.PhaseEnd{Phase: phase, Turn: game.Turn})
}

// RunRoundStart transitions into and immediately out of RoundStart —
// its only purpose is to give subscribers a well-defined point to react
// to a fresh turn beginning, before Judgement runs.
func (c *Controller) RunRoundStart(game *model.Game) error {
	if err := c.enterPhase(game, model.RoundStart); err != nil {
		return err
	}
	return c.leavePhase(game, model.RoundStart)
}

// RunJudgement resolves every delayed trick in the current seat's
// judgement zone, oldest first: each draws a fresh judging card via
// judge.Service against the trick's own rule, then the trick card
// itself is discarded if a subscriber hasn't already claimed it.
func (c *Controller) RunJudgement(ctx context.Context, game *model.Game, responder choice.Responder) error {
	if err := c.enterPhase(game, model.Judgement); err != nil {
		return err
	}
	if !c.skipped(game, model.Judgement) {
		actor := game.CurrentSeat
		player := game.PlayerBySeat(actor)
		if player != nil {
			for _, trickID := range player.Judgement.Cards() {
				card, ok := game.Cards[trickID]
				if !ok {
					continue
				}
				rule := c.JudgeRules.RuleFor(card.Subtype)
				rc := c.newContext(game, actor, responder)
				if err := resolve.Run(ctx, rc, &resolve.JudgementResolver{Subject: actor, Rule: rule, Trick: trickID}); err != nil {
					return err
				}
				if player.Judgement.Contains(trickID) {
					if err := c.Move.Move(move.Request{
						Src: player.Judgement, Dst: game.Discard, Cards: []model.CardID{trickID}, Reason: model.ReasonDiscard,
					}); err != nil {
						return err
					}
				}
			}
		}
	}
	return c.leavePhase(game, model.Judgement)
}

// RunDraw gives the current seat their draw: the default two cards,
// unless a live DrawPhaseReplacement skill offers a substitute and the
// player confirms it — in which case the skill's own event subscription
// (set up at Attach, the same way any Trigger skill wires itself)
// carries out the actual replacement once DrawPhaseReplaced fires.
func (c *Controller) RunDraw(ctx context.Context, game *model.Game, responder choice.Responder) error {
	if err := c.enterPhase(game, model.Draw); err != nil {
		return err
	}
	if !c.skipped(game, model.Draw) {
		actor := game.CurrentSeat
		player := game.PlayerBySeat(actor)
		if player != nil {
			replaced, err := c.offerDrawReplacement(ctx, game, player, responder)
			if err != nil {
				return err
			}
			if !replaced {
				if err := c.Move.Draw(player, game.Draw, 2, nil); err != nil {
					return err
				}
			}
		}
	}
	return c.leavePhase(game, model.Draw)
}

func (c *Controller) offerDrawReplacement(ctx context.Context, game *model.Game, player *model.Player, responder choice.Responder) (bool, error) {
	for _, inst := range c.Skills.GetActiveSkills(game, player.Seat) {
		replacement, ok := inst.(interface {
			Offer(game *model.Game, owner model.Seat) bool
		})
		if !ok || !replacement.Offer(game, player.Seat) {
			continue
		}
		result, err := responder.RequestChoice(ctx, choice.Request{PlayerSeat: player.Seat, ChoiceType: choice.Confirm})
		if err != nil {
			return false, err
		}
		if !result.Confirmed {
			continue
		}
		if err := c.Bus.Publish(gameevents.DrawPhaseReplaced{Seat: player.Seat, SkillID: inst.ID()}); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// EnterPlayPhase transitions into Play. Individual actions are applied
// one at a time by repeated ApplyAction calls (each independently
// mapper-driven, per the engine's external action-query/resolve
// protocol) until the embedder selects EndPlay.
func (c *Controller) EnterPlayPhase(game *model.Game) error {
	return c.enterPhase(game, model.Play)
}

// LeavePlayPhase transitions out of Play.
func (c *Controller) LeavePlayPhase(game *model.Game) error {
	return c.leavePhase(game, model.Play)
}

// RunDiscard asks the current seat to discard down to their current
// health, one request at a time, until their hand no longer exceeds it.
func (c *Controller) RunDiscard(ctx context.Context, game *model.Game, responder choice.Responder) error {
	if err := c.enterPhase(game, model.Discard); err != nil {
		return err
	}
	if !c.skipped(game, model.Discard) {
		actor := game.CurrentSeat
		player := game.PlayerBySeat(actor)
		if player != nil && player.Alive {
			for player.Hand.Len() > player.Health {
				excess := player.Hand.Len() - player.Health
				result, err := responder.RequestChoice(ctx, choice.Request{
					PlayerSeat:   actor,
					ChoiceType:   choice.SelectCards,
					AllowedCards: player.Hand.Cards(),
					Min:          excess,
					Max:          excess,
				})
				if err != nil {
					return err
				}
				if result.Passed() || len(result.SelectedCardIDs) == 0 {
					// A responder that declines to choose still must
					// shed the excess — fall back to the front of hand
					// deterministically rather than stalling forever.
					result.SelectedCardIDs = player.Hand.Cards()[:excess]
				}
				if err := c.Move.DiscardFromHand(player, game.Discard, result.SelectedCardIDs); err != nil {
					return err
				}
			}
		}
	}
	return c.leavePhase(game, model.Discard)
}

// RunRoundEnd publishes TurnEnd, advances Turn, and moves CurrentSeat to
// the next alive seat.
func (c *Controller) RunRoundEnd(game *model.Game) error {
	if err := c.enterPhase(game, model.RoundEnd); err != nil {
		return err
	}
	if err := c.Bus.Publish(gameevents.TurnEnd{Turn: game.Turn}); err != nil {
		return err
	}
	if next, ok := game.NextAliveSeat(game.CurrentSeat); ok {
		game.CurrentSeat = next
	}
	game.Turn++
	return c.leavePhase(game, model.RoundEnd)
}
