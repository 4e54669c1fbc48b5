// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"context"

	"github.com/threekingdoms/engine/choice"
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/resolve"
	"github.com/threekingdoms/engine/skill"
)

// SkillIDFanjian is a hero skill: once per turn, owner hands one of
// their own hand cards to an opponent and guesses its suit. A wrong
// guess deals the opponent 1 damage; a correct guess leaves them simply
// holding the card. It is the pack's PhaseLimitedAction (an Active
// skill action.Query surfaces) demonstration — the one skill in baseset
// needing more than a bare card/target follow-up question, so its
// choice sequence is spelled out in phase.fillFanjianChoice rather than
// widening the PhaseLimitedAction capability interface for one skill.
const SkillIDFanjian = "fanjian"

// fanjianUsage is the usage-count subtype key Fanjian's own once-per-turn
// limit is tracked under, distinct from any printed card subtype.
const fanjianUsage model.Subtype = "Fanjian"

type fanjian struct{ owner model.Seat }

func newFanjian(owner model.Seat) skill.Instance { return &fanjian{owner: owner} }

func (s *fanjian) ID() string                    { return SkillIDFanjian }
func (s *fanjian) DisplayName() string           { return "Fanjian" }
func (s *fanjian) Type() skill.Type              { return skill.Active }
func (s *fanjian) Capabilities() skill.Capability { return skill.InitiatesChoices }
func (s *fanjian) Owner() model.Seat             { return s.owner }
func (s *fanjian) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *fanjian) Detach(bus *events.Bus) error                  { return nil }

// ActionID implements skill.PhaseLimitedAction.
func (s *fanjian) ActionID() string { return SkillIDFanjian }

// Available implements skill.PhaseLimitedAction.
func (s *fanjian) Available(game *model.Game, owner model.Seat) bool {
	if game.CurrentPhase != model.Play || game.CurrentSeat != owner {
		return false
	}
	player := game.PlayerBySeat(owner)
	if player == nil || player.Hand.Len() == 0 {
		return false
	}
	return player.UsageCount(fanjianUsage, game.Turn) == 0
}

// FanjianResolver hands CardID to Target and compares GuessedSuit
// against its actual suit, damaging Target by 1 on a wrong guess.
type FanjianResolver struct {
	User        model.Seat
	Target      model.Seat
	CardID      model.CardID
	GuessedSuit model.Suit
}

// NewFanjianResolver builds a FanjianResolver from the choice.Result
// phase.fillFanjianChoice assembled, parsing its declared-suit option
// back into a model.Suit. ok is false if result is incomplete (a
// passed/declined choice at any step).
func NewFanjianResolver(actor model.Seat, result choice.Result) (resolve.Resolver, bool) {
	if len(result.SelectedCardIDs) != 1 || len(result.SelectedTargetSeats) != 1 {
		return nil, false
	}
	suit, ok := model.ParseSuit(result.SelectedOptionID)
	if !ok {
		return nil, false
	}
	return &FanjianResolver{
		User:        actor,
		Target:      result.SelectedTargetSeats[0],
		CardID:      result.SelectedCardIDs[0],
		GuessedSuit: suit,
	}, true
}

// Name implements resolve.Resolver.
func (r *FanjianResolver) Name() string { return "Fanjian" }

// Resolve implements resolve.Resolver.
func (r *FanjianResolver) Resolve(ctx context.Context, rc *resolve.Context) resolve.Outcome {
	user := rc.Game.PlayerBySeat(r.User)
	target := rc.Game.PlayerBySeat(r.Target)
	if user == nil || target == nil || !user.Hand.Contains(r.CardID) {
		return resolve.Success()
	}
	card, ok := rc.Game.Cards[r.CardID]
	if !ok {
		return resolve.Success()
	}

	if err := rc.Move.ObtainIntoHand(target, user.Hand, []model.CardID{r.CardID}); err != nil {
		return resolve.FromError(err)
	}

	user.IncrementUsage(fanjianUsage, rc.Game.Turn)

	if card.Suit != r.GuessedSuit {
		rc.Stack.Push(&resolve.DamageResolver{Source: r.User, Target: r.Target, Base: 1, Reason: "Fanjian"})
	}
	return resolve.Success()
}

// noopResolver satisfies resolve.Resolver with no effect — what
// fanjianResolverCtor hands ApplyAction when the player declined
// somewhere in fillFanjianChoice's sequence, since ActiveResolvers'
// constructor signature has no way to report "nothing to push" other
// than a harmless resolver.
type noopResolver struct{}

func (noopResolver) Name() string { return "Noop" }
func (noopResolver) Resolve(ctx context.Context, rc *resolve.Context) resolve.Outcome {
	return resolve.Success()
}

func fanjianResolverCtor() func(actor model.Seat, result choice.Result) resolve.Resolver {
	return func(actor model.Seat, result choice.Result) resolve.Resolver {
		if r, ok := NewFanjianResolver(actor, result); ok {
			return r
		}
		return noopResolver{}
	}
}
