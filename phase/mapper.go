package phase

import (
	"context"

	"github.com/threekingdoms/engine/action"
	"github.com/threekingdoms/engine/choice"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/resolve"
)

// ApplyAction is the mapper: it takes the {action, choice} pair an
// embedder supplies (or RunPlayPhase's own internal loop assembles),
// builds a resolution context, and pushes and runs the resolver the
// descriptor names. ended reports whether actor's Play turn is over —
// true for EndPlay/EndDiscard with no resolver pushed at all.
func (c *Controller) ApplyAction(ctx context.Context, game *model.Game, actor model.Seat, descriptor action.Descriptor, result choice.Result, responder choice.Responder) (ended bool, err error) {
	switch descriptor.ID {
	case "EndPlay", "EndDiscard":
		return true, nil
	}

	if ctor, ok := c.ActiveResolvers[descriptor.ID]; ok {
		rc := c.newContext(game, actor, responder)
		return false, resolve.Run(ctx, rc, ctor(actor, result))
	}

	if len(result.SelectedCardIDs) == 0 {
		return false, nil
	}
	cardID := result.SelectedCardIDs[0]
	var virtual *model.Virtual
	for _, candidate := range descriptor.Candidates {
		if candidate.Physical == cardID && candidate.Virtual != nil {
			v := *candidate.Virtual
			virtual = &v
			break
		}
	}

	rc := c.newContext(game, actor, responder)
	resolver := &resolve.UseCardResolver{User: actor, Card: cardID, Virtual: virtual, Targets: result.SelectedTargetSeats}
	return false, resolve.Run(ctx, rc, resolver)
}

// RunPlayPhase enters Play and drives the action-query/mapper loop
// itself, asking responder at every step: which action (or EndPlay),
// then which card and targets that action needs, until the player ends
// their turn or runs out of anything to do.
func (c *Controller) RunPlayPhase(ctx context.Context, game *model.Game, responder choice.Responder) error {
	if err := c.EnterPlayPhase(game); err != nil {
		return err
	}
	if !c.skipped(game, model.Play) {
		actor := game.CurrentSeat
		for {
			descriptors := action.Query(game, actor, c.Rules, c.Skills)
			ids := make([]string, len(descriptors))
			for i, d := range descriptors {
				ids[i] = d.ID
			}
			pick, err := responder.RequestChoice(ctx, choice.Request{PlayerSeat: actor, ChoiceType: choice.SelectOption, AllowedOptions: ids})
			if err != nil {
				return err
			}
			if pick.Passed() || pick.SelectedOptionID == "" || pick.SelectedOptionID == "EndPlay" {
				break
			}

			descriptor, ok := findDescriptor(descriptors, pick.SelectedOptionID)
			if !ok {
				break
			}

			result, err := c.fillChoice(ctx, game, actor, descriptor, responder)
			if err != nil {
				return err
			}

			ended, err := c.ApplyAction(ctx, game, actor, descriptor, result, responder)
			if err != nil {
				return err
			}
			if ended {
				break
			}
		}
	}
	return c.LeavePlayPhase(game)
}

func findDescriptor(descriptors []action.Descriptor, id string) (action.Descriptor, bool) {
	for _, d := range descriptors {
		if d.ID == id {
			return d, true
		}
	}
	return action.Descriptor{}, false
}

// fillChoice asks whatever follow-up questions descriptor demands (which
// card, which targets) to assemble the choice.Result ApplyAction needs.
// A decline at any step yields an empty Result — ApplyAction then treats
// the whole action as a no-op, same as any other passed choice.
func (c *Controller) fillChoice(ctx context.Context, game *model.Game, actor model.Seat, d action.Descriptor, responder choice.Responder) (choice.Result, error) {
	result := choice.Result{PlayerSeat: actor}

	if len(d.Candidates) > 0 {
		cardID := d.Candidates[0].Physical
		if len(d.Candidates) > 1 {
			allowed := make([]model.CardID, len(d.Candidates))
			for i, candidate := range d.Candidates {
				allowed[i] = candidate.Physical
			}
			picked, err := responder.RequestChoice(ctx, choice.Request{
				PlayerSeat: actor, ChoiceType: choice.SelectCards, AllowedCards: allowed, Min: 1, Max: 1,
			})
			if err != nil {
				return choice.Result{}, err
			}
			if picked.Passed() || len(picked.SelectedCardIDs) == 0 {
				return choice.Result{}, nil
			}
			cardID = picked.SelectedCardIDs[0]
		}
		result.SelectedCardIDs = []model.CardID{cardID}
	}

	if d.RequiresTargets {
		subtype := model.Subtype(d.ID)
		candidates := c.Rules.Usage.LegalTargets(game, actor, subtype, baseCandidateSeats(game, actor, d.TargetFilter))
		targets, err := responder.RequestChoice(ctx, choice.Request{
			PlayerSeat: actor, ChoiceType: choice.SelectTargets, AllowedTargetSeats: candidates, Min: d.MinTargets, Max: d.MaxTargets,
		})
		if err != nil {
			return choice.Result{}, err
		}
		if targets.Passed() {
			return choice.Result{}, nil
		}
		result.SelectedTargetSeats = targets.SelectedTargetSeats
	}

	if d.ID == fanjianActionID {
		return c.fillFanjianChoice(ctx, game, actor, responder)
	}

	return result, nil
}

// fanjianActionID is the PhaseLimitedAction id a Fanjian-shaped skill
// reports via ActionID(). A PhaseLimitedAction descriptor carries no
// card/target/option shape of its own (spec's capability interface is a
// plain yes/no Available predicate), so the one skill needing a card, a
// target, and a declared suit in the same action gets its follow-up
// questions spelled out here rather than widening the capability
// interface for a single skill.
const fanjianActionID = "Fanjian"

// fillFanjianChoice asks, in order: which hand card to hand over, which
// opponent receives it, and which suit the user is declaring it to be.
// A decline at any step drops the whole action, same as any other
// passed choice.
func (c *Controller) fillFanjianChoice(ctx context.Context, game *model.Game, actor model.Seat, responder choice.Responder) (choice.Result, error) {
	player := game.PlayerBySeat(actor)
	if player == nil || player.Hand.Len() == 0 {
		return choice.Result{}, nil
	}

	cardPick, err := responder.RequestChoice(ctx, choice.Request{
		PlayerSeat: actor, ChoiceType: choice.SelectCards, AllowedCards: player.Hand.Cards(), Min: 1, Max: 1,
	})
	if err != nil {
		return choice.Result{}, err
	}
	if cardPick.Passed() || len(cardPick.SelectedCardIDs) == 0 {
		return choice.Result{}, nil
	}

	targetPick, err := responder.RequestChoice(ctx, choice.Request{
		PlayerSeat: actor, ChoiceType: choice.SelectTargets,
		AllowedTargetSeats: baseCandidateSeats(game, actor, action.Enemies), Min: 1, Max: 1,
	})
	if err != nil {
		return choice.Result{}, err
	}
	if targetPick.Passed() || len(targetPick.SelectedTargetSeats) == 0 {
		return choice.Result{}, nil
	}

	suitPick, err := responder.RequestChoice(ctx, choice.Request{
		PlayerSeat: actor, ChoiceType: choice.SelectOption,
		AllowedOptions: []string{model.Spade.String(), model.Heart.String(), model.Club.String(), model.Diamond.String()},
	})
	if err != nil {
		return choice.Result{}, err
	}
	if suitPick.Passed() || suitPick.SelectedOptionID == "" {
		return choice.Result{}, nil
	}

	return choice.Result{
		PlayerSeat:          actor,
		SelectedCardIDs:     cardPick.SelectedCardIDs,
		SelectedTargetSeats: targetPick.SelectedTargetSeats,
		SelectedOptionID:    suitPick.SelectedOptionID,
	}, nil
}

// baseCandidateSeats applies filter's camp-based restriction over every
// currently alive seat. Camp is an opaque, content-pack-assigned label;
// an empty Camp never excludes a seat, so a game that assigns no camps
// at all degrades to "every other seat" for Enemies and "only self" for
// SelfOrFriends.
func baseCandidateSeats(game *model.Game, actor model.Seat, filter action.Filter) []model.Seat {
	actorPlayer := game.PlayerBySeat(actor)
	var out []model.Seat
	for _, seat := range game.AliveSeats() {
		player := game.PlayerBySeat(seat)
		switch filter {
		case action.SelfOrFriends:
			if seat != actor && (player.Camp == "" || player.Camp != actorPlayer.Camp) {
				continue
			}
		case action.Enemies:
			if seat == actor {
				continue
			}
			if player.Camp != "" && player.Camp == actorPlayer.Camp {
				continue
			}
		}
		out = append(out, seat)
	}
	return out
}
