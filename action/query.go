package action

import (
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/rules"
	"github.com/threekingdoms/engine/skill"
)

// targeting fixes how a card subtype's action is offered: whether it
// needs targets, how many, and under what filter. Subtypes absent from
// this table (equipment, and anything a CardConversion invents) are
// offered untargeted.
type targeting struct {
	requiresTargets bool
	min, max        int
	filter          Filter
}

var cardTargeting = map[model.Subtype]targeting{
	model.SubtypeSlash:            {requiresTargets: true, min: 1, max: 1, filter: Any},
	model.SubtypeDuel:             {requiresTargets: true, min: 1, max: 1, filter: Any},
	model.SubtypeGuoheChaiqiao:    {requiresTargets: true, min: 1, max: 1, filter: Any},
	model.SubtypeShunshouQianyang: {requiresTargets: true, min: 1, max: 1, filter: Enemies},
	model.SubtypeLebusishu:        {requiresTargets: true, min: 1, max: 1, filter: Any},
}

// Query enumerates every Descriptor actor may currently choose from:
// legal hand card uses (including any live CardConversion's virtual
// recastings), each alive skill's PhaseLimitedAction, and the built-in
// phase transitions.
func Query(game *model.Game, actor model.Seat, rulesSvc *rules.Services, skills *skill.Manager) []Descriptor {
	var out []Descriptor
	out = append(out, cardActions(game, actor, rulesSvc, skills)...)
	out = append(out, skillActions(game, actor, skills)...)
	out = append(out, phaseActions(game, actor)...)
	return out
}

func cardActions(game *model.Game, actor model.Seat, rulesSvc *rules.Services, skills *skill.Manager) []Descriptor {
	player := game.PlayerBySeat(actor)
	if player == nil || !player.Alive {
		return nil
	}

	byEffective := make(map[model.Subtype][]Candidate)
	active := skills.GetActiveSkills(game, actor)

	for _, id := range player.Hand.Cards() {
		card, ok := game.Cards[id]
		if !ok {
			continue
		}

		if rulesSvc.Usage.Usage(game, actor, card.Subtype, player.UsageCount(card.Subtype, game.Turn)).Allowed {
			byEffective[card.Subtype] = append(byEffective[card.Subtype], Candidate{Physical: id})
		}

		for _, inst := range active {
			conv, ok := inst.(skill.CardConversion)
			if !ok {
				continue
			}
			virtual, ok := conv.Convert(game, actor, card)
			if !ok {
				continue
			}
			if rulesSvc.Usage.Usage(game, actor, virtual.Subtype, player.UsageCount(virtual.Subtype, game.Turn)).Allowed {
				byEffective[virtual.Subtype] = append(byEffective[virtual.Subtype], Candidate{Physical: id, Virtual: virtual})
			}
		}
	}

	out := make([]Descriptor, 0, len(byEffective))
	for subtype, candidates := range byEffective {
		t := cardTargeting[subtype]
		out = append(out, Descriptor{
			ID:              string(subtype),
			DisplayKey:      string(subtype),
			RequiresTargets: t.requiresTargets,
			MinTargets:      t.min,
			MaxTargets:      t.max,
			TargetFilter:    t.filter,
			Candidates:      candidates,
		})
	}
	return out
}

func skillActions(game *model.Game, actor model.Seat, skills *skill.Manager) []Descriptor {
	var out []Descriptor
	for _, inst := range skills.GetActiveSkills(game, actor) {
		limited, ok := inst.(skill.PhaseLimitedAction)
		if !ok || !limited.Available(game, actor) {
			continue
		}
		out = append(out, Descriptor{
			ID:         limited.ActionID(),
			DisplayKey: limited.ActionID(),
		})
	}
	return out
}

// phaseActions offers the built-in phase-transition actions available
// from actor's current phase: ending Play early, and ending Discard
// once hand size is legal.
func phaseActions(game *model.Game, actor model.Seat) []Descriptor {
	if game.CurrentSeat != actor {
		return nil
	}
	switch game.CurrentPhase {
	case model.Play:
		return []Descriptor{{ID: "EndPlay", DisplayKey: "EndPlay"}}
	case model.Discard:
		if player := game.PlayerBySeat(actor); player != nil && player.Hand.Len() > player.Health {
			return nil
		}
		return []Descriptor{{ID: "EndDiscard", DisplayKey: "EndDiscard"}}
	default:
		return nil
	}
}
