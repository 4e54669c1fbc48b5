// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"fmt"

	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/judge"
	"github.com/threekingdoms/engine/model"
)

// skipFlag reproduces phase.Controller's private Game.Flags key format
// for skipping a phase outright for the current round. phase keeps this
// unexported, so a delayed trick that wants to set it must build the
// identical string itself rather than import a helper.
func skipFlag(phase model.Phase) string {
	return fmt.Sprintf("skip_%s", phase)
}

// lebusishuRule is the judgement rule Lebusishu is drawn against: "is
// red?", identical to judge.DefaultRule. Registered explicitly here
// rather than left to DefaultRule's fallback, so the rule this pack's
// own Lebusishu depends on is discoverable from baseset's own
// registration surface rather than an accident of what judge.RuleFor
// happens to default to.
func lebusishuRule(card *model.Card) bool {
	return judge.DefaultRule(card)
}

// RegisterJudgeRules binds this pack's delayed-trick judgement rules
// into reg. Called once against the judge.RuleRegistry an embedder
// passes to engine.New, the same way RegisterActiveResolvers is called
// once against the phase.Controller engine.CreateGame builds — neither
// engine.Pack's Register(registry *skill.Registry) method nor the
// skill.Registry it touches has any room for a delayed trick's
// judgement rule, since Lebusishu is a plain printed card, not a skill.
func (p *Pack) RegisterJudgeRules(reg *judge.RuleRegistry) {
	reg.Register(model.SubtypeLebusishu, lebusishuRule)
}

// AttachLebusishuSkip subscribes game to the JudgementCompleted event a
// Lebusishu's own judgement publishes, setting skip_Play for the
// current round whenever that judgement passes, so the subject loses
// their next Play phase entirely.
// Lebusishu has no owner and no attach/detach lifecycle of its own (it
// is a delayed trick on a card, not a skill.Instance), so this is wired
// directly against bus once per game rather than through
// skill.Manager, the same way RegisterActiveResolvers is wired directly
// against phase.Controller once per game rather than through
// engine.Pack. Returns the subscription handle so an embedder tearing
// a game down can unsubscribe it.
func (p *Pack) AttachLebusishuSkip(bus *events.Bus, game *model.Game) string {
	return bus.Subscribe(gameevents.TypeJudgementCompleted, func(e events.Event) error {
		completed := e.(gameevents.JudgementCompleted)
		if !completed.Passed || completed.Trick == model.NoCard {
			return nil
		}
		trick, ok := game.Cards[completed.Trick]
		if !ok || trick.Subtype != model.SubtypeLebusishu {
			return nil
		}
		game.SetFlag(skipFlag(model.Play), true)
		return nil
	})
}
