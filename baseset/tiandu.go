// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/skill"
)

// SkillIDTiandu is a hero skill: whenever one of owner's own judgements
// completes and owner is still alive, owner claims the drawn card into
// their hand instead of it going to the discard pile, win or lose. It
// subscribes JudgementCompleted and acts before judge.Service's own
// cleanup stage runs — cleanup only discards a judged card if it is
// still sitting in the judgement zone, so claiming it here pre-empts
// that unconditionally (first writer wins).
type tiandu struct {
	owner model.Seat
	mover *move.Service
	subID string
}

// SkillIDTiandu is the registry id tiandu is registered under.
const SkillIDTiandu = "tiandu"

func newTiandu(mover *move.Service) func(model.Seat) skill.Instance {
	return func(owner model.Seat) skill.Instance { return &tiandu{owner: owner, mover: mover} }
}

func (s *tiandu) ID() string                    { return SkillIDTiandu }
func (s *tiandu) DisplayName() string           { return "Tiandu" }
func (s *tiandu) Type() skill.Type              { return skill.Trigger }
func (s *tiandu) Capabilities() skill.Capability { return skill.IntervenesResolution }
func (s *tiandu) Owner() model.Seat             { return s.owner }

func (s *tiandu) Attach(bus *events.Bus, game *model.Game) error {
	s.subID = bus.Subscribe(gameevents.TypeJudgementCompleted, func(e events.Event) error {
		completed := e.(gameevents.JudgementCompleted)
		if completed.Subject != s.owner {
			return nil
		}
		owner := game.PlayerBySeat(s.owner)
		if owner == nil || !owner.Alive || !owner.Judgement.Contains(completed.Card) {
			return nil
		}
		return s.mover.ObtainIntoHand(owner, owner.Judgement, []model.CardID{completed.Card})
	})
	return nil
}

func (s *tiandu) Detach(bus *events.Bus) error {
	if s.subID == "" {
		return nil
	}
	bus.Unsubscribe(s.subID)
	s.subID = ""
	return nil
}
