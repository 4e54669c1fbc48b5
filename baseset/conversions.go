// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// SkillIDGuose is a hero skill: any Diamond-suited hand card may be
// played as a virtual Lebusishu.
const SkillIDGuose = "guose"

type guose struct{ owner model.Seat }

func newGuose(owner model.Seat) skill.Instance { return &guose{owner: owner} }

func (s *guose) ID() string                    { return SkillIDGuose }
func (s *guose) DisplayName() string           { return "Guose" }
func (s *guose) Type() skill.Type              { return skill.Locked }
func (s *guose) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *guose) Owner() model.Seat             { return s.owner }
func (s *guose) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *guose) Detach(bus *events.Bus) error                  { return nil }

// Convert implements skill.CardConversion.
func (s *guose) Convert(game *model.Game, owner model.Seat, physical *model.Card) (*model.Virtual, bool) {
	if physical.Suit != model.Diamond {
		return nil, false
	}
	return &model.Virtual{Physical: physical.ID, Subtype: model.SubtypeLebusishu, Name: "Guose Lebusishu"}, true
}

// SkillIDJijiu is a hero skill: any red hand card may be played as a
// virtual Peach, but only on another seat's turn — owner cannot use it
// to rescue themself on their own turn.
const SkillIDJijiu = "jijiu"

type jijiu struct{ owner model.Seat }

func newJijiu(owner model.Seat) skill.Instance { return &jijiu{owner: owner} }

func (s *jijiu) ID() string                    { return SkillIDJijiu }
func (s *jijiu) DisplayName() string           { return "Jijiu" }
func (s *jijiu) Type() skill.Type              { return skill.Locked }
func (s *jijiu) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *jijiu) Owner() model.Seat             { return s.owner }
func (s *jijiu) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *jijiu) Detach(bus *events.Bus) error                  { return nil }

// Convert implements skill.CardConversion.
func (s *jijiu) Convert(game *model.Game, owner model.Seat, physical *model.Card) (*model.Virtual, bool) {
	if !physical.Suit.IsRed() {
		return nil, false
	}
	if game.CurrentSeat == owner {
		return nil, false
	}
	return &model.Virtual{Physical: physical.ID, Subtype: model.SubtypePeach, Name: "Jijiu Peach"}, true
}
