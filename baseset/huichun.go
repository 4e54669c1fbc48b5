// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// SkillIDHuichun is a hero skill: any recovery owner receives, from any
// source, is boosted by one point. Like DamageModifier, RecoverAmountModifier
// has no central fold loop over active skills — resolve.applyRecover only
// ever reads BeforeRecover's own Accumulator — so huichun subscribes
// BeforeRecover itself and adds its own delta, the same shape jizhi uses
// for DamageModifier against BeforeDamage.
const SkillIDHuichun = "huichun"

type huichun struct {
	owner model.Seat
	subID string
}

func newHuichun(owner model.Seat) skill.Instance { return &huichun{owner: owner} }

func (s *huichun) ID() string                    { return SkillIDHuichun }
func (s *huichun) DisplayName() string           { return "Huichun" }
func (s *huichun) Type() skill.Type              { return skill.Trigger }
func (s *huichun) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *huichun) Owner() model.Seat             { return s.owner }

func (s *huichun) Attach(bus *events.Bus, game *model.Game) error {
	s.subID = bus.Subscribe(gameevents.TypeBeforeRecover, func(e events.Event) error {
		before := e.(*gameevents.BeforeRecover)
		if before.Target != s.owner {
			return nil
		}
		delta, ok := s.ModifyRecoverAmount(game, before.Target, before.Base)
		if ok {
			before.Modifiers.Add(events.NewRawValue(delta, "huichun"))
		}
		return nil
	})
	return nil
}

func (s *huichun) Detach(bus *events.Bus) error {
	if s.subID == "" {
		return nil
	}
	bus.Unsubscribe(s.subID)
	s.subID = ""
	return nil
}

// ModifyRecoverAmount implements skill.RecoverAmountModifier: +1 to any
// recovery owner is the target of, from whatever source.
func (s *huichun) ModifyRecoverAmount(game *model.Game, target model.Seat, base int) (int, bool) {
	return 1, true
}
