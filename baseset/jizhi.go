// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// SkillIDJizhi is a hero skill: damage owner takes from any source is
// reduced by one, never below one. Unlike DistanceModifier or
// MaxSlashPerTurnModifier (each folded centrally by a rule service over
// every active skill), DamageModifier has no such fold loop — a skill
// implementing it is responsible for subscribing to BeforeDamage itself
// and adding its own delta to the event's Accumulator. Jizhi still
// implements the capability interface (so a future central consumer, or
// another skill introspecting active skills, can discover it the same
// way as any other capability), but applies it here directly against
// the one event that actually carries it.
const SkillIDJizhi = "jizhi"

type jizhi struct {
	owner model.Seat
	subID string
}

func newJizhi(owner model.Seat) skill.Instance { return &jizhi{owner: owner} }

func (s *jizhi) ID() string                    { return SkillIDJizhi }
func (s *jizhi) DisplayName() string           { return "Jizhi" }
func (s *jizhi) Type() skill.Type              { return skill.Trigger }
func (s *jizhi) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *jizhi) Owner() model.Seat             { return s.owner }

func (s *jizhi) Attach(bus *events.Bus, game *model.Game) error {
	s.subID = bus.Subscribe(gameevents.TypeBeforeDamage, func(e events.Event) error {
		before := e.(*gameevents.BeforeDamage)
		if before.Target != s.owner {
			return nil
		}
		delta, ok := s.ModifyDamage(game, before.Source, before.Target, before.Base)
		if ok {
			before.Modifiers.Add(events.NewRawValue(delta, "jizhi"))
		}
		return nil
	})
	return nil
}

func (s *jizhi) Detach(bus *events.Bus) error {
	if s.subID == "" {
		return nil
	}
	bus.Unsubscribe(s.subID)
	s.subID = ""
	return nil
}

// ModifyDamage implements skill.DamageModifier: -1, saturating so the
// final base+delta never drops below one point of damage.
func (s *jizhi) ModifyDamage(game *model.Game, source, target model.Seat, base int) (int, bool) {
	if base <= 1 {
		return 0, true
	}
	return -1, true
}
