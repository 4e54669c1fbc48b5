// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// SkillIDMountOffensive/SkillIDMountDefensive are the skills
// OffensiveHorse/DefensiveHorse grant their rider for as long as the
// mount stays equipped. Both are Locked: a DistanceModifier is pure
// capability-interface dispatch, queried fresh by RangeService every
// time, so neither needs an event subscription of its own.
const (
	SkillIDMountOffensive = "mount-offensive"
	SkillIDMountDefensive = "mount-defensive"
)

// mountOffensive shortens the distance its owner perceives to every
// other seat by one when owner is the attacker — an offensive mount
// closes ground, it does not change how far away the owner looks to
// others.
type mountOffensive struct{ owner model.Seat }

func newMountOffensive(owner model.Seat) skill.Instance { return &mountOffensive{owner: owner} }

func (s *mountOffensive) ID() string                    { return SkillIDMountOffensive }
func (s *mountOffensive) DisplayName() string           { return "Offensive Mount" }
func (s *mountOffensive) Type() skill.Type              { return skill.Locked }
func (s *mountOffensive) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *mountOffensive) Owner() model.Seat             { return s.owner }
func (s *mountOffensive) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *mountOffensive) Detach(bus *events.Bus) error                  { return nil }

// ModifyDistance implements skill.DistanceModifier.
func (s *mountOffensive) ModifyDistance(game *model.Game, owner, other model.Seat, base int, ownerIsAttacker bool) int {
	if !ownerIsAttacker {
		return base
	}
	if base <= 1 {
		return base
	}
	return base - 1
}

// mountDefensive lengthens the distance others perceive to its owner by
// one when owner is the defender.
type mountDefensive struct{ owner model.Seat }

func newMountDefensive(owner model.Seat) skill.Instance { return &mountDefensive{owner: owner} }

func (s *mountDefensive) ID() string                    { return SkillIDMountDefensive }
func (s *mountDefensive) DisplayName() string           { return "Defensive Mount" }
func (s *mountDefensive) Type() skill.Type              { return skill.Locked }
func (s *mountDefensive) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *mountDefensive) Owner() model.Seat             { return s.owner }
func (s *mountDefensive) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *mountDefensive) Detach(bus *events.Bus) error                  { return nil }

// ModifyDistance implements skill.DistanceModifier.
func (s *mountDefensive) ModifyDistance(game *model.Game, owner, other model.Seat, base int, ownerIsAttacker bool) int {
	if ownerIsAttacker {
		return base
	}
	return base + 1
}

// SkillIDHorsemanship is a hero skill stacking with the offensive mount:
// it shortens its owner's attacking distance the same way an offensive
// mount does, demonstrating that DistanceModifier folds every active
// skill in sequence rather than picking one winner.
const SkillIDHorsemanship = "horsemanship"

// horsemanship saturates its owner's perceived attacking distance at a
// floor of one hop, the way a rider with genuine cavalry training gets
// no further benefit from a second horse once already adjacent.
type horsemanship struct{ owner model.Seat }

func newHorsemanship(owner model.Seat) skill.Instance { return &horsemanship{owner: owner} }

func (s *horsemanship) ID() string                    { return SkillIDHorsemanship }
func (s *horsemanship) DisplayName() string           { return "Horsemanship" }
func (s *horsemanship) Type() skill.Type              { return skill.Locked }
func (s *horsemanship) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *horsemanship) Owner() model.Seat             { return s.owner }
func (s *horsemanship) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *horsemanship) Detach(bus *events.Bus) error                  { return nil }

// ModifyDistance implements skill.DistanceModifier.
func (s *horsemanship) ModifyDistance(game *model.Game, owner, other model.Seat, base int, ownerIsAttacker bool) int {
	if !ownerIsAttacker || base <= 1 {
		return base
	}
	return base - 1
}
