// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// SkillIDEmptyCity is a hero skill: while owner's hand is empty, owner
// cannot be targeted by Slash or Duel.
const SkillIDEmptyCity = "empty-city"

type emptyCity struct{ owner model.Seat }

func newEmptyCity(owner model.Seat) skill.Instance { return &emptyCity{owner: owner} }

func (s *emptyCity) ID() string                    { return SkillIDEmptyCity }
func (s *emptyCity) DisplayName() string           { return "Empty City" }
func (s *emptyCity) Type() skill.Type              { return skill.Locked }
func (s *emptyCity) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *emptyCity) Owner() model.Seat             { return s.owner }
func (s *emptyCity) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *emptyCity) Detach(bus *events.Bus) error                  { return nil }

// Active implements skill.SelfPredicate: the skill only applies while
// owner's hand is empty.
func (s *emptyCity) Active(game *model.Game) bool {
	player := game.PlayerBySeat(s.owner)
	return player != nil && player.Hand.Len() == 0
}

// ExcludeAsTarget implements skill.TargetFilter.
func (s *emptyCity) ExcludeAsTarget(game *model.Game, actor model.Seat, subtype model.Subtype, candidate model.Seat) bool {
	if candidate != s.owner {
		return false
	}
	return subtype == model.SubtypeSlash || subtype == model.SubtypeDuel
}
