// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"fmt"
	"math"

	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// slashCannotDodgeFlag reproduces the intermediate-results key
// resolve.SlashResolver checks for a given card/target pair before
// opening a JinkAgainstSlash window. The resolve package keeps this
// format unexported, so a SlashResponseModifier must build the
// identical string itself rather than import a helper.
func slashCannotDodgeFlag(card model.CardID, target model.Seat) string {
	return fmt.Sprintf("SlashCannotUseDodge_%d_%d", card, target)
}

// SkillIDCrossbow is the skill ZhugeCrossbow grants its wielder: an
// unlimited Slash allowance for as long as the crossbow stays equipped.
const SkillIDCrossbow = "crossbow"

type crossbow struct{ owner model.Seat }

func newCrossbow(owner model.Seat) skill.Instance { return &crossbow{owner: owner} }

func (s *crossbow) ID() string                    { return SkillIDCrossbow }
func (s *crossbow) DisplayName() string           { return "Zhuge Crossbow" }
func (s *crossbow) Type() skill.Type              { return skill.Locked }
func (s *crossbow) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *crossbow) Owner() model.Seat             { return s.owner }
func (s *crossbow) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *crossbow) Detach(bus *events.Bus) error                  { return nil }

// ModifyMaxSlashPerTurn implements skill.MaxSlashPerTurnModifier.
func (s *crossbow) ModifyMaxSlashPerTurn(game *model.Game, owner model.Seat, base int) int {
	return math.MaxInt32
}

// SkillIDRoar is a hero skill granting the same unlimited Slash
// allowance independent of equipment, proving LimitService folds
// MaxSlashPerTurnModifier from whichever skills are active without
// caring whether they were hero-loaded or equipment-granted.
const SkillIDRoar = "roar"

type roar struct{ owner model.Seat }

func newRoar(owner model.Seat) skill.Instance { return &roar{owner: owner} }

func (s *roar) ID() string                    { return SkillIDRoar }
func (s *roar) DisplayName() string           { return "Roar" }
func (s *roar) Type() skill.Type              { return skill.Locked }
func (s *roar) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *roar) Owner() model.Seat             { return s.owner }
func (s *roar) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *roar) Detach(bus *events.Bus) error                  { return nil }

// ModifyMaxSlashPerTurn implements skill.MaxSlashPerTurnModifier.
func (s *roar) ModifyMaxSlashPerTurn(game *model.Game, owner model.Seat, base int) int {
	return math.MaxInt32
}

// SkillIDFrostBlade is the skill Frost Blade grants its wielder: every
// Slash it lands forbids that target from responding with Dodge. The
// capability interface the demonstration pack was missing a skill for —
// SlashResponseModifier is queried once per target right before a
// JinkAgainstSlash window opens (see resolve.SlashResolver), so Frost
// Blade only needs to answer that one question.
const SkillIDFrostBlade = "frost-blade"

type frostBlade struct{ owner model.Seat }

func newFrostBlade(owner model.Seat) skill.Instance { return &frostBlade{owner: owner} }

func (s *frostBlade) ID() string                    { return SkillIDFrostBlade }
func (s *frostBlade) DisplayName() string           { return "Frost Blade" }
func (s *frostBlade) Type() skill.Type              { return skill.Locked }
func (s *frostBlade) Capabilities() skill.Capability { return skill.ModifiesRules }
func (s *frostBlade) Owner() model.Seat             { return s.owner }
func (s *frostBlade) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *frostBlade) Detach(bus *events.Bus) error                  { return nil }

// SlashResponseFlags implements skill.SlashResponseModifier.
func (s *frostBlade) SlashResponseFlags(game *model.Game, user, target model.Seat, card model.CardID) map[string]bool {
	return map[string]bool{slashCannotDodgeFlag(card, target): true}
}
