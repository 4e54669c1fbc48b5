// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"github.com/threekingdoms/engine/config"
	"github.com/threekingdoms/engine/model"
)

// DefID constants for every card this pack prints. A deck built from
// Deck() only ever carries these.
const (
	DefIDSlash            model.DefID = "base-slash"
	DefIDDodge            model.DefID = "base-dodge"
	DefIDPeach            model.DefID = "base-peach"
	DefIDDuel             model.DefID = "base-duel"
	DefIDLebusishu        model.DefID = "base-lebusishu"
	DefIDGuoheChaiqiao    model.DefID = "base-guohe-chaiqiao"
	DefIDShunshouQianyang model.DefID = "base-shunshou-qianyang"

	DefIDOffensiveHorse model.DefID = "base-offensive-horse"
	DefIDDefensiveHorse model.DefID = "base-defensive-horse"
	DefIDZhugeCrossbow  model.DefID = "base-zhuge-crossbow"
	DefIDFrostBlade     model.DefID = "base-frost-blade"
)

// Deck is a minimal printed-card catalog exercising every card subtype
// the core resolves, plus this pack's equipment. An embedder assembling
// a real game is expected to build its own, larger DeckConfig; Deck
// exists so a game can be created end to end against this pack alone.
func Deck() config.DeckConfig {
	return config.DeckConfig{Defs: []config.CardDef{
		{DefID: DefIDSlash, Name: "Slash", Type: model.Basic, Subtype: model.SubtypeSlash, Suit: model.Spade, Rank: 7, Copies: 10},
		{DefID: DefIDDodge, Name: "Dodge", Type: model.Basic, Subtype: model.SubtypeDodge, Suit: model.Club, Rank: 2, Copies: 8},
		{DefID: DefIDPeach, Name: "Peach", Type: model.Basic, Subtype: model.SubtypePeach, Suit: model.Heart, Rank: 3, Copies: 6},
		{DefID: DefIDDuel, Name: "Duel", Type: model.Trick, Subtype: model.SubtypeDuel, Suit: model.Spade, Rank: 1, Copies: 3},
		{DefID: DefIDLebusishu, Name: "Lebusishu", Type: model.Trick, Subtype: model.SubtypeLebusishu, Suit: model.Heart, Rank: 4, Copies: 2},
		{DefID: DefIDGuoheChaiqiao, Name: "Guohe Chaiqiao", Type: model.Trick, Subtype: model.SubtypeGuoheChaiqiao, Suit: model.Club, Rank: 6, Copies: 3},
		{DefID: DefIDShunshouQianyang, Name: "Shunshou Qianyang", Type: model.Trick, Subtype: model.SubtypeShunshouQianyang, Suit: model.Spade, Rank: 3, Copies: 3},

		{DefID: DefIDOffensiveHorse, Name: "Red Hare", Type: model.Equip, Subtype: model.SubtypeOffensiveHorse, Suit: model.Heart, Rank: 5, Copies: 1},
		{DefID: DefIDDefensiveHorse, Name: "The Hex Mark", Type: model.Equip, Subtype: model.SubtypeDefensiveHorse, Suit: model.Spade, Rank: 5, Copies: 1},
		{DefID: DefIDZhugeCrossbow, Name: "Zhuge Crossbow", Type: model.Equip, Subtype: model.SubtypeWeapon, Suit: model.Diamond, Rank: 1, Copies: 1},
		{DefID: DefIDFrostBlade, Name: "Frost Blade", Type: model.Equip, Subtype: model.SubtypeWeapon, Suit: model.Spade, Rank: 10, Copies: 1},
	}}
}

// EquipmentGrants binds this pack's equipment to the skill each grants
// its owner for as long as it stays equipped — passed straight through
// to config.GameConfig.EquipmentGrants.
func EquipmentGrants() map[model.DefID]string {
	return map[model.DefID]string{
		DefIDOffensiveHorse: SkillIDMountOffensive,
		DefIDDefensiveHorse: SkillIDMountDefensive,
		DefIDZhugeCrossbow:  SkillIDCrossbow,
		DefIDFrostBlade:     SkillIDFrostBlade,
	}
}
