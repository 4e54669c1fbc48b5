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

// SkillIDJianxiong is a hero skill: whenever owner takes damage from a
// played card, owner obtains that physical card from the discard pile
// into their hand; whenever a piece of owner's own equipment leaves
// their equip zone for any reason, owner draws one compensation card
// from the draw pile (the removed card itself is not reclaimed). Each
// half uses its own hook: CardUsed/AfterDamage for the first,
// EquipmentRemovedListener for the second.
type jianxiong struct {
	owner          model.Seat
	mover          *move.Service
	lastUsedBy     map[model.Seat]model.CardID
	subCardUsed    string
	subAfterDamage string
}

// SkillIDJianxiong is the registry id jianxiong is registered under.
const SkillIDJianxiong = "jianxiong"

func newJianxiong(mover *move.Service) func(model.Seat) skill.Instance {
	return func(owner model.Seat) skill.Instance {
		return &jianxiong{owner: owner, mover: mover, lastUsedBy: make(map[model.Seat]model.CardID)}
	}
}

func (s *jianxiong) ID() string                    { return SkillIDJianxiong }
func (s *jianxiong) DisplayName() string           { return "Jianxiong" }
func (s *jianxiong) Type() skill.Type              { return skill.Trigger }
func (s *jianxiong) Capabilities() skill.Capability { return skill.IntervenesResolution }
func (s *jianxiong) Owner() model.Seat             { return s.owner }

func (s *jianxiong) Attach(bus *events.Bus, game *model.Game) error {
	s.subCardUsed = bus.Subscribe(gameevents.TypeCardUsed, func(e events.Event) error {
		used := e.(gameevents.CardUsed)
		s.lastUsedBy[used.User] = used.Card
		return nil
	})
	s.subAfterDamage = bus.Subscribe(gameevents.TypeAfterDamage, func(e events.Event) error {
		dmg := e.(gameevents.AfterDamage)
		if dmg.Target != s.owner {
			return nil
		}
		cardID, ok := s.lastUsedBy[dmg.Source]
		if !ok {
			return nil
		}
		owner := game.PlayerBySeat(s.owner)
		if owner == nil || !game.Discard.Contains(cardID) {
			return nil
		}
		return s.mover.ObtainIntoHand(owner, game.Discard, []model.CardID{cardID})
	})
	return nil
}

func (s *jianxiong) Detach(bus *events.Bus) error {
	if s.subCardUsed != "" {
		bus.Unsubscribe(s.subCardUsed)
		s.subCardUsed = ""
	}
	if s.subAfterDamage != "" {
		bus.Unsubscribe(s.subAfterDamage)
		s.subAfterDamage = ""
	}
	return nil
}

// OnEquipmentRemoved implements skill.EquipmentRemovedListener: losing a
// piece of equipment, for any reason, draws owner one compensation card.
// The listener fires while card still sits in owner's equip zone (equip
// Service calls it before the move that actually discards the card), so
// reclaiming that same card here would leave it absent from both zones
// the subsequent Unequip call expects it in — compensating with a fresh
// draw instead avoids racing that move.
func (s *jianxiong) OnEquipmentRemoved(game *model.Game, owner model.Seat, card *model.Card) error {
	player := game.PlayerBySeat(owner)
	if player == nil {
		return nil
	}
	return s.mover.Draw(player, game.Draw, 1, nil)
}
