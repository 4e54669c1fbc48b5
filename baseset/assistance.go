// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package baseset

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// SkillIDHujia is a hero skill: when owner themself fails to answer a
// response window, every other seat sharing owner's camp may be asked
// to answer on their behalf, in seat order.
const SkillIDHujia = "hujia"

type hujia struct{ owner model.Seat }

func newHujia(owner model.Seat) skill.Instance { return &hujia{owner: owner} }

func (s *hujia) ID() string                    { return SkillIDHujia }
func (s *hujia) DisplayName() string           { return "Hujia" }
func (s *hujia) Type() skill.Type              { return skill.Locked }
func (s *hujia) Capabilities() skill.Capability { return skill.IntervenesResolution }
func (s *hujia) Owner() model.Seat             { return s.owner }
func (s *hujia) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *hujia) Detach(bus *events.Bus) error                  { return nil }

// Assistants implements skill.ResponseAssistance.
func (s *hujia) Assistants(game *model.Game, beneficiary model.Seat) []model.Seat {
	owner := game.PlayerBySeat(beneficiary)
	if owner == nil || owner.Camp == "" {
		return nil
	}
	var out []model.Seat
	for _, seat := range game.AliveSeats() {
		if seat == beneficiary {
			continue
		}
		if p := game.PlayerBySeat(seat); p != nil && p.Camp == owner.Camp {
			out = append(out, seat)
		}
	}
	return out
}

// SkillIDJijiang is a hero skill: when owner themself fails to answer a
// response window, any other alive male seat may be asked to answer on
// their behalf.
const SkillIDJijiang = "jijiang"

type jijiang struct{ owner model.Seat }

func newJijiang(owner model.Seat) skill.Instance { return &jijiang{owner: owner} }

func (s *jijiang) ID() string                    { return SkillIDJijiang }
func (s *jijiang) DisplayName() string           { return "Jijiang" }
func (s *jijiang) Type() skill.Type              { return skill.Locked }
func (s *jijiang) Capabilities() skill.Capability { return skill.IntervenesResolution }
func (s *jijiang) Owner() model.Seat             { return s.owner }
func (s *jijiang) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *jijiang) Detach(bus *events.Bus) error                  { return nil }

// Assistants implements skill.ResponseAssistance.
func (s *jijiang) Assistants(game *model.Game, beneficiary model.Seat) []model.Seat {
	var out []model.Seat
	for _, seat := range game.AliveSeats() {
		if seat == beneficiary {
			continue
		}
		if p := game.PlayerBySeat(seat); p != nil && p.Gender == model.GenderMale {
			out = append(out, seat)
		}
	}
	return out
}
