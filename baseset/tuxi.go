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

// SkillIDTuxi is a hero skill: instead of drawing two cards, owner may
// take one card from the hand of each of up to two other seats, walking
// the table starting at owner's left neighbour. DrawPhaseReplaced fires
// as a plain notification (Offer only answers yes/no); tuxi performs the
// actual relocation itself once that event confirms the replacement was
// taken, via the move.Service captured at registration time — the
// factory closure every skill needing mover access is built through.
type tuxi struct {
	owner model.Seat
	mover *move.Service
	subID string
}

func newTuxi(mover *move.Service) func(model.Seat) skill.Instance {
	return func(owner model.Seat) skill.Instance { return &tuxi{owner: owner, mover: mover} }
}

// SkillIDTuxi is the registry id tuxi is registered under.
const SkillIDTuxi = "tuxi"

func (s *tuxi) ID() string                    { return SkillIDTuxi }
func (s *tuxi) DisplayName() string           { return "Tuxi" }
func (s *tuxi) Type() skill.Type              { return skill.Trigger }
func (s *tuxi) Capabilities() skill.Capability { return skill.IntervenesResolution }
func (s *tuxi) Owner() model.Seat             { return s.owner }

func (s *tuxi) Attach(bus *events.Bus, game *model.Game) error {
	s.subID = bus.Subscribe(gameevents.TypeDrawPhaseReplaced, func(e events.Event) error {
		replaced := e.(gameevents.DrawPhaseReplaced)
		if replaced.Seat != s.owner || replaced.SkillID != s.ID() {
			return nil
		}
		return s.perform(game)
	})
	return nil
}

func (s *tuxi) Detach(bus *events.Bus) error {
	if s.subID == "" {
		return nil
	}
	bus.Unsubscribe(s.subID)
	s.subID = ""
	return nil
}

// Offer implements skill.DrawPhaseReplacement.
func (s *tuxi) Offer(game *model.Game, owner model.Seat) bool {
	for _, seat := range game.AliveSeats() {
		if seat != owner && game.PlayerBySeat(seat).Hand.Len() > 0 {
			return true
		}
	}
	return false
}

func (s *tuxi) perform(game *model.Game) error {
	owner := game.PlayerBySeat(s.owner)
	if owner == nil {
		return nil
	}

	taken := 0
	seat, ok := game.NextAliveSeat(s.owner)
	for ok && seat != s.owner && taken < 2 {
		victim := game.PlayerBySeat(seat)
		if cards := victim.Hand.Cards(); len(cards) > 0 {
			if err := s.mover.ObtainIntoHand(owner, victim.Hand, cards[:1]); err != nil {
				return err
			}
			taken++
		}
		seat, ok = game.NextAliveSeat(seat)
	}
	return nil
}
