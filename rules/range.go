package rules

import (
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// RangeService computes attack range between two seats: raw seat
// distance, modified by the attacker's own DistanceModifier skills and
// then the defender's, each folded in manager registration order.
type RangeService struct {
	manager *skill.Manager
}

// NewRangeService creates a RangeService consulting manager for
// DistanceModifier capabilities.
func NewRangeService(manager *skill.Manager) *RangeService {
	return &RangeService{manager: manager}
}

// Distance returns the effective distance from attacker to defender,
// after folding both sides' DistanceModifier skills over the raw
// seat distance.
func (s *RangeService) Distance(game *model.Game, attacker, defender model.Seat) int {
	dist := game.SeatDistance(attacker, defender)

	for _, inst := range s.manager.GetActiveSkills(game, attacker) {
		if mod, ok := inst.(skill.DistanceModifier); ok {
			dist = mod.ModifyDistance(game, attacker, defender, dist, true)
		}
	}
	for _, inst := range s.manager.GetActiveSkills(game, defender) {
		if mod, ok := inst.(skill.DistanceModifier); ok {
			dist = mod.ModifyDistance(game, defender, attacker, dist, false)
		}
	}
	return dist
}

// InRange reports whether defender is within attacker's attackRange
// (e.g. 1 for bare-handed Slash, or a weapon's printed range).
func (s *RangeService) InRange(game *model.Game, attacker, defender model.Seat, attackRange int) Decision {
	if s.Distance(game, attacker, defender) > attackRange {
		return Deny("out of range")
	}
	return Allow()
}
