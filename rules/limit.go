package rules

import (
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// DefaultMaxSlashPerTurn is the un-modified limit.
const DefaultMaxSlashPerTurn = 1

// LimitService computes per-turn usage limits, folding
// MaxSlashPerTurnModifier skills over a base value (e.g. Roar raises
// this to an effectively unlimited value).
type LimitService struct {
	manager *skill.Manager
}

// NewLimitService creates a LimitService consulting manager.
func NewLimitService(manager *skill.Manager) *LimitService {
	return &LimitService{manager: manager}
}

// MaxSlashPerTurn returns owner's current max-slashes-per-turn limit.
func (s *LimitService) MaxSlashPerTurn(game *model.Game, owner model.Seat) int {
	limit := DefaultMaxSlashPerTurn
	for _, inst := range s.manager.GetActiveSkills(game, owner) {
		if mod, ok := inst.(skill.MaxSlashPerTurnModifier); ok {
			limit = mod.ModifyMaxSlashPerTurn(game, owner, limit)
		}
	}
	return limit
}
