package rules

import (
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// UsageService combines phase, limit, and target-filter legality into
// the single "can actor use this card right now" query action.Query
// consults when enumerating legal actions.
type UsageService struct {
	phase   *PhaseService
	limit   *LimitService
	manager *skill.Manager
}

// NewUsageService creates a UsageService.
func NewUsageService(phase *PhaseService, limit *LimitService, manager *skill.Manager) *UsageService {
	return &UsageService{phase: phase, limit: limit, manager: manager}
}

// Usage reports whether actor may use a card of subtype right now, given
// usedThisTurn prior uses of subtype this turn (relevant only for
// limited subtypes like Slash).
func (s *UsageService) Usage(game *model.Game, actor model.Seat, subtype model.Subtype, usedThisTurn int) Decision {
	if d := s.phase.Legal(game, subtype); !d.Allowed {
		return d
	}
	if subtype == model.SubtypeSlash {
		if usedThisTurn >= s.limit.MaxSlashPerTurn(game, actor) {
			return Deny("max slashes per turn reached")
		}
	}
	return Allow()
}

// LegalTargets filters candidates by every active TargetFilter skill in
// the game — both actor's own skills and each candidate's own (e.g.
// Empty City excludes its owner from Slash/Duel targeting, a filter
// contributed by the candidate, not the actor).
func (s *UsageService) LegalTargets(game *model.Game, actor model.Seat, subtype model.Subtype, candidates []model.Seat) []model.Seat {
	var out []model.Seat
	for _, candidate := range candidates {
		if s.excluded(game, actor, subtype, candidate) {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func (s *UsageService) excluded(game *model.Game, actor model.Seat, subtype model.Subtype, candidate model.Seat) bool {
	for _, inst := range s.manager.GetActiveSkills(game, actor) {
		if f, ok := inst.(skill.TargetFilter); ok && f.ExcludeAsTarget(game, actor, subtype, candidate) {
			return true
		}
	}
	for _, inst := range s.manager.GetActiveSkills(game, candidate) {
		if f, ok := inst.(skill.TargetFilter); ok && f.ExcludeAsTarget(game, actor, subtype, candidate) {
			return true
		}
	}
	return false
}
