package rules

import "github.com/threekingdoms/engine/model"

// PhaseService answers which card subtypes are legal in the current
// phase. Only Play phase permits free card use by default; skills that
// grant phase-limited actions (PhaseLimitedAction, DrawPhaseReplacement)
// are queried separately by action.Query, not here — this service only
// covers ordinary hand/equipment card use.
type PhaseService struct{}

// NewPhaseService creates a PhaseService.
func NewPhaseService() *PhaseService { return &PhaseService{} }

// Legal reports whether subtype may be freely used in game's current
// phase.
func (s *PhaseService) Legal(game *model.Game, subtype model.Subtype) Decision {
	if game.CurrentPhase != model.Play {
		return Deny("not in play phase")
	}
	return Allow()
}
