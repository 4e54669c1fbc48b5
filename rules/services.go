package rules

import (
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// Services bundles the five query services so a resolution context can
// hand resolvers one handle instead of five separate ones; each service
// still only consults manager for the capability interfaces it cares
// about.
type Services struct {
	Phase    *PhaseService
	Range    *RangeService
	Limit    *LimitService
	Usage    *UsageService
	Response *ResponseService
}

// NewServices wires every query service against manager, resolving card
// definitions from cards.
func NewServices(manager *skill.Manager, cards map[model.CardID]*model.Card) *Services {
	phase := NewPhaseService()
	limit := NewLimitService(manager)
	return &Services{
		Phase:    phase,
		Range:    NewRangeService(manager),
		Limit:    limit,
		Usage:    NewUsageService(phase, limit, manager),
		Response: NewResponseService(manager, cards),
	}
}
