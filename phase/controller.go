package phase

import (
	"github.com/threekingdoms/engine/choice"
	"github.com/threekingdoms/engine/equip"
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/judge"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/resolve"
	"github.com/threekingdoms/engine/rules"
	"github.com/threekingdoms/engine/skill"
)

// Controller drives the per-round phase sequence and the action mapper
// within Play. One Controller is built per game and reused across every
// round of it.
type Controller struct {
	Move       *move.Service
	Rules      *rules.Services
	Judgement  *judge.Service
	Bus        *events.Bus
	Skills     *skill.Manager
	Equip      *equip.Service
	JudgeRules *judge.RuleRegistry

	// ActiveResolvers maps a PhaseLimitedAction skill's ActionID to a
	// constructor for the resolver it pushes — kept here rather than on
	// any skill capability interface so neither skill nor action needs
	// to depend on resolve.
	ActiveResolvers map[string]func(actor model.Seat, result choice.Result) resolve.Resolver
}

// NewController creates a Controller wiring every collaborator a phase
// transition or the action mapper might need.
func NewController(
	mv *move.Service,
	rs *rules.Services,
	jg *judge.Service,
	bus *events.Bus,
	skills *skill.Manager,
	eq *equip.Service,
	judgeRules *judge.RuleRegistry,
) *Controller {
	return &Controller{
		Move:            mv,
		Rules:           rs,
		Judgement:       jg,
		Bus:             bus,
		Skills:          skills,
		Equip:           eq,
		JudgeRules:      judgeRules,
		ActiveResolvers: make(map[string]func(actor model.Seat, result choice.Result) resolve.Resolver),
	}
}

// newContext builds a fresh resolve.Context for one mapper call.
func (c *Controller) newContext(game *model.Game, actor model.Seat, responder choice.Responder) *resolve.Context {
	return resolve.NewContext(game, actor, c.Move, c.Rules, c.Judgement, c.Bus, c.Skills, c.Equip, responder)
}
