package resolve

import (
	"context"
	"fmt"

	"github.com/threekingdoms/engine/choice"
	"github.com/threekingdoms/engine/equip"
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/judge"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/rules"
	"github.com/threekingdoms/engine/skill"
)

// Context is the resolution context: the immutable handles every
// resolver needs, plus the mutable scratch state threaded between them.
// One Context is built per external mapper call and lives for the
// lifetime of that single resolution; it is never persisted across
// calls.
type Context struct {
	Game  *model.Game
	Actor model.Seat
	Stack *Stack

	Move      *move.Service
	Rules     *rules.Services
	Judgement *judge.Service
	Bus       *events.Bus
	Skills    *skill.Manager
	Equip     *equip.Service
	Responder choice.Responder

	// Conversions maps a physical card's ID to the virtual card it is
	// being played/submitted as, for the lifetime of this Context. A
	// resolver operates on the virtual subtype for intent (target
	// legality, response type) but always moves the physical card by
	// ID through zones.
	Conversions map[model.CardID]model.Virtual

	intermediate map[string]any
	nextRequest  int
}

// NewContext creates a Context for one resolution, wiring every
// collaborator a resolver might need.
func NewContext(
	game *model.Game,
	actor model.Seat,
	mv *move.Service,
	rs *rules.Services,
	jg *judge.Service,
	bus *events.Bus,
	skills *skill.Manager,
	eq *equip.Service,
	responder choice.Responder,
) *Context {
	return &Context{
		Game:        game,
		Actor:       actor,
		Stack:       NewStack(),
		Move:        mv,
		Rules:       rs,
		Judgement:   jg,
		Bus:         bus,
		Skills:      skills,
		Equip:       eq,
		Responder:   responder,
		Conversions: make(map[model.CardID]model.Virtual),
		intermediate: make(map[string]any),
	}
}

// Intermediate returns the value stored under key and whether it was
// set — the mapping resolvers use to thread one-shot flags between each
// other (e.g. SlashCannotUseDodge_<cardId>_<targetSeat>).
func (c *Context) Intermediate(key string) (any, bool) {
	v, ok := c.intermediate[key]
	return v, ok
}

// SetIntermediate stores value under key.
func (c *Context) SetIntermediate(key string, value any) {
	c.intermediate[key] = value
}

// RequestChoice asks Responder the question in req synchronously,
// stamping a fresh RequestID first — the only I/O boundary a resolver
// crosses.
func (c *Context) RequestChoice(ctx context.Context, req choice.Request) (choice.Result, error) {
	c.nextRequest++
	req.RequestID = fmt.Sprintf("choice-%d", c.nextRequest)
	return c.Responder.RequestChoice(ctx, req)
}
