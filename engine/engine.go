package engine

import (
	"context"

	"github.com/threekingdoms/engine/action"
	"github.com/threekingdoms/engine/choice"
	"github.com/threekingdoms/engine/config"
	"github.com/threekingdoms/engine/equip"
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/judge"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/phase"
	"github.com/threekingdoms/engine/rng"
	"github.com/threekingdoms/engine/rules"
	"github.com/threekingdoms/engine/skill"
)

// Engine bundles every collaborator a caller needs across the five
// operations below. One Engine is built once and reused for every game
// it creates; per-game state lives entirely in the *model.Game each
// CreateGame call returns, not on Engine itself.
type Engine struct {
	Bus        *events.Bus
	Move       *move.Service
	Equip      *equip.Service
	Skills     *skill.Manager
	Registry   *skill.Registry
	Rules      *rules.Services
	Judge      *judge.Service
	JudgeRules *judge.RuleRegistry
	Phase      *phase.Controller
}

// New wires a fresh Engine around registry (already populated by
// RegisterSkills, or empty) and judgeRules (a content pack's delayed
// trick rule bindings, or empty for DefaultRule everywhere).
func New(registry *skill.Registry, judgeRules *judge.RuleRegistry) *Engine {
	bus := events.NewBus()
	mover := move.NewService(bus)
	skills := skill.NewManager(bus, registry)

	return &Engine{
		Bus:        bus,
		Move:       mover,
		Skills:     skills,
		Registry:   registry,
		JudgeRules: judgeRules,
	}
}

// Pack registers one content pack's skills and hero grants into a
// Registry. A hero pack id in register_skills' hero_pack_ids[] names one
// of these; each Pack is self-contained and knows its own id.
type Pack interface {
	ID() string
	Register(registry *skill.Registry) error
}

// RegisterSkills registers every named pack's skills and hero grants
// into registry. An unknown id (not present in packs) fails with
// InvalidState rather than silently skipping it.
func RegisterSkills(registry *skill.Registry, packs map[string]Pack, heroPackIDs []string) error {
	for _, id := range heroPackIDs {
		pack, ok := packs[id]
		if !ok {
			return gameerr.InvalidState("unknown hero pack id", gameerr.WithMeta("pack_id", id))
		}
		if err := pack.Register(registry); err != nil {
			return err
		}
	}
	return nil
}

// CreateGame builds a fresh Game from cfg: seats every PlayerConfig,
// expands the deck catalog into individual physical cards, shuffles them
// with a Source seeded from cfg.Seed, and stocks the draw pile. It also
// finishes wiring e's per-game collaborators (Rules, Judge, Phase), which
// depend on the card catalog CreateGame just built.
func (e *Engine) CreateGame(cfg config.GameConfig) (*model.Game, error) {
	players := make([]*model.Player, len(cfg.PlayerConfigs))
	for i, pc := range cfg.PlayerConfigs {
		player := model.NewPlayer(pc.Seat, pc.HeroID, pc.MaxHealth)
		player.Health = pc.InitialHealth
		player.Camp = pc.FactionID
		player.Gender = pc.Gender
		players[i] = player
	}

	cards, order := buildDeck(cfg.Deck)
	game := model.NewGame(players, cards)

	source := rng.NewSeeded(cfg.Seed)
	source.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, id := range order {
		game.Draw.InsertBottom(id)
	}

	equipSvc := equip.NewService(e.Move, cards, e.Skills, cfg.EquipmentGrants)
	judgeSvc := judge.NewService(e.Bus, e.Move, cards)
	rulesSvc := rules.NewServices(e.Skills, cards)

	e.Equip = equipSvc
	e.Judge = judgeSvc
	e.Rules = rulesSvc
	e.Phase = phase.NewController(e.Move, rulesSvc, judgeSvc, e.Bus, e.Skills, equipSvc, e.JudgeRules)

	for _, pc := range cfg.PlayerConfigs {
		if pc.HeroID == "" {
			continue
		}
		if err := e.Skills.LoadHero(game, pc.Seat, pc.HeroID); err != nil {
			return nil, err
		}
	}

	return game, nil
}

// buildDeck expands deck's CardDefs into individually-identified Cards
// and returns both the lookup map and the ids in catalog order (pre-
// shuffle) — one physical card per Copies count, per def.
func buildDeck(deck config.DeckConfig) (map[model.CardID]*model.Card, []model.CardID) {
	cards := make(map[model.CardID]*model.Card)
	var order []model.CardID
	next := model.CardID(1)
	for _, def := range deck.Defs {
		for i := 0; i < def.Copies; i++ {
			id := next
			next++
			cards[id] = &model.Card{
				ID: id, DefID: def.DefID, Name: def.Name,
				Type: def.Type, Subtype: def.Subtype, Suit: def.Suit, Rank: def.Rank,
			}
			order = append(order, id)
		}
	}
	return cards, order
}

// GetAvailableActions is get_available_actions: the legal ActionDescriptors
// for actor right now.
func (e *Engine) GetAvailableActions(game *model.Game, actor model.Seat) []action.Descriptor {
	return action.Query(game, actor, e.Rules, e.Skills)
}

// Resolve is resolve: it maps one chosen {action, choice} pair onto a
// pushed-and-run resolution, calling back through responder 0..N times
// for whatever further decisions the resolver needs along the way.
func (e *Engine) Resolve(ctx context.Context, game *model.Game, actor model.Seat, descriptor action.Descriptor, initial choice.Result, responder choice.Responder) (ended bool, err error) {
	return e.Phase.ApplyAction(ctx, game, actor, descriptor, initial, responder)
}

// Subscribe is subscribe: registers handler for every event of type t,
// returning a subscription handle Unsubscribe accepts.
func (e *Engine) Subscribe(t events.Type, handler events.Handler) string {
	return e.Bus.Subscribe(t, handler)
}

// Unsubscribe removes a subscription created by Subscribe.
func (e *Engine) Unsubscribe(handle string) bool {
	return e.Bus.Unsubscribe(handle)
}

// RunRound drives one full RoundStart→RoundEnd sequence for the game's
// current seat, using responder for every suspension point (Play is
// driven end-to-end via phase.Controller.RunPlayPhase rather than one
// ApplyAction call at a time) — the all-in-one alternative to driving
// GetAvailableActions/Resolve call by call from outside.
func (e *Engine) RunRound(ctx context.Context, game *model.Game, responder choice.Responder) error {
	if err := e.Phase.RunRoundStart(game); err != nil {
		return err
	}
	if err := e.Phase.RunJudgement(ctx, game, responder); err != nil {
		return err
	}
	if err := e.Phase.RunDraw(ctx, game, responder); err != nil {
		return err
	}
	if err := e.Phase.RunPlayPhase(ctx, game, responder); err != nil {
		return err
	}
	if err := e.Phase.RunDiscard(ctx, game, responder); err != nil {
		return err
	}
	return e.Phase.RunRoundEnd(game)
}
