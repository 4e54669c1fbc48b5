package judge

import (
	"context"

	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/pipeline"
)

// Rule decides whether a drawn card passes a judgement. DefaultRule
// ("is red?") is the default; delayed tricks and skills may supply
// their own (e.g. a specific-suit rule).
type Rule func(card *model.Card) bool

// DefaultRule passes on red suits (Heart, Diamond) — the default
// judgement rule.
func DefaultRule(card *model.Card) bool {
	return card.Suit.IsRed()
}

// SuitRule builds a Rule that passes only for the given suit.
func SuitRule(suit model.Suit) Rule {
	return func(card *model.Card) bool {
		return card.Suit == suit
	}
}

// Service is the Judgement Service.
type Service struct {
	bus   *events.Bus
	mover *move.Service
	cards map[model.CardID]*model.Card
}

// NewService creates a judge Service publishing through bus and moving
// cards through mover.
func NewService(bus *events.Bus, mover *move.Service, cards map[model.CardID]*model.Card) *Service {
	return &Service{bus: bus, mover: mover, cards: cards}
}

type judgeResult struct {
	card   model.CardID
	passed bool
}

// Judge draws the top card of draw into subject's judgement zone, applies
// rule, publishes JudgementRequested/JudgementCompleted, and discards the
// card to discard unless it was claimed out of the judgement zone by a
// JudgementCompleted subscriber — first writer wins. trick identifies the
// delayed-trick card (if any) this judgement was drawn for, carried on
// JudgementCompleted so a subscriber can act on that specific trick
// rather than any judgement of its subject; pass model.NoCard for a bare
// judgement not tied to one. Returns whether the judgement passed.
func (s *Service) Judge(ctx context.Context, subject *model.Player, draw, discard *model.Zone, rule Rule, trick model.CardID) (bool, error) {
	if rule == nil {
		rule = DefaultRule
	}

	out, err := pipeline.Run(ctx, subject, []pipeline.Named{
		{Name: "request", Stage: func(_ context.Context, v any) (any, error) {
			subj := v.(*model.Player)
			return subj, s.bus.Publish(gameevents.JudgementRequested{Subject: subj.Seat})
		}},
		{Name: "draw", Stage: func(_ context.Context, v any) (any, error) {
			subj := v.(*model.Player)
			top, ok := draw.Top()
			if !ok {
				return nil, gameerr.InsufficientCards("draw pile empty for judgement")
			}
			if err := s.mover.Move(move.Request{
				Src: draw, Dst: subj.Judgement, Cards: []model.CardID{top}, Reason: model.ReasonJudgement,
			}); err != nil {
				return nil, err
			}
			return top, nil
		}},
		{Name: "apply-rule-and-publish", Stage: func(_ context.Context, v any) (any, error) {
			cardID := v.(model.CardID)
			card, ok := s.cards[cardID]
			if !ok {
				return nil, gameerr.InvalidState("judged card has no definition", gameerr.WithMeta("card_id", cardID))
			}
			passed := rule(card)
			if err := s.bus.Publish(gameevents.JudgementCompleted{
				Subject: subject.Seat, Card: cardID, Passed: passed, Trick: trick,
			}); err != nil {
				return nil, err
			}
			return judgeResult{card: cardID, passed: passed}, nil
		}},
		{Name: "cleanup", Stage: func(_ context.Context, v any) (any, error) {
			res := v.(judgeResult)
			// A JudgementCompleted subscriber (e.g. Tiandu) may already
			// have moved the card out of the judgement zone; only
			// discard if it is still there.
			if subject.Judgement.Contains(res.card) {
				if err := s.mover.Move(move.Request{
					Src: subject.Judgement, Dst: discard, Cards: []model.CardID{res.card}, Reason: model.ReasonDiscard,
				}); err != nil {
					return nil, err
				}
			}
			return res.passed, nil
		}},
	}...)
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}
