package move

import (
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
)

// Request describes one atomic relocation: a source zone, a destination
// zone, the ordered list of cards to move, the reason tag that will be
// stamped on the resulting events, and where in the destination the
// cards land.
type Request struct {
	Src      *model.Zone
	Dst      *model.Zone
	Cards    []model.CardID
	Reason   model.MoveReason
	Ordering model.TargetOrdering
}

// Service is the Card Move Service: the sole legal mutator of zone
// membership.
type Service struct {
	bus *events.Bus
}

// NewService creates a move Service publishing through bus.
func NewService(bus *events.Bus) *Service {
	return &Service{bus: bus}
}

// Move performs req atomically: either every card transitions or none
// does. A card whose current zone is not req.Src fails the whole
// request with CodeInvalidState before anything is mutated.
func (s *Service) Move(req Request) error {
	if len(req.Cards) == 0 {
		return nil
	}
	for _, id := range req.Cards {
		if !req.Src.Contains(id) {
			return gameerr.InvalidState("card not in source zone", gameerr.WithMeta("card_id", id))
		}
	}

	for _, id := range req.Cards {
		req.Src.RemoveAt(req.Src.IndexOf(id))
		switch req.Ordering {
		case model.ToBottom:
			req.Dst.InsertBottom(id)
		default:
			req.Dst.InsertTop(id)
		}
	}

	for _, id := range req.Cards {
		if err := s.bus.Publish(gameevents.CardMoved{
			Card: id, Src: req.Src.Role, SrcSeat: req.Src.Owner,
			Dst: req.Dst.Role, DstSeat: req.Dst.Owner, Reason: req.Reason,
		}); err != nil {
			return err
		}
	}
	return s.bus.Publish(gameevents.CardsMoved{
		Cards: append([]model.CardID(nil), req.Cards...),
		Src: req.Src.Role, SrcSeat: req.Src.Owner,
		Dst: req.Dst.Role, DstSeat: req.Dst.Owner, Reason: req.Reason,
	})
}

// DiscardFromHand moves cards from player's hand to the shared discard
// pile.
func (s *Service) DiscardFromHand(player *model.Player, discard *model.Zone, cards []model.CardID) error {
	return s.Move(Request{Src: player.Hand, Dst: discard, Cards: cards, Reason: model.ReasonDiscard, Ordering: model.ToTop})
}

// ObtainIntoHand moves cards from src into player's hand.
func (s *Service) ObtainIntoHand(player *model.Player, src *model.Zone, cards []model.CardID) error {
	return s.Move(Request{Src: src, Dst: player.Hand, Cards: cards, Reason: model.ReasonObtain, Ordering: model.ToTop})
}

// Equip moves a card from src into player's equip zone. If a card already
// occupies the same slot, the caller must Unequip it first — Service
// does not infer slot membership (that is equip.Validate's job) because
// move.Service only knows zones, not card subtypes.
func (s *Service) Equip(player *model.Player, src *model.Zone, card model.CardID) error {
	return s.Move(Request{Src: src, Dst: player.Equip, Cards: []model.CardID{card}, Reason: model.ReasonEquip, Ordering: model.ToTop})
}

// Unequip moves a card out of player's equip zone into the shared
// discard pile.
func (s *Service) Unequip(player *model.Player, discard *model.Zone, card model.CardID) error {
	return s.Move(Request{Src: player.Equip, Dst: discard, Cards: []model.CardID{card}, Reason: model.ReasonUnequip, Ordering: model.ToTop})
}

// PlaceDelayedTrick moves a delayed trick card into target's judgement
// zone.
func (s *Service) PlaceDelayedTrick(src *model.Zone, target *model.Player, card model.CardID) error {
	return s.Move(Request{Src: src, Dst: target.Judgement, Cards: []model.CardID{card}, Reason: model.ReasonPlaceDelayedTrick, Ordering: model.ToBottom})
}

// Draw moves the top n cards from draw into player's hand. If draw has
// fewer than n cards and reshuffleFromDiscard is non-nil, it is invoked
// once to replenish before giving up with CodeInsufficientCards.
func (s *Service) Draw(player *model.Player, draw *model.Zone, n int, reshuffleFromDiscard func() error) error {
	if draw.Len() < n && reshuffleFromDiscard != nil {
		if err := reshuffleFromDiscard(); err != nil {
			return err
		}
	}
	if draw.Len() < n {
		return gameerr.InsufficientCards("draw pile exhausted")
	}
	ids := draw.Cards()[:n]
	return s.Move(Request{Src: draw, Dst: player.Hand, Cards: ids, Reason: model.ReasonDraw, Ordering: model.ToTop})
}
