package equip

import (
	"github.com/threekingdoms/engine/gameerr"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/skill"
)

// Slots are the equipment subtypes that occupy a slot. A player's equip
// zone may hold at most one card whose Subtype matches any given slot.
var Slots = map[model.Subtype]bool{
	model.SubtypeWeapon:         true,
	model.SubtypeArmor:          true,
	model.SubtypeOffensiveHorse: true,
	model.SubtypeDefensiveHorse: true,
}

// Validate reports whether card can be equipped at all — it must be of
// CardType Equip and its Subtype must be a recognized slot. It does not
// check occupancy: equipping over an occupied slot is legal and replaces
// the incumbent.
func Validate(card *model.Card) error {
	if card.Type != model.Equip {
		return gameerr.InvalidTarget("card is not equipment", gameerr.WithMeta("card_id", card.ID))
	}
	if !Slots[card.Subtype] {
		return gameerr.InvalidTarget("unrecognized equipment slot", gameerr.WithMeta("subtype", string(card.Subtype)))
	}
	return nil
}

// Service performs equip/unequip moves, replacing an occupant of the same
// slot first (Unequip then Equip, each emitting its own CardMoved
// event), and attaches/detaches whatever skill a piece of equipment
// grants for as long as it stays on the board.
type Service struct {
	mover  *move.Service
	cards  map[model.CardID]*model.Card
	skills *skill.Manager
	grants map[model.DefID]string
}

// NewService creates an equip Service backed by mover, resolving card
// definitions from cards. grants maps a card's DefID to the skill id it
// grants while equipped; a DefID absent from grants simply grants none.
func NewService(mover *move.Service, cards map[model.CardID]*model.Card, skills *skill.Manager, grants map[model.DefID]string) *Service {
	return &Service{mover: mover, cards: cards, skills: skills, grants: grants}
}

// Equip moves card from src into player's equip zone, first unequipping
// any incumbent in the same slot to the shared discard pile, then
// attaches whatever skill card's DefID grants.
func (s *Service) Equip(game *model.Game, player *model.Player, src *model.Zone, discard *model.Zone, cardID model.CardID) error {
	card, ok := s.cards[cardID]
	if !ok {
		return gameerr.InvalidTarget("unknown card", gameerr.WithMeta("card_id", cardID))
	}
	if err := Validate(card); err != nil {
		return err
	}

	if incumbent, has := player.EquippedSlot(s.cards, card.Subtype); has {
		if err := s.unequipInternal(game, player, discard, incumbent); err != nil {
			return err
		}
	}
	if err := s.mover.Equip(player, src, cardID); err != nil {
		return err
	}

	if grantID, ok := s.grants[card.DefID]; ok {
		return s.skills.AttachByID(game, player.Seat, grantID)
	}
	return nil
}

// Unequip moves a card out of player's equip zone to the shared discard
// pile, notifying any EquipmentRemovedListener skill of player's and
// detaching whatever skill the card itself granted. Used directly by
// EquipmentRemovedListener-driven effects (e.g. a skill that forcibly
// strips an opponent's weapon) as well as by Equip's own slot-replacement
// step.
func (s *Service) Unequip(game *model.Game, player *model.Player, discard *model.Zone, cardID model.CardID) error {
	card, ok := s.cards[cardID]
	if !ok {
		return gameerr.InvalidTarget("unknown card", gameerr.WithMeta("card_id", cardID))
	}
	return s.unequipInternal(game, player, discard, card)
}

func (s *Service) unequipInternal(game *model.Game, player *model.Player, discard *model.Zone, card *model.Card) error {
	for _, inst := range s.skills.GetAllSkills(player.Seat) {
		listener, ok := inst.(skill.EquipmentRemovedListener)
		if !ok {
			continue
		}
		if err := listener.OnEquipmentRemoved(game, player.Seat, card); err != nil {
			return err
		}
	}

	if grantID, ok := s.grants[card.DefID]; ok {
		if err := s.skills.Detach(player.Seat, grantID); err != nil {
			return err
		}
	}

	return s.mover.Unequip(player, discard, card.ID)
}
