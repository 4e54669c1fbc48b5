package rules

import (
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

// ResponseType identifies what a response window is soliciting. New
// response types are added by content packs as new delayed
// tricks/skills are defined; the core only names the well-known ones.
type ResponseType string

const (
	JinkAgainstSlash         ResponseType = "JinkAgainstSlash"
	JinkAgainstWanjianqifa   ResponseType = "JinkAgainstWanjianqifa"
	PeachForDying            ResponseType = "PeachForDying"
	SlashAgainstDuel         ResponseType = "SlashAgainstDuel"
	SlashAgainstNanmanRushin ResponseType = "SlashAgainstNanmanRushin"
)

// requiredSubtype maps a ResponseType to the card subtype that satisfies
// it.
var requiredSubtype = map[ResponseType]model.Subtype{
	JinkAgainstSlash:         model.SubtypeDodge,
	JinkAgainstWanjianqifa:   model.SubtypeDodge,
	PeachForDying:            model.SubtypePeach,
	SlashAgainstDuel:         model.SubtypeSlash,
	SlashAgainstNanmanRushin: model.SubtypeSlash,
}

// ResponseService answers which cards a responder may legally submit to
// a response window, including virtual cards produced by live
// CardConversion skills.
type ResponseService struct {
	manager *skill.Manager
	cards   map[model.CardID]*model.Card
}

// NewResponseService creates a ResponseService resolving card
// definitions from cards.
func NewResponseService(manager *skill.Manager, cards map[model.CardID]*model.Card) *ResponseService {
	return &ResponseService{manager: manager, cards: cards}
}

// LegalResponses returns every card (physical or virtual) responder
// could submit to satisfy respType right now.
func (s *ResponseService) LegalResponses(game *model.Game, responder model.Seat, respType ResponseType) CardSet {
	want, ok := requiredSubtype[respType]
	if !ok {
		return CardSet{}
	}

	player := game.PlayerBySeat(responder)
	if player == nil {
		return CardSet{}
	}

	var set CardSet
	for _, id := range player.Hand.Cards() {
		card, ok := s.cards[id]
		if !ok {
			continue
		}
		if card.Subtype == want {
			set.Physical = append(set.Physical, id)
			continue
		}
		for _, inst := range s.manager.GetActiveSkills(game, responder) {
			conv, ok := inst.(skill.CardConversion)
			if !ok {
				continue
			}
			virtual, ok := conv.Convert(game, responder, card)
			if ok && virtual.Subtype == want {
				set.Virtual = append(set.Virtual, *virtual)
			}
		}
	}
	return set
}
