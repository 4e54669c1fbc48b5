package resolve

import "github.com/threekingdoms/engine/model"

// seatOrderFrom returns every other alive seat starting at from's left
// neighbour and walking around the table, followed by from itself — the
// order Dying's successive PeachForDying windows ask in, and the
// default order a response window not overridden by its resolver
// (Duel targets first, Hujia/Jijiang assistants from the beneficiary)
// would use.
func seatOrderFrom(game *model.Game, from model.Seat) []model.Seat {
	var out []model.Seat
	seat, ok := game.NextAliveSeat(from)
	for ok && seat != from {
		out = append(out, seat)
		seat, ok = game.NextAliveSeat(seat)
	}
	return append(out, from)
}
