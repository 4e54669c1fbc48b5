package model

import "fmt"

// usageFlagKey names the per-turn use-count flag a player's Flags map
// carries for a subtype (e.g. Slash, capped by a rule service's limit
// query). Shared by whatever enumerates legal actions and whatever
// plays a card, so both sides agree on one count.
func usageFlagKey(subtype Subtype, turn int) string {
	return fmt.Sprintf("uses_%s_turn_%d", subtype, turn)
}

// UsageCount returns how many times p has used subtype so far this
// turn.
func (p *Player) UsageCount(subtype Subtype, turn int) int {
	v, ok := p.Flag(usageFlagKey(subtype, turn))
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// IncrementUsage records one more use of subtype this turn.
func (p *Player) IncrementUsage(subtype Subtype, turn int) {
	p.SetFlag(usageFlagKey(subtype, turn), p.UsageCount(subtype, turn)+1)
}
