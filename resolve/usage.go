package resolve

import "github.com/threekingdoms/engine/model"

func usageCount(player *model.Player, subtype model.Subtype, turn int) int {
	return player.UsageCount(subtype, turn)
}

func incrementUsage(player *model.Player, subtype model.Subtype, turn int) {
	player.IncrementUsage(subtype, turn)
}
