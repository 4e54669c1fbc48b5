package resolve

import (
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
)

// applyRecover publishes BeforeRecover, applies the modified amount
// capped at target's max health, and publishes AfterRecover. Shared by
// Peach and Dying's rescue step.
func applyRecover(rc *Context, target *model.Player, base int) error {
	before := &gameevents.BeforeRecover{Target: target.Seat, Base: base}
	if err := rc.Bus.Publish(before); err != nil {
		return err
	}

	amount := base + before.Modifiers.Total()
	if amount < 0 {
		amount = 0
	}
	if target.Health+amount > target.MaxHealth {
		amount = target.MaxHealth - target.Health
	}
	if amount <= 0 {
		return nil
	}

	target.Health += amount
	return rc.Bus.Publish(gameevents.AfterRecover{Target: target.Seat, Amount: amount})
}
