package baseset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/baseset"
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/skill"
)

func newTestGame(n int) *model.Game {
	players := make([]*model.Player, n)
	for i := 0; i < n; i++ {
		players[i] = model.NewPlayer(model.Seat(i), "hero", 4)
	}
	return model.NewGame(players, make(map[model.CardID]*model.Card))
}

// newTestRig wires a bus, a move.Service, and a Registry/Manager with
// every baseset skill registered, so a test only has to ask for the one
// skill id it cares about.
func newTestRig(t *testing.T) (*events.Bus, *move.Service, *skill.Registry, *skill.Manager) {
	t.Helper()
	bus := events.NewBus()
	mover := move.NewService(bus)
	registry := skill.NewRegistry()
	require.NoError(t, baseset.New(mover).Register(registry))
	mgr := skill.NewManager(bus, registry)
	return bus, mover, registry, mgr
}

func attachSkill(t *testing.T, mgr *skill.Manager, game *model.Game, registry *skill.Registry, id string, owner model.Seat) skill.Instance {
	t.Helper()
	inst, err := registry.New(id, owner)
	require.NoError(t, err)
	require.NoError(t, mgr.Attach(game, inst))
	return inst
}
