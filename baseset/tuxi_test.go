package baseset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/baseset"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/model"
)

func TestTuxi_OffersOnlyWhenSomeoneElseHoldsCards(t *testing.T) {
	_, _, registry, mgr := newTestRig(t)
	game := newTestGame(2)

	inst, err := registry.New(baseset.SkillIDTuxi, 0)
	require.NoError(t, err)
	require.NoError(t, mgr.Attach(game, inst))
	replacement := inst.(interface {
		Offer(game *model.Game, owner model.Seat) bool
	})

	assert.False(t, replacement.Offer(game, 0))
	game.PlayerBySeat(1).Hand.InsertTop(9)
	assert.True(t, replacement.Offer(game, 0))
}

func TestTuxi_TakesOneCardFromEachOfUpToTwoOtherSeats(t *testing.T) {
	bus, _, registry, mgr := newTestRig(t)
	game := newTestGame(3)
	game.PlayerBySeat(1).Hand.InsertTop(1)
	game.PlayerBySeat(2).Hand.InsertTop(2)

	attachSkill(t, mgr, game, registry, baseset.SkillIDTuxi, 0)

	require.NoError(t, bus.Publish(gameevents.DrawPhaseReplaced{Seat: 0, SkillID: baseset.SkillIDTuxi}))

	assert.True(t, game.PlayerBySeat(0).Hand.Contains(1))
	assert.True(t, game.PlayerBySeat(0).Hand.Contains(2))
	assert.False(t, game.PlayerBySeat(1).Hand.Contains(1))
	assert.False(t, game.PlayerBySeat(2).Hand.Contains(2))
}

func TestTuxi_IgnoresReplacementEventsForOtherSkillsOrSeats(t *testing.T) {
	bus, _, registry, mgr := newTestRig(t)
	game := newTestGame(2)
	game.PlayerBySeat(1).Hand.InsertTop(5)

	attachSkill(t, mgr, game, registry, baseset.SkillIDTuxi, 0)

	require.NoError(t, bus.Publish(gameevents.DrawPhaseReplaced{Seat: 1, SkillID: baseset.SkillIDTuxi}))
	require.NoError(t, bus.Publish(gameevents.DrawPhaseReplaced{Seat: 0, SkillID: "other-skill"}))

	assert.False(t, game.PlayerBySeat(0).Hand.Contains(5))
}
