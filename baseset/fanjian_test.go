package baseset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/baseset"
	"github.com/threekingdoms/engine/choice"
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/resolve"
)

func newFanjianContext(game *model.Game, mover *move.Service, actor model.Seat) *resolve.Context {
	return resolve.NewContext(game, actor, mover, nil, nil, nil, nil, nil, nil)
}

func TestFanjianResolver_WrongGuessQueuesDamage(t *testing.T) {
	bus := events.NewBus()
	mover := move.NewService(bus)
	game := newTestGame(2)
	user := game.PlayerBySeat(0)
	heart := &model.Card{ID: 1, Suit: model.Heart}
	game.Cards = map[model.CardID]*model.Card{1: heart}
	user.Hand.InsertTop(1)

	result := choice.Result{
		SelectedCardIDs:     []model.CardID{1},
		SelectedTargetSeats: []model.Seat{1},
		SelectedOptionID:    "Club",
	}
	resolver, ok := baseset.NewFanjianResolver(0, result)
	require.True(t, ok)

	rc := newFanjianContext(game, mover, 0)
	outcome := resolver.Resolve(context.Background(), rc)
	require.True(t, outcome.Ok)

	assert.True(t, game.PlayerBySeat(1).Hand.Contains(1))
	assert.Equal(t, 1, rc.Stack.Depth(), "wrong guess queues a damage resolver")
	assert.Equal(t, 1, user.UsageCount("Fanjian", game.Turn))
}

func TestFanjianResolver_CorrectGuessStillHandsOverTheCardWithNoDamage(t *testing.T) {
	bus := events.NewBus()
	mover := move.NewService(bus)
	game := newTestGame(2)
	user := game.PlayerBySeat(0)
	heart := &model.Card{ID: 1, Suit: model.Heart}
	game.Cards = map[model.CardID]*model.Card{1: heart}
	user.Hand.InsertTop(1)

	result := choice.Result{
		SelectedCardIDs:     []model.CardID{1},
		SelectedTargetSeats: []model.Seat{1},
		SelectedOptionID:    "Heart",
	}
	resolver, ok := baseset.NewFanjianResolver(0, result)
	require.True(t, ok)

	rc := newFanjianContext(game, mover, 0)
	outcome := resolver.Resolve(context.Background(), rc)
	require.True(t, outcome.Ok)

	assert.True(t, game.PlayerBySeat(1).Hand.Contains(1))
	assert.Equal(t, 0, rc.Stack.Depth(), "correct guess never queues damage")
}

func TestNewFanjianResolver_RejectsAnIncompleteChoice(t *testing.T) {
	_, ok := baseset.NewFanjianResolver(0, choice.Result{})
	assert.False(t, ok)

	_, ok = baseset.NewFanjianResolver(0, choice.Result{
		SelectedCardIDs:     []model.CardID{1},
		SelectedTargetSeats: []model.Seat{1},
		SelectedOptionID:    "not-a-suit",
	})
	assert.False(t, ok)
}
