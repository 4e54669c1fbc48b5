package judge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/judge"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
)

func TestJudge_DefaultRulePassesOnRed(t *testing.T) {
	bus := events.NewBus()
	mover := move.NewService(bus)
	cards := map[model.CardID]*model.Card{1: {ID: 1, Suit: model.Heart, Rank: 5}}
	svc := judge.NewService(bus, mover, cards)

	subject := model.NewPlayer(0, "hero", 4)
	draw := model.NewZone(model.ZoneDraw, model.NoSeat)
	draw.InsertBottom(1)
	discard := model.NewZone(model.ZoneDiscard, model.NoSeat)

	passed, err := svc.Judge(context.Background(), subject, draw, discard, nil, model.NoCard)
	require.NoError(t, err)
	assert.True(t, passed)
	assert.True(t, discard.Contains(1))
	assert.False(t, subject.Judgement.Contains(1))
}

func TestJudge_SkillClaimBeforeCleanupLeavesCardInHand(t *testing.T) {
	bus := events.NewBus()
	mover := move.NewService(bus)
	cards := map[model.CardID]*model.Card{1: {ID: 1, Suit: model.Heart, Rank: 5}}
	svc := judge.NewService(bus, mover, cards)

	subject := model.NewPlayer(0, "hero", 4)
	draw := model.NewZone(model.ZoneDraw, model.NoSeat)
	draw.InsertBottom(1)
	discard := model.NewZone(model.ZoneDiscard, model.NoSeat)

	bus.Subscribe(gameevents.TypeJudgementCompleted, func(e events.Event) error {
		jc := e.(gameevents.JudgementCompleted)
		// Tiandu-style claim: move the card to the subject's hand before
		// the judge.Service cleanup step runs.
		return mover.Move(move.Request{
			Src: subject.Judgement, Dst: subject.Hand, Cards: []model.CardID{jc.Card}, Reason: model.ReasonObtain,
		})
	})

	passed, err := svc.Judge(context.Background(), subject, draw, discard, nil, model.NoCard)
	require.NoError(t, err)
	assert.True(t, passed)
	assert.True(t, subject.Hand.Contains(1))
	assert.False(t, discard.Contains(1))
}

func TestJudge_SuitRule(t *testing.T) {
	bus := events.NewBus()
	mover := move.NewService(bus)
	cards := map[model.CardID]*model.Card{1: {ID: 1, Suit: model.Club, Rank: 2}}
	svc := judge.NewService(bus, mover, cards)

	subject := model.NewPlayer(0, "hero", 4)
	draw := model.NewZone(model.ZoneDraw, model.NoSeat)
	draw.InsertBottom(1)
	discard := model.NewZone(model.ZoneDiscard, model.NoSeat)

	passed, err := svc.Judge(context.Background(), subject, draw, discard, judge.SuitRule(model.Club), model.NoCard)
	require.NoError(t, err)
	assert.True(t, passed)
}

func TestJudge_EmptyDrawPileFails(t *testing.T) {
	bus := events.NewBus()
	mover := move.NewService(bus)
	svc := judge.NewService(bus, mover, map[model.CardID]*model.Card{})

	subject := model.NewPlayer(0, "hero", 4)
	draw := model.NewZone(model.ZoneDraw, model.NoSeat)
	discard := model.NewZone(model.ZoneDiscard, model.NoSeat)

	_, err := svc.Judge(context.Background(), subject, draw, discard, nil, model.NoCard)
	require.Error(t, err)
}
