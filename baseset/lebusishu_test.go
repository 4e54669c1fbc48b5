package baseset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/baseset"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/judge"
	"github.com/threekingdoms/engine/model"
)

func TestPack_RegisterJudgeRulesBindsLebusishuToTheDefaultRedRule(t *testing.T) {
	pack := baseset.New(nil)
	reg := judge.NewRuleRegistry()
	pack.RegisterJudgeRules(reg)

	rule := reg.RuleFor(model.SubtypeLebusishu)
	assert.True(t, rule(&model.Card{Suit: model.Heart}))
	assert.False(t, rule(&model.Card{Suit: model.Spade}))
}

func TestPack_AttachLebusishuSkipSetsSkipPlayOnlyWhenTheCompletedTrickIsLebusishuAndPasses(t *testing.T) {
	bus, _, _, _ := newTestRig(t)
	game := newTestGame(1)
	pack := baseset.New(nil)
	pack.AttachLebusishuSkip(bus, game)

	game.Cards = map[model.CardID]*model.Card{
		9001: {ID: 9001, Subtype: model.SubtypeLebusishu},
		9002: {ID: 9002, Subtype: model.SubtypeSlash},
	}

	require.NoError(t, bus.Publish(gameevents.JudgementCompleted{Subject: 0, Card: 1, Passed: false, Trick: 9001}))
	_, ok := game.Flag("skip_Play")
	assert.False(t, ok, "a failed judgement does not skip Play")

	require.NoError(t, bus.Publish(gameevents.JudgementCompleted{Subject: 0, Card: 1, Passed: true, Trick: 9002}))
	_, ok = game.Flag("skip_Play")
	assert.False(t, ok, "a passing judgement against a non-Lebusishu trick does not skip Play")

	require.NoError(t, bus.Publish(gameevents.JudgementCompleted{Subject: 0, Card: 1, Passed: true, Trick: 9001}))
	v, ok := game.Flag("skip_Play")
	require.True(t, ok)
	assert.Equal(t, true, v)
}
