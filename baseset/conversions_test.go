package baseset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/threekingdoms/engine/baseset"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

func TestGuose_OnlyConvertsDiamondCards(t *testing.T) {
	_, _, registry, mgr := newTestRig(t)
	game := newTestGame(1)

	inst := attachSkill(t, mgr, game, registry, baseset.SkillIDGuose, 0)
	conv := inst.(skill.CardConversion)

	diamond := &model.Card{ID: 1, Suit: model.Diamond}
	virtual, ok := conv.Convert(game, 0, diamond)
	assert.True(t, ok)
	assert.Equal(t, model.SubtypeLebusishu, virtual.Subtype)
	assert.Equal(t, diamond.ID, virtual.Physical)

	spade := &model.Card{ID: 2, Suit: model.Spade}
	_, ok = conv.Convert(game, 0, spade)
	assert.False(t, ok)
}

func TestJijiu_RedOnlyAndNotOnOwnTurn(t *testing.T) {
	_, _, registry, mgr := newTestRig(t)
	game := newTestGame(2)
	game.CurrentSeat = 1

	inst := attachSkill(t, mgr, game, registry, baseset.SkillIDJijiu, 0)
	conv := inst.(skill.CardConversion)

	heart := &model.Card{ID: 1, Suit: model.Heart}
	virtual, ok := conv.Convert(game, 0, heart)
	assert.True(t, ok)
	assert.Equal(t, model.SubtypePeach, virtual.Subtype)

	game.CurrentSeat = 0
	_, ok = conv.Convert(game, 0, heart)
	assert.False(t, ok, "refuses to rescue the owner on their own turn")

	game.CurrentSeat = 1
	club := &model.Card{ID: 2, Suit: model.Club}
	_, ok = conv.Convert(game, 0, club)
	assert.False(t, ok, "black suits never convert")
}
