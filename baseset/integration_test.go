package baseset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/baseset"
	"github.com/threekingdoms/engine/config"
	"github.com/threekingdoms/engine/engine"
	"github.com/threekingdoms/engine/judge"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/rules"
	"github.com/threekingdoms/engine/skill"
)

func newBasesetEngine(t *testing.T) (*engine.Engine, *baseset.Pack) {
	t.Helper()
	registry := skill.NewRegistry()
	judgeRules := judge.NewRuleRegistry()
	eng := engine.New(registry, judgeRules)
	pack := baseset.New(eng.Move)
	pack.RegisterJudgeRules(judgeRules)
	require.NoError(t, engine.RegisterSkills(registry, map[string]engine.Pack{baseset.ID: pack}, []string{baseset.ID}))
	return eng, pack
}

func TestIntegration_EmptyCityBlocksSlashOnceHandIsEmpty(t *testing.T) {
	eng, _ := newBasesetEngine(t)

	cfg := config.GameConfig{
		PlayerConfigs: []config.PlayerConfig{
			{Seat: 0, HeroID: baseset.HeroEmptyCity, MaxHealth: 4, InitialHealth: 4},
			{Seat: 1, MaxHealth: 4, InitialHealth: 4},
		},
		Deck:            baseset.Deck(),
		Seed:            1,
		EquipmentGrants: baseset.EquipmentGrants(),
	}
	game, err := eng.CreateGame(cfg)
	require.NoError(t, err)

	game.PlayerBySeat(0).Hand.InsertTop(1)
	targets := eng.Rules.Usage.LegalTargets(game, 1, model.SubtypeSlash, []model.Seat{0, 1})
	assert.Contains(t, targets, model.Seat(0), "with cards in hand, Empty City does not apply")

	for _, id := range game.PlayerBySeat(0).Hand.Cards() {
		game.PlayerBySeat(0).Hand.RemoveAt(game.PlayerBySeat(0).Hand.IndexOf(id))
	}
	targets = eng.Rules.Usage.LegalTargets(game, 1, model.SubtypeSlash, []model.Seat{0, 1})
	assert.NotContains(t, targets, model.Seat(0), "empty hand excludes seat 0 as a Slash target")
}

func TestIntegration_JijiuSurfacesAsAVirtualPeachOnAnotherSeatsTurn(t *testing.T) {
	eng, _ := newBasesetEngine(t)

	cfg := config.GameConfig{
		PlayerConfigs: []config.PlayerConfig{
			{Seat: 0, HeroID: baseset.HeroJijiu, MaxHealth: 4, InitialHealth: 4},
			{Seat: 1, MaxHealth: 4, InitialHealth: 4},
		},
		Deck: baseset.Deck(),
		Seed: 2,
	}
	game, err := eng.CreateGame(cfg)
	require.NoError(t, err)
	game.CurrentSeat = 1

	heart := &model.Card{ID: 9001, Suit: model.Heart, Subtype: model.SubtypeSlash}
	game.Cards[9001] = heart
	game.PlayerBySeat(0).Hand.InsertTop(9001)

	set := eng.Rules.Response.LegalResponses(game, 0, rules.PeachForDying)
	require.Len(t, set.Virtual, 1)
	assert.Equal(t, model.CardID(9001), set.Virtual[0].Physical)

	game.CurrentSeat = 0
	set = eng.Rules.Response.LegalResponses(game, 0, rules.PeachForDying)
	assert.Empty(t, set.Virtual, "Jijiu cannot rescue its own owner on their own turn")
}

func TestIntegration_OffensiveMountShortensAttackingDistance(t *testing.T) {
	eng, _ := newBasesetEngine(t)

	cfg := config.GameConfig{
		PlayerConfigs: []config.PlayerConfig{
			{Seat: 0, MaxHealth: 4, InitialHealth: 4},
			{Seat: 1, MaxHealth: 4, InitialHealth: 4},
			{Seat: 2, MaxHealth: 4, InitialHealth: 4},
		},
		Deck:            baseset.Deck(),
		Seed:            3,
		EquipmentGrants: baseset.EquipmentGrants(),
	}
	game, err := eng.CreateGame(cfg)
	require.NoError(t, err)

	var horseID model.CardID
	for id, card := range game.Cards {
		if card.DefID == baseset.DefIDOffensiveHorse {
			horseID = id
			break
		}
	}
	require.NotZero(t, horseID)

	player := game.PlayerBySeat(0)
	before := eng.Rules.Range.Distance(game, 0, 2)

	game.Draw.RemoveAt(game.Draw.IndexOf(horseID))
	player.Hand.InsertTop(horseID)
	require.NoError(t, eng.Equip.Equip(game, player, player.Hand, game.Discard, horseID))

	after := eng.Rules.Range.Distance(game, 0, 2)
	assert.Less(t, after, before, "offensive mount shortens owner's attacking distance")
}

func TestIntegration_LebusishuPassingJudgementSkipsThePlayPhase(t *testing.T) {
	eng, pack := newBasesetEngine(t)

	cfg := config.GameConfig{
		PlayerConfigs: []config.PlayerConfig{
			{Seat: 0, MaxHealth: 4, InitialHealth: 4},
			{Seat: 1, MaxHealth: 4, InitialHealth: 4},
		},
		Deck: baseset.Deck(),
		Seed: 4,
	}
	game, err := eng.CreateGame(cfg)
	require.NoError(t, err)
	pack.AttachLebusishuSkip(eng.Bus, game)

	lebusishu := &model.Card{ID: 9001, Suit: model.Spade, Subtype: model.SubtypeLebusishu}
	redJudge := &model.Card{ID: 9002, Suit: model.Heart}
	game.Cards[9001] = lebusishu
	game.Cards[9002] = redJudge

	subject := game.PlayerBySeat(0)
	subject.Judgement.InsertTop(9001)
	game.Draw.InsertTop(9002)
	game.CurrentSeat = 0

	require.NoError(t, eng.Phase.RunJudgement(context.Background(), game, nil))

	v, ok := game.Flag("skip_Play")
	require.True(t, ok)
	assert.Equal(t, true, v)

	require.NoError(t, eng.Phase.RunPlayPhase(context.Background(), game, nil))
	_, stillSet := game.Flag("skip_Play")
	assert.False(t, stillSet, "leaving Play clears the skip flag for the next round")
}
