package phase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/threekingdoms/engine/action"
	"github.com/threekingdoms/engine/choice"
	cmock "github.com/threekingdoms/engine/choice/mock"
	"github.com/threekingdoms/engine/equip"
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/gameevents"
	"github.com/threekingdoms/engine/judge"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/phase"
	"github.com/threekingdoms/engine/rules"
	"github.com/threekingdoms/engine/skill"
)

func actionDescriptor(id string) action.Descriptor {
	return action.Descriptor{ID: id, DisplayKey: id}
}

const (
	slashCard = model.CardID(1)
	peachCard = model.CardID(2)
	trickCard = model.CardID(3)
)

type fixture struct {
	game      *model.Game
	bus       *events.Bus
	ctrl      *gomock.Controller
	responder *cmock.MockResponder
	ctl       *phase.Controller
}

func newFixture(t *testing.T) *fixture {
	players := []*model.Player{
		model.NewPlayer(0, "hero-a", 4),
		model.NewPlayer(1, "hero-b", 4),
	}
	cards := map[model.CardID]*model.Card{
		slashCard: {ID: slashCard, Name: "Slash", Type: model.Basic, Subtype: model.SubtypeSlash, Suit: model.Spade, Rank: 7},
		peachCard: {ID: peachCard, Name: "Peach", Type: model.Basic, Subtype: model.SubtypePeach, Suit: model.Heart, Rank: 2},
		trickCard: {ID: trickCard, Name: "Lebusishu", Type: model.Trick, Subtype: model.SubtypeLebusishu, Suit: model.Club, Rank: 5},
	}
	game := model.NewGame(players, cards)
	game.CurrentSeat = 0

	bus := events.NewBus()
	mover := move.NewService(bus)
	registry := skill.NewRegistry()
	skills := skill.NewManager(bus, registry)
	rulesSvc := rules.NewServices(skills, cards)
	judgeSvc := judge.NewService(bus, mover, cards)
	equipSvc := equip.NewService(mover, cards, skills, nil)
	judgeRules := judge.NewRuleRegistry()

	ctrl := gomock.NewController(t)
	responder := cmock.NewMockResponder(ctrl)

	ctl := phase.NewController(mover, rulesSvc, judgeSvc, bus, skills, equipSvc, judgeRules)

	return &fixture{game: game, bus: bus, ctrl: ctrl, responder: responder, ctl: ctl}
}

func (f *fixture) player(seat model.Seat) *model.Player {
	return f.game.PlayerBySeat(seat)
}

func TestRunRoundStart_PublishesStartAndEnd(t *testing.T) {
	f := newFixture(t)
	var saw []gameevents.PhaseStart
	f.bus.Subscribe(gameevents.TypePhaseStart, func(e events.Event) error {
		saw = append(saw, e.(gameevents.PhaseStart))
		return nil
	})

	require.NoError(t, f.ctl.RunRoundStart(f.game))
	require.Len(t, saw, 1)
	assert.Equal(t, model.RoundStart, saw[0].Phase)
	assert.Equal(t, model.RoundStart, f.game.CurrentPhase)
}

func TestRunJudgement_ResolvesAndDiscardsTrickFIFO(t *testing.T) {
	f := newFixture(t)
	target := f.player(0)
	target.Judgement.InsertTop(trickCard)
	f.game.Draw.InsertTop(slashCard)

	require.NoError(t, f.ctl.RunJudgement(context.Background(), f.game, f.responder))

	assert.False(t, target.Judgement.Contains(trickCard), "resolved trick is discarded")
	assert.True(t, f.game.Discard.Contains(trickCard))
}

func TestRunJudgement_SkippedWhenFlagSet(t *testing.T) {
	f := newFixture(t)
	target := f.player(0)
	target.Judgement.InsertTop(trickCard)
	f.game.SetFlag("skip_Judgement", true)

	require.NoError(t, f.ctl.RunJudgement(context.Background(), f.game, f.responder))

	assert.True(t, target.Judgement.Contains(trickCard), "skipped judgement leaves the trick untouched")
}

func TestRunDraw_DefaultDrawsTwoCards(t *testing.T) {
	f := newFixture(t)
	f.game.Draw.InsertTop(peachCard)
	f.game.Draw.InsertTop(slashCard)

	require.NoError(t, f.ctl.RunDraw(context.Background(), f.game, f.responder))

	assert.Equal(t, 2, f.player(0).Hand.Len())
}

// alwaysReplacesDraw is a DrawPhaseReplacement test skill that always
// offers to substitute the draw.
type alwaysReplacesDraw struct{ owner model.Seat }

func (s *alwaysReplacesDraw) ID() string                     { return "test-replace-draw" }
func (s *alwaysReplacesDraw) DisplayName() string             { return "Test Replace Draw" }
func (s *alwaysReplacesDraw) Type() skill.Type                { return skill.Trigger }
func (s *alwaysReplacesDraw) Capabilities() skill.Capability  { return skill.None }
func (s *alwaysReplacesDraw) Owner() model.Seat               { return s.owner }
func (s *alwaysReplacesDraw) Attach(bus *events.Bus, game *model.Game) error { return nil }
func (s *alwaysReplacesDraw) Detach(bus *events.Bus) error    { return nil }
func (s *alwaysReplacesDraw) Offer(game *model.Game, owner model.Seat) bool { return true }

func TestRunDraw_ReplacementConfirmedSkipsDefaultDraw(t *testing.T) {
	f := newFixture(t)
	f.game.Draw.InsertTop(peachCard)
	f.game.Draw.InsertTop(slashCard)

	require.NoError(t, f.ctl.Skills.Attach(f.game, &alwaysReplacesDraw{owner: 0}))

	f.responder.EXPECT().
		RequestChoice(gomock.Any(), gomock.Any()).
		Return(choice.Result{Confirmed: true}, nil)

	var replaced []gameevents.DrawPhaseReplaced
	f.bus.Subscribe(gameevents.TypeDrawPhaseReplaced, func(e events.Event) error {
		replaced = append(replaced, e.(gameevents.DrawPhaseReplaced))
		return nil
	})

	require.NoError(t, f.ctl.RunDraw(context.Background(), f.game, f.responder))

	assert.Equal(t, 0, f.player(0).Hand.Len(), "default draw is skipped once a replacement is confirmed")
	require.Len(t, replaced, 1)
	assert.Equal(t, "test-replace-draw", replaced[0].SkillID)
}

func TestRunDiscard_LoopsUntilHandAtHealth(t *testing.T) {
	f := newFixture(t)
	player := f.player(0)
	player.Health = 1
	player.Hand.InsertTop(slashCard)
	player.Hand.InsertTop(peachCard)
	player.Hand.InsertTop(trickCard)

	f.responder.EXPECT().
		RequestChoice(gomock.Any(), gomock.Any()).
		Return(choice.Result{SelectedCardIDs: []model.CardID{slashCard, peachCard}}, nil)

	require.NoError(t, f.ctl.RunDiscard(context.Background(), f.game, f.responder))

	assert.Equal(t, 1, player.Hand.Len())
	assert.True(t, f.game.Discard.Contains(slashCard))
	assert.True(t, f.game.Discard.Contains(peachCard))
}

func TestRunDiscard_DeclineFallsBackToFrontOfHand(t *testing.T) {
	f := newFixture(t)
	player := f.player(0)
	player.Health = 1
	player.Hand.InsertTop(slashCard)
	player.Hand.InsertTop(peachCard)

	f.responder.EXPECT().
		RequestChoice(gomock.Any(), gomock.Any()).
		Return(choice.Result{}, nil)

	require.NoError(t, f.ctl.RunDiscard(context.Background(), f.game, f.responder))

	assert.Equal(t, 1, player.Hand.Len())
}

func TestRunRoundEnd_AdvancesTurnAndSeat(t *testing.T) {
	f := newFixture(t)
	startTurn := f.game.Turn

	require.NoError(t, f.ctl.RunRoundEnd(f.game))

	assert.Equal(t, startTurn+1, f.game.Turn)
	assert.Equal(t, model.Seat(1), f.game.CurrentSeat)
}

func TestApplyAction_EndPlayEndsTurnWithoutResolving(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctl.EnterPlayPhase(f.game))

	ended, err := f.ctl.ApplyAction(context.Background(), f.game, 0, actionDescriptor("EndPlay"), choice.Result{}, f.responder)
	require.NoError(t, err)
	assert.True(t, ended)
}

func TestApplyAction_CardUsePlaysAndDiscardsPeach(t *testing.T) {
	f := newFixture(t)
	player := f.player(0)
	player.Health = 2
	player.Hand.InsertTop(peachCard)
	require.NoError(t, f.ctl.EnterPlayPhase(f.game))

	ended, err := f.ctl.ApplyAction(context.Background(), f.game, 0, actionDescriptor(string(model.SubtypePeach)), choice.Result{SelectedCardIDs: []model.CardID{peachCard}}, f.responder)

	require.NoError(t, err)
	assert.False(t, ended)
	assert.Equal(t, 3, player.Health)
	assert.False(t, player.Hand.Contains(peachCard))
}
