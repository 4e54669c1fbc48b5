package baseset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/threekingdoms/engine/baseset"
	"github.com/threekingdoms/engine/model"
	"github.com/threekingdoms/engine/skill"
)

func TestHujia_OnlyAssistsSameCampSeats(t *testing.T) {
	_, _, registry, mgr := newTestRig(t)
	game := newTestGame(3)
	game.PlayerBySeat(0).Camp = "rebel"
	game.PlayerBySeat(1).Camp = "rebel"
	game.PlayerBySeat(2).Camp = "loyalist"

	inst := attachSkill(t, mgr, game, registry, baseset.SkillIDHujia, 0)
	assistance := inst.(skill.ResponseAssistance)

	assert.Equal(t, []model.Seat{1}, assistance.Assistants(game, 0))
}

func TestHujia_NoAssistanceWithoutACamp(t *testing.T) {
	_, _, registry, mgr := newTestRig(t)
	game := newTestGame(2)

	inst := attachSkill(t, mgr, game, registry, baseset.SkillIDHujia, 0)
	assistance := inst.(skill.ResponseAssistance)

	assert.Empty(t, assistance.Assistants(game, 0))
}

func TestJijiang_OnlyAssistsOtherMaleSeats(t *testing.T) {
	_, _, registry, mgr := newTestRig(t)
	game := newTestGame(3)
	game.PlayerBySeat(0).Gender = model.GenderMale
	game.PlayerBySeat(1).Gender = model.GenderMale
	game.PlayerBySeat(2).Gender = model.GenderFemale

	inst := attachSkill(t, mgr, game, registry, baseset.SkillIDJijiang, 0)
	assistance := inst.(skill.ResponseAssistance)

	assert.Equal(t, []model.Seat{1}, assistance.Assistants(game, 0))
}
