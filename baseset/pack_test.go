package baseset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/baseset"
	"github.com/threekingdoms/engine/events"
	"github.com/threekingdoms/engine/move"
	"github.com/threekingdoms/engine/phase"
	"github.com/threekingdoms/engine/skill"
)

func TestPack_RegisterLoadsEveryHeroWithItsOneSkill(t *testing.T) {
	bus := events.NewBus()
	mover := move.NewService(bus)
	registry := skill.NewRegistry()
	require.NoError(t, baseset.New(mover).Register(registry))

	assert.Equal(t, []string{baseset.SkillIDFanjian}, registry.SkillsForHero(baseset.HeroFanjian))
	assert.Equal(t, []string{baseset.SkillIDEmptyCity}, registry.SkillsForHero(baseset.HeroEmptyCity))

	inst, err := registry.New(baseset.SkillIDCrossbow, 0)
	require.NoError(t, err)
	assert.Equal(t, baseset.SkillIDCrossbow, inst.ID())
}

func TestPack_RegisterRejectsASecondRegistrationOnTheSameRegistry(t *testing.T) {
	bus := events.NewBus()
	mover := move.NewService(bus)
	registry := skill.NewRegistry()
	require.NoError(t, baseset.New(mover).Register(registry))
	assert.Error(t, baseset.New(mover).Register(registry))
}

func TestPack_RegisterActiveResolversWiresFanjian(t *testing.T) {
	bus := events.NewBus()
	mover := move.NewService(bus)
	registry := skill.NewRegistry()
	pack := baseset.New(mover)
	require.NoError(t, pack.Register(registry))

	ctl := phase.NewController(mover, nil, nil, bus, skill.NewManager(bus, registry), nil, nil)
	assert.Empty(t, ctl.ActiveResolvers)

	pack.RegisterActiveResolvers(ctl)
	_, ok := ctl.ActiveResolvers[baseset.SkillIDFanjian]
	assert.True(t, ok)
}
