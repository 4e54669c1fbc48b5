package baseset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/baseset"
	"github.com/threekingdoms/engine/gameevents"
)

func TestJizhi_ReducesIncomingDamageByOneFlooredAtOne(t *testing.T) {
	bus, _, registry, mgr := newTestRig(t)
	game := newTestGame(2)

	attachSkill(t, mgr, game, registry, baseset.SkillIDJizhi, 0)

	before := &gameevents.BeforeDamage{Source: 1, Target: 0, Base: 3, Reason: "Slash"}
	require.NoError(t, bus.Publish(before))
	assert.Equal(t, -1, before.Modifiers.Total())

	floor := &gameevents.BeforeDamage{Source: 1, Target: 0, Base: 1, Reason: "Slash"}
	require.NoError(t, bus.Publish(floor))
	assert.Equal(t, 0, floor.Modifiers.Total())
}

func TestJizhi_IgnoresDamageAimedAtSomeoneElse(t *testing.T) {
	bus, _, registry, mgr := newTestRig(t)
	game := newTestGame(2)

	attachSkill(t, mgr, game, registry, baseset.SkillIDJizhi, 0)

	before := &gameevents.BeforeDamage{Source: 0, Target: 1, Base: 3, Reason: "Slash"}
	require.NoError(t, bus.Publish(before))
	assert.Equal(t, 0, before.Modifiers.Total())
}
