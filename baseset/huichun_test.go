package baseset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/baseset"
	"github.com/threekingdoms/engine/gameevents"
)

func TestHuichun_AddsOneToOwnersOwnRecover(t *testing.T) {
	bus, _, registry, mgr := newTestRig(t)
	game := newTestGame(2)

	attachSkill(t, mgr, game, registry, baseset.SkillIDHuichun, 0)

	before := &gameevents.BeforeRecover{Target: 0, Base: 1}
	require.NoError(t, bus.Publish(before))
	assert.Equal(t, 1, before.Modifiers.Total())
}

func TestHuichun_IgnoresRecoverAimedAtSomeoneElse(t *testing.T) {
	bus, _, registry, mgr := newTestRig(t)
	game := newTestGame(2)

	attachSkill(t, mgr, game, registry, baseset.SkillIDHuichun, 0)

	before := &gameevents.BeforeRecover{Target: 1, Base: 1}
	require.NoError(t, bus.Publish(before))
	assert.Equal(t, 0, before.Modifiers.Total())
}
