// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threekingdoms/engine/events"
)

type stubEvent struct {
	t Type
}

type Type = events.Type

func (s stubEvent) EventType() Type { return s.t }

const typA Type = "a"
const typB Type = "b"

func TestBus_PublishOrdersSubscribersByRegistration(t *testing.T) {
	bus := events.NewBus()
	var order []int
	bus.Subscribe(typA, func(events.Event) error { order = append(order, 1); return nil })
	bus.Subscribe(typA, func(events.Event) error { order = append(order, 2); return nil })
	bus.Subscribe(typA, func(events.Event) error { order = append(order, 3); return nil })

	require.NoError(t, bus.Publish(stubEvent{t: typA}))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestBus_FilterExcludesNonMatching(t *testing.T) {
	bus := events.NewBus()
	var called bool
	bus.SubscribeWithFilter(typA, func(events.Event) error { called = true; return nil }, func(events.Event) bool { return false })

	require.NoError(t, bus.Publish(stubEvent{t: typA}))
	assert.False(t, called)
}

func TestBus_SubscriberErrorAbortsAsSubscriberFault(t *testing.T) {
	bus := events.NewBus()
	bus.Subscribe(typA, func(events.Event) error { return errors.New("boom") })

	err := bus.Publish(stubEvent{t: typA})
	require.Error(t, err)
	var fault *events.SubscriberFault
	require.ErrorAs(t, err, &fault)
}

func TestBus_ReentrantPublishDeliversBeforeReturning(t *testing.T) {
	bus := events.NewBus()
	var order []string
	bus.Subscribe(typA, func(events.Event) error {
		order = append(order, "a-start")
		require.NoError(t, bus.Publish(stubEvent{t: typB}))
		order = append(order, "a-end")
		return nil
	})
	bus.Subscribe(typB, func(events.Event) error {
		order = append(order, "b")
		return nil
	})

	require.NoError(t, bus.Publish(stubEvent{t: typA}))
	assert.Equal(t, []string{"a-start", "b", "a-end"}, order)
}

func TestBus_DepthCapFailsRunawayCascade(t *testing.T) {
	bus := events.NewBus()
	bus.Subscribe(typA, func(events.Event) error {
		return bus.Publish(stubEvent{t: typA})
	})

	err := bus.Publish(stubEvent{t: typA})
	require.Error(t, err)
	var fault *events.SubscriberFault
	require.ErrorAs(t, err, &fault)
}

func TestBus_UnsubscribeLeavesNoDanglingSubscription(t *testing.T) {
	bus := events.NewBus()
	var calls int
	id := bus.Subscribe(typA, func(events.Event) error { calls++; return nil })

	require.True(t, bus.Unsubscribe(id))
	require.NoError(t, bus.Publish(stubEvent{t: typA}))
	assert.Equal(t, 0, calls)

	// Unsubscribing again (e.g. detach called twice) is a harmless no-op,
	// not an error — P6 requires detach to leave no added subscriptions,
	// and detach logic should be safe to call defensively.
	assert.False(t, bus.Unsubscribe(id))
}

func TestAccumulator_TotalsAppliedModifiers(t *testing.T) {
	var acc events.Accumulator
	acc.Add(events.NewRawValue(1, "horsemanship"))
	acc.Add(events.NewRawValue(-2, "weakness"))

	assert.Equal(t, -1, acc.Total())
	assert.Len(t, acc.Applied(), 2)
}
