// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import "fmt"

// ModifierValue represents any value that can adjust a mutable
// accumulator event such as BeforeDamage or BeforeRecover.
// Implementations should be immutable after creation. Kept from the
// toolkit's events/modifier_types.go nearly verbatim — it is pure
// value-shape, not D&D-specific.
type ModifierValue interface {
	// GetValue returns the signed integer to apply.
	GetValue() int

	// GetDescription renders how this value was produced, e.g.
	// "+1 (horsemanship)" or "-1 (qinggang sword)".
	GetDescription() string
}

// RawValue is a flat, sourced integer modifier — the common case for skill
// effects that add or subtract a fixed amount (e.g. "+1 damage").
type RawValue struct {
	value  int
	source string
}

// NewRawValue creates a flat modifier value.
func NewRawValue(value int, source string) *RawValue {
	return &RawValue{value: value, source: source}
}

// GetValue returns the flat value.
func (r *RawValue) GetValue() int { return r.value }

// GetDescription renders the value with its source.
func (r *RawValue) GetDescription() string {
	return fmt.Sprintf("%+d (%s)", r.value, r.source)
}

// Accumulator collects ModifierValues applied to a mutable event during
// one publication and folds them into a single signed delta. BeforeDamage
// and BeforeRecover each carry one. Composition is commutative addition —
// every DamageModifier skill capability must produce order-independent
// output, so a simple running sum is sufficient; skills that need
// saturation (a mount skill's max(1,d-1), a roar-style max(cur,∞)) apply
// that clamp themselves before folding in their delta.
type Accumulator struct {
	applied []ModifierValue
}

// Add appends a modifier to the accumulator.
func (a *Accumulator) Add(v ModifierValue) {
	a.applied = append(a.applied, v)
}

// Total sums every applied modifier's value.
func (a *Accumulator) Total() int {
	sum := 0
	for _, v := range a.applied {
		sum += v.GetValue()
	}
	return sum
}

// Applied returns the modifiers folded into this accumulator, in
// application order, for diagnostics.
func (a *Accumulator) Applied() []ModifierValue {
	return a.applied
}
