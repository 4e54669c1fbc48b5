// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pipeline sequences a resolver's internal steps — draw, apply
// rule, apply modifiers, publish, clean up — as a small ordered chain.
// Trimmed from the toolkit's pipeline package: that package is a
// suspend/resume state machine (Pipeline.Resume, ContinuationData) built
// for mechanics that persist across a server request boundary. This
// engine's resolvers never persist mid-step — the player-choice callback
// is synchronous — so there is nothing to suspend or resume; only the
// ordered-stage idea survives, used by judge.Service for its own
// internal sequencing.
package pipeline

import "context"

// Stage transforms a value as one step of a Sequence.
type Stage func(ctx context.Context, value any) (any, error)

// Named pairs a Stage with a name, surfaced in error wrapping so a
// failure reports which step it came from.
type Named struct {
	Name  string
	Stage Stage
}
