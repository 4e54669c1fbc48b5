// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rng provides the engine's single source of randomness: shuffling
// the draw pile at game start and any other random choice a rule needs to
// make. It is deliberately narrow — renamed and pared down from the
// toolkit's dice package, whose Roller interface existed to roll abstract
// dice faces (d4, 2d6, ...) for an RNG source that never needs to be
// replayed deterministically (games use crypto/rand).
//
// This engine requires the opposite: every random decision flows through
// a seeded PRNG, so that replays driven by the same seed and the same
// choice stream produce identical game states. crypto/rand cannot be
// seeded, so the engine keeps the Roller-shaped interface (for the same
// reason the toolkit kept it: an interface boundary an embedder can fake
// in tests) but backs it with a seeded generator instead of crypto/rand.
package rng
