// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the engine's state shapes: seated players, zoned
// cards, and the Game root that owns them. Nothing in this package mutates
// zone membership directly — that is the exclusive job of the move
// package (C3) — model only holds state and answers read-only queries
// about it (alive seats, hand size, equipped slots).
//
// Grounded on the toolkit's core.Entity/core.Ref for identity, adapted
// from a generic entity-registry shape to this game's closed, small set
// of concrete types (Player, Card, Zone, Game) — there is no need for a
// generic entity interface here because the engine only ever has these
// four kinds of thing.
package model
