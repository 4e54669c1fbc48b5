// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package phase drives the per-round sequence — RoundStart, Judgement,
// Draw, Play, Discard, RoundEnd — publishing PhaseStart/PhaseEnd around
// each transition and TurnEnd at round close. It also hosts the action
// mapper: the {action, choice} pair an embedder (or this package's own
// Play-phase loop) supplies is turned into a pushed resolve.Resolver run
// to quiescence.
package phase
