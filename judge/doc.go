// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package judge is the Judgement Service: draws the top card of the
// shared draw pile into a subject's judgement zone, applies a pass/fail
// Rule to it, publishes JudgementRequested and JudgementCompleted, and
// cleans up by discarding the card unless a subscriber (e.g. a
// Tiandu-style skill) has already claimed it by moving it elsewhere
// during JudgementCompleted — first writer wins.
//
// Grounded on the toolkit's dice.Roller "roll, then route on the result"
// shape, adapted because a judgement consumes a physical card from a
// shared pile rather than rolling an abstract die face — see DESIGN.md.
package judge
