// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package resolve is the Resolution Stack: a push-down machine of
// Resolvers that drives one card use or skill activation through
// targeting, response windows, judgements, damage, and side effects.
// A resolver may push further resolvers and return immediately; the
// stack then pops and runs those in LIFO order before anything pushed
// earlier. See DESIGN.md for the grounding behind this shape.
package resolve
