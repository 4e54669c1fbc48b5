// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package baseset is a demonstration content pack: a small hero roster, a handful
// of equipment cards, and a skill per capability interface in the
// skill package, proving the engine's dispatch layer composes against
// real, interacting skills rather than only synthetic test doubles.
// baseset plays the role a rulebook-specific content pack plays for the
// core engine — the core never imports it, and an embedder is free to
// register a different pack instead or alongside it.
package baseset
