// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package engine is the public surface: create_game, register_skills,
// get_available_actions, resolve, subscribe. It composes action, phase,
// resolve, choice, and config into the one handle an embedder holds —
// none of those packages know about each other's existence beyond what
// they import directly; engine is where the wiring happens.
package engine
